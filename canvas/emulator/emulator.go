// Package emulator renders the matrix into a terminal via tcell. Each
// character cell shows two stacked pixels with the upper-half-block glyph,
// so a 64x32 board fits in a 64x16 terminal area. It stands in for real
// LED hardware during development.
package emulator

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"ledboard/canvas"
)

type Canvas struct {
	screen        tcell.Screen
	width, height int
	bufs          [2][]canvas.Color
	back          int
	title         string
	brightness    int
	quit          chan struct{}
	quitOnce      sync.Once
}

func New(width, height int, title string) (*Canvas, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	termenv.NewOutput(os.Stdout).SetWindowTitle(title)
	return newCanvas(screen, width, height, title), nil
}

func newCanvas(screen tcell.Screen, width, height int, title string) *Canvas {
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	c := &Canvas{
		screen:     screen,
		width:      width,
		height:     height,
		title:      title,
		brightness: 100,
		quit:       make(chan struct{}),
	}
	c.bufs[0] = make([]canvas.Color, width*height)
	c.bufs[1] = make([]canvas.Color, width*height)

	go c.poll()
	return c
}

func (c *Canvas) poll() {
	for {
		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
				c.quitOnce.Do(func() { close(c.quit) })
				return
			}
		case nil:
			return
		}
	}
}

// SetBrightness scales all output, 0 to 100 percent, mimicking the
// brightness control of real matrix hardware.
func (c *Canvas) SetBrightness(pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	c.brightness = pct
}

// Quit is closed when the user presses q, Esc or Ctrl+C.
func (c *Canvas) Quit() <-chan struct{} {
	return c.quit
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) SetPixel(x, y int, col canvas.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.bufs[c.back][y*c.width+x] = col
}

func (c *Canvas) Fill(r canvas.Region, col canvas.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.SetPixel(x, y, col)
		}
	}
}

// Swap flushes the back buffer to the terminal and flips buffers.
func (c *Canvas) Swap() canvas.Canvas {
	c.flush()
	c.back = 1 - c.back
	return c
}

// flush draws two pixel rows per terminal line: the upper-half-block glyph
// takes the top pixel as foreground and the bottom pixel as background.
func (c *Canvas) flush() {
	buf := c.bufs[c.back]
	rows := (c.height + 1) / 2
	for row := 0; row < rows; row++ {
		for x := 0; x < c.width; x++ {
			top := buf[2*row*c.width+x]
			bottom := canvas.Black
			if 2*row+1 < c.height {
				bottom = buf[(2*row+1)*c.width+x]
			}
			style := tcell.StyleDefault.
				Foreground(c.toRGB(top)).
				Background(c.toRGB(bottom))
			c.screen.SetContent(x, row, '▀', nil, style)
		}
	}
	c.drawStatus(rows)
	c.screen.Show()
}

func (c *Canvas) toRGB(col canvas.Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(int(col.R)*c.brightness/100),
		int32(int(col.G)*c.brightness/100),
		int32(int(col.B)*c.brightness/100))
}

func (c *Canvas) drawStatus(line int) {
	status := fmt.Sprintf(" %s %dx%d  q to quit ", c.title, c.width, c.height)
	status = runewidth.FillRight(runewidth.Truncate(status, c.width, "…"), c.width)
	style := tcell.StyleDefault.
		Foreground(tcell.ColorGray).
		Background(tcell.ColorBlack)
	x := 0
	for _, r := range status {
		c.screen.SetContent(x, line, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// Stop restores the terminal.
func (c *Canvas) Stop() {
	c.screen.Fini()
}
