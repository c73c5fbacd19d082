package memory

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
)

// Dump writes the front buffer to w as ANSI half-block art, two pixels per
// character cell. Handy for previewing frames without a matrix attached.
func (c *Canvas) Dump(w io.Writer, title string) error {
	profile := termenv.ColorProfile()

	header := fmt.Sprintf("┌ %s ", title)
	if pad := c.width + 2 - ansi.PrintableRuneWidth(header) - 1; pad > 0 {
		header += strings.Repeat("─", pad)
	}
	header += "┐"
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for y := 0; y < c.height; y += 2 {
		var line strings.Builder
		line.WriteString("│")
		for x := 0; x < c.width; x++ {
			upper := c.At(x, y)
			lower := upper
			if y+1 < c.height {
				lower = c.At(x, y+1)
			}
			s := termenv.String("▀").
				Foreground(profile.FromColor(color.RGBA{upper.R, upper.G, upper.B, 255})).
				Background(profile.FromColor(color.RGBA{lower.R, lower.G, lower.B, 255}))
			line.WriteString(s.String())
		}
		line.WriteString("│")
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "└"+strings.Repeat("─", c.width)+"┘")
	return err
}
