// Package memory provides a headless double-buffered canvas. It backs tests
// and the console preview; nothing in it touches a terminal or hardware.
package memory

import (
	"ledboard/canvas"
)

type Canvas struct {
	width, height int
	bufs          [2][]canvas.Color
	back          int
	writes        int
}

func New(width, height int) *Canvas {
	c := &Canvas{width: width, height: height}
	c.bufs[0] = make([]canvas.Color, width*height)
	c.bufs[1] = make([]canvas.Color, width*height)
	return c
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) SetPixel(x, y int, col canvas.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.bufs[c.back][y*c.width+x] = col
	c.writes++
}

func (c *Canvas) Fill(r canvas.Region, col canvas.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.SetPixel(x, y, col)
		}
	}
}

// Swap flips the back buffer to front. The buffer handed back for drawing is
// the one displayed two frames ago, matching vsync-style double buffering.
func (c *Canvas) Swap() canvas.Canvas {
	c.back = 1 - c.back
	return c
}

// At reads the front (displayed) buffer.
func (c *Canvas) At(x, y int) canvas.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return canvas.Black
	}
	return c.bufs[1-c.back][y*c.width+x]
}

// BackAt reads the buffer currently being drawn into.
func (c *Canvas) BackAt(x, y int) canvas.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return canvas.Black
	}
	return c.bufs[c.back][y*c.width+x]
}

// Writes returns the number of SetPixel calls since the last ResetWrites.
func (c *Canvas) Writes() int {
	return c.writes
}

func (c *Canvas) ResetWrites() {
	c.writes = 0
}
