package component

import (
	"ledboard/canvas"
)

// Line draws a straight segment with Bresenham stepping, one width×width
// block per step. Its region is the bounding box of the endpoints expanded
// by the stroke width.
type Line struct {
	Base
	start, end canvas.Position
	color      canvas.Color
	width      int
}

func NewLine(start, end canvas.Position, color canvas.Color, width int) *Line {
	if width < 1 {
		width = 1
	}
	l := &Line{
		Base:  newBase(lineBounds(start, end, width)),
		start: start,
		end:   end,
		color: color,
		width: width,
	}
	return l
}

func lineBounds(start, end canvas.Position, width int) canvas.Region {
	minX := min(start.X, end.X)
	maxX := max(start.X, end.X)
	minY := min(start.Y, end.Y)
	maxY := max(start.Y, end.Y)
	return canvas.Region{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + width,
		Height: maxY - minY + width,
	}
}

func (l *Line) SetColor(c canvas.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.color != c {
		l.color = c
		l.dirty = true
	}
}

// SetPoints moves the endpoints and recomputes the bounding region.
func (l *Line) SetPoints(start, end canvas.Position) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.start == start && l.end == end {
		return
	}
	l.start = start
	l.end = end
	l.region = lineBounds(start, end, l.width)
	l.dirty = true
}

func (l *Line) Render(c canvas.Canvas) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.visible {
		return
	}
	l.draw(canvasPut(c))
}

func (l *Line) Pixels() []Pixel {
	l.mu.Lock()
	defer l.mu.Unlock()
	var pixels []Pixel
	if !l.visible {
		return pixels
	}
	l.draw(collectPut(&pixels))
	return pixels
}

func (l *Line) draw(put putFunc) {
	l.drawBackground(put)

	x0, y0 := l.start.X, l.start.Y
	x1, y1 := l.end.X, l.end.Y
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		for w := 0; w < l.width; w++ {
			for h := 0; h < l.width; h++ {
				px := x + w - l.width/2
				py := y + h - l.width/2
				if l.region.Contains(canvas.Position{X: px, Y: py}) {
					put(px, py, l.color)
				}
			}
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
