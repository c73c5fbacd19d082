package component

import (
	"ledboard/canvas"
)

// Rectangle fills its region and optionally draws a border in a distinct
// color. With fill disabled only the border is drawn.
type Rectangle struct {
	Base
	color       canvas.Color
	fill        bool
	borderWidth int
	borderColor canvas.Color
}

func NewRectangle(region canvas.Region, color canvas.Color) *Rectangle {
	return &Rectangle{
		Base:        newBase(region),
		color:       color,
		fill:        true,
		borderWidth: 1,
		borderColor: color,
	}
}

func (r *Rectangle) SetColor(c canvas.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.color != c {
		r.color = c
		r.dirty = true
	}
}

func (r *Rectangle) SetFill(fill bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fill != fill {
		r.fill = fill
		r.dirty = true
	}
}

func (r *Rectangle) SetBorder(width int, c canvas.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.borderWidth != width || r.borderColor != c {
		r.borderWidth = width
		r.borderColor = c
		r.dirty = true
	}
}

func (r *Rectangle) Render(c canvas.Canvas) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.visible {
		return
	}
	r.draw(canvasPut(c))
}

func (r *Rectangle) Pixels() []Pixel {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pixels []Pixel
	if !r.visible {
		return pixels
	}
	r.draw(collectPut(&pixels))
	return pixels
}

func (r *Rectangle) draw(put putFunc) {
	r.drawBackground(put)

	if r.fill {
		fillRegion(put, r.region, r.color)
		if r.borderColor != r.color {
			r.drawBorder(put)
		}
	} else {
		r.drawBorder(put)
	}
}

// drawBorder paints borderWidth concentric strips along each edge, clipped
// to the region.
func (r *Rectangle) drawBorder(put putFunc) {
	reg := r.region
	for x := reg.X; x < reg.Right(); x++ {
		for w := 0; w < r.borderWidth; w++ {
			if reg.Y+w < reg.Bottom() {
				put(x, reg.Y+w, r.borderColor)
			}
			if reg.Bottom()-1-w >= reg.Y {
				put(x, reg.Bottom()-1-w, r.borderColor)
			}
		}
	}
	for y := reg.Y; y < reg.Bottom(); y++ {
		for w := 0; w < r.borderWidth; w++ {
			if reg.X+w < reg.Right() {
				put(reg.X+w, y, r.borderColor)
			}
			if reg.Right()-1-w >= reg.X {
				put(reg.Right()-1-w, y, r.borderColor)
			}
		}
	}
}
