// Package component holds the drawable units the compositor manages:
// shapes, animated borders, text, and the crowding gauge. Every variant
// embeds Base, which owns the region, visibility, background, and the dirty
// flag driving incremental redraw.
package component

import (
	"sync"

	"ledboard/canvas"
)

// Pixel is one drawn pixel in absolute display coordinates.
type Pixel struct {
	X, Y  int
	Color canvas.Color
}

type Component interface {
	// Render draws the current state. No-op when invisible.
	Render(c canvas.Canvas)
	// Pixels enumerates what Render would draw, without a canvas.
	Pixels() []Pixel
	IsDirty() bool
	MarkDirty()
	MarkClean()
	SetVisible(visible bool)
	SetRegion(r canvas.Region)
	SetBackground(c *canvas.Color)
	Region() canvas.Region
	Visible() bool
}

// putFunc receives pixels from a variant's draw routine; Render plugs in the
// canvas, Pixels plugs in a collector.
type putFunc func(x, y int, c canvas.Color)

// Base carries the state shared by all component variants. Mutators are
// equality-guarded: writing the current value never flips the dirty flag.
// The mutex lets setters run on a different goroutine than the render loop.
type Base struct {
	mu         sync.Mutex
	region     canvas.Region
	background *canvas.Color
	visible    bool
	dirty      bool
}

func newBase(region canvas.Region) Base {
	return Base{region: region, visible: true, dirty: true}
}

func (b *Base) Region() canvas.Region {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.region
}

func (b *Base) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

func (b *Base) IsDirty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dirty
}

func (b *Base) MarkDirty() {
	b.mu.Lock()
	b.dirty = true
	b.mu.Unlock()
}

func (b *Base) MarkClean() {
	b.mu.Lock()
	b.dirty = false
	b.mu.Unlock()
}

func (b *Base) SetVisible(visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.visible != visible {
		b.visible = visible
		b.dirty = true
	}
}

func (b *Base) SetRegion(r canvas.Region) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.region != r {
		b.region = r
		b.dirty = true
	}
}

func (b *Base) SetBackground(c *canvas.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !colorPtrEqual(b.background, c) {
		b.background = c
		b.dirty = true
	}
}

// drawBackground emits the background fill, if one is set.
func (b *Base) drawBackground(put putFunc) {
	if b.background == nil {
		return
	}
	fillRegion(put, b.region, *b.background)
}

// clearRegion emits the background color, or black when none is set. Text
// and gauge variants clear before drawing so stale pixels never survive.
func (b *Base) clearRegion(put putFunc) {
	c := canvas.Black
	if b.background != nil {
		c = *b.background
	}
	fillRegion(put, b.region, c)
}

func fillRegion(put putFunc, r canvas.Region, c canvas.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			put(x, y, c)
		}
	}
}

func colorPtrEqual(a, b *canvas.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// canvasPut adapts a canvas to the draw sink.
func canvasPut(c canvas.Canvas) putFunc {
	return func(x, y int, col canvas.Color) {
		c.SetPixel(x, y, col)
	}
}

// collectPut appends drawn pixels to dst.
func collectPut(dst *[]Pixel) putFunc {
	return func(x, y int, col canvas.Color) {
		*dst = append(*dst, Pixel{X: x, Y: y, Color: col})
	}
}
