package component

import (
	"ledboard/canvas"
)

// PixelSet draws an explicit list of pixels, stored relative to the region
// origin and clipped to the region on render.
type PixelSet struct {
	Base
	pixels []Pixel // relative coordinates
}

func NewPixelSet(region canvas.Region, pixels []Pixel) *PixelSet {
	return &PixelSet{
		Base:   newBase(region),
		pixels: pixels,
	}
}

// SetPixel places a pixel at a region-relative coordinate. A pixel already
// at that coordinate is replaced.
func (p *PixelSet) SetPixel(relX, relY int, c canvas.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.pixels {
		if p.pixels[i].X == relX && p.pixels[i].Y == relY {
			if p.pixels[i].Color == c {
				return
			}
			p.pixels[i].Color = c
			p.dirty = true
			return
		}
	}
	p.pixels = append(p.pixels, Pixel{X: relX, Y: relY, Color: c})
	p.dirty = true
}

func (p *PixelSet) SetPixels(pixels []Pixel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pixels = pixels
	p.dirty = true
}

func (p *PixelSet) ClearPixels() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.pixels) == 0 {
		return
	}
	p.pixels = nil
	p.dirty = true
}

func (p *PixelSet) Render(c canvas.Canvas) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.visible {
		return
	}
	p.draw(canvasPut(c))
}

func (p *PixelSet) Pixels() []Pixel {
	p.mu.Lock()
	defer p.mu.Unlock()
	var pixels []Pixel
	if !p.visible {
		return pixels
	}
	p.draw(collectPut(&pixels))
	return pixels
}

func (p *PixelSet) draw(put putFunc) {
	p.drawBackground(put)
	for _, px := range p.pixels {
		absX := p.region.X + px.X
		absY := p.region.Y + px.Y
		if p.region.Contains(canvas.Position{X: absX, Y: absY}) {
			put(absX, absY, px.Color)
		}
	}
}
