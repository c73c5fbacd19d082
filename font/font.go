// Package font implements the canvas.Font capability on top of
// golang.org/x/image font faces, with room for custom bitmap glyphs such as
// the crowding gauge icon.
package font

import (
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"ledboard/canvas"
)

type Face struct {
	face     xfont.Face
	height   int
	baseline int
	glyphs   map[rune][][]bool
}

// New wraps an x/image face. The gauge icon glyph is registered at
// canvas.IconRune.
func New(f xfont.Face) *Face {
	m := f.Metrics()
	face := &Face{
		face:     f,
		height:   (m.Ascent + m.Descent).Ceil(),
		baseline: m.Ascent.Ceil(),
		glyphs:   map[rune][][]bool{},
	}
	face.SetGlyph(canvas.IconRune, iconGlyph)
	return face
}

// Basic returns a face over the built-in 7x13 bitmap font.
func Basic() *Face {
	return New(basicfont.Face7x13)
}

// SetGlyph registers a custom bitmap glyph. The mask's bottom row is placed
// on the baseline; all rows must share one width.
func (f *Face) SetGlyph(r rune, mask [][]bool) {
	f.glyphs[r] = mask
}

func (f *Face) Height() int   { return f.height }
func (f *Face) Baseline() int { return f.baseline }

// CharWidth returns the horizontal advance for r. Unknown runes take the
// advance of '?'.
func (f *Face) CharWidth(r rune) int {
	if g, ok := f.glyphs[r]; ok {
		if len(g) == 0 {
			return 0
		}
		return len(g[0]) + 1
	}
	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		adv, _ = f.face.GlyphAdvance('?')
	}
	return adv.Ceil()
}

// GlyphMask rasterizes text into a Height-row bitmask with origin at the
// text's top-left.
func (f *Face) GlyphMask(text string) ([][]bool, error) {
	if f.face == nil {
		return nil, fmt.Errorf("font: no face loaded")
	}
	width := 0
	for _, r := range text {
		width += f.CharWidth(r)
	}
	mask := make([][]bool, f.height)
	for i := range mask {
		mask[i] = make([]bool, width)
	}

	x := 0
	for _, r := range text {
		if g, ok := f.glyphs[r]; ok {
			f.blit(mask, g, x)
		} else if err := f.drawRune(mask, r, x); err != nil {
			return nil, err
		}
		x += f.CharWidth(r)
	}
	return mask, nil
}

// blit copies a custom glyph into the mask, bottom row on the baseline.
func (f *Face) blit(mask, glyph [][]bool, x int) {
	top := f.baseline - len(glyph)
	for gy, row := range glyph {
		y := top + gy
		if y < 0 || y >= f.height {
			continue
		}
		for gx, on := range row {
			if on && x+gx < len(mask[y]) {
				mask[y][x+gx] = true
			}
		}
	}
}

func (f *Face) drawRune(mask [][]bool, r rune, x int) error {
	adv := f.CharWidth(r)
	if adv <= 0 {
		return nil
	}
	img := image.NewAlpha(image.Rect(0, 0, adv, f.height))
	d := xfont.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: f.face,
		Dot:  fixed.P(0, f.baseline),
	}
	if _, ok := f.face.GlyphAdvance(r); !ok {
		r = '?'
	}
	d.DrawString(string(r))
	for y := 0; y < f.height; y++ {
		for gx := 0; gx < adv; gx++ {
			if img.AlphaAt(gx, y).A >= 0x80 && x+gx < len(mask[y]) {
				mask[y][x+gx] = true
			}
		}
	}
	return nil
}
