package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ledboard/canvas"
)

// testFont is a deterministic font: every glyph is a 3-wide solid block in
// a 4-pixel advance, 6 rows tall with the baseline at 5.
type testFont struct{}

func (testFont) CharWidth(rune) int { return 4 }
func (testFont) Height() int        { return 6 }
func (testFont) Baseline() int      { return 5 }

func (f testFont) GlyphMask(text string) ([][]bool, error) {
	width := len([]rune(text)) * 4
	mask := make([][]bool, 6)
	for y := range mask {
		mask[y] = make([]bool, width)
		for x := range mask[y] {
			mask[y][x] = x%4 < 3
		}
	}
	return mask, nil
}

// errFont fails glyph decoding, forcing the coarse fallback path.
type errFont struct{ testFont }

func (errFont) GlyphMask(string) ([][]bool, error) {
	return nil, assert.AnError
}

func pixelAt(pixels []Pixel, x, y int) (canvas.Color, bool) {
	// Later writes win, like a canvas.
	var c canvas.Color
	found := false
	for _, p := range pixels {
		if p.X == x && p.Y == y {
			c = p.Color
			found = true
		}
	}
	return c, found
}

func nonBlack(pixels []Pixel) []Pixel {
	merged := map[[2]int]canvas.Color{}
	var order [][2]int
	for _, p := range pixels {
		key := [2]int{p.X, p.Y}
		if _, seen := merged[key]; !seen {
			order = append(order, key)
		}
		merged[key] = p.Color
	}
	var out []Pixel
	for _, key := range order {
		if merged[key] != canvas.Black {
			out = append(out, Pixel{X: key[0], Y: key[1], Color: merged[key]})
		}
	}
	return out
}

func TestBaseSettersAreIdempotent(t *testing.T) {
	r := NewRectangle(canvas.Region{X: 0, Y: 0, Width: 4, Height: 4}, canvas.Red)

	r.MarkClean()
	r.SetVisible(true) // already visible
	assert.False(t, r.IsDirty())
	r.SetRegion(canvas.Region{X: 0, Y: 0, Width: 4, Height: 4})
	assert.False(t, r.IsDirty())
	r.SetBackground(nil)
	assert.False(t, r.IsDirty())

	bg := canvas.Blue
	r.SetBackground(&bg)
	assert.True(t, r.IsDirty())

	r.MarkClean()
	bg2 := canvas.Blue
	r.SetBackground(&bg2) // same value, different pointer
	assert.False(t, r.IsDirty())

	r.MarkClean()
	r.SetVisible(false)
	assert.True(t, r.IsDirty())
}

func TestInvisibleComponentsDrawNothing(t *testing.T) {
	reg := canvas.Region{X: 0, Y: 0, Width: 4, Height: 4}
	comps := []Component{
		NewRectangle(reg, canvas.Red),
		NewLine(canvas.Position{X: 0, Y: 0}, canvas.Position{X: 3, Y: 3}, canvas.Red, 1),
		NewPixelSet(reg, []Pixel{{X: 1, Y: 1, Color: canvas.Red}}),
		NewBorder(reg, 2, 2, 1),
		NewText(reg, "hi", testFont{}, canvas.Red),
		NewCrowding(reg, testFont{}),
	}
	for _, c := range comps {
		c.SetVisible(false)
		assert.Empty(t, c.Pixels())
	}
}
