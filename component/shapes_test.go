package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledboard/canvas"
)

func TestRectangleFill(t *testing.T) {
	r := NewRectangle(canvas.Region{X: 1, Y: 1, Width: 3, Height: 2}, canvas.Red)
	pixels := r.Pixels()
	assert.Len(t, pixels, 6)
	for _, p := range pixels {
		assert.Equal(t, canvas.Red, p.Color)
	}
}

func TestRectangleBorderOverFill(t *testing.T) {
	r := NewRectangle(canvas.Region{X: 0, Y: 0, Width: 4, Height: 4}, canvas.Red)
	r.SetBorder(1, canvas.Blue)

	pixels := r.Pixels()
	c, ok := pixelAt(pixels, 0, 0)
	require.True(t, ok)
	assert.Equal(t, canvas.Blue, c, "corner is border")
	c, ok = pixelAt(pixels, 1, 1)
	require.True(t, ok)
	assert.Equal(t, canvas.Red, c, "interior is fill")
}

func TestRectangleOutlineOnly(t *testing.T) {
	r := NewRectangle(canvas.Region{X: 0, Y: 0, Width: 4, Height: 4}, canvas.Red)
	r.SetFill(false)

	pixels := r.Pixels()
	_, interior := pixelAt(pixels, 1, 1)
	assert.False(t, interior)
	_, edge := pixelAt(pixels, 0, 2)
	assert.True(t, edge)
}

func TestLineHorizontal(t *testing.T) {
	l := NewLine(canvas.Position{X: 0, Y: 0}, canvas.Position{X: 3, Y: 0}, canvas.Green, 1)
	assert.Equal(t, canvas.Region{X: 0, Y: 0, Width: 4, Height: 1}, l.Region())

	pixels := l.Pixels()
	assert.Len(t, pixels, 4)
	for i, p := range pixels {
		assert.Equal(t, i, p.X)
		assert.Equal(t, 0, p.Y)
	}
}

func TestLineDiagonal(t *testing.T) {
	l := NewLine(canvas.Position{X: 0, Y: 0}, canvas.Position{X: 2, Y: 2}, canvas.Green, 1)
	pixels := l.Pixels()
	assert.Len(t, pixels, 3)
	for i, p := range pixels {
		assert.Equal(t, i, p.X)
		assert.Equal(t, i, p.Y)
	}
}

func TestLineSetPointsRecomputesRegion(t *testing.T) {
	l := NewLine(canvas.Position{X: 0, Y: 0}, canvas.Position{X: 3, Y: 0}, canvas.Green, 1)
	l.MarkClean()

	l.SetPoints(canvas.Position{X: 0, Y: 0}, canvas.Position{X: 3, Y: 0})
	assert.False(t, l.IsDirty(), "unchanged endpoints are a no-op")

	l.SetPoints(canvas.Position{X: 2, Y: 2}, canvas.Position{X: 5, Y: 8})
	assert.True(t, l.IsDirty())
	assert.Equal(t, canvas.Region{X: 2, Y: 2, Width: 4, Height: 7}, l.Region())
}

func TestPixelSetLastWriteWins(t *testing.T) {
	p := NewPixelSet(canvas.Region{X: 10, Y: 10, Width: 4, Height: 4}, nil)
	p.SetPixel(1, 1, canvas.Red)
	p.SetPixel(1, 1, canvas.Blue)

	pixels := p.Pixels()
	require.Len(t, pixels, 1)
	assert.Equal(t, Pixel{X: 11, Y: 11, Color: canvas.Blue}, pixels[0])
}

func TestPixelSetClipsToRegion(t *testing.T) {
	p := NewPixelSet(canvas.Region{X: 0, Y: 0, Width: 2, Height: 2}, nil)
	p.SetPixel(5, 5, canvas.Red)
	assert.Empty(t, p.Pixels())
}

func TestPixelSetIdempotentWrite(t *testing.T) {
	p := NewPixelSet(canvas.Region{X: 0, Y: 0, Width: 4, Height: 4}, nil)
	p.SetPixel(1, 1, canvas.Red)
	p.MarkClean()
	p.SetPixel(1, 1, canvas.Red)
	assert.False(t, p.IsDirty())
}
