package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBClamps(t *testing.T) {
	for _, tc := range []struct {
		r, g, b int
		want    Color
	}{
		{0, 0, 0, Color{0, 0, 0}},
		{255, 255, 255, Color{255, 255, 255}},
		{-1, 256, 128, Color{0, 255, 128}},
		{-1000, 1000, 42, Color{0, 255, 42}},
	} {
		assert.Equal(t, tc.want, RGB(tc.r, tc.g, tc.b))
	}
}

func TestHex(t *testing.T) {
	c, err := Hex("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, Color{255, 128, 0}, c)

	c, err = Hex("00ff00")
	require.NoError(t, err)
	assert.Equal(t, Green, c)

	_, err = Hex("#F80")
	assert.Error(t, err)
	_, err = Hex("zzzzzz")
	assert.Error(t, err)
}

func TestWithAlpha(t *testing.T) {
	c := Color{200, 100, 50}
	assert.Equal(t, Color{100, 50, 25}, c.WithAlpha(0.5))
	assert.Equal(t, c, c.WithAlpha(1))
	assert.Equal(t, Black, c.WithAlpha(0))
	assert.Equal(t, c, c.WithAlpha(2))
	assert.Equal(t, Black, c.WithAlpha(-1))
}

func TestRegionContainsHalfOpen(t *testing.T) {
	r := Region{X: 2, Y: 3, Width: 4, Height: 5}

	assert.True(t, r.Contains(Position{2, 3}))
	assert.True(t, r.Contains(Position{5, 7}))
	assert.False(t, r.Contains(Position{6, 3}), "x == X+Width is outside")
	assert.False(t, r.Contains(Position{2, 8}), "y == Y+Height is outside")
	assert.False(t, r.Contains(Position{1, 3}))
	assert.False(t, r.Contains(Position{2, 2}))
}

func TestRegionClip(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 10, Height: 10}

	p, ok := r.Clip(Position{5, 5})
	assert.True(t, ok)
	assert.Equal(t, Position{5, 5}, p)

	_, ok = r.Clip(Position{10, 5})
	assert.False(t, ok)
}

func TestPositionArithmetic(t *testing.T) {
	a := Position{3, 4}
	b := Position{1, 2}
	assert.Equal(t, Position{4, 6}, a.Add(b))
	assert.Equal(t, Position{2, 2}, a.Sub(b))
	assert.Equal(t, Position{9, 12}, a.Scale(3))
}
