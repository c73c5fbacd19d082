package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledboard/canvas"
	"ledboard/font"
)

func TestCrowdingClampsValue(t *testing.T) {
	c := NewCrowding(canvas.Region{X: 0, Y: 0, Width: 40, Height: 13}, font.Basic())

	c.SetValue(9)
	assert.Equal(t, 5, c.Value())
	c.SetValue(-3)
	assert.Equal(t, 0, c.Value())
}

func TestCrowdingIdempotentSetValue(t *testing.T) {
	c := NewCrowding(canvas.Region{X: 0, Y: 0, Width: 40, Height: 13}, font.Basic())
	c.SetValue(3)
	c.MarkClean()

	c.SetValue(3)
	assert.False(t, c.IsDirty())
	c.SetValue(8) // clamps to 5, a real change
	assert.True(t, c.IsDirty())
}

func TestCrowdingLevelThreeColoring(t *testing.T) {
	c := NewCrowding(canvas.Region{X: 0, Y: 0, Width: 40, Height: 13}, font.Basic())
	c.SetValue(3)

	level3 := DefaultLevelColors[3]
	inactive := canvas.Color{R: 50, G: 50, B: 50}

	var activeXs, inactiveXs []int
	for _, p := range nonBlack(c.Pixels()) {
		switch p.Color {
		case level3:
			activeXs = append(activeXs, p.X)
		case inactive:
			inactiveXs = append(inactiveXs, p.X)
		default:
			t.Fatalf("unexpected color %v", p.Color)
		}
	}
	require.NotEmpty(t, activeXs)
	require.NotEmpty(t, inactiveXs)

	// Icons 1–3 light up, 4–5 stay dim: every active pixel sits left of
	// every inactive pixel.
	maxActive, minInactive := activeXs[0], inactiveXs[0]
	for _, x := range activeXs {
		maxActive = max(maxActive, x)
	}
	for _, x := range inactiveXs {
		minInactive = min(minInactive, x)
	}
	assert.Less(t, maxActive, minInactive)
}

func TestCrowdingZeroValueAllInactive(t *testing.T) {
	c := NewCrowding(canvas.Region{X: 0, Y: 0, Width: 40, Height: 13}, font.Basic())

	inactive := canvas.Color{R: 50, G: 50, B: 50}
	pixels := nonBlack(c.Pixels())
	require.NotEmpty(t, pixels)
	for _, p := range pixels {
		assert.Equal(t, inactive, p.Color)
	}
}

func TestCrowdingMissingFont(t *testing.T) {
	c := NewCrowding(canvas.Region{X: 0, Y: 0, Width: 40, Height: 13}, nil)
	c.SetValue(3)
	assert.Empty(t, nonBlack(c.Pixels()), "no font → only the clear")
}
