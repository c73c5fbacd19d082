package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledboard/canvas"
)

func TestBasicMetrics(t *testing.T) {
	f := Basic()
	assert.Equal(t, 13, f.Height())
	assert.Equal(t, 11, f.Baseline())
	assert.Equal(t, 7, f.CharWidth('A'))
}

func TestGlyphMaskDimensions(t *testing.T) {
	f := Basic()
	mask, err := f.GlyphMask("Hi")
	require.NoError(t, err)
	require.Len(t, mask, f.Height())
	assert.Len(t, mask[0], f.CharWidth('H')+f.CharWidth('i'))

	set := 0
	for _, row := range mask {
		for _, on := range row {
			if on {
				set++
			}
		}
	}
	assert.Greater(t, set, 0, "rendered text should set pixels")
}

func TestIconGlyph(t *testing.T) {
	f := Basic()
	assert.Equal(t, 6, f.CharWidth(canvas.IconRune))

	mask, err := f.GlyphMask(string(canvas.IconRune))
	require.NoError(t, err)

	// Bottom glyph row sits on the baseline.
	set := false
	for _, on := range mask[f.Baseline()-1] {
		set = set || on
	}
	assert.True(t, set)
}

func TestUnknownRuneSubstituted(t *testing.T) {
	f := Basic()
	// Face7x13 has no glyph outside its ranges; width falls back to '?'.
	assert.Equal(t, f.CharWidth('?'), f.CharWidth('ア'))

	_, err := f.GlyphMask("aアb")
	assert.NoError(t, err)
}
