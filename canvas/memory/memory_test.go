package memory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ledboard/canvas"
)

func TestSetPixelAndSwap(t *testing.T) {
	c := New(4, 4)
	c.SetPixel(1, 2, canvas.Red)

	// Not visible until swapped.
	assert.Equal(t, canvas.Black, c.At(1, 2))
	c.Swap()
	assert.Equal(t, canvas.Red, c.At(1, 2))

	// The new back buffer is the frame from two swaps ago, not a copy of
	// the front.
	assert.Equal(t, canvas.Black, c.BackAt(1, 2))
}

func TestOutOfBoundsIgnored(t *testing.T) {
	c := New(2, 2)
	c.SetPixel(-1, 0, canvas.Red)
	c.SetPixel(2, 0, canvas.Red)
	c.SetPixel(0, 2, canvas.Red)
	assert.Equal(t, 0, c.Writes())
}

func TestFillAndWriteCount(t *testing.T) {
	c := New(3, 3)
	c.Fill(canvas.Region{X: 0, Y: 0, Width: 3, Height: 3}, canvas.Blue)
	assert.Equal(t, 9, c.Writes())

	c.ResetWrites()
	c.Fill(canvas.Region{X: 1, Y: 1, Width: 2, Height: 2}, canvas.Green)
	assert.Equal(t, 4, c.Writes())
}

func TestDump(t *testing.T) {
	c := New(4, 4)
	c.Fill(canvas.Region{X: 0, Y: 0, Width: 4, Height: 4}, canvas.White)
	c.Swap()

	var sb strings.Builder
	assert.NoError(t, c.Dump(&sb, "test"))
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	// header + 2 pixel rows + footer
	assert.Len(t, lines, 4)
}
