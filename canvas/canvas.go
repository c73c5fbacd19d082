package canvas

// Canvas is the drawing surface the compositor renders into. Implementations
// are double-buffered: SetPixel writes to the back buffer and Swap makes it
// visible, returning the canvas to draw the next frame on.
type Canvas interface {
	SetPixel(x, y int, c Color)
	Fill(r Region, c Color)
	Size() (width, height int)
	Swap() Canvas
}

// Font provides glyph metrics and bitmaps. Font loading itself happens
// elsewhere; components only consume this surface.
type Font interface {
	CharWidth(r rune) int
	Height() int
	Baseline() int
	GlyphMask(text string) ([][]bool, error)
}

// IconRune is the reserved glyph slot for the crowding gauge icon.
// Board fonts carry a person silhouette here.
const IconRune = '\u0002'
