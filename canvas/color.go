package canvas

import "fmt"

// Color is an 8-bit RGB value. Construct with RGB to get channel clamping.
type Color struct {
	R, G, B uint8
}

var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
)

// RGB builds a color, saturating each channel into [0, 255]. Out-of-range
// input is clamped rather than rejected.
func RGB(r, g, b int) Color {
	return Color{clamp8(r), clamp8(g), clamp8(b)}
}

// FromTuple builds a color from an [r, g, b] triple, clamping like RGB.
func FromTuple(t [3]int) Color {
	return RGB(t[0], t[1], t[2])
}

// Hex parses "#RRGGBB" or "RRGGBB".
func Hex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{r, g, b}, nil
}

// WithAlpha scales every channel by a, clamped into [0, 1]. Used by text
// animations to fade against a black clear.
func (c Color) WithAlpha(a float64) Color {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return Color{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
	}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
