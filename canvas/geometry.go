package canvas

// Position is a pixel coordinate in absolute display space.
type Position struct {
	X, Y int
}

func (p Position) Add(q Position) Position {
	return Position{p.X + q.X, p.Y + q.Y}
}

func (p Position) Sub(q Position) Position {
	return Position{p.X - q.X, p.Y - q.Y}
}

func (p Position) Scale(k int) Position {
	return Position{p.X * k, p.Y * k}
}

// Region is an axis-aligned rectangle in absolute display coordinates.
type Region struct {
	X, Y, Width, Height int
}

// Contains reports whether p lies inside the region. The test is half-open:
// x+Width and y+Height are outside.
func (r Region) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Clip clamps p to the region bounds. The second result is false when p is
// outside the region entirely.
func (r Region) Clip(p Position) (Position, bool) {
	if !r.Contains(p) {
		return Position{}, false
	}
	clamped := Position{
		X: max(r.X, min(r.X+r.Width-1, p.X)),
		Y: max(r.Y, min(r.Y+r.Height-1, p.Y)),
	}
	return clamped, true
}

func (r Region) Right() int  { return r.X + r.Width }
func (r Region) Bottom() int { return r.Y + r.Height }
