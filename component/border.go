package component

import (
	"github.com/lucasb-eyer/go-colorful"

	"ledboard/canvas"
)

// Border paints rotating rainbow dashes along its region's perimeter. It is
// always dirty while visible: dash positions and hues move every frame, so
// the compositor must repaint it on every pass.
type Border struct {
	Base
	numDashes  int
	dashLength int
	dashGap    int
	speed      float64
	frame      int
	perimeter  []canvas.Position
}

func NewBorder(region canvas.Region, numDashes, dashLength int, speed float64) *Border {
	b := &Border{
		Base:       newBase(region),
		numDashes:  numDashes,
		dashLength: dashLength,
		dashGap:    2,
		speed:      speed,
	}
	b.perimeter = perimeterPositions(region)
	return b
}

// perimeterPositions traces the region border clockwise: top left→right,
// right top→bottom, bottom right→left, left bottom→top. Corners appear
// exactly once.
func perimeterPositions(r canvas.Region) []canvas.Position {
	var positions []canvas.Position
	for i := 0; i < r.Width; i++ {
		positions = append(positions, canvas.Position{X: r.X + i, Y: r.Y})
	}
	for i := 1; i < r.Height; i++ {
		positions = append(positions, canvas.Position{X: r.Right() - 1, Y: r.Y + i})
	}
	for i := r.Width - 2; i >= 0; i-- {
		positions = append(positions, canvas.Position{X: r.X + i, Y: r.Bottom() - 1})
	}
	for i := r.Height - 2; i >= 1; i-- {
		positions = append(positions, canvas.Position{X: r.X, Y: r.Y + i})
	}
	return positions
}

// IsDirty always reports true: the animation owes a redraw every tick.
func (b *Border) IsDirty() bool {
	return true
}

func (b *Border) SetRegion(r canvas.Region) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.region != r {
		b.region = r
		b.perimeter = perimeterPositions(r)
		b.dirty = true
	}
}

func (b *Border) SetNumDashes(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.numDashes != n {
		b.numDashes = n
		b.dirty = true
	}
}

func (b *Border) SetDashLength(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dashLength != n {
		b.dashLength = n
		b.dirty = true
	}
}

func (b *Border) SetDashGap(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dashGap != n {
		b.dashGap = n
		b.dirty = true
	}
}

func (b *Border) SetSpeed(speed float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.speed != speed {
		b.speed = speed
		b.dirty = true
	}
}

func (b *Border) ResetAnimation() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frame = 0
	b.dirty = true
}

// Render advances the frame counter, clears the whole perimeter, then draws
// the dashes at their new offset. The full clear is required because dashes
// moved since the previous frame.
func (b *Border) Render(c canvas.Canvas) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.visible {
		return
	}
	put := canvasPut(c)
	b.drawBackground(put)
	if len(b.perimeter) == 0 {
		return
	}
	for _, p := range b.perimeter {
		put(p.X, p.Y, canvas.Black)
	}
	b.frame++
	b.drawDashes(put)
}

// Pixels snapshots the dash pixels at the current frame without advancing
// the animation.
func (b *Border) Pixels() []Pixel {
	b.mu.Lock()
	defer b.mu.Unlock()
	var pixels []Pixel
	if !b.visible || len(b.perimeter) == 0 {
		return pixels
	}
	b.drawDashes(collectPut(&pixels))
	return pixels
}

func (b *Border) drawDashes(put putFunc) {
	perimeter := len(b.perimeter)
	offset := mod(float64(b.frame)*b.speed, float64(perimeter))
	gradientOffset := float64(b.frame) * b.speed / float64(perimeter)

	for dash := 0; dash < b.numDashes; dash++ {
		start := (int(offset) + dash*(perimeter/b.numDashes)) % perimeter
		for i := 0; i < b.dashLength; i++ {
			pos := b.perimeter[(start+i)%perimeter]
			hue := float64(dash)/float64(b.numDashes) +
				float64(i)/float64(b.dashLength*b.numDashes) +
				gradientOffset
			put(pos.X, pos.Y, rainbow(mod(hue, 1)))
		}
	}
}

// rainbow maps a [0,1) position onto a fully saturated HSV sweep.
func rainbow(pos float64) canvas.Color {
	r, g, b := colorful.Hsv(pos*360, 1, 1).RGB255()
	return canvas.Color{R: r, G: g, B: b}
}

func mod(v, m float64) float64 {
	v = v - float64(int(v/m))*m
	if v < 0 {
		v += m
	}
	return v
}
