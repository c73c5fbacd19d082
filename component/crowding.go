package component

import (
	"ledboard/canvas"
)

// DefaultLevelColors maps crowding levels to a green→red sweep. Every
// active icon takes the color of the current level.
var DefaultLevelColors = map[int]canvas.Color{
	1: {R: 0, G: 200, B: 0},
	2: {R: 150, G: 200, B: 0},
	3: {R: 255, G: 200, B: 0},
	4: {R: 255, G: 100, B: 0},
	5: {R: 255, G: 0, B: 0},
}

const crowdingIcons = 5

// Crowding is a fixed five-icon gauge. Icon i lights in the active color
// when i ≤ value; the rest use the inactive color. Value is clamped to
// [0, 5] on every write.
type Crowding struct {
	Base
	font          canvas.Font
	value         int
	levelColors   map[int]canvas.Color
	inactiveColor canvas.Color
	spacing       int
	align         Align
}

func NewCrowding(region canvas.Region, f canvas.Font) *Crowding {
	colors := make(map[int]canvas.Color, len(DefaultLevelColors))
	for k, v := range DefaultLevelColors {
		colors[k] = v
	}
	return &Crowding{
		Base:          newBase(region),
		font:          f,
		levelColors:   colors,
		inactiveColor: canvas.Color{R: 50, G: 50, B: 50},
		spacing:       1,
		align:         AlignCenter,
	}
}

func (c *Crowding) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Crowding) SetValue(v int) {
	v = max(0, min(crowdingIcons, v))
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.value != v {
		c.value = v
		c.dirty = true
	}
}

func (c *Crowding) SetLevelColor(level int, col canvas.Color) {
	if level < 1 || level > crowdingIcons {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.levelColors[level] != col {
		c.levelColors[level] = col
		c.dirty = true
	}
}

func (c *Crowding) SetInactiveColor(col canvas.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inactiveColor != col {
		c.inactiveColor = col
		c.dirty = true
	}
}

func (c *Crowding) SetSpacing(spacing int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.spacing != spacing {
		c.spacing = spacing
		c.dirty = true
	}
}

func (c *Crowding) SetAlign(a Align) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.align != a {
		c.align = a
		c.dirty = true
	}
}

func (c *Crowding) Render(cv canvas.Canvas) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.visible {
		return
	}
	c.draw(canvasPut(cv))
}

func (c *Crowding) Pixels() []Pixel {
	c.mu.Lock()
	defer c.mu.Unlock()
	var pixels []Pixel
	if !c.visible {
		return pixels
	}
	c.draw(collectPut(&pixels))
	return pixels
}

func (c *Crowding) draw(put putFunc) {
	c.clearRegion(put)
	if c.font == nil {
		return
	}

	iconWidth := c.font.CharWidth(canvas.IconRune)
	totalWidth := iconWidth*crowdingIcons + c.spacing*(crowdingIcons-1)

	x := c.region.X
	switch c.align {
	case AlignCenter:
		x = c.region.X + (c.region.Width-totalWidth)/2
	case AlignRight:
		x = c.region.X + c.region.Width - totalWidth
	}
	y := c.region.Y + (c.region.Height-c.font.Height())/2 + c.font.Baseline()

	mask, err := c.font.GlyphMask(string(canvas.IconRune))
	active := c.activeColor()
	for i := 0; i < crowdingIcons; i++ {
		col := c.inactiveColor
		if i+1 <= c.value {
			col = active
		}
		iconX := x + i*(iconWidth+c.spacing)
		if err != nil {
			c.drawIconFallback(put, iconX, y, iconWidth, col)
			continue
		}
		c.drawIcon(put, mask, iconX, y, col)
	}
}

func (c *Crowding) activeColor() canvas.Color {
	if c.value == 0 {
		return c.inactiveColor
	}
	if col, ok := c.levelColors[c.value]; ok {
		return col
	}
	return canvas.Color{R: 255, G: 200, B: 0}
}

func (c *Crowding) drawIcon(put putFunc, mask [][]bool, x, baselineY int, col canvas.Color) {
	top := baselineY - c.font.Baseline()
	for my, row := range mask {
		py := top + my
		for mx, on := range row {
			if !on {
				continue
			}
			px := x + mx
			if c.region.Contains(canvas.Position{X: px, Y: py}) {
				put(px, py, col)
			}
		}
	}
}

func (c *Crowding) drawIconFallback(put putFunc, x, baselineY, width int, col canvas.Color) {
	top := baselineY - c.font.Baseline()
	for dy := 0; dy < c.font.Height(); dy++ {
		for dx := 0; dx < width-1; dx++ {
			put(x+dx, top+dy, col)
		}
	}
}
