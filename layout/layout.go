// Package layout maps names to display regions and the components bound to
// them. Regions are defined directly or produced by splitting an existing
// region into fixed and flexible segments.
package layout

import (
	"fmt"

	"ledboard/canvas"
	"ledboard/component"
)

type Layout struct {
	width, height int
	regions       map[string]canvas.Region
	components    map[string]component.Component
	order         []string // component insertion order, for stable render passes
}

func New(width, height int) *Layout {
	return &Layout{
		width:      width,
		height:     height,
		regions:    map[string]canvas.Region{},
		components: map[string]component.Component{},
	}
}

func (l *Layout) Width() int  { return l.width }
func (l *Layout) Height() int { return l.height }

// DefineRegion registers a named region. Regions outside the layout bounds
// are rejected outright, never clipped.
func (l *Layout) DefineRegion(name string, r canvas.Region) error {
	if r.X < 0 || r.Y < 0 {
		return fmt.Errorf("region %q has negative origin", name)
	}
	if r.Right() > l.width {
		return fmt.Errorf("region %q extends beyond layout width %d", name, l.width)
	}
	if r.Bottom() > l.height {
		return fmt.Errorf("region %q extends beyond layout height %d", name, l.height)
	}
	l.regions[name] = r
	return nil
}

func (l *Layout) Region(name string) (canvas.Region, bool) {
	r, ok := l.regions[name]
	return r, ok
}

// SplitHorizontal cuts a region into adjacent sub-regions named
// "{name}_{i}". Positive sizes are fixed widths; negative sizes share the
// remaining width equally (integer division — leftover pixels from the
// division are dropped, not redistributed).
func (l *Layout) SplitHorizontal(name string, sizes ...int) ([]string, error) {
	region, ok := l.regions[name]
	if !ok {
		return nil, fmt.Errorf("region %q not found", name)
	}
	widths := splitSizes(region.Width, sizes)

	names := make([]string, 0, len(sizes))
	x := region.X
	for i, w := range widths {
		sub := fmt.Sprintf("%s_%d", name, i)
		if err := l.DefineRegion(sub, canvas.Region{X: x, Y: region.Y, Width: w, Height: region.Height}); err != nil {
			return nil, err
		}
		names = append(names, sub)
		x += w
	}
	return names, nil
}

// SplitVertical is SplitHorizontal along the other axis.
func (l *Layout) SplitVertical(name string, sizes ...int) ([]string, error) {
	region, ok := l.regions[name]
	if !ok {
		return nil, fmt.Errorf("region %q not found", name)
	}
	heights := splitSizes(region.Height, sizes)

	names := make([]string, 0, len(sizes))
	y := region.Y
	for i, h := range heights {
		sub := fmt.Sprintf("%s_%d", name, i)
		if err := l.DefineRegion(sub, canvas.Region{X: region.X, Y: y, Width: region.Width, Height: h}); err != nil {
			return nil, err
		}
		names = append(names, sub)
		y += h
	}
	return names, nil
}

func splitSizes(total int, sizes []int) []int {
	fixed, flexCount := 0, 0
	for _, s := range sizes {
		if s > 0 {
			fixed += s
		} else {
			flexCount++
		}
	}
	flexSize := 0
	if flexCount > 0 {
		flexSize = (total - fixed) / flexCount
	}
	out := make([]int, len(sizes))
	for i, s := range sizes {
		if s > 0 {
			out[i] = s
		} else {
			out[i] = flexSize
		}
	}
	return out
}

// AddComponent stores a component under name, rebinding its region to the
// named layout region.
func (l *Layout) AddComponent(name string, c component.Component, regionName string) error {
	region, ok := l.regions[regionName]
	if !ok {
		return fmt.Errorf("region %q not found", regionName)
	}
	c.SetRegion(region)
	if _, exists := l.components[name]; !exists {
		l.order = append(l.order, name)
	}
	l.components[name] = c
	return nil
}

func (l *Layout) Component(name string) component.Component {
	return l.components[name]
}

func (l *Layout) RemoveComponent(name string) {
	if _, ok := l.components[name]; !ok {
		return
	}
	delete(l.components, name)
	for i, n := range l.order {
		if n == name {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Components returns the bound components in insertion order.
func (l *Layout) Components() []component.Component {
	out := make([]component.Component, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.components[name])
	}
	return out
}

// ComponentNames returns the registered names in insertion order.
func (l *Layout) ComponentNames() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}
