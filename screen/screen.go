// Package screen composites components onto a canvas. A Screen owns the
// canvas, an optional layout, and any standalone components; Render flushes
// either everything or only what changed since the last pass, then swaps
// buffers.
package screen

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"ledboard/canvas"
	"ledboard/component"
	"ledboard/layout"
)

type Screen struct {
	mu         sync.Mutex
	canvas     canvas.Canvas
	layout     *layout.Layout
	standalone map[string]component.Component
	order      []string // standalone insertion order
	clearColor canvas.Color
	fullRedraw bool
	// Double-buffer damage tracking: whatever one pass draws must be drawn
	// again on the next pass so both buffers converge, otherwise a clean
	// region would show the frame from two swaps ago.
	replay   map[component.Component]bool
	syncFull bool
	log      zerolog.Logger
}

func New(c canvas.Canvas) *Screen {
	return &Screen{
		canvas:     c,
		standalone: map[string]component.Component{},
		fullRedraw: true,
		replay:     map[component.Component]bool{},
		log:        zerolog.Nop(),
	}
}

func (s *Screen) SetLogger(log zerolog.Logger) {
	s.mu.Lock()
	s.log = log
	s.mu.Unlock()
}

// Canvas returns the buffer currently being drawn into.
func (s *Screen) Canvas() canvas.Canvas {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas
}

func (s *Screen) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas.Size()
}

// CreateLayout installs a layout covering the whole canvas, with a "full"
// region predefined. Calling it again replaces the previous layout and
// drops its component bindings.
func (s *Screen) CreateLayout() *layout.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	width, height := s.canvas.Size()
	l := layout.New(width, height)
	// Covers the whole display, so it cannot fail validation.
	_ = l.DefineRegion("full", canvas.Region{Width: width, Height: height})
	s.layout = l
	s.fullRedraw = true
	return l
}

func (s *Screen) Layout() *layout.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout
}

// AddComponent registers a component under name. With a region name the
// component is bound to that layout region; without one it keeps its own
// region, which must fit the display. Either way the next render repaints
// everything.
func (s *Screen) AddComponent(name string, c component.Component, regionName ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(regionName) > 0 && regionName[0] != "" {
		if s.layout == nil {
			return fmt.Errorf("component %q: no layout to bind region %q", name, regionName[0])
		}
		if err := s.layout.AddComponent(name, c, regionName[0]); err != nil {
			return fmt.Errorf("component %q: %w", name, err)
		}
		s.fullRedraw = true
		return nil
	}

	width, height := s.canvas.Size()
	r := c.Region()
	if r.X < 0 || r.Y < 0 || r.Right() > width || r.Bottom() > height {
		return fmt.Errorf("component %q region %+v exceeds %dx%d display", name, r, width, height)
	}
	if _, exists := s.standalone[name]; !exists {
		s.order = append(s.order, name)
	}
	s.standalone[name] = c
	s.fullRedraw = true
	return nil
}

func (s *Screen) Component(name string) component.Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.standalone[name]; ok {
		return c
	}
	if s.layout != nil {
		return s.layout.Component(name)
	}
	return nil
}

// RemoveComponent drops the named component; the next render repaints
// everything so its pixels disappear.
func (s *Screen) RemoveComponent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.standalone[name]; ok {
		delete(s.standalone, name)
		for i, n := range s.order {
			if n == name {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		s.fullRedraw = true
		return
	}
	if s.layout != nil && s.layout.Component(name) != nil {
		s.layout.RemoveComponent(name)
		s.fullRedraw = true
	}
}

// Components returns every managed component, layout-bound first, each at
// most once even when registered under several names.
func (s *Screen) Components() []component.Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.componentsLocked()
}

func (s *Screen) componentsLocked() []component.Component {
	var out []component.Component
	seen := map[component.Component]bool{}
	if s.layout != nil {
		for _, c := range s.layout.Components() {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	for _, name := range s.order {
		c := s.standalone[name]
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

func (s *Screen) MarkAllDirty() {
	s.mu.Lock()
	comps := s.componentsLocked()
	s.fullRedraw = true
	s.mu.Unlock()
	for _, c := range comps {
		c.MarkDirty()
	}
}

// Clear sets the backdrop color and schedules a full repaint.
func (s *Screen) Clear(c canvas.Color) {
	s.mu.Lock()
	s.clearColor = c
	s.fullRedraw = true
	s.mu.Unlock()
}

// Render flushes components to the canvas and swaps buffers. With clear set
// (or a pending structural change) the backdrop is repainted and every
// visible component drawn; otherwise only dirty components are. A panicking
// component is logged and skipped; the first failure is returned after the
// pass completes.
func (s *Screen) Render(clear bool) error {
	s.mu.Lock()
	fresh := clear || s.fullRedraw
	full := fresh || s.syncFull
	s.syncFull = fresh
	s.fullRedraw = false
	replay := s.replay
	s.replay = map[component.Component]bool{}
	comps := s.componentsLocked()
	cv := s.canvas
	clearColor := s.clearColor
	s.mu.Unlock()

	width, height := cv.Size()
	if full {
		cv.Fill(canvas.Region{Width: width, Height: height}, clearColor)
	}

	var firstErr error
	nextReplay := map[component.Component]bool{}
	for _, c := range comps {
		dirty := c.IsDirty()
		if !full && !dirty && !replay[c] {
			continue
		}
		if dirty {
			nextReplay[c] = true
		}
		if !c.Visible() {
			// A freshly hidden component leaves stale pixels behind on a
			// dirty-only pass; paint them over with the backdrop.
			if !full {
				cv.Fill(c.Region(), clearColor)
			}
			c.MarkClean()
			continue
		}
		if err := renderComponent(c, cv); err != nil {
			s.log.Error().Err(err).Msg("component render failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		c.MarkClean()
	}

	s.mu.Lock()
	s.canvas = cv.Swap()
	for c := range nextReplay {
		s.replay[c] = true
	}
	s.mu.Unlock()
	return firstErr
}

// Update is a dirty-only Render.
func (s *Screen) Update() error {
	return s.Render(false)
}

func renderComponent(c component.Component, cv canvas.Canvas) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render panic: %v", r)
		}
	}()
	c.Render(cv)
	return nil
}
