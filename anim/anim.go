// Package anim drives component animations on their own cadence. The ticker
// advances every registered animator at a fixed rate (30 Hz by default),
// independent of how often the compositor flushes pixels; the dirty flag
// bridges the two, since an animating component always reports dirty.
package anim

import (
	"sync"
	"time"

	"ledboard/lifecycle"
)

// Animator is the tick surface of an animated component.
type Animator interface {
	Advance()
	IsAnimating() bool
}

const DefaultInterval = time.Second / 30

type Ticker struct {
	mu        sync.Mutex
	animators []Animator
	interval  time.Duration
}

func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Ticker{interval: interval}
}

func (t *Ticker) Add(a Animator) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, existing := range t.animators {
		if existing == a {
			return
		}
	}
	t.animators = append(t.animators, a)
}

func (t *Ticker) Remove(a Animator) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, existing := range t.animators {
		if existing == a {
			t.animators = append(t.animators[:i], t.animators[i+1:]...)
			return
		}
	}
}

// Tick advances every animating registrant once. Exposed so cooperative
// schedulers (and tests) can drive the clock themselves.
func (t *Ticker) Tick() {
	t.mu.Lock()
	animators := make([]Animator, len(t.animators))
	copy(animators, t.animators)
	t.mu.Unlock()

	for _, a := range animators {
		if a.IsAnimating() {
			a.Advance()
		}
	}
}

// Run ticks until the lifecycle stops. Start it with lifecycle.Go so
// shutdown waits for it.
func (t *Ticker) Run(lc *lifecycle.Lifecycle) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-lc.Stopping():
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}
