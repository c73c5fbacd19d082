package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ledboard/lifecycle"
)

type fakeAnimator struct {
	ticks  int
	active bool
}

func (f *fakeAnimator) Advance()          { f.ticks++ }
func (f *fakeAnimator) IsAnimating() bool { return f.active }

func TestTickAdvancesOnlyAnimating(t *testing.T) {
	ticker := NewTicker(DefaultInterval)
	running := &fakeAnimator{active: true}
	idle := &fakeAnimator{}
	ticker.Add(running)
	ticker.Add(idle)

	ticker.Tick()
	ticker.Tick()

	assert.Equal(t, 2, running.ticks)
	assert.Equal(t, 0, idle.ticks)
}

func TestAddIsIdempotent(t *testing.T) {
	ticker := NewTicker(DefaultInterval)
	a := &fakeAnimator{active: true}
	ticker.Add(a)
	ticker.Add(a)

	ticker.Tick()
	assert.Equal(t, 1, a.ticks)
}

func TestRemove(t *testing.T) {
	ticker := NewTicker(DefaultInterval)
	a := &fakeAnimator{active: true}
	ticker.Add(a)
	ticker.Remove(a)

	ticker.Tick()
	assert.Equal(t, 0, a.ticks)
}

func TestRunStopsWithLifecycle(t *testing.T) {
	ticker := NewTicker(time.Millisecond)
	a := &fakeAnimator{active: true}
	ticker.Add(a)

	lc := lifecycle.New()
	lc.Go(func() { ticker.Run(lc) })

	time.Sleep(20 * time.Millisecond)
	lc.Stop() // blocks until the run loop exits

	assert.Greater(t, a.ticks, 0)
}
