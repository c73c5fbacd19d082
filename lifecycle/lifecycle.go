// Package lifecycle tracks the background goroutines of a board session so
// shutdown waits for all of them.
package lifecycle

import (
	"context"
	"sync"
)

type Lifecycle struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New() *Lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return &Lifecycle{ctx: ctx, cancel: cancel}
}

func (lc *Lifecycle) Started() {
	lc.wg.Add(1)
}

func (lc *Lifecycle) Done() {
	lc.wg.Done()
}

// Go runs fn on its own goroutine with Started/Done accounting.
func (lc *Lifecycle) Go(fn func()) {
	lc.Started()
	go func() {
		defer lc.Done()
		fn()
	}()
}

func (lc *Lifecycle) ShouldStop() bool {
	select {
	case <-lc.ctx.Done():
		return true
	default:
		return false
	}
}

// Stopping is closed when Stop is called; select on it next to tickers.
func (lc *Lifecycle) Stopping() <-chan struct{} {
	return lc.ctx.Done()
}

// Stop cancels the session and blocks until every started goroutine calls
// Done.
func (lc *Lifecycle) Stop() {
	lc.cancel()
	lc.wg.Wait()
}
