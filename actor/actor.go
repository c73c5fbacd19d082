// Package actor provides a minimal mailbox: messages from any goroutine are
// handled one at a time by a single owner goroutine. The board uses it to
// serialize component mutation against the render loop without exposing
// locks to callers.
package actor

import "sync"

type Actor[T any] interface {
	Send(message T)
}

// Handler processes one message; returning false stops the actor.
type Handler[T any] func(T) bool

func New[T any](handler Handler[T]) Actor[T] {
	a := &actor[T]{
		handler: handler,
		wake:    make(chan struct{}, 1),
	}
	go a.run()
	return a
}

type actor[T any] struct {
	mu      sync.Mutex
	pending []T
	wake    chan struct{}
	handler Handler[T]
}

func (a *actor[T]) Send(msg T) {
	a.mu.Lock()
	a.pending = append(a.pending, msg)
	a.mu.Unlock()
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

func (a *actor[T]) run() {
	for {
		a.mu.Lock()
		batch := a.pending
		a.pending = nil
		a.mu.Unlock()

		for _, msg := range batch {
			if !a.handler(msg) {
				return
			}
		}
		<-a.wake
	}
}
