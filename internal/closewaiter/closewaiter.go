// Package closewaiter guards the race between submitting work and shutting a
// component down: submissions that begin before Close wins are allowed to
// finish, submissions that arrive after are refused, and the close action
// runs exactly once, after the last in-flight submission has left.
package closewaiter

import (
	"errors"
	"runtime"
	"sync/atomic"
)

// ErrClosed is reported by Do once Close has been called.
var ErrClosed = errors.New("closed")

type CloseWaiter struct {
	closed   atomic.Bool
	inFlight atomic.Int32

	done chan struct{}
}

func New() *CloseWaiter {
	return &CloseWaiter{
		done: make(chan struct{}),
	}
}

// Do runs fn unless Close has already been called. The in-flight count is
// raised before the closed check so that Close can never observe zero while
// an admitted fn is still running.
func (w *CloseWaiter) Do(fn func()) error {
	w.inFlight.Add(1)
	defer w.inFlight.Add(-1)

	if w.closed.Load() {
		return ErrClosed
	}

	fn()
	return nil
}

// Close marks the waiter closed, waits for every admitted Do to return, then
// runs fn once. Concurrent and repeated Close calls all block until fn has
// completed.
func (w *CloseWaiter) Close(fn func()) {
	if w.closed.CompareAndSwap(false, true) {
		go func() {
			// Yield until the in-flight count drains; admitted calls are
			// short (a channel send), so spinning stays brief.
			for w.inFlight.Load() != 0 {
				runtime.Gosched()
			}

			fn()
			close(w.done)
		}()
	}

	<-w.done
}
