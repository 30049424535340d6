// Package tasks provides Task[T], an asynchronous computation that always
// settles to a results.Result[T] and never surfaces a raw failure path for
// domain errors. A Task can be created and then passed around and awaited by
// multiple consumers; unlike a channel, every awaiter observes the same
// settled Result, and awaiting again after settlement always yields it again.
//
// Domain failures travel inside the Result. The only ways awaiting code can
// still observe a panic are a function lifted through From that panics
// (a broken "infallible" caller assertion, see package faults) and a
// side-effect callback passed to Tap or Inspect that panics itself. Neither
// is swallowed.
package tasks

import (
	"context"
	"sync/atomic"

	"github.com/realpha/eitherway/results"
)

// Task represents an asynchronous computation settling to a Result exactly
// once. A Task is created either pre-settled (Succeed, Fail, Of), driven by a
// function running in its own goroutine (From, FromFallible), or settled
// externally through a DeferredTask.
type Task[T any] struct {
	settled uint32
	done    chan struct{}

	result results.Result[T]
}

func newTask[T any]() *Task[T] {
	return &Task[T]{done: make(chan struct{})}
}

// settle stores the final Result. The first settlement wins and all later
// calls are silently ignored, regardless of polarity.
func (t *Task[T]) settle(r results.Result[T]) bool {
	if atomic.CompareAndSwapUint32(&t.settled, 0, 1) {
		t.result = r
		close(t.done)
		return true
	}
	return false
}

// wait blocks until settlement and returns the Result. Internal chaining uses
// wait rather than Await: a Task always runs to settlement, so combinator
// goroutines never abandon their parent.
func (t *Task[T]) wait() results.Result[T] {
	<-t.done
	return t.result
}

// Succeed returns a Task already settled to Ok(value).
func Succeed[T any](value T) *Task[T] {
	return Of(results.Ok(value))
}

// Fail returns a Task already settled to Err(err).
func Fail[T any](err error) *Task[T] {
	return Of(results.Err[T](err))
}

// Of wraps an existing Result into a settled Task.
func Of[T any](r results.Result[T]) *Task[T] {
	t := newTask[T]()
	t.settle(r)
	return t
}

// From runs fn in a new goroutine and settles the Task with its Result.
// fn is asserted to already encode every failure as Err: a panic inside fn is
// NOT recovered and brings the goroutine down, because a computation that was
// supposed to have encoded its failures but panicked instead is a broken
// invariant, not a domain failure. Use FromFallible for code that may panic.
func From[T any](fn func() results.Result[T]) *Task[T] {
	t := newTask[T]()

	go func() {
		t.settle(fn())
	}()

	return t
}

// FromFallible is the safe boundary between throwing code and the
// never-reject Task contract: fn runs in a new goroutine, and any non-nil
// error return or recovered panic is routed through errMap into Err. The
// returned Task always settles and awaiting it never panics.
func FromFallible[T any](fn func() (T, error), errMap func(error) error) *Task[T] {
	t := newTask[T]()

	go func() {
		t.settle(results.FromFallible(fn, errMap))
	}()

	return t
}

// LiftFallible composes fn with the same capture path as FromFallible,
// producing a reusable adapter from any external fallible function into the
// Task algebra.
func LiftFallible[A, T any](fn func(A) (T, error), errMap func(error) error) func(A) *Task[T] {
	return func(a A) *Task[T] {
		return FromFallible(func() (T, error) {
			return fn(a)
		}, errMap)
	}
}

// IsSettled reports whether the Task has already settled. It is a snapshot:
// a false answer may be stale by the time the caller acts on it.
func (t *Task[T]) IsSettled() bool {
	return atomic.LoadUint32(&t.settled) == 1
}

// Await blocks until the Task settles and returns its Result. The error is
// non-nil only when ctx is done first; the Task itself still runs to
// settlement and can be awaited again.
func (t *Task[T]) Await(ctx context.Context) (results.Result[T], error) {
	select {
	case <-t.done:
		return t.result, nil
	case <-ctx.Done():
		return results.Result[T]{}, ctx.Err()
	}
}

// Unwrap awaits the Task and exits the abstraction back to Go's
// (value, error) pair. The error is the domain failure for a settled Err, or
// the context error when the wait was abandoned.
func (t *Task[T]) Unwrap(ctx context.Context) (T, error) {
	r, err := t.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.Unwrap()
}

// UnwrapOr awaits the Task and returns the success payload, substituting
// fallback both for a settled Err and for an abandoned wait.
func (t *Task[T]) UnwrapOr(ctx context.Context, fallback T) T {
	r, err := t.Await(ctx)
	if err != nil {
		return fallback
	}
	return r.UnwrapOr(fallback)
}

// UnwrapOrElse awaits the Task and returns the success payload, computing the
// substitute from the domain or context error otherwise.
func (t *Task[T]) UnwrapOrElse(ctx context.Context, fn func(error) T) T {
	r, err := t.Await(ctx)
	if err != nil {
		return fn(err)
	}
	return r.UnwrapOrElse(fn)
}
