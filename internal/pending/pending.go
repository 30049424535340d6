// Package pending couples a submitted work item with the deferred Task that
// will carry its outcome, plus the queue-admission strategies shared by the
// executor adapters.
package pending

import (
	"context"
	"errors"

	"github.com/realpha/eitherway/tasks"
)

// ErrQueueFull is reported when a submission is refused because the queue is
// at capacity and the adapter was configured not to block.
var ErrQueueFull = errors.New("submission queue is full")

// Handle is one queued submission: the item to run, the context it was
// submitted under and the settlement handle for its Task.
type Handle[T any, R any] struct {
	Ctx  context.Context
	Item T
	Done *tasks.DeferredTask[R]
}

func NewHandle[T any, R any](ctx context.Context, item T) Handle[T, R] {
	return Handle[T, R]{
		Ctx:  ctx,
		Item: item,
		Done: tasks.Deferred[R](),
	}
}

// FullQueueStrategy selects the admission behavior when the queue is full.
type FullQueueStrategy int

const (
	// BlockWhenFull exerts backpressure by blocking the submitter until
	// space frees up or its context is done.
	BlockWhenFull FullQueueStrategy = iota
	// ErrorWhenFull refuses immediately with ErrQueueFull.
	ErrorWhenFull
)

// SubmitFunc admits a handle into the queue, or reports why it could not.
type SubmitFunc[T any, R any] func(queue chan<- Handle[T, R], h Handle[T, R]) error

// SubmitterFor returns the SubmitFunc implementing the given strategy.
// An unknown strategy is a configuration bug and panics.
func SubmitterFor[T any, R any](s FullQueueStrategy) SubmitFunc[T, R] {
	switch s {
	case BlockWhenFull:
		return blockWhenFull[T, R]
	case ErrorWhenFull:
		return errorWhenFull[T, R]
	default:
		panic("pending: invalid full queue strategy")
	}
}

func blockWhenFull[T any, R any](queue chan<- Handle[T, R], h Handle[T, R]) error {
	select {
	case queue <- h:
		return nil
	case <-h.Ctx.Done():
		return h.Ctx.Err()
	}
}

func errorWhenFull[T any, R any](queue chan<- Handle[T, R], h Handle[T, R]) error {
	select {
	case queue <- h:
		return nil
	default:
		return ErrQueueFull
	}
}
