// Package pool runs submitted items on a fixed set of workers and hands each
// submission back as a Task, so callers compose pool results with the same
// combinators as any other asynchronous computation. Admission failures
// (full queue, closed pool, canceled submission context) settle the returned
// Task as Err rather than surfacing a second error channel.
package pool

import (
	"context"
	"errors"
	"sync"

	"github.com/realpha/eitherway/internal/closewaiter"
	"github.com/realpha/eitherway/internal/pending"
	"github.com/realpha/eitherway/tasks"
)

var (
	// ErrQueueFull settles a submission refused because the queue was at
	// capacity under the ErrorWhenFull strategy.
	ErrQueueFull = pending.ErrQueueFull
	// ErrClosed settles a submission that arrived after Close.
	ErrClosed = errors.New("worker pool has been closed")
)

// RunFunc executes one item. The context carries the worker id (see
// WorkerIDFromContext) and is the submitter's context, so long-running run
// functions should honor its cancellation.
type RunFunc[T any, R any] func(ctx context.Context, item T) (R, error)

// Pool distributes items across MaxWorkers goroutines.
type Pool[T any, R any] struct {
	run    RunFunc[T, R]
	queue  chan pending.Handle[T, R]
	submit pending.SubmitFunc[T, R]

	guard   *closewaiter.CloseWaiter
	workers sync.WaitGroup
}

// New validates opts (panicking on nonsensical configuration) and starts the
// workers immediately.
func New[T any, R any](opts Opts, run RunFunc[T, R]) *Pool[T, R] {
	opts.validate()

	p := &Pool[T, R]{
		run:    run,
		queue:  make(chan pending.Handle[T, R], opts.MaxQueueDepth),
		submit: pending.SubmitterFor[T, R](pending.FullQueueStrategy(opts.FullQueueStrategy)),
		guard:  closewaiter.New(),
	}

	for i := 0; i < opts.MaxWorkers; i++ {
		p.workers.Add(1)
		go p.worker(i)
	}

	return p
}

func (p *Pool[T, R]) worker(id int) {
	defer p.workers.Done()

	for h := range p.queue {
		if err := h.Ctx.Err(); err != nil {
			h.Done.Fail(err)
			continue
		}

		r, err := p.run(withWorkerID(h.Ctx, id), h.Item)
		if err != nil {
			h.Done.Fail(err)
			continue
		}
		h.Done.Succeed(r)
	}
}

// Submit queues an item and returns the Task carrying its eventual outcome.
// The Task settles Err(ErrClosed) after Close, Err(ErrQueueFull) when the
// full queue refuses admission, and Err(ctx.Err()) when ctx ends while
// waiting for admission.
func (p *Pool[T, R]) Submit(ctx context.Context, item T) *tasks.Task[R] {
	h := pending.NewHandle[T, R](ctx, item)

	err := p.guard.Do(func() {
		if serr := p.submit(p.queue, h); serr != nil {
			h.Done.Fail(serr)
		}
	})
	if err != nil {
		h.Done.Fail(ErrClosed)
	}

	return h.Done.Task()
}

// SubmitAwait is Submit followed by an Unwrap of the resulting Task.
func (p *Pool[T, R]) SubmitAwait(ctx context.Context, item T) (R, error) {
	return p.Submit(ctx, item).Unwrap(ctx)
}

// Close stops admission, lets queued items drain and waits for the workers
// to exit. Safe to call more than once.
func (p *Pool[T, R]) Close() {
	p.guard.Close(func() {
		close(p.queue)
	})
	p.workers.Wait()
}
