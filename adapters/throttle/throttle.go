// Package throttle admits submitted items through a token-bucket rate limit
// and runs each one as a Task, so rate-limited calls (typically outbound
// API requests) compose with the rest of the Task algebra. Admission
// failures settle the returned Task as Err.
package throttle

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/realpha/eitherway/internal/closewaiter"
	"github.com/realpha/eitherway/internal/pending"
	"github.com/realpha/eitherway/tasks"
)

// RunFunc executes one admitted item. It runs in its own goroutine once the
// limiter grants a token, so slow items do not delay later admissions.
type RunFunc[T any, R any] func(ctx context.Context, item T) (R, error)

// Throttle serializes limiter admission while fanning execution out.
type Throttle[T any, R any] struct {
	limiter *rate.Limiter
	queue   chan pending.Handle[T, R]
	submit  pending.SubmitFunc[T, R]
	run     RunFunc[T, R]

	guard *closewaiter.CloseWaiter
	done  chan struct{}
}

// New validates opts (panicking on nonsensical configuration) and starts the
// admission worker immediately.
func New[T any, R any](opts Opts, run RunFunc[T, R]) *Throttle[T, R] {
	opts.validate()

	th := &Throttle[T, R]{
		limiter: rate.NewLimiter(opts.Limit, opts.Burst),
		queue:   make(chan pending.Handle[T, R], opts.MaxQueueDepth),
		submit:  pending.SubmitterFor[T, R](pending.FullQueueStrategy(opts.FullQueueStrategy)),
		run:     run,
		guard:   closewaiter.New(),
		done:    make(chan struct{}),
	}

	go th.admit()

	return th
}

func (th *Throttle[T, R]) admit() {
	defer close(th.done)

	for h := range th.queue {
		if err := th.limiter.Wait(h.Ctx); err != nil {
			h.Done.Fail(err)
			continue
		}

		go func(h pending.Handle[T, R]) {
			r, err := th.run(h.Ctx, h.Item)
			if err != nil {
				h.Done.Fail(err)
				return
			}
			h.Done.Succeed(r)
		}(h)
	}
}

// Submit queues an item for rate-limited execution and returns the Task
// carrying its eventual outcome. The Task settles Err(ErrClosed) after
// Close, Err(ErrQueueFull) when the full queue refuses admission and
// Err(ctx.Err()) when ctx ends while waiting for a token.
func (th *Throttle[T, R]) Submit(ctx context.Context, item T) *tasks.Task[R] {
	h := pending.NewHandle[T, R](ctx, item)

	err := th.guard.Do(func() {
		if serr := th.submit(th.queue, h); serr != nil {
			h.Done.Fail(serr)
		}
	})
	if err != nil {
		h.Done.Fail(ErrClosed)
	}

	return h.Done.Task()
}

// SubmitAwait is Submit followed by an Unwrap of the resulting Task.
func (th *Throttle[T, R]) SubmitAwait(ctx context.Context, item T) (R, error) {
	return th.Submit(ctx, item).Unwrap(ctx)
}

// Close stops admission and waits for the admission worker to drain the
// queue. Items already handed to run functions still settle their Tasks.
// Safe to call more than once.
func (th *Throttle[T, R]) Close() {
	th.guard.Close(func() {
		close(th.queue)
	})
	<-th.done
}
