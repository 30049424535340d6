// Package batch groups individually submitted items into batches, executed
// either when a batch reaches its maximum size or when the oldest item has
// lingered long enough. Each submission gets its own Task back, settled with
// that item's slot of the batch outcome.
package batch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/realpha/eitherway/results"
	"github.com/realpha/eitherway/tasks"
)

var (
	// ErrResultMismatch settles every Task of a batch whose run function
	// returned a result count different from the item count.
	ErrResultMismatch = errors.New("batch run returned wrong number of results")
	// ErrClosed settles a submission that arrived after Close.
	ErrClosed = errors.New("batch executor has been closed")
)

// RunFunc executes one whole batch. A non-nil error fails every item; an
// individual item's failure belongs in its slot of the returned slice.
type RunFunc[T any, R any] func(items []T) ([]results.Result[R], error)

type group[T any, R any] struct {
	id    int
	items []T
	dones []*tasks.DeferredTask[R]
}

func (g *group[T, R]) add(item T, done *tasks.DeferredTask[R]) {
	g.items = append(g.items, item)
	g.dones = append(g.dones, done)
}

func (g *group[T, R]) failAll(err error) {
	for _, d := range g.dones {
		d.Fail(err)
	}
}

// Executor accumulates submissions into batches.
type Executor[T any, R any] struct {
	mu       sync.Mutex
	seq      int
	current  *group[T, R]
	closed   bool
	inFlight sync.WaitGroup

	run       RunFunc[T, R]
	maxSize   int
	maxLinger time.Duration
}

// NewExecutor validates opts (panicking on nonsensical configuration).
func NewExecutor[T any, R any](opts Opts, run RunFunc[T, R]) *Executor[T, R] {
	opts.validate()

	return &Executor[T, R]{
		run:       run,
		maxSize:   opts.MaxSize,
		maxLinger: opts.MaxLinger,
	}
}

// Submit adds an item to the current batch and returns the Task carrying
// its slot of the batch outcome. A done ctx settles the Task as Err without
// queueing the item; after Close the Task settles Err(ErrClosed).
func (e *Executor[T, R]) Submit(ctx context.Context, item T) *tasks.Task[R] {
	d := tasks.Deferred[R]()

	if err := ctx.Err(); err != nil {
		d.Fail(err)
		return d.Task()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		d.Fail(ErrClosed)
		return d.Task()
	}

	if e.current == nil {
		e.current = e.newGroup()
	}
	e.current.add(item, d)

	if len(e.current.items) >= e.maxSize {
		e.dispatchLocked()
	}

	return d.Task()
}

// SubmitAwait is Submit followed by an Unwrap of the resulting Task.
func (e *Executor[T, R]) SubmitAwait(ctx context.Context, item T) (R, error) {
	return e.Submit(ctx, item).Unwrap(ctx)
}

// newGroup must be called with e.mu held.
func (e *Executor[T, R]) newGroup() *group[T, R] {
	e.seq++

	g := &group[T, R]{
		id:    e.seq,
		items: make([]T, 0, e.maxSize),
	}

	go e.expire(g.id)
	return g
}

// expire flushes the group after the linger window if it is still current.
func (e *Executor[T, R]) expire(id int) {
	time.Sleep(e.maxLinger)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current != nil && e.current.id == id {
		e.dispatchLocked()
	}
}

// dispatchLocked hands the current group to a run goroutine. Must be called
// with e.mu held.
func (e *Executor[T, R]) dispatchLocked() {
	g := e.current
	e.current = nil
	e.inFlight.Add(1)
	go e.runGroup(g)
}

func (e *Executor[T, R]) runGroup(g *group[T, R]) {
	defer e.inFlight.Done()

	rs, err := e.run(g.items)
	if err != nil {
		g.failAll(err)
		return
	}

	if len(rs) != len(g.items) {
		g.failAll(ErrResultMismatch)
		return
	}

	for i, r := range rs {
		if r.IsErr() {
			g.dones[i].Fail(r.Err())
			continue
		}
		g.dones[i].Succeed(r.Value())
	}
}

// Close flushes the pending batch, refuses later submissions and waits for
// every dispatched batch to settle its Tasks. Safe to call more than once.
func (e *Executor[T, R]) Close() {
	e.mu.Lock()
	if !e.closed {
		e.closed = true
		if e.current != nil {
			e.dispatchLocked()
		}
	}
	e.mu.Unlock()

	e.inFlight.Wait()
}
