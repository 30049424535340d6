package tasks

import (
	"context"
	"iter"

	"github.com/realpha/eitherway/options"
	"github.com/realpha/eitherway/results"
)

// chain is the single helper underlying every combinator, method and operator
// mirror: it derives a child Task by applying a synchronous Result
// transformation once the parent settles. Within a chain, stages therefore
// execute strictly in order and never observe an unsettled parent.
func chain[T, U any](parent *Task[T], step func(results.Result[T]) results.Result[U]) *Task[U] {
	child := newTask[U]()

	go func() {
		child.settle(step(parent.wait()))
	}()

	return child
}

// chainTask is chain for steps that are themselves asynchronous: the child
// settles with the settlement of the Task the step produces (flattening).
func chainTask[T, U any](parent *Task[T], step func(results.Result[T]) *Task[U]) *Task[U] {
	child := newTask[U]()

	go func() {
		child.settle(step(parent.wait()).wait())
	}()

	return child
}

// Map transforms the success payload. A settled Err passes through unchanged
// without invoking fn.
func Map[T, U any](t *Task[T], fn func(T) U) *Task[U] {
	return chain(t, func(r results.Result[T]) results.Result[U] {
		return results.Map(r, fn)
	})
}

// AndThen chains a Result-producing function on the success side, flattening
// the nested Result. Err short-circuits without invoking fn.
func AndThen[T, U any](t *Task[T], fn func(T) results.Result[U]) *Task[U] {
	return chain(t, func(r results.Result[T]) results.Result[U] {
		return results.AndThen(r, fn)
	})
}

// AndThenTask chains a Task-producing function on the success side. The
// returned Task settles with the settlement of the produced Task; Err
// short-circuits without invoking fn.
func AndThenTask[T, U any](t *Task[T], fn func(T) *Task[U]) *Task[U] {
	return chainTask(t, func(r results.Result[T]) *Task[U] {
		if r.IsErr() {
			return Fail[U](r.Err())
		}
		return fn(r.Value())
	})
}

// Zip awaits both Tasks and pairs their success payloads. The left side is
// awaited and checked first, so when both fail the LEFT error wins.
func Zip[A, B any](a *Task[A], b *Task[B]) *Task[options.Pair[A, B]] {
	child := newTask[options.Pair[A, B]]()

	go func() {
		ra := a.wait()
		rb := b.wait()
		child.settle(results.Zip(ra, rb))
	}()

	return child
}

// MapErr transforms only the failure side once the Task settles.
func (t *Task[T]) MapErr(fn func(error) error) *Task[T] {
	return chain(t, func(r results.Result[T]) results.Result[T] {
		return r.MapErr(fn)
	})
}

// OrElse chains a synchronous recovery on the failure side, flattening its
// Result. A settled Ok short-circuits without invoking fn.
func (t *Task[T]) OrElse(fn func(error) results.Result[T]) *Task[T] {
	return chain(t, func(r results.Result[T]) results.Result[T] {
		return r.OrElse(fn)
	})
}

// OrElseTask chains an asynchronous recovery on the failure side.
func (t *Task[T]) OrElseTask(fn func(error) *Task[T]) *Task[T] {
	return chainTask(t, func(r results.Result[T]) *Task[T] {
		if r.IsOk() {
			return Of(r)
		}
		return fn(r.Err())
	})
}

// Trip runs a check against the success payload once settled: a non-nil error
// from the check derails the Ok into that Err, a nil error preserves the
// original Result.
func (t *Task[T]) Trip(fn func(T) error) *Task[T] {
	return chain(t, func(r results.Result[T]) results.Result[T] {
		return r.Trip(fn)
	})
}

// Rise attempts recovery on the failure side without discarding the original
// error: a failed recovery preserves the original Err.
func (t *Task[T]) Rise(fn func(error) results.Result[T]) *Task[T] {
	return chain(t, func(r results.Result[T]) results.Result[T] {
		return r.Rise(fn)
	})
}

// Tap invokes fn with a deep clone of the settled Result for side effects;
// the original Result passes through unchanged and fn's behavior cannot alter
// the settlement. A panic inside fn is not swallowed.
func (t *Task[T]) Tap(fn func(results.Result[T])) *Task[T] {
	return chain(t, func(r results.Result[T]) results.Result[T] {
		return r.Tap(fn)
	})
}

// Inspect invokes fn with a deep clone of the success payload, only when the
// Task settled Ok.
func (t *Task[T]) Inspect(fn func(T)) *Task[T] {
	return chain(t, func(r results.Result[T]) results.Result[T] {
		return r.Inspect(fn)
	})
}

// InspectErr invokes fn with the failure, only when the Task settled Err.
func (t *Task[T]) InspectErr(fn func(error)) *Task[T] {
	return chain(t, func(r results.Result[T]) results.Result[T] {
		return r.InspectErr(fn)
	})
}

// Iter awaits the Task and yields the success payload exactly once, or
// nothing for a settled Err or an abandoned wait. Each call returns a fresh
// sequence that awaits again.
func (t *Task[T]) Iter(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		r, err := t.Await(ctx)
		if err != nil {
			return
		}
		for v := range r.Iter() {
			if !yield(v) {
				return
			}
		}
	}
}
