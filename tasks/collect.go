package tasks

import (
	"errors"

	"github.com/realpha/eitherway/results"
)

// All folds already-running Tasks into a single Task of the collected
// payloads, preserving order. Tasks are awaited in slice order and the first
// Err encountered that way settles the fold immediately; later Tasks still
// run to their own settlement but their results are discarded. The combinator
// performs no scheduling of its own beyond one awaiting goroutine.
func All[T any](ts []*Task[T]) *Task[[]T] {
	fold := newTask[[]T]()

	go func() {
		values := make([]T, 0, len(ts))
		for _, t := range ts {
			r := t.wait()
			if r.IsErr() {
				fold.settle(results.Err[[]T](r.Err()))
				return
			}
			values = append(values, r.Value())
		}
		fold.settle(results.Ok(values))
	}()

	return fold
}

// Any folds already-running Tasks into the first Ok in slice order,
// discarding the errors of the Tasks before it. When every Task fails the
// errors are joined into a single Err; an empty input fails with
// results.ErrNoneOk.
func Any[T any](ts []*Task[T]) *Task[T] {
	fold := newTask[T]()

	go func() {
		errs := make([]error, 0, len(ts))
		for _, t := range ts {
			r := t.wait()
			if r.IsOk() {
				fold.settle(r)
				return
			}
			errs = append(errs, r.Err())
		}
		if len(errs) == 0 {
			fold.settle(results.Err[T](results.ErrNoneOk))
			return
		}
		fold.settle(results.Err[T](errors.Join(errs...)))
	}()

	return fold
}
