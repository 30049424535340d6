// Package operators restates the Result and Task combinators as curried
// higher-order functions taking the current value last, for point-free
// pipeline composition. Every operator delegates to the same functions the
// instance methods are built on, so behavior is identical by construction.
package operators

import (
	"github.com/realpha/eitherway/results"
	"github.com/realpha/eitherway/tasks"
)

// Map returns an operator transforming the success payload of a Result.
func Map[T, U any](fn func(T) U) func(results.Result[T]) results.Result[U] {
	return func(r results.Result[T]) results.Result[U] {
		return results.Map(r, fn)
	}
}

// MapErr returns an operator transforming the failure of a Result.
func MapErr[T any](fn func(error) error) func(results.Result[T]) results.Result[T] {
	return func(r results.Result[T]) results.Result[T] {
		return r.MapErr(fn)
	}
}

// AndThen returns an operator chaining a Result-producing function with
// flattening.
func AndThen[T, U any](fn func(T) results.Result[U]) func(results.Result[T]) results.Result[U] {
	return func(r results.Result[T]) results.Result[U] {
		return results.AndThen(r, fn)
	}
}

// OrElse returns an operator chaining a recovery function on the failure side.
func OrElse[T any](fn func(error) results.Result[T]) func(results.Result[T]) results.Result[T] {
	return func(r results.Result[T]) results.Result[T] {
		return r.OrElse(fn)
	}
}

// Trip returns an operator running a derailing check against the success
// payload.
func Trip[T any](fn func(T) error) func(results.Result[T]) results.Result[T] {
	return func(r results.Result[T]) results.Result[T] {
		return r.Trip(fn)
	}
}

// Rise returns an operator attempting recovery while preserving the original
// error when recovery itself fails.
func Rise[T any](fn func(error) results.Result[T]) func(results.Result[T]) results.Result[T] {
	return func(r results.Result[T]) results.Result[T] {
		return r.Rise(fn)
	}
}

// Tap returns an operator invoking fn with a clone for side effects.
func Tap[T any](fn func(results.Result[T])) func(results.Result[T]) results.Result[T] {
	return func(r results.Result[T]) results.Result[T] {
		return r.Tap(fn)
	}
}

// Inspect returns an operator invoking fn with a clone of the success payload.
func Inspect[T any](fn func(T)) func(results.Result[T]) results.Result[T] {
	return func(r results.Result[T]) results.Result[T] {
		return r.Inspect(fn)
	}
}

// InspectErr returns an operator invoking fn with the failure.
func InspectErr[T any](fn func(error)) func(results.Result[T]) results.Result[T] {
	return func(r results.Result[T]) results.Result[T] {
		return r.InspectErr(fn)
	}
}

// UnwrapOr returns a terminal operator extracting the payload with a fallback.
func UnwrapOr[T any](fallback T) func(results.Result[T]) T {
	return func(r results.Result[T]) T {
		return r.UnwrapOr(fallback)
	}
}

// TaskMap is Map over Tasks.
func TaskMap[T, U any](fn func(T) U) func(*tasks.Task[T]) *tasks.Task[U] {
	return func(t *tasks.Task[T]) *tasks.Task[U] {
		return tasks.Map(t, fn)
	}
}

// TaskMapErr is MapErr over Tasks.
func TaskMapErr[T any](fn func(error) error) func(*tasks.Task[T]) *tasks.Task[T] {
	return func(t *tasks.Task[T]) *tasks.Task[T] {
		return t.MapErr(fn)
	}
}

// TaskAndThen is AndThen over Tasks.
func TaskAndThen[T, U any](fn func(T) results.Result[U]) func(*tasks.Task[T]) *tasks.Task[U] {
	return func(t *tasks.Task[T]) *tasks.Task[U] {
		return tasks.AndThen(t, fn)
	}
}

// TaskOrElse is OrElse over Tasks.
func TaskOrElse[T any](fn func(error) results.Result[T]) func(*tasks.Task[T]) *tasks.Task[T] {
	return func(t *tasks.Task[T]) *tasks.Task[T] {
		return t.OrElse(fn)
	}
}

// TaskTap is Tap over Tasks.
func TaskTap[T any](fn func(results.Result[T])) func(*tasks.Task[T]) *tasks.Task[T] {
	return func(t *tasks.Task[T]) *tasks.Task[T] {
		return t.Tap(fn)
	}
}

// Pipe2 composes two operators left to right.
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 composes three operators left to right.
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}
