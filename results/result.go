// Package results provides Result[T], an immutable value that is either a
// success payload (Ok) or a failure (Err). Results carry domain failures as
// ordinary data so pipelines compose without error-return plumbing at every
// step; broken invariants stay panics (see package faults).
package results

import (
	"fmt"
	"iter"

	"github.com/realpha/eitherway/faults"
	"github.com/realpha/eitherway/internal/clone"
	"github.com/realpha/eitherway/options"
)

// Result holds either a success value of type T or a failure error.
// The zero value is Ok of T's zero value.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a success value. Unlike options.Some, any value is accepted,
// including nil pointers: success with an empty payload is legitimate.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure. A nil error is a contract violation: it would be
// indistinguishable from success, so it panics with an *faults.InvariantError.
func Err[T any](err error) Result[T] {
	if err == nil {
		faults.BrokenInvariant("Err constructed with a nil error", nil)
	}
	return Result[T]{err: err}
}

// From lifts Go's (value, error) return pair into a Result.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// FromFallible runs fn and captures every failure mode into Err: a non-nil
// error return is passed through errMap directly, and a panic is recovered,
// wrapped in *faults.PanicError and passed through errMap. Panics carrying an
// *faults.InvariantError are re-raised: broken invariants are never demoted
// to domain failures.
func FromFallible[T any](fn func() (T, error), errMap func(error) error) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*faults.InvariantError); ok {
				panic(r)
			}
			res = Err[T](errMap(faults.FromRecovered(r)))
		}
	}()

	v, err := fn()
	if err != nil {
		return Err[T](errMap(err))
	}
	return Ok(v)
}

// IsOk reports whether the Result is a success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result is a failure.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Value returns the success payload, or T's zero value on Err.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, or nil on Ok.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap exits the abstraction back to Go's (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the success payload or the provided fallback.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// UnwrapOrElse returns the success payload or computes a fallback from the error.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.err != nil {
		return fn(r.err)
	}
	return r.value
}

// MapErr transforms only the failure side. Ok passes through untouched.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}

// OrElse chains a recovery function on the failure side, flattening its
// Result. Ok short-circuits without invoking fn, so a second OrElse after a
// successful recovery is a no-op.
func (r Result[T]) OrElse(fn func(error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return fn(r.err)
}

// Or returns r when it is Ok, otherwise rhs.
func (r Result[T]) Or(rhs Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return rhs
}

// Trip runs a check against the success payload. A non-nil error from the
// check derails the Ok into that Err; a nil error preserves the original
// Result unchanged. Err passes through without invoking the check.
func (r Result[T]) Trip(fn func(T) error) Result[T] {
	if r.err != nil {
		return r
	}
	if err := fn(r.value); err != nil {
		return Err[T](err)
	}
	return r
}

// Rise attempts recovery from the failure side without discarding the
// original error: a successful recovery wins, a failed recovery preserves the
// original Err rather than replacing it. Ok passes through untouched.
func (r Result[T]) Rise(fn func(error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return fn(r.err).Or(r)
}

// Tap invokes fn with a deep clone of the Result for side effects and always
// returns the original unchanged.
func (r Result[T]) Tap(fn func(Result[T])) Result[T] {
	fn(r.Clone())
	return r
}

// Inspect invokes fn with a deep clone of the success payload, only on Ok.
func (r Result[T]) Inspect(fn func(T)) Result[T] {
	if r.err == nil {
		fn(clone.Value(r.value))
	}
	return r
}

// InspectErr invokes fn with the failure, only on Err.
func (r Result[T]) InspectErr(fn func(error)) Result[T] {
	if r.err != nil {
		fn(r.err)
	}
	return r
}

// Clone returns a Result with a deep-copied success payload, protecting
// against aliasing when the payload is handed to side-effecting code.
func (r Result[T]) Clone() Result[T] {
	if r.err != nil {
		return r
	}
	return Result[T]{value: clone.Value(r.value)}
}

// OkOption projects the success side into an Option. A nil success payload
// collapses to None even though it was a legitimate Ok.
func (r Result[T]) OkOption() options.Option[T] {
	if r.err != nil {
		return options.None[T]()
	}
	return options.From(r.value)
}

// ErrOption projects the failure side into an Option.
func (r Result[T]) ErrOption() options.Option[error] {
	if r.err == nil {
		return options.None[error]()
	}
	return options.Some(r.err)
}

// Iter yields the success payload exactly once for Ok and not at all for Err.
// Each call returns a fresh sequence.
func (r Result[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.err == nil {
			yield(r.value)
		}
	}
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
