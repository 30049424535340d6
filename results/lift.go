package results

import "github.com/realpha/eitherway/options"

// Lift turns a plain (value, error) returning function into one returning a
// Result directly, for composition inside AndThen chains. Panics are NOT
// captured: lifting with Lift asserts the function never panics, and a panic
// propagates as a broken invariant. Use LiftFallible to capture panics.
func Lift[A, B any](fn func(A) (B, error)) func(A) Result[B] {
	return func(a A) Result[B] {
		return From(fn(a))
	}
}

// LiftFallible turns a fallible function into one returning a Result,
// capturing error returns and panics through errMap exactly like FromFallible.
func LiftFallible[A, B any](fn func(A) (B, error), errMap func(error) error) func(A) Result[B] {
	return func(a A) Result[B] {
		return FromFallible(func() (B, error) {
			return fn(a)
		}, errMap)
	}
}

// OkOr lifts an Option into a Result, substituting err when the Option is
// absent.
func OkOr[T any](o options.Option[T], err error) Result[T] {
	if o.IsNone() {
		return Err[T](err)
	}
	return Ok(o.Unwrap())
}

// OkOrElse lifts an Option into a Result, computing the substitute error
// lazily when the Option is absent.
func OkOrElse[T any](o options.Option[T], errFn func() error) Result[T] {
	if o.IsNone() {
		return Err[T](errFn())
	}
	return Ok(o.Unwrap())
}
