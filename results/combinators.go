package results

import "github.com/realpha/eitherway/options"

// Type-changing combinators are package functions; the err-side counterparts
// live as methods on Result since the error type is fixed.

// Map transforms the success payload. Err short-circuits without invoking fn
// and the original failure passes through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}

// MapOr transforms the success payload or substitutes orValue on Err.
func MapOr[T, U any](r Result[T], fn func(T) U, orValue U) U {
	if r.err != nil {
		return orValue
	}
	return fn(r.value)
}

// MapOrElse transforms the success payload or computes the substitute from
// the error.
func MapOrElse[T, U any](r Result[T], fn func(T) U, elseFn func(error) U) U {
	if r.err != nil {
		return elseFn(r.err)
	}
	return fn(r.value)
}

// AndThen chains a Result-producing function on the success side, flattening
// the nested Result. Err short-circuits without invoking fn.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return fn(r.value)
}

// And returns rhs when r is Ok, otherwise r's failure.
func And[T, U any](r Result[T], rhs Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return rhs
}

// Zip pairs two success payloads. On failure the LEFT error takes priority:
// Zip(Err(e1), Err(e2)) is Err(e1).
func Zip[A, B any](a Result[A], b Result[B]) Result[options.Pair[A, B]] {
	if a.err != nil {
		return Err[options.Pair[A, B]](a.err)
	}
	if b.err != nil {
		return Err[options.Pair[A, B]](b.err)
	}
	return Ok(options.Pair[A, B]{First: a.value, Second: b.value})
}

// Trip runs a check whose failure derails the success but whose own success
// payload is discarded, preserving the original. This generalizes
// Result.Trip to checks producing a Result of a different type.
func Trip[T, U any](r Result[T], fn func(T) Result[U]) Result[T] {
	if r.err != nil {
		return r
	}
	if chk := fn(r.value); chk.err != nil {
		return Err[T](chk.err)
	}
	return r
}
