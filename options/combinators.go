package options

// Combinators that change the payload type live here as package functions:
// Go methods cannot introduce new type parameters.

// Map transforms a present value. A nil result of fn maps to None, keeping
// the no-nil-Some invariant without panicking inside a pipeline.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.IsNone() {
		return None[U]()
	}
	return From(fn(o.value))
}

// MapOr transforms a present value or substitutes orValue when absent.
func MapOr[T, U any](o Option[T], fn func(T) U, orValue U) U {
	if o.IsNone() {
		return orValue
	}
	return fn(o.value)
}

// MapOrElse transforms a present value or computes the substitute when absent.
func MapOrElse[T, U any](o Option[T], fn func(T) U, elseFn func() U) U {
	if o.IsNone() {
		return elseFn()
	}
	return fn(o.value)
}

// AndThen chains an Option-producing function, flattening the result.
// None short-circuits without invoking fn.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.IsNone() {
		return None[U]()
	}
	return fn(o.value)
}

// And returns rhs when o is present, None otherwise.
func And[T, U any](o Option[T], rhs Option[U]) Option[U] {
	if o.IsNone() {
		return None[U]()
	}
	return rhs
}

// Zip pairs two present values. Either side absent yields None.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.IsNone() || b.IsNone() {
		return None[Pair[A, B]]()
	}
	return Option[Pair[A, B]]{value: Pair[A, B]{First: a.value, Second: b.value}, some: true}
}

// Trip runs a presence check against the value: if fn returns None the
// original is derailed to None, if fn returns Some its payload is discarded
// and the original Option passes through unchanged.
func Trip[T, U any](o Option[T], fn func(T) Option[U]) Option[T] {
	if o.IsNone() {
		return o
	}
	if fn(o.value).IsNone() {
		return None[T]()
	}
	return o
}
