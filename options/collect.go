package options

// All folds a slice of Options into an Option of a slice, preserving order.
// A single None anywhere yields None. An empty input also yields None: an
// all-of over nothing carries no values, and callers rely on that to treat
// "nothing to collect" as absence rather than as a vacuous success.
func All[T any](opts []Option[T]) Option[[]T] {
	if len(opts) == 0 {
		return None[[]T]()
	}

	values := make([]T, 0, len(opts))
	for _, o := range opts {
		if o.IsNone() {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Option[[]T]{value: values, some: true}
}

// Any returns the first present Option in slice order, or None when every
// element (or the whole input) is absent.
func Any[T any](opts []Option[T]) Option[T] {
	for _, o := range opts {
		if o.IsSome() {
			return o
		}
	}
	return None[T]()
}
