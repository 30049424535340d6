package results

import "errors"

// ErrNoneOk is reported by Any when no element of the input succeeded and the
// input carried no errors to join, i.e. it was empty.
var ErrNoneOk = errors.New("no successful result")

// All folds a slice of Results into a Result of a slice, preserving order.
// The first Err in slice order wins. An empty input is a vacuous success:
// unlike options.All, success carrying zero values is still success.
func All[T any](rs []Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		values = append(values, r.value)
	}
	return Ok(values)
}

// Any returns the first Ok in slice order. When every element failed the
// errors are joined into a single Err so no failure is silently dropped.
func Any[T any](rs []Result[T]) Result[T] {
	errs := make([]error, 0, len(rs))
	for _, r := range rs {
		if r.err == nil {
			return r
		}
		errs = append(errs, r.err)
	}
	if len(errs) == 0 {
		return Err[T](ErrNoneOk)
	}
	return Err[T](errors.Join(errs...))
}
