// Package options provides Option[T], an immutable value that is either
// present (Some) or absent (None). Options replace nil checks in pipelines of
// fallible lookups: combinators short-circuit on None so calling code never
// branches on presence by hand.
//
// The zero value of Option[T] is None, so Options embed safely into structs.
// A Some never holds a nil pointer, nil interface, nil map, nil slice, nil
// channel or nil function: the constructors route such values to None, and
// calling Some directly with one is a broken contract (see package faults).
package options

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/realpha/eitherway/faults"
	"github.com/realpha/eitherway/internal/clone"
)

// Option holds either a present value of type T or nothing.
type Option[T any] struct {
	value T
	some  bool
}

// Pair is the payload produced by the Zip combinators across the module.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Some wraps a present value. Passing a nil pointer, interface, map, slice,
// channel or function is a contract violation and panics with an
// *faults.InvariantError; use From when the value may be nil.
func Some[T any](value T) Option[T] {
	if isNil(value) {
		faults.BrokenInvariant("Some constructed with a nil value", nil)
	}
	return Option[T]{value: value, some: true}
}

// None returns the absent Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// From lifts an arbitrary value: nil values of nilable kinds become None,
// everything else becomes Some.
func From[T any](value T) Option[T] {
	if isNil(value) {
		return None[T]()
	}
	return Option[T]{value: value, some: true}
}

// FromFallible lifts Go's (value, error) return pair: a non-nil error or a
// nil value produce None, discarding the error.
func FromFallible[T any](value T, err error) Option[T] {
	if err != nil {
		return None[T]()
	}
	return From(value)
}

// FromZero lifts a comparable value, treating the type's zero value as absent.
// This is the strictest constructor: 0, "" and false all map to None.
func FromZero[T comparable](value T) Option[T] {
	var zero T
	if value == zero {
		return None[T]()
	}
	return Option[T]{value: value, some: true}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Filter keeps a Some only if pred accepts its value.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Or returns o if present, otherwise rhs.
func (o Option[T]) Or(rhs Option[T]) Option[T] {
	if o.some {
		return o
	}
	return rhs
}

// Xor returns whichever side is present if exactly one is; two present or two
// absent sides both yield None.
func (o Option[T]) Xor(rhs Option[T]) Option[T] {
	switch {
	case o.some && !rhs.some:
		return o
	case !o.some && rhs.some:
		return rhs
	default:
		return None[T]()
	}
}

// Unwrap returns the value, or the zero value of T when absent. It never
// panics; use UnwrapOr when a meaningful fallback exists.
func (o Option[T]) Unwrap() T {
	return o.value
}

// UnwrapOr returns the value or the provided fallback.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the value or computes a fallback.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// Tap invokes fn with a deep clone of the Option for side effects such as
// logging and always returns the original unchanged. Mutating the clone has
// no effect on the original payload.
func (o Option[T]) Tap(fn func(Option[T])) Option[T] {
	cloned := o
	if o.some {
		cloned.value = clone.Value(o.value)
	}
	fn(cloned)
	return o
}

// Iter yields the value exactly once for Some and not at all for None. Each
// call returns a fresh sequence.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// isNil reports whether v is nil through any nilable kind. Non-nilable kinds
// (numbers, strings, structs, arrays) are never nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
