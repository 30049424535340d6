// Package faults defines the error taxonomy shared by the option, result and
// task types: domain failures travel as ordinary error values inside Err,
// while broken invariants surface as panics carrying an *InvariantError.
// Nothing in this package is a recoverable domain failure.
package faults

import "fmt"

// InvariantError signals a broken caller contract: a function declared
// infallible failed, or a constructor received an argument it documents as
// forbidden. It is raised via panic, never returned, so that genuine
// programming errors stay loud instead of leaking into the Err channel.
type InvariantError struct {
	Msg   string
	Cause error
}

func (e *InvariantError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("broken invariant: %s: %v", e.Msg, e.Cause)
	}
	return "broken invariant: " + e.Msg
}

func (e *InvariantError) Unwrap() error {
	return e.Cause
}

// BrokenInvariant panics with an *InvariantError wrapping cause.
func BrokenInvariant(msg string, cause error) {
	panic(&InvariantError{Msg: msg, Cause: cause})
}

// PanicError wraps a value recovered from a panicking function so it can be
// carried through an error-mapping function as a regular error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// Unwrap exposes the panic value when it already was an error, so callers can
// keep using errors.Is and errors.As across the recovery boundary.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// FromRecovered converts a value obtained from recover() into an error.
// Panic values that already are errors are wrapped rather than returned
// directly so the recovery site stays visible in the chain.
func FromRecovered(v any) error {
	return &PanicError{Value: v}
}

// AsInfallible is the error mapper to pass to a lifting constructor when the
// lifted operation is asserted to never fail. If it is ever invoked the
// assertion was wrong, so it panics with an *InvariantError carrying the
// original error as its cause. It never returns.
func AsInfallible(err error) error {
	BrokenInvariant("operation declared infallible reported a failure", err)
	return nil // unreachable
}
