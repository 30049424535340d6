package tasks

import "github.com/realpha/eitherway/results"

// DeferredTask pairs an unsettled Task with external settlement functions for
// push-based integration, e.g. completing from a callback or racing a timer
// against a success signal. Settlement is single-assignment: whichever of
// Succeed and Fail is invoked first determines the final Result, and every
// later invocation of either is a silent no-op. Callers may therefore invoke
// both sides without guarding against double completion.
type DeferredTask[T any] struct {
	task *Task[T]
}

// Deferred returns a new unsettled Task together with its settlement handle.
func Deferred[T any]() *DeferredTask[T] {
	return &DeferredTask[T]{task: newTask[T]()}
}

// Task returns the Task controlled by this handle.
func (d *DeferredTask[T]) Task() *Task[T] {
	return d.task
}

// Succeed settles the Task to Ok(value) if nothing settled it before.
func (d *DeferredTask[T]) Succeed(value T) {
	d.task.settle(results.Ok(value))
}

// Fail settles the Task to Err(err) if nothing settled it before.
func (d *DeferredTask[T]) Fail(err error) {
	d.task.settle(results.Err[T](err))
}
