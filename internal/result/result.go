// Package result provides the union return type used by every fallible
// container operation: either a success value or an error occurrence, never
// both. The error pointer is the discriminant, so a copy of a result copies
// exactly the active arm.
package result

import "fixcap/internal/errdef"

// Result holds either a success value of type T or an error occurrence.
type Result[T any] struct {
	value T
	err   *errdef.Error
}

// Ok wraps a success value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err wraps an error occurrence. Panics on a nil error: a nil occurrence
// would be indistinguishable from success.
func Err[T any](e *errdef.Error) Result[T] {
	if e == nil {
		panic("result: Err with nil error")
	}
	return Result[T]{err: e}
}

// HasError reports whether the result carries an error. This is the sole
// discriminant; call it (or use Get) before the typed accessors.
func (r Result[T]) HasError() bool {
	return r.err != nil
}

// Value returns the success value. Panics if the result carries an error;
// this is a contract violation at the call site, not a recoverable state.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic("result: Value on error result: " + r.err.Error())
	}
	return r.value
}

// Err returns the carried occurrence, nil for success results.
func (r Result[T]) Err() *errdef.Error {
	return r.err
}

// Get unpacks the result into the familiar Go pair form.
func (r Result[T]) Get() (T, *errdef.Error) {
	return r.value, r.err
}
