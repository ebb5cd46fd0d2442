package result

import "fixcap/internal/errdef"

// Void is the no-payload specialization of Result, returned by mutating
// operations that produce no value. It carries only the discriminant and an
// optional error occurrence.
type Void struct {
	err *errdef.Error
}

// OK is the successful Void result.
func OK() Void {
	return Void{}
}

// Fail wraps an error occurrence. Panics on nil, like Err.
func Fail(e *errdef.Error) Void {
	if e == nil {
		panic("result: Fail with nil error")
	}
	return Void{err: e}
}

// HasError reports whether the operation failed.
func (v Void) HasError() bool {
	return v.err != nil
}

// Err returns the carried occurrence, nil on success.
func (v Void) Err() *errdef.Error {
	return v.err
}
