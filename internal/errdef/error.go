package errdef

import (
	"fmt"
	"runtime"
)

// Error is a single occurrence of a registered condition. It is created at
// the moment a fallible operation fails and is immutable afterward.
type Error struct {
	Def  Definition
	Msg  string
	Line int
}

// New creates an occurrence of def, recording the caller's line.
func New(def Definition, msg string) *Error {
	return &Error{Def: def, Msg: msg, Line: callerLine(2)}
}

// Newf is New with fmt-style message formatting.
func Newf(def Definition, format string, args ...any) *Error {
	return &Error{Def: def, Msg: fmt.Sprintf(format, args...), Line: callerLine(2)}
}

func callerLine(skip int) int {
	if _, _, line, ok := runtime.Caller(skip); ok {
		return line
	}
	return 0
}

// Is reports whether the occurrence belongs to def. Only codes take part in
// equality; message and location do not.
func (e *Error) Is(def Definition) bool {
	return e != nil && e.Def.Code == def.Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s (%s:%d)", e.Def.Name, e.Msg, e.Def.File, e.Line)
}
