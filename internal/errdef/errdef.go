// Package errdef is the process-wide error identity registry. Each distinct
// failure condition registers itself once during package initialization and
// receives a stable, strictly increasing code. Occurrences of a condition are
// created at the failure site and compared against definitions by code only;
// name and origin file are diagnostic metadata.
//
// The registry is populated exclusively from package-level variable
// initializers and is read-only once program init completes. There is no
// runtime removal or mutation.
package errdef

import (
	"path/filepath"
	"runtime"
)

// Code uniquely identifies a registered error condition within the process.
// Code 0 is reserved and never assigned.
type Code uint16

// Definition is the immutable identity of an error condition.
type Definition struct {
	Code Code
	Name string
	File string
}

var table []Definition

// Register assigns the next code to a new error condition and records it in
// the registry. The originating file is captured from the call site. Must be
// called from package-level variable initialization only; Go runs those
// single-threaded, so the table needs no locking.
func Register(name string) Definition {
	file := "unknown"
	if _, f, _, ok := runtime.Caller(1); ok {
		file = filepath.Base(f)
	}
	def := Definition{
		Code: Code(len(table) + 1),
		Name: name,
		File: file,
	}
	table = append(table, def)
	return def
}

// Lookup returns the definition registered under code.
func (c Code) Lookup() (Definition, bool) {
	idx := int(c) - 1
	if idx < 0 || idx >= len(table) {
		return Definition{}, false
	}
	return table[idx], true
}

// All returns a copy of every registered definition, in registration order.
func All() []Definition {
	out := make([]Definition, len(table))
	copy(out, table)
	return out
}

func (d Definition) String() string {
	return d.Name
}
