// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package pdd

import "fmt"

// invariantError wraps errInvariant with a concrete diagnostic message.
// assertf panics with it: invariant violations there are programmer errors (a
// malformed handle, a cross-manager poly, a precondition violation of
// lt_quotient), not conditions a caller can recover from. SetLevel2Var and
// WellFormed also return it as an ordinary error value. See §7 of the design.
type invariantError struct {
	msg string
}

func (e *invariantError) Error() string {
	return e.msg
}

func (e *invariantError) Unwrap() error {
	return errInvariant
}

// assertf panics with an invariantError if cond is false. It is the Go
// equivalent of the SASSERT macros guarding every public entry point of the
// original pdd_manager.
func assertf(cond bool, format string, a ...interface{}) {
	if cond {
		return
	}
	panic(&invariantError{msg: fmt.Sprintf(format, a...)})
}
