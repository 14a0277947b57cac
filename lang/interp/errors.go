package interp

import "github.com/hootlang/hoot/lang/token"

// RuntimeError is raised by the evaluator for an operation that fails at
// runtime (wrong operand types, undefined variable, non-callable callee,
// etc). When one propagates out of Interpret, the driver reports it to
// stdout as "[line N] message" and the run's exit code is 70 (spec §6-7);
// one raised inside an async callback goes to the driver's onError instead.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

// returnSignal unwinds the Go call stack from a `return` statement up to
// the enclosing Function.Call. It is a control-flow signal, not a genuine
// error: it travels up the ordinary error return path and Function.Call
// recognizes it by type assertion. executeBlock passes it through after
// restoring its environment.
type returnSignal struct {
	value Value
}

func (returnSignal) Error() string { return "return outside of function" }

// breakSignal unwinds from a `break` statement the same way; the while-loop
// case of execute recognizes it and ends the loop.
type breakSignal struct{}

func (breakSignal) Error() string { return "break outside of loop" }
