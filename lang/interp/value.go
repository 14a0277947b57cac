// Package interp implements the tree-walking evaluator: runtime values,
// environments, callables (functions, classes, instances, natives) and the
// Interpreter that executes a resolved statement list.
package interp

import (
	"strconv"
)

// Value is any runtime value Hoot code can manipulate.
type Value interface {
	// String renders the value the way `print` and string concatenation do.
	String() string
	// Type names the value's dynamic type, for error messages.
	Type() string
	// Truthy reports the value's boolean interpretation: nil and false are
	// falsey, everything else is truthy.
	Truthy() bool
}

// NilValue is Hoot's singleton `nil`.
type NilValue struct{}

func (NilValue) String() string { return "nil" }
func (NilValue) Type() string   { return "nil" }
func (NilValue) Truthy() bool   { return false }

// Nil is the shared nil value.
var Nil = NilValue{}

// BoolValue wraps a Go bool.
type BoolValue bool

func (b BoolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (BoolValue) Type() string { return "bool" }
func (b BoolValue) Truthy() bool { return bool(b) }

// NumberValue wraps a Go float64; Hoot has no separate integer type.
type NumberValue float64

func (n NumberValue) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
func (NumberValue) Type() string  { return "number" }
func (NumberValue) Truthy() bool  { return true }

// StringValue wraps a Go string.
type StringValue string

func (s StringValue) String() string { return string(s) }
func (StringValue) Type() string     { return "string" }
func (StringValue) Truthy() bool     { return true }

// Instanced is implemented by any value that supports property access via
// `obj.name`: user-defined class instances as well as the runtime-synthesized
// string/list/map natives (spec §4.7), which are not declared in user code
// but still resolve through ordinary Get semantics.
type Instanced interface {
	Value
	Get(name string) (Value, bool)
}

// Settable is implemented by any Instanced value that also accepts
// `obj.name = v` property assignment.
type Settable interface {
	Set(name string, value Value)
}

// Textual is implemented by values that have a meaningful textual content
// for `+` concatenation purposes beyond a plain StringValue (the `string`
// native's instances, per spec §9's open-question resolution).
type Textual interface {
	Value
	TextContent() string
}

// Callable is implemented by any value that can appear as the callee of a
// Call expression: user-defined functions, classes (as constructors) and
// native built-ins.
type Callable interface {
	Value
	// Arity returns the number of arguments the callable expects, or -1 if
	// it accepts any number of arguments (used by some natives).
	Arity() int
	// Call invokes the callable with args, already checked against Arity by
	// the caller.
	Call(interp *Interpreter, args []Value) (Value, error)
}
