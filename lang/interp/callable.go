package interp

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/hootlang/hoot/lang/ast"
)

// Function is a user-defined Hoot function or method: its declaration, the
// environment it closed over, and whether it is a class's `init` method
// (which always returns `this`, even from a bare `return;`).
type Function struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

func NewFunction(declaration *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *Function) String() string { return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme) }
func (f *Function) Type() string   { return "function" }
func (f *Function) Truthy() bool   { return true }
func (f *Function) Arity() int     { return len(f.declaration.Params) }

// Bind returns a copy of f whose closure additionally defines `this` as
// instance, used when a method is looked up off an instance (`instance.m`)
// so a later bare call to the result still sees the right receiver.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosed(f.closure)
	env.Define("this", instance)
	return &Function{declaration: f.declaration, closure: env, isInitializer: f.isInitializer}
}

func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnclosed(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(f.declaration.Body, env)
	if ret, ok := err.(returnSignal); ok {
		if f.isInitializer {
			v, _ := f.closure.GetAt(0, "this")
			return v, nil
		}
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}

	if f.isInitializer {
		v, _ := f.closure.GetAt(0, "this")
		return v, nil
	}
	return Nil, nil
}

// Class is a Hoot class: its name, optional superclass, and its methods
// (including `init`, if declared).
type Class struct {
	Name       string
	Superclass *Class
	methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, methods: methods}
}

func (c *Class) String() string { return c.Name }
func (c *Class) Type() string   { return "class" }
func (c *Class) Truthy() bool   { return true }

// FindMethod looks up name in c's own methods, then its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance of c, running its `init` method (if any)
// against the supplied arguments.
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime instance of a Class: its class plus a mutable
// field table. Property reads check fields first, then the class's (and
// its superclasses') methods, binding a found method to this instance.
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, Value]
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return fmt.Sprintf("<%s instance>", i.Class.Name) }
func (i *Instance) Type() string   { return "instance" }
func (i *Instance) Truthy() bool   { return true }

func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields.Get(name); ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

func (i *Instance) Set(name string, value Value) {
	i.fields.Put(name, value)
}

// NativeFunction wraps a Go function as a Hoot callable (spec §4.7's
// native FFI contract).
type NativeFunction struct {
	Name     string
	ArityFn  func() int
	CallFn   func(in *Interpreter, args []Value) (Value, error)
}

func (n *NativeFunction) String() string { return "<native fn>" }
func (n *NativeFunction) Type() string   { return "native function" }
func (n *NativeFunction) Truthy() bool   { return true }
func (n *NativeFunction) Arity() int     { return n.ArityFn() }
func (n *NativeFunction) Call(in *Interpreter, args []Value) (Value, error) {
	return n.CallFn(in, args)
}
