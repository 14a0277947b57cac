package interp

import "github.com/dolthub/swiss"

// Environment is a single lexical scope's variable binding table, chained
// to its enclosing scope. Lookups and assignments can either walk the
// chain (Get/Assign, used for globals and any binding the resolver could
// not distance) or jump straight to a known ancestor (GetAt/AssignAt, used
// for every binding the resolver did resolve).
type Environment struct {
	values    *swiss.Map[string, Value]
	enclosing *Environment
}

// NewEnvironment creates a top-level (global) environment.
func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8)}
}

// NewEnclosed creates a new scope nested inside enclosing.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8), enclosing: enclosing}
}

// Define binds name to value in this scope, shadowing any outer binding of
// the same name. Re-declaring a name already defined in this same scope
// (e.g. a top-level `let` run twice in a REPL) simply overwrites it.
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, value)
}

// Get looks up name by walking the chain outward from this scope. It is
// used for globals, which the resolver leaves undistanced.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks the chain outward, assigning to the first scope that
// already defines name. It reports false if no scope defines name.
func (e *Environment) Assign(name string, value Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values.Get(name); ok {
			env.values.Put(name, value)
			return true
		}
	}
	return false
}

// Ancestor walks exactly distance scopes outward.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt looks up name in the scope exactly distance steps outward, as
// computed by the resolver.
func (e *Environment) GetAt(distance int, name string) (Value, bool) {
	return e.Ancestor(distance).values.Get(name)
}

// AssignAt assigns name in the scope exactly distance steps outward.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.Ancestor(distance).values.Put(name, value)
}
