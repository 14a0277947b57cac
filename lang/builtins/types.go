package builtins

import (
	"fmt"
	"strings"

	"github.com/dolthub/swiss"
	"github.com/hootlang/hoot/lang/interp"
)

// method wraps fn as a Hoot-callable native method bound to one of this
// package's synthesized instances (string/list/map/response), matching the
// instance-style Get lookup spec §4.7 requires even though these types are
// not declared in user code.
func method(name string, arity int, fn nativeFn) *interp.NativeFunction {
	return &interp.NativeFunction{
		Name:    name,
		ArityFn: func() int { return arity },
		CallFn:  fn,
	}
}

// textOf returns v's textual content if it is a plain string or a string
// instance, mirroring lang/interp's `+`-concatenation rule.
func textOf(v interp.Value) (string, bool) {
	switch v := v.(type) {
	case interp.StringValue:
		return string(v), true
	case interp.Textual:
		return v.TextContent(), true
	}
	return "", false
}

// indexArg converts v to an int index, as required by `at`/`alter`.
func indexArg(v interp.Value) (int, error) {
	n, ok := v.(interp.NumberValue)
	if !ok {
		return 0, fmt.Errorf("index must be a number, got %s", v.Type())
	}
	return int(n), nil
}

// stringInstance is the `string` native's runtime representation: a
// mutable sequence of characters with at/alter/length methods (spec
// §4.7), grounded on original_source/native.py not having this type at
// all (the Python original uses raw str) but following the `list`
// instance's at/alter shape for symmetry, as the spec's table requires.
type stringInstance struct {
	chars []rune
}

func newStringInstance(s string) *stringInstance {
	return &stringInstance{chars: []rune(s)}
}

func (s *stringInstance) String() string      { return string(s.chars) }
func (s *stringInstance) Type() string        { return "string" }
func (s *stringInstance) Truthy() bool        { return true }
func (s *stringInstance) TextContent() string { return string(s.chars) }

func (s *stringInstance) Get(name string) (interp.Value, bool) {
	switch name {
	case "at":
		return method("at", 1, func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
			i, err := indexArg(args[0])
			if err != nil {
				return nil, err
			}
			if i < 0 || i >= len(s.chars) {
				return nil, fmt.Errorf("string index %d out of range", i)
			}
			return interp.StringValue(string(s.chars[i])), nil
		}), true
	case "alter":
		return method("alter", 2, func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
			i, err := indexArg(args[0])
			if err != nil {
				return nil, err
			}
			if i < 0 || i >= len(s.chars) {
				return nil, fmt.Errorf("string index %d out of range", i)
			}
			c, ok := textOf(args[1])
			if !ok || len([]rune(c)) != 1 {
				return nil, fmt.Errorf("alter's second argument must be a single character")
			}
			s.chars[i] = []rune(c)[0]
			return interp.Nil, nil
		}), true
	case "length":
		return method("length", 0, func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
			return interp.NumberValue(len(s.chars)), nil
		}), true
	}
	return nil, false
}

func nativeString(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return newStringInstance(args[0].String()), nil
}

// listInstance is the `list` native's runtime representation: an ordered,
// mutable sequence with at/alter/length/push/pop methods, grounded on
// original_source/native.py's ListDataType (at/alter) and extended with
// push/pop/length per spec §4.7's full table.
type listInstance struct {
	elements []interp.Value
}

func newListInstance(elements []interp.Value) *listInstance {
	return &listInstance{elements: elements}
}

func (l *listInstance) String() string {
	parts := make([]string, len(l.elements))
	for i, e := range l.elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l *listInstance) Type() string { return "list" }
func (l *listInstance) Truthy() bool { return true }

func (l *listInstance) Get(name string) (interp.Value, bool) {
	switch name {
	case "at":
		return method("at", 1, func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
			i, err := indexArg(args[0])
			if err != nil {
				return nil, err
			}
			if i < 0 || i >= len(l.elements) {
				return nil, fmt.Errorf("list index %d out of range", i)
			}
			return l.elements[i], nil
		}), true
	case "alter":
		return method("alter", 2, func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
			i, err := indexArg(args[0])
			if err != nil {
				return nil, err
			}
			if i < 0 || i >= len(l.elements) {
				return nil, fmt.Errorf("list index %d out of range", i)
			}
			l.elements[i] = args[1]
			return interp.Nil, nil
		}), true
	case "length":
		return method("length", 0, func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
			return interp.NumberValue(len(l.elements)), nil
		}), true
	case "push":
		return method("push", 1, func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
			l.elements = append(l.elements, args[0])
			return interp.Nil, nil
		}), true
	case "pop":
		return method("pop", 0, func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
			if len(l.elements) == 0 {
				return nil, fmt.Errorf("pop from empty list")
			}
			last := l.elements[len(l.elements)-1]
			l.elements = l.elements[:len(l.elements)-1]
			return last, nil
		}), true
	}
	return nil, false
}

func nativeList(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	elements := make([]interp.Value, len(args))
	copy(elements, args)
	return newListInstance(elements), nil
}

// mapInstance is the `map` native's runtime representation, grounded on
// original_source/native.py's MapDataType (get/set) and backed by
// github.com/dolthub/swiss, consistent with lang/interp.Environment and
// lang/interp.Instance's field tables. Keys are compared by their Hoot
// textual representation, since Hoot values have no general hash contract.
type mapInstance struct {
	store *swiss.Map[string, interp.Value]
}

func newMapInstance() *mapInstance {
	return &mapInstance{store: swiss.NewMap[string, interp.Value](8)}
}

func (m *mapInstance) String() string { return fmt.Sprintf("<map, %d entries>", m.store.Count()) }
func (m *mapInstance) Type() string   { return "map" }
func (m *mapInstance) Truthy() bool   { return true }

func (m *mapInstance) Get(name string) (interp.Value, bool) {
	switch name {
	case "get":
		return method("get", 1, func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
			if v, ok := m.store.Get(args[0].String()); ok {
				return v, nil
			}
			return interp.Nil, nil
		}), true
	case "set":
		return method("set", 2, func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
			m.store.Put(args[0].String(), args[1])
			return interp.Nil, nil
		}), true
	}
	return nil, false
}

func nativeMap(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return newMapInstance(), nil
}

// responseInstance is the `request` native's success-callback argument: a
// fixed `body`/`headers` field pair, matching original_source/native.py's
// Request building a bare HootInstance with those two fields.
type responseInstance struct {
	fields map[string]interp.Value
}

func newResponseInstance(body *stringInstance, headers *mapInstance) *responseInstance {
	return &responseInstance{fields: map[string]interp.Value{"body": body, "headers": headers}}
}

func (r *responseInstance) String() string { return "<Response instance>" }
func (r *responseInstance) Type() string   { return "instance" }
func (r *responseInstance) Truthy() bool   { return true }

func (r *responseInstance) Get(name string) (interp.Value, bool) {
	v, ok := r.fields[name]
	return v, ok
}
