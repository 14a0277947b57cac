package interp

import (
	"fmt"
	"io"

	"github.com/hootlang/hoot/lang/ast"
	"github.com/hootlang/hoot/lang/token"
)

// Interpreter walks a resolved statement list and executes it against a
// chain of Environments. Async is optional and is not read by the
// Interpreter itself; lang/builtins receives its driver directly through
// builtins.Register and does not set or use this field.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	depths      map[ast.NodeID]int
	Stdout      io.Writer
	Async       AsyncDriver
}

// AsyncDriver is the contract lang/async.Driver satisfies; kept as a small
// local interface so lang/interp does not import lang/async.
type AsyncDriver interface {
	Spawn(work func() (Value, error), onSuccess func(Value), onError func(error))
}

// New creates an Interpreter with an empty global environment.
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment()
	return &Interpreter{
		Globals:     globals,
		environment: globals,
		Stdout:      stdout,
	}
}

// SetDepths installs the resolver's computed variable-depth table.
func (in *Interpreter) SetDepths(depths map[ast.NodeID]int) {
	in.depths = depths
}

// Interpret executes stmts, the top-level program. It returns a
// *RuntimeError if one propagated out uncaught.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// Invoke calls a Callable with args from outside the normal Call-expression
// evaluation path. Native built-ins use this to invoke a Hoot callback
// value once their background work completes (spec §4.6/§4.7), on the
// driver's goroutine, reusing the exact same call machinery the evaluator
// uses for a `Call` expression.
func (in *Interpreter) Invoke(callable Value, args []Value) (Value, error) {
	fn, ok := callable.(Callable)
	if !ok {
		return nil, fmt.Errorf("value of type %s is not callable", callable.Type())
	}
	return fn.Call(in, args)
}

func (in *Interpreter) execute(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.Expression:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.Print:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Stdout, stringify(v))
		return nil

	case *ast.Let:
		var value Value = Nil
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return in.executeBlock(s.Stmts, NewEnclosed(in.environment))

	case *ast.If:
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := in.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				if _, ok := err.(breakSignal); ok {
					return nil
				}
				return err
			}
		}

	case *ast.Break:
		return breakSignal{}

	case *ast.Function:
		fn := NewFunction(s, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Class:
		return in.executeClass(s)

	case *ast.Return:
		var value Value = Nil
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value: value}

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", s))
	}
}

func (in *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "superclass must be a class")
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, Nil)

	env := in.environment
	if s.Superclass != nil {
		env = NewEnclosed(in.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, env, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	// method closures captured `env` above (which wraps a "super"-defining
	// scope when there's a superclass); the class binding itself always
	// lives in the enclosing environment.
	in.environment.Assign(s.Name.Lexeme, class)
	return nil
}

// executeBlock runs stmts against env, restoring the previous environment
// on the way out (including when a control-flow signal or error
// propagates) so a `return`/`break` inside a nested block does not leak
// the block's scope onto the caller.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.evaluate(e.Inner)

	case *ast.Variable:
		return in.lookUpVariable(e.Name, e.ID())

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if dist, ok := in.depths[e.ID()]; ok {
			in.environment.AssignAt(dist, e.Name.Lexeme, value)
		} else if !in.Globals.Assign(e.Name.Lexeme, value) {
			return nil, newRuntimeError(e.Name, "undefined variable '"+e.Name.Lexeme+"'")
		}
		return value, nil

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.This:
		return in.lookUpVariable(e.Keyword, e.ID())

	case *ast.Super:
		return in.evalSuper(e)

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", e))
	}
}

func literalValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Nil
	case bool:
		return BoolValue(v)
	case float64:
		return NumberValue(v)
	case string:
		return StringValue(v)
	default:
		panic(fmt.Sprintf("interp: unsupported literal value %T", v))
	}
}

func (in *Interpreter) lookUpVariable(name token.Token, id ast.NodeID) (Value, error) {
	if dist, ok := in.depths[id]; ok {
		if v, ok := in.environment.GetAt(dist, name.Lexeme); ok {
			return v, nil
		}
	} else if v, ok := in.Globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, newRuntimeError(name, "undefined variable '"+name.Lexeme+"'")
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(NumberValue)
		if !ok {
			return nil, newRuntimeError(e.Op, "operand must be a number")
		}
		return -n, nil
	case token.BANG:
		return BoolValue(!right.Truthy()), nil
	default:
		panic("interp: unhandled unary operator " + e.Op.Kind.String())
	}
}

func (in *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.PLUS:
		return evalAdd(left, right, e.Op)
	case token.MINUS, token.SLASH, token.STAR:
		ln, lok := left.(NumberValue)
		rn, rok := right.(NumberValue)
		if !lok || !rok {
			return nil, newRuntimeError(e.Op, "operands must be numbers")
		}
		switch e.Op.Kind {
		case token.MINUS:
			return ln - rn, nil
		case token.SLASH:
			return ln / rn, nil
		default:
			return ln * rn, nil
		}
	case token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(NumberValue)
		rn, rok := right.(NumberValue)
		if !lok || !rok {
			return nil, newRuntimeError(e.Op, "operands must be numbers")
		}
		switch e.Op.Kind {
		case token.GREATER:
			return BoolValue(ln > rn), nil
		case token.GREATER_EQUAL:
			return BoolValue(ln >= rn), nil
		case token.LESS:
			return BoolValue(ln < rn), nil
		default:
			return BoolValue(ln <= rn), nil
		}
	case token.BANG_EQUAL:
		return BoolValue(!isEqual(left, right)), nil
	case token.EQUAL_EQUAL:
		return BoolValue(isEqual(left, right)), nil
	default:
		panic("interp: unhandled binary operator " + e.Op.Kind.String())
	}
}

// evalAdd implements `+`, overloaded across numbers and strings (including
// string-instances produced by the `string` native, per spec §9's
// open-question resolution): both numbers add, and any combination of
// string/string-instance operands concatenates their textual content.
func evalAdd(left, right Value, op token.Token) (Value, error) {
	if ln, ok := left.(NumberValue); ok {
		if rn, ok := right.(NumberValue); ok {
			return ln + rn, nil
		}
	}
	lt, lok := textualContent(left)
	rt, rok := textualContent(right)
	if lok && rok {
		return StringValue(lt + rt), nil
	}
	return nil, newRuntimeError(op, "operands must be two numbers or two strings")
}

// textualContent returns a value's textual content if it is a plain string
// or implements Textual (the `string` native's instances), and whether the
// value qualifies at all.
func textualContent(v Value) (string, bool) {
	switch v := v.(type) {
	case StringValue:
		return string(v), true
	case Textual:
		return v.TextContent(), true
	}
	return "", false
}

func isEqual(a, b Value) bool {
	switch a := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case BoolValue:
		bb, ok := b.(BoolValue)
		return ok && a == bb
	case NumberValue:
		bn, ok := b.(NumberValue)
		return ok && a == bn
	case StringValue:
		bs, ok := b.(StringValue)
		return ok && a == bs
	default:
		return a == b // identity for instances/functions/classes
	}
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "can only call functions and classes")
	}
	if fn.Arity() >= 0 && len(args) != fn.Arity() {
		return nil, newRuntimeError(e.Paren, fmt.Sprintf("expected %d arguments but got %d", fn.Arity(), len(args)))
	}
	return fn.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.Get) (Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(Instanced)
	if !ok {
		return nil, newRuntimeError(e.Name, "only instances have properties")
	}
	if v, ok := inst.Get(e.Name.Lexeme); ok {
		return v, nil
	}
	return nil, newRuntimeError(e.Name, "undefined property '"+e.Name.Lexeme+"'")
}

func (in *Interpreter) evalSet(e *ast.Set) (Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(Settable)
	if !ok {
		return nil, newRuntimeError(e.Name, "only instances have fields")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, value)
	return value, nil
}

func (in *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	dist, ok := in.depths[e.ID()]
	if !ok {
		return nil, newRuntimeError(e.Keyword, "super used outside of a resolvable class scope")
	}
	v, _ := in.environment.GetAt(dist, "super")
	superclass, ok := v.(*Class)
	if !ok {
		return nil, newRuntimeError(e.Keyword, "super is not a class")
	}

	thisVal, _ := in.environment.GetAt(dist-1, "this")
	instance, ok := thisVal.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Keyword, "this is not an instance")
	}

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Method, "undefined property '"+e.Method.Lexeme+"'")
	}
	return method.Bind(instance), nil
}

// stringify renders a Value the way `print` does: nil prints as "nil",
// everything else uses its own String().
func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}
