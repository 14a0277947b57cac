// Package resolver performs a static pass over the AST that computes, for
// every variable reference, how many enclosing lexical scopes to walk at
// runtime to find its binding, and enforces the language's scoping rules
// (see spec §4.3): a return outside a function, a bare return value inside
// an initializer, this/super outside a class body, a break outside a loop,
// a class inheriting from itself, duplicate declarations in the same
// scope, and reading a local in its own initializer are all reported here,
// before the evaluator ever runs.
//
// Globals are not tracked on the scope stack: a reference that resolves to
// no entry on the stack is left out of the Depths table and is looked up
// directly in the global environment at runtime.
package resolver

import (
	"fmt"

	"github.com/hootlang/hoot/lang/ast"
	"github.com/hootlang/hoot/lang/token"
	"golang.org/x/exp/maps"
)

type functionType int

const (
	noFunction functionType = iota
	inFunction
	inMethod
	inInitializer
)

type classType int

const (
	noClass classType = iota
	inClass
	inSubclass
)

// Resolver walks the AST once and produces a Depths table mapping every
// Variable/Assign/This/Super node id to the number of enclosing scopes an
// Environment.Ancestor walk must cross to reach its binding.
type Resolver struct {
	scopes []map[string]bool
	depths map[ast.NodeID]int

	currentFunction functionType
	currentClass    classType
	inLoop          bool

	err func(tok token.Token, message string)
}

// New creates a Resolver. errHandler is called once per semantic error
// found.
func New(errHandler func(tok token.Token, message string)) *Resolver {
	return &Resolver{
		depths: make(map[ast.NodeID]int),
		err:    errHandler,
	}
}

// Resolve walks stmts and returns the completed depth table.
func (r *Resolver) Resolve(stmts []ast.Stmt) map[ast.NodeID]int {
	r.resolveStmts(stmts)
	return r.depths
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// CurrentScopeNames returns the names declared in the innermost scope
// currently being resolved, for debugging/test inspection. It returns nil
// outside of any tracked scope (e.g. at the top level, which is untracked).
func (r *Resolver) CurrentScopeNames() []string {
	if len(r.scopes) == 0 {
		return nil
	}
	return maps.Keys(r.scopes[len(r.scopes)-1])
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.error(name, "already a variable with this name in this scope")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(id ast.NodeID, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.depths[id] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any tracked scope: treat as global
}

func (r *Resolver) error(tok token.Token, message string) {
	if r.err != nil {
		r.err(tok, message)
	}
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.Let:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, inFunction)

	case *ast.Class:
		r.resolveClass(s)

	case *ast.Expression:
		r.resolveExpr(s.Expr)

	case *ast.If:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.Print:
		r.resolveExpr(s.Expr)

	case *ast.Return:
		if r.currentFunction == noFunction {
			r.error(s.Keyword, "can't return from top-level code")
		}
		if s.Value != nil {
			if r.currentFunction == inInitializer {
				r.error(s.Keyword, "can't return a value from an initializer")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.While:
		r.resolveExpr(s.Cond)
		enclosingLoop := r.inLoop
		r.inLoop = true
		r.resolveStmt(s.Body)
		r.inLoop = enclosingLoop

	case *ast.Break:
		if !r.inLoop {
			r.error(s.Keyword, "can't break outside of a loop")
		}

	default:
		panic(fmt.Sprintf("resolver: unhandled statement type %T", s))
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveClass(s *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = inClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.error(s.Superclass.Name, "a class can't inherit from itself")
		}
		r.currentClass = inSubclass
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := inMethod
		if method.Name.Lexeme == "init" {
			kind = inInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.error(e.Name, "can't read local variable in its own initializer")
			}
		}
		r.resolveLocal(e.ID(), e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID(), e.Name.Lexeme)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Literal:
		// no-op

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.This:
		if r.currentClass == noClass {
			r.error(e.Keyword, "can't use 'this' outside of a class")
			return
		}
		r.resolveLocal(e.ID(), "this")

	case *ast.Super:
		if r.currentClass == noClass {
			r.error(e.Keyword, "can't use 'super' outside of a class")
		} else if r.currentClass != inSubclass {
			r.error(e.Keyword, "can't use 'super' in a class with no superclass")
		}
		r.resolveLocal(e.ID(), "super")

	default:
		panic(fmt.Sprintf("resolver: unhandled expression type %T", e))
	}
}
