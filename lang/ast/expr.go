package ast

import "github.com/hootlang/hoot/lang/token"

type (
	// Literal is a literal number, string, bool, or nil.
	Literal struct {
		base
		Value any // float64, string, bool, or nil
	}

	// Variable is a bare identifier used as an expression, e.g. `x`.
	Variable struct {
		base
		Name token.Token
	}

	// Assign is an assignment expression, e.g. `x = 1`.
	Assign struct {
		base
		Name  token.Token
		Value Expr
	}

	// Unary is a unary operator expression, e.g. `-x`, `!x`.
	Unary struct {
		base
		Op    token.Token
		Right Expr
	}

	// Binary is a binary operator expression, e.g. `x + y`.
	Binary struct {
		base
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// Logical is a short-circuiting `and`/`or` expression.
	Logical struct {
		base
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// Grouping is a parenthesized expression, e.g. `(x)`.
	Grouping struct {
		base
		Inner Expr
	}

	// Call is a function or method call, e.g. `f(a, b)`.
	Call struct {
		base
		Callee Expr
		Paren  token.Token // closing paren, for error reporting
		Args   []Expr
	}

	// Get is a property read, e.g. `x.y`.
	Get struct {
		base
		Object Expr
		Name   token.Token
	}

	// Set is a property write, e.g. `x.y = z`.
	Set struct {
		base
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// This is a `this` reference inside a method body.
	This struct {
		base
		Keyword token.Token
	}

	// Super is a `super.method` reference inside a subclass method body.
	Super struct {
		base
		Keyword token.Token
		Method  token.Token
	}
)

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}
