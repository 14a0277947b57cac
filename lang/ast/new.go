package ast

import "github.com/hootlang/hoot/lang/token"

// The parser does not have access to the unexported base/stmtBase fields,
// so every node is constructed through one of these functions, which take
// the NodeID the parser's counter assigned.

func NewLiteral(id NodeID, line int, value any) *Literal {
	return &Literal{base: base{id, line}, Value: value}
}

func NewVariable(id NodeID, line int, name token.Token) *Variable {
	return &Variable{base: base{id, line}, Name: name}
}

func NewAssign(id NodeID, line int, name token.Token, value Expr) *Assign {
	return &Assign{base: base{id, line}, Name: name, Value: value}
}

func NewUnary(id NodeID, line int, op token.Token, right Expr) *Unary {
	return &Unary{base: base{id, line}, Op: op, Right: right}
}

func NewBinary(id NodeID, line int, left Expr, op token.Token, right Expr) *Binary {
	return &Binary{base: base{id, line}, Left: left, Op: op, Right: right}
}

func NewLogical(id NodeID, line int, left Expr, op token.Token, right Expr) *Logical {
	return &Logical{base: base{id, line}, Left: left, Op: op, Right: right}
}

func NewGrouping(id NodeID, line int, inner Expr) *Grouping {
	return &Grouping{base: base{id, line}, Inner: inner}
}

func NewCall(id NodeID, line int, callee Expr, paren token.Token, args []Expr) *Call {
	return &Call{base: base{id, line}, Callee: callee, Paren: paren, Args: args}
}

func NewGet(id NodeID, line int, object Expr, name token.Token) *Get {
	return &Get{base: base{id, line}, Object: object, Name: name}
}

func NewSet(id NodeID, line int, object Expr, name token.Token, value Expr) *Set {
	return &Set{base: base{id, line}, Object: object, Name: name, Value: value}
}

func NewThis(id NodeID, line int, keyword token.Token) *This {
	return &This{base: base{id, line}, Keyword: keyword}
}

func NewSuper(id NodeID, line int, keyword, method token.Token) *Super {
	return &Super{base: base{id, line}, Keyword: keyword, Method: method}
}
