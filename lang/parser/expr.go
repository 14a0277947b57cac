package parser

import (
	"github.com/hootlang/hoot/lang/ast"
	"github.com/hootlang/hoot/lang/token"
)

// expression ::= assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment ::= ( call "." )? IDENTIFIER "=" assignment | logicOr
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch e := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(p.newID(), e.Line(), e.Name, value)
		case *ast.Get:
			return ast.NewSet(p.newID(), e.Line(), e.Object, e.Name, value)
		default:
			p.error(equals, "invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogical(p.newID(), expr.Line(), expr, op, right)
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(p.newID(), expr.Line(), expr, op, right)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(p.newID(), expr.Line(), expr, op, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(p.newID(), expr.Line(), expr, op, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(p.newID(), expr.Line(), expr, op, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(p.newID(), expr.Line(), expr, op, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnary(p.newID(), op.Line, op, right)
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "expected property name after '.'")
			expr = ast.NewGet(p.newID(), expr.Line(), expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.error(p.peek(), "can't have more than 255 arguments")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "expected ')' after arguments")
	return ast.NewCall(p.newID(), callee.Line(), callee, paren, args)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteral(p.newID(), p.previous().Line, false)
	case p.match(token.TRUE):
		return ast.NewLiteral(p.newID(), p.previous().Line, true)
	case p.match(token.NIL):
		return ast.NewLiteral(p.newID(), p.previous().Line, nil)
	case p.match(token.NUMBER, token.STRING):
		tok := p.previous()
		return ast.NewLiteral(p.newID(), tok.Line, tok.Literal)
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "expected '.' after 'super'")
		method := p.consume(token.IDENTIFIER, "expected superclass method name")
		return ast.NewSuper(p.newID(), keyword.Line, keyword, method)
	case p.match(token.THIS):
		keyword := p.previous()
		return ast.NewThis(p.newID(), keyword.Line, keyword)
	case p.match(token.IDENTIFIER):
		tok := p.previous()
		return ast.NewVariable(p.newID(), tok.Line, tok)
	case p.match(token.LEFT_PAREN):
		line := p.previous().Line
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "expected ')' after expression")
		return ast.NewGrouping(p.newID(), line, expr)
	default:
		panic(p.error(p.peek(), "expected expression"))
	}
}
