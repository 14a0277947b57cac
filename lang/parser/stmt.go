package parser

import (
	"github.com/hootlang/hoot/lang/ast"
	"github.com/hootlang/hoot/lang/token"
)

func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.LET):
		return p.letDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	line := p.previous().Line
	name := p.consume(token.IDENTIFIER, "expected class name")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		p.consume(token.IDENTIFIER, "expected superclass name")
		superTok := p.previous()
		superclass = ast.NewVariable(p.newID(), superTok.Line, superTok)
	}

	p.consume(token.LEFT_BRACE, "expected '{' before class body")

	var methods []*ast.Function
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RIGHT_BRACE, "expected '}' after class body")

	return ast.NewClass(line, name, superclass, methods)
}

func (p *Parser) function(kind string) *ast.Function {
	line := p.peek().Line
	name := p.consume(token.IDENTIFIER, "expected "+kind+" name")
	p.consume(token.LEFT_PAREN, "expected '(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.error(p.peek(), "can't have more than 255 parameters")
			}
			params = append(params, p.consume(token.IDENTIFIER, "expected parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "expected ')' after parameters")

	p.consume(token.LEFT_BRACE, "expected '{' before "+kind+" body")
	body := p.block()
	return ast.NewFunction(line, name, params, body)
}

func (p *Parser) letDeclaration() ast.Stmt {
	line := p.previous().Line
	name := p.consume(token.IDENTIFIER, "expected variable name")

	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.consume(token.SEMICOLON, "expected ';' after variable declaration")
	return ast.NewLet(line, name, init)
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.BREAK):
		return p.breakStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.LEFT_BRACE):
		line := p.previous().Line
		return ast.NewBlock(line, p.block())
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	line := p.previous().Line
	value := p.expression()
	p.consume(token.SEMICOLON, "expected ';' after value")
	return ast.NewPrint(line, value)
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "expected ';' after return value")
	return ast.NewReturn(keyword.Line, keyword, value)
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(token.SEMICOLON, "expected ';' after 'break'")
	return ast.NewBreak(keyword.Line, keyword)
}

func (p *Parser) whileStatement() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "expected '(' after 'while'")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "expected ')' after condition")
	body := p.statement()
	return ast.NewWhile(line, cond, body)
}

// forStatement desugars `for (init; cond; post) body` into a block
// containing init followed by a while loop whose body is another block
// wrapping body and post, preserving per-iteration lexical scope exactly
// as a hand-written while loop would.
func (p *Parser) forStatement() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "expected '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		init = nil
	case p.match(token.LET):
		init = p.letDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "expected ';' after loop condition")

	var post ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		post = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "expected ')' after for clauses")

	body := p.statement()

	if post != nil {
		body = ast.NewBlock(line, []ast.Stmt{body, ast.NewExpression(line, post)})
	}
	if cond == nil {
		cond = ast.NewLiteral(p.newID(), line, true)
	}
	body = ast.NewWhile(line, cond, body)

	if init != nil {
		body = ast.NewBlock(line, []ast.Stmt{init, body})
	}
	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "expected '(' after 'if'")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "expected ')' after if condition")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return ast.NewIf(line, cond, then, els)
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		if s := p.declarationRecoverable(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RIGHT_BRACE, "expected '}' after block")
	return stmts
}

func (p *Parser) expressionStatement() ast.Stmt {
	line := p.peek().Line
	expr := p.expression()
	p.consume(token.SEMICOLON, "expected ';' after expression")
	return ast.NewExpression(line, expr)
}
