// Package parser implements the recursive-descent parser that transforms a
// token stream into an abstract syntax tree.
package parser

import (
	"fmt"

	"github.com/hootlang/hoot/lang/ast"
	"github.com/hootlang/hoot/lang/token"
	"golang.org/x/exp/slices"
)

// synchronizeKinds are the token kinds that plausibly start a new
// statement; synchronize() stops discarding tokens once it sees one.
var synchronizeKinds = []token.Kind{
	token.CLASS, token.FUN, token.LET, token.FOR, token.IF, token.WHILE,
	token.BREAK, token.PRINT, token.RETURN,
}

const maxArgs = 255

// Parser parses a flat token slice (as produced by lang/lexer) into a list
// of statements. It never stops at the first error: on a parse error it
// reports through errHandler, then synchronizes to the next statement
// boundary and keeps going, so a single run can report multiple errors
// (spec §4.2).
type Parser struct {
	tokens []token.Token
	cur    int
	nextID ast.NodeID
	err    func(tok token.Token, message string)
}

// New creates a Parser over tokens. errHandler is called once per parse
// error encountered.
func New(tokens []token.Token, errHandler func(tok token.Token, message string)) *Parser {
	return &Parser{tokens: tokens, err: errHandler}
}

// parseError is the internal panic/recover control-flow signal used to
// unwind to the nearest statement boundary after a reported error. It is
// never exposed to callers.
type parseError struct{}

// Parse parses the whole token stream and returns the top-level statements.
// It keeps parsing after an error, synchronizing to the next statement, so
// that a single run reports every syntax error it finds rather than only
// the first (matching the driver's had_error/continue-reporting contract).
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declarationRecoverable(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *Parser) declarationRecoverable() (s ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				s = nil
				return
			}
			panic(r)
		}
	}()
	return p.declaration()
}

func (p *Parser) newID() ast.NodeID {
	p.nextID++
	return p.nextID
}

// --- token stream primitives ---

func (p *Parser) peek() token.Token { return p.tokens[p.cur] }

func (p *Parser) previous() token.Token { return p.tokens[p.cur-1] }

func (p *Parser) atEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *Parser) check(k token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(k token.Kind, message string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

func (p *Parser) error(tok token.Token, message string) parseError {
	if p.err != nil {
		if tok.Kind == token.EOF {
			p.err(tok, fmt.Sprintf("at end: %s", message))
		} else {
			p.err(tok, fmt.Sprintf("at '%s': %s", tok.Lexeme, message))
		}
	}
	return parseError{}
}

// synchronize discards tokens until it reaches what looks like the start of
// the next statement, so a single parse error does not cascade into many
// spurious follow-on errors.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		if slices.Contains(synchronizeKinds, p.peek().Kind) {
			return
		}
		p.advance()
	}
}
