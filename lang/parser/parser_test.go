package parser_test

import (
	"testing"

	"github.com/hootlang/hoot/lang/ast"
	"github.com/hootlang/hoot/lang/lexer"
	"github.com/hootlang/hoot/lang/parser"
	"github.com/hootlang/hoot/lang/token"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) ([]ast.Stmt, []string) {
	t.Helper()
	toks := lexer.New(src, func(line int, msg string) {
		t.Fatalf("unexpected lex error: %s", msg)
	}).ScanTokens()

	var errs []string
	p := parser.New(toks, func(tok token.Token, msg string) {
		errs = append(errs, msg)
	})
	return p.Parse(), errs
}

func TestParseLetDeclaration(t *testing.T) {
	stmts, errs := parse(t, `let x = 1;`)
	require.Empty(t, errs)
	require.Len(t, stmts, 1)
	let, ok := stmts[0].(*ast.Let)
	require.True(t, ok)
	require.Equal(t, "x", let.Name.Lexeme)
	require.NotNil(t, let.Initializer)
}

func TestParseBinaryPrecedence(t *testing.T) {
	stmts, errs := parse(t, `print 1 + 2 * 3;`)
	require.Empty(t, errs)
	printStmt := stmts[0].(*ast.Print)
	bin := printStmt.Expr.(*ast.Binary)
	require.Equal(t, "+", bin.Op.Lexeme)
	// right side must be the higher-precedence 2 * 3 grouped together
	rhs := bin.Right.(*ast.Binary)
	require.Equal(t, "*", rhs.Op.Lexeme)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, errs := parse(t, `for (let i = 0; i < 3; i = i + 1) print i;`)
	require.Empty(t, errs)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok, "for loop desugars to a wrapping block containing the initializer")
	require.Len(t, outer.Stmts, 2)
	_, isLet := outer.Stmts[0].(*ast.Let)
	require.True(t, isLet)
	_, isWhile := outer.Stmts[1].(*ast.While)
	require.True(t, isWhile)
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts, errs := parse(t, `class B < A { foo() { return 1; } }`)
	require.Empty(t, errs)
	class := stmts[0].(*ast.Class)
	require.Equal(t, "B", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	require.Equal(t, "A", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	require.Equal(t, "foo", class.Methods[0].Name.Lexeme)
}

func TestParseSynchronizesAfterError(t *testing.T) {
	stmts, errs := parse(t, `let = ; let y = 2;`)
	require.NotEmpty(t, errs)
	// the parser recovers and still parses the second, well-formed statement
	found := false
	for _, s := range stmts {
		if let, ok := s.(*ast.Let); ok && let.Name.Lexeme == "y" {
			found = true
		}
	}
	require.True(t, found)
}

func TestParseAssignmentTarget(t *testing.T) {
	stmts, errs := parse(t, `x.y = 1;`)
	require.Empty(t, errs)
	exprStmt := stmts[0].(*ast.Expression)
	_, ok := exprStmt.Expr.(*ast.Set)
	require.True(t, ok)
}

func TestParseInvalidAssignmentTargetReportsError(t *testing.T) {
	_, errs := parse(t, `1 = 2;`)
	require.NotEmpty(t, errs)
}
