package ast_test

import (
	"testing"

	"github.com/hootlang/hoot/lang/ast"
	"github.com/hootlang/hoot/lang/token"
	"github.com/stretchr/testify/require"
)

func TestNodeIDsAreDistinctPerConstruction(t *testing.T) {
	a := ast.NewLiteral(1, 1, 1.0)
	b := ast.NewLiteral(2, 1, 2.0)
	require.NotEqual(t, a.ID(), b.ID())
	require.Equal(t, ast.NodeID(1), a.ID())
	require.Equal(t, ast.NodeID(2), b.ID())
}

func TestPrintSmokeTest(t *testing.T) {
	name := token.Token{Kind: token.IDENTIFIER, Lexeme: "x", Line: 1}
	lit := ast.NewLiteral(1, 1, 1.0)
	let := ast.NewLet(1, name, lit)
	printVar := ast.NewVariable(2, 2, name)
	stmt := ast.NewPrint(2, printVar)

	out := ast.Print([]ast.Stmt{let, stmt})
	require.Contains(t, out, "let x")
	require.Contains(t, out, "print x")
}

func TestClassNodeHoldsMethods(t *testing.T) {
	init := ast.NewFunction(1, token.Token{Kind: token.IDENTIFIER, Lexeme: "init"}, nil, nil)
	class := ast.NewClass(1, token.Token{Kind: token.IDENTIFIER, Lexeme: "Foo"}, nil, []*ast.Function{init})
	require.Len(t, class.Methods, 1)
	require.Equal(t, "init", class.Methods[0].Name.Lexeme)
}
