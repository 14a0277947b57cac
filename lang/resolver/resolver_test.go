package resolver_test

import (
	"testing"

	"github.com/hootlang/hoot/lang/ast"
	"github.com/hootlang/hoot/lang/lexer"
	"github.com/hootlang/hoot/lang/parser"
	"github.com/hootlang/hoot/lang/resolver"
	"github.com/hootlang/hoot/lang/token"
	"github.com/stretchr/testify/require"
)

func parseAndResolve(t *testing.T, src string) ([]ast.Stmt, map[ast.NodeID]int, []string) {
	t.Helper()
	toks := lexer.New(src, func(line int, msg string) {
		t.Fatalf("unexpected lex error: %s", msg)
	}).ScanTokens()

	p := parser.New(toks, func(tok token.Token, msg string) {
		t.Fatalf("unexpected parse error: %s", msg)
	})
	stmts := p.Parse()

	var errs []string
	r := resolver.New(func(tok token.Token, msg string) {
		errs = append(errs, msg)
	})
	depths := r.Resolve(stmts)
	return stmts, depths, errs
}

func TestResolveBlockLocalDepth(t *testing.T) {
	// `print y` refers to a local of its own block and so gets a depth
	// entry; `x` is a global and is left out of the table
	src := `
let x = "outer";
{
  let y = x;
  print y;
}
`
	_, depths, errs := parseAndResolve(t, src)
	require.Empty(t, errs)
	require.NotEmpty(t, depths)
}

func TestResolveReturnOutsideFunction(t *testing.T) {
	_, _, errs := parseAndResolve(t, `return 1;`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "top-level")
}

func TestResolveReturnValueInInitializer(t *testing.T) {
	_, _, errs := parseAndResolve(t, `class A { init() { return 1; } }`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "initializer")
}

func TestResolveThisOutsideClass(t *testing.T) {
	_, _, errs := parseAndResolve(t, `print this;`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "this")
}

func TestResolveSuperWithoutSuperclass(t *testing.T) {
	_, _, errs := parseAndResolve(t, `class A { foo() { return super.bar(); } }`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "superclass")
}

func TestResolveBreakOutsideLoop(t *testing.T) {
	_, _, errs := parseAndResolve(t, `break;`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "loop")
}

func TestResolveSelfInheritance(t *testing.T) {
	_, _, errs := parseAndResolve(t, `class A < A {}`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "itself")
}

func TestResolveDuplicateDeclaration(t *testing.T) {
	_, _, errs := parseAndResolve(t, `{ let a = 1; let a = 2; }`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "already a variable")
}

func TestResolveReadInOwnInitializer(t *testing.T) {
	_, _, errs := parseAndResolve(t, `{ let a = a; }`)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "own initializer")
}

func TestResolveCurrentScopeNames(t *testing.T) {
	src := `
fun f() {
  let a = 1;
  let b = 2;
}
`
	toks := lexer.New(src, nil).ScanTokens()
	p := parser.New(toks, nil)
	stmts := p.Parse()

	r := resolver.New(nil)
	depths := r.Resolve(stmts)
	require.NotNil(t, depths)
	// every scope has been closed again once resolution is done
	require.Empty(t, r.CurrentScopeNames())
}
