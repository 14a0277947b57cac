package ast

import (
	"fmt"
	"strings"

	"github.com/hootlang/hoot/lang/token"
)

// Print renders a debug tree of stmts, one line per node, indented by
// nesting depth. It is a debugging aid that the REPL/CLI driver does not
// call, and is a type-switch walk rather than a Visitor, matching the
// evaluator's own dispatch style.
func Print(stmts []Stmt) string {
	var sb strings.Builder
	for _, s := range stmts {
		printStmt(&sb, s, 0)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func printStmt(sb *strings.Builder, s Stmt, depth int) {
	indent(sb, depth)
	switch s := s.(type) {
	case *Expression:
		fmt.Fprintf(sb, "expr %s\n", printExpr(s.Expr))
	case *Print:
		fmt.Fprintf(sb, "print %s\n", printExpr(s.Expr))
	case *Let:
		fmt.Fprintf(sb, "let %s", s.Name.Lexeme)
		if s.Initializer != nil {
			fmt.Fprintf(sb, " = %s", printExpr(s.Initializer))
		}
		sb.WriteString("\n")
	case *Block:
		sb.WriteString("block\n")
		for _, st := range s.Stmts {
			printStmt(sb, st, depth+1)
		}
	case *If:
		fmt.Fprintf(sb, "if %s\n", printExpr(s.Cond))
		printStmt(sb, s.Then, depth+1)
		if s.Else != nil {
			indent(sb, depth)
			sb.WriteString("else\n")
			printStmt(sb, s.Else, depth+1)
		}
	case *While:
		fmt.Fprintf(sb, "while %s\n", printExpr(s.Cond))
		printStmt(sb, s.Body, depth+1)
	case *Break:
		sb.WriteString("break\n")
	case *Function:
		fmt.Fprintf(sb, "fun %s(%s)\n", s.Name.Lexeme, joinParams(s.Params))
		for _, st := range s.Body {
			printStmt(sb, st, depth+1)
		}
	case *Class:
		fmt.Fprintf(sb, "class %s\n", s.Name.Lexeme)
		for _, m := range s.Methods {
			printStmt(sb, m, depth+1)
		}
	case *Return:
		sb.WriteString("return")
		if s.Value != nil {
			fmt.Fprintf(sb, " %s", printExpr(s.Value))
		}
		sb.WriteString("\n")
	default:
		fmt.Fprintf(sb, "<unknown stmt %T>\n", s)
	}
}

func joinParams(params []token.Token) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Lexeme
	}
	return strings.Join(names, ", ")
}

func printExpr(e Expr) string {
	switch e := e.(type) {
	case *Literal:
		return fmt.Sprintf("%v", e.Value)
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return fmt.Sprintf("(%s = %s)", e.Name.Lexeme, printExpr(e.Value))
	case *Unary:
		return fmt.Sprintf("(%s%s)", e.Op.Lexeme, printExpr(e.Right))
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", printExpr(e.Left), e.Op.Lexeme, printExpr(e.Right))
	case *Logical:
		return fmt.Sprintf("(%s %s %s)", printExpr(e.Left), e.Op.Lexeme, printExpr(e.Right))
	case *Grouping:
		return fmt.Sprintf("(group %s)", printExpr(e.Inner))
	case *Call:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = printExpr(a)
		}
		return fmt.Sprintf("(call %s %s)", printExpr(e.Callee), strings.Join(args, " "))
	case *Get:
		return fmt.Sprintf("(get %s %s)", printExpr(e.Object), e.Name.Lexeme)
	case *Set:
		return fmt.Sprintf("(set %s %s %s)", printExpr(e.Object), e.Name.Lexeme, printExpr(e.Value))
	case *This:
		return "this"
	case *Super:
		return fmt.Sprintf("(super %s)", e.Method.Lexeme)
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}
