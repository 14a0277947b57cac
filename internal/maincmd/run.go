package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/hootlang/hoot/internal/report"
	"github.com/hootlang/hoot/lang/async"
	"github.com/hootlang/hoot/lang/builtins"
	"github.com/hootlang/hoot/lang/interp"
	"github.com/hootlang/hoot/lang/lexer"
	"github.com/hootlang/hoot/lang/parser"
	"github.com/hootlang/hoot/lang/resolver"
	"github.com/hootlang/hoot/lang/token"
	"github.com/mna/mainer"
)

// session is one Hoot run: a persistent interpreter, global environment
// and async driver shared across every `run` call. A file run makes one
// session and one call; a REPL makes one session reused across lines
// (original_source/hoot.py's Hoot object persists its Interpreter the same
// way, resetting only its error flags between lines).
type session struct {
	interp *interp.Interpreter
	driver *async.Driver
}

func newSession(stdio mainer.Stdio) (*session, error) {
	var cfg async.Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing async config: %w", err)
	}

	in := interp.New(stdio.Stdout)
	driver := async.NewDriver(cfg, func(err error) {
		fmt.Fprintf(stdio.Stderr, "async task failed: %s\n", err)
	})
	builtins.Register(in, driver, stdio.Stdin, cfg)

	return &session{interp: in, driver: driver}, nil
}

// run lexes, parses, resolves and interprets source, then drains the async
// driver if the program ran without a compile or runtime error (on an
// error it returns without draining). It reports every compile diagnostic
// to stdio.Stderr, every runtime error to stdio.Stdout, and
// returns the spec §6 exit code for this run (0, 65 or 70).
func (s *session) run(stdio mainer.Stdio, source string) mainer.ExitCode {
	diags := &report.Diagnostics{}

	toks := lexer.New(source, func(line int, message string) {
		diags.Add(line, "", message)
	}).ScanTokens()

	p := parser.New(toks, func(tok token.Token, message string) {
		diags.Add(tok.Line, whereClause(tok), message)
	})
	stmts := p.Parse()

	if diags.HasErrors() {
		diags.Print(stdio.Stderr)
		return exitCompileError
	}

	r := resolver.New(func(tok token.Token, message string) {
		diags.Add(tok.Line, whereClause(tok), message)
	})
	depths := r.Resolve(stmts)

	if diags.HasErrors() {
		diags.Print(stdio.Stderr)
		return exitCompileError
	}

	s.interp.SetDepths(depths)
	if err := s.interp.Interpret(stmts); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			fmt.Fprintf(stdio.Stdout, "%s %s\n", token.AtLine(rerr.Token.Line), rerr.Message)
		} else {
			fmt.Fprintln(stdio.Stdout, err)
		}
		return exitRuntimeError
	}

	s.driver.Drain()
	return exitSuccess
}

// whereClause renders the "<where>" clause spec §6's
// "[line L] Error<where>: <message>" format requires, including its own
// leading space, matching original_source/hoot.py's error()/report().
func whereClause(tok token.Token) string {
	if tok.Kind == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

func runFile(ctx context.Context, stdio mainer.Stdio, path string) mainer.ExitCode {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "hoot: %s\n", err)
		return exitUsage
	}

	s, err := newSession(stdio)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "hoot: %s\n", err)
		return exitUsage
	}
	return s.run(stdio, string(data))
}
