package maincmd

import (
	"context"
	"fmt"

	"github.com/chzyer/readline"
	"github.com/mna/mainer"
)

const replPrompt = "hoot> "

// runREPL reads one line at a time, evaluating each fresh: error flags
// clear between lines (a new session per line would also clear the
// interpreter's global state, so runREPL instead keeps one session across
// lines and only lets run's own *report.Diagnostics start empty each call,
// matching original_source/hoot.py's run_prompt/reset). An empty line
// exits (spec §6). Grounded on
// _examples/akashmaji946-go-mix/repl/repl.go's readline.New usage, without
// that REPL's banner/`.exit` command/history-persistence flourishes, which
// spec §6 does not call for.
func runREPL(ctx context.Context, stdio mainer.Stdio) mainer.ExitCode {
	// readline talks to the real terminal directly rather than stdio's
	// Stdin/Stdout (matching go-mix's repl.Start, whose reader/writer
	// parameters are likewise unused once readline takes over line editing).
	rl, err := readline.New(replPrompt)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "hoot: %s\n", err)
		return exitUsage
	}
	defer rl.Close()

	s, err := newSession(stdio)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "hoot: %s\n", err)
		return exitUsage
	}

	for {
		select {
		case <-ctx.Done():
			return exitSuccess
		default:
		}

		line, err := rl.Readline()
		if err != nil || line == "" {
			return exitSuccess
		}

		rl.SaveHistory(line)
		s.run(stdio, line)
	}
}
