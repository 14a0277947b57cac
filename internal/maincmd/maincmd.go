// Package maincmd implements Hoot's command-line driver: `hoot [script]`
// runs a file, `hoot` with no argument starts a REPL (spec §6). Modeled on
// the teacher's internal/maincmd package (a Cmd parsed by mainer.Parser,
// dispatched via mainer.Stdio, signals cancelled through
// mainer.CancelOnSignal), but with a single run mode instead of the
// teacher's reflection-routed tokenize/parse/resolve subcommands, and exit
// codes computed by Hoot's own 0/64/65/70 contract rather than
// mainer.ExitCode's generic Success/Failure/InvalidArgs.
package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

const binName = "hoot"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<script>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<script>]
       %[1]s -h|--help
       %[1]s -v|--version

Interpreter for the %[1]s scripting language.

With no <script>, start an interactive REPL: each line is evaluated on its
own, error flags clear between lines, and an empty line exits. With one
<script> argument, read and run that file.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

Exit codes:
       0   success
       64  usage error
       65  compile error (lex/parse/resolve)
       70  runtime error
`, binName)
)

// Exit codes per spec §6. mainer.ExitCode is a plain named int, so these
// are constructed directly rather than reusing mainer's generic
// Success/Failure/InvalidArgs values, which don't carry the spec's
// distinctions.
const (
	exitSuccess      mainer.ExitCode = 0
	exitUsage        mainer.ExitCode = 64
	exitCompileError mainer.ExitCode = 65
	exitRuntimeError mainer.ExitCode = 70
)

// Cmd is Hoot's CLI entry point, parsed by mainer.Parser.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) > 1 {
		return fmt.Errorf("too many arguments: expected at most one script path")
	}
	return nil
}

// Main parses args and dispatches to the REPL or file runner.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return exitUsage
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return exitSuccess
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return exitSuccess
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	switch len(c.args) {
	case 0:
		return runREPL(ctx, stdio)
	case 1:
		return runFile(ctx, stdio, c.args[0])
	default:
		fmt.Fprintf(stdio.Stderr, "hoot: too many arguments\n%s", shortUsage)
		return exitUsage
	}
}
