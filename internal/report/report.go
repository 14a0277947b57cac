// Package report collects and prints Hoot's compile-time diagnostics (lex,
// parse and resolve errors), modeled on the teacher's lang/scanner
// ErrorList pattern (a slice of positioned messages with a Sort/Err-style
// API), adapted to Hoot's plain `[line N]` positions instead of a packed,
// multi-file Pos.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
)

// Diagnostic is a single reported compile-time error. Where is the
// "<where>" clause from spec §6's "[line L] Error<where>: <message>"
// format, including its own leading space (" at end", " at 'x'", or "" for
// lex errors, which carry no token to point at).
type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Diagnostics accumulates diagnostics across one lex/parse/resolve run. The
// zero value is ready to use.
type Diagnostics struct {
	items []Diagnostic
}

// Add records a diagnostic at line, with the given where-clause (empty for
// lex errors, which have no token) and message.
func (d *Diagnostics) Add(line int, where, message string) {
	d.items = append(d.items, Diagnostic{Line: line, Where: where, Message: message})
}

// HasErrors reports whether any diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.items) > 0
}

// Sort orders diagnostics by line number, stably.
func (d *Diagnostics) Sort() {
	sort.SliceStable(d.items, func(i, j int) bool { return d.items[i].Line < d.items[j].Line })
}

// Print writes every diagnostic to w, one per line, in red when the
// terminal supports color (github.com/fatih/color auto-detects this).
func (d *Diagnostics) Print(w io.Writer) {
	d.Sort()
	red := color.New(color.FgRed)
	for _, item := range d.items {
		red.Fprintln(w, item.String())
	}
}
