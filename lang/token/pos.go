package token

import "fmt"

// AtLine formats a source line for inclusion in a diagnostic message, e.g.
// "[line 12]". Hoot's diagnostics only ever need a line number (no column),
// unlike the teacher's packed line/column Pos.
func AtLine(line int) string {
	return fmt.Sprintf("[line %d]", line)
}
