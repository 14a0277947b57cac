package maincmd

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hootlang/hoot/internal/filetest"
	"github.com/mna/mainer"
)

var testUpdateGoldenTests = flag.Bool("test.update-golden-tests", false, "If set, replace expected golden test results with actual results.")

// TestGolden runs every testdata/in/*.hoot script to completion and diffs
// its stdout/stderr against testdata/out's golden files, grounded on the
// teacher's own combination of internal/filetest and internal/maincmd in
// lang/parser/parser_test.go, retargeted from parse-tree dumps to whole
// program execution.
func TestGolden(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".hoot") {
		t.Run(fi.Name(), func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			stdio := mainer.Stdio{
				Stdin:  strings.NewReader(""),
				Stdout: &stdout,
				Stderr: &stderr,
			}

			runFile(context.Background(), stdio, filepath.Join(srcDir, fi.Name()))

			filetest.DiffOutput(t, fi, stdout.String(), resultDir, testUpdateGoldenTests)
			filetest.DiffErrors(t, fi, stderr.String(), resultDir, testUpdateGoldenTests)
		})
	}
}
