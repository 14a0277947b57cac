package maincmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"
)

func newStdio(stdin string) (mainer.Stdio, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return mainer.Stdio{
		Stdin:  strings.NewReader(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.hoot")
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestRunFileSuccess(t *testing.T) {
	stdio, stdout, _ := newStdio("")
	path := writeScript(t, `print 1 + 2;`)

	code := runFile(context.Background(), stdio, path)
	require.Equal(t, exitSuccess, code)
	require.Equal(t, "3\n", stdout.String())
}

func TestRunFileCompileError(t *testing.T) {
	stdio, _, stderr := newStdio("")
	path := writeScript(t, `let x = ;`)

	code := runFile(context.Background(), stdio, path)
	require.Equal(t, exitCompileError, code)
	require.Contains(t, stderr.String(), "[line 1]")
}

func TestRunFileRuntimeError(t *testing.T) {
	stdio, stdout, _ := newStdio("")
	path := writeScript(t, `print 1 + "a";`)

	code := runFile(context.Background(), stdio, path)
	require.Equal(t, exitRuntimeError, code)
	require.Contains(t, stdout.String(), "[line 1]")
}

func TestRunFileMissingScriptIsUsageError(t *testing.T) {
	stdio, _, stderr := newStdio("")

	code := runFile(context.Background(), stdio, filepath.Join(t.TempDir(), "missing.hoot"))
	require.Equal(t, exitUsage, code)
	require.NotEmpty(t, stderr.String())
}

func TestSessionPersistsGlobalsAcrossRuns(t *testing.T) {
	stdio, stdout, _ := newStdio("")
	s, err := newSession(stdio)
	require.NoError(t, err)

	require.Equal(t, exitSuccess, s.run(stdio, `let count = 1;`))
	require.Equal(t, exitSuccess, s.run(stdio, `print count;`))
	require.Equal(t, "1\n", stdout.String())
}
