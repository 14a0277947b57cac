package builtins_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hootlang/hoot/lang/async"
	"github.com/hootlang/hoot/lang/builtins"
	"github.com/hootlang/hoot/lang/interp"
	"github.com/hootlang/hoot/lang/lexer"
	"github.com/hootlang/hoot/lang/parser"
	"github.com/hootlang/hoot/lang/resolver"
	"github.com/hootlang/hoot/lang/token"
	"github.com/stretchr/testify/require"
)

type harness struct {
	in     *interp.Interpreter
	driver *async.Driver
	out    *bytes.Buffer
}

func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()
	var out bytes.Buffer
	in := interp.New(&out)
	driver := async.NewDriver(async.Config{WorkerPoolSize: 2, HTTPTimeout: 5 * time.Second}, func(err error) {
		t.Fatalf("unexpected async error: %v", err)
	})
	builtins.Register(in, driver, strings.NewReader(stdin), async.Config{WorkerPoolSize: 2, HTTPTimeout: 5 * time.Second})
	return &harness{in: in, driver: driver, out: &out}
}

func (h *harness) run(t *testing.T, src string) error {
	t.Helper()
	toks := lexer.New(src, func(line int, msg string) { t.Fatalf("lex error: %s", msg) }).ScanTokens()
	p := parser.New(toks, func(tok token.Token, msg string) { t.Fatalf("parse error: %s", msg) })
	stmts := p.Parse()
	r := resolver.New(func(tok token.Token, msg string) { t.Fatalf("resolve error: %s", msg) })
	depths := r.Resolve(stmts)
	h.in.SetDepths(depths)
	if err := h.in.Interpret(stmts); err != nil {
		return err
	}
	h.driver.Drain()
	return nil
}

func TestClockReturnsNumber(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.run(t, `print clock() > 0;`))
	require.Equal(t, "true\n", h.out.String())
}

func TestStringAtAlterLength(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.run(t, `
let s = string("abc");
print s.length();
print s.at(1);
s.alter(1, "z");
print s.at(1);
`))
	require.Equal(t, "3\nb\nz\n", h.out.String())
}

func TestListPushPopAtAlter(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.run(t, `
let l = list(1, 2, 3);
print l.length();
l.push(4);
print l.at(3);
print l.pop();
l.alter(0, 9);
print l.at(0);
`))
	require.Equal(t, "3\n4\n4\n9\n", h.out.String())
}

func TestMapGetSet(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.run(t, `
let m = map();
m.set("a", 1);
print m.get("a");
print m.get("missing");
`))
	require.Equal(t, "1\nnil\n", h.out.String())
}

func TestInputReadsLineAsStringInstance(t *testing.T) {
	h := newHarness(t, "hello\n")
	require.NoError(t, h.run(t, `
let name = input("name: ");
print name.length();
`))
	require.Equal(t, "name: 5\n", h.out.String())
}

func TestDelayInvokesCallbackAfterDrain(t *testing.T) {
	h := newHarness(t, "")
	require.NoError(t, h.run(t, `
fun onFire() { print "fired"; }
delay(onFire, 1);
print "before";
`))
	require.Equal(t, "before\nfired\n", h.out.String())
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	h := newHarness(t, "")
	path := filepath.Join(t.TempDir(), "out.txt")
	src := `
fun onRead(contents) { print contents.length(); }
fun onWritten() {
  print "written";
  read("` + path + `", onRead);
}
write("` + path + `", "w", "hello", onWritten);
`
	require.NoError(t, h.run(t, src))
	require.Equal(t, "written\n5\n", h.out.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}

func TestRequestInvokesCallbackWithResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "yes")
		w.Write([]byte("pong"))
	}))
	defer srv.Close()

	h := newHarness(t, "")
	src := `
fun onResponse(resp) {
  print resp.body.length();
}
request("` + srv.URL + `", nil, nil, "GET", onResponse);
`
	require.NoError(t, h.run(t, src))
	require.Equal(t, "4\n", h.out.String())
}
