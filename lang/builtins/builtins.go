// Package builtins wires Hoot's native callables (spec §4.7) into an
// interpreter's global environment: clock, delay, input, read, write,
// request, and the string/list/map data-type constructors.
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/hootlang/hoot/lang/async"
	"github.com/hootlang/hoot/lang/interp"
)

// nativeFn is the shape every native built-in's Call implementation takes.
type nativeFn func(in *interp.Interpreter, args []interp.Value) (interp.Value, error)

// Register installs every native built-in into in's global environment.
// stdin backs `input`; driver schedules the background tasks delay/read/
// write/request hand off, using cfg's HTTP client timeout for `request`.
func Register(in *interp.Interpreter, driver *async.Driver, stdin io.Reader, cfg async.Config) {
	reader := bufio.NewReader(stdin)

	define := func(name string, arity int, fn nativeFn) {
		in.Globals.Define(name, &interp.NativeFunction{
			Name:    name,
			ArityFn: func() int { return arity },
			CallFn:  fn,
		})
	}

	define("clock", 0, nativeClock)
	define("input", 1, nativeInput(reader))
	define("delay", 2, nativeDelay(driver))
	define("read", 2, nativeRead(driver))
	define("write", 4, nativeWrite(driver))
	define("request", 5, nativeRequest(driver, cfg.HTTPTimeout))
	define("string", 1, nativeString)
	define("list", -1, nativeList)
	define("map", 0, nativeMap)
}

func nativeClock(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
	return interp.NumberValue(float64(time.Now().UnixNano()) / 1e9), nil
}

// nativeInput reads one line from reader after writing prompt to the
// interpreter's stdout, returning it as a string instance (spec §4.7).
func nativeInput(reader *bufio.Reader) nativeFn {
	return func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
		fmt.Fprint(in.Stdout, args[0].String())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("input: %w", err)
		}
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		return newStringInstance(line), nil
	}
}

// nativeDelay schedules callback to run after ms milliseconds, without
// occupying the worker pool read/write/request share (spec §4.7).
func nativeDelay(driver *async.Driver) nativeFn {
	return func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
		callback, ok := args[0].(interp.Callable)
		if !ok {
			return nil, fmt.Errorf("delay's first argument must be a function")
		}
		ms, ok := args[1].(interp.NumberValue)
		if !ok {
			return nil, fmt.Errorf("delay's second argument must be a number")
		}

		driver.BeginTimer()
		time.AfterFunc(time.Duration(float64(ms)*float64(time.Millisecond)), func() {
			driver.CompleteTimer(func() {
				if _, err := in.Invoke(callback, nil); err != nil {
					driver.ReportError(err)
				}
			})
		})
		return interp.NumberValue(0), nil
	}
}
