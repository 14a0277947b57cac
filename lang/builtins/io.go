package builtins

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hootlang/hoot/lang/async"
	"github.com/hootlang/hoot/lang/interp"
)

// nativeRead schedules a background file read, invoking callback(contents)
// with a string instance on success (spec §4.7), grounded on go-mix's
// std/file_io.go os.ReadFile usage and original_source/native.py's
// thread-pool-backed Read.
func nativeRead(driver *async.Driver) nativeFn {
	return func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
		path, ok := args[0].(interp.StringValue)
		if !ok {
			return nil, fmt.Errorf("read's first argument must be a string")
		}
		callback, ok := args[1].(interp.Callable)
		if !ok {
			return nil, fmt.Errorf("read's second argument must be a function")
		}

		driver.Spawn(func() (interp.Value, error) {
			data, err := os.ReadFile(string(path))
			if err != nil {
				return nil, err
			}
			return newStringInstance(string(data)), nil
		}, func(result interp.Value) {
			if _, err := in.Invoke(callback, []interp.Value{result}); err != nil {
				driver.ReportError(err)
			}
		}, driver.ReportError)

		return interp.Nil, nil
	}
}

// nativeWrite schedules a background file write, invoking callback() (if
// given) on completion (spec §4.7). mode follows the Python original's
// open() modes: "w" truncates, "a" appends.
func nativeWrite(driver *async.Driver) nativeFn {
	return func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
		path, ok := args[0].(interp.StringValue)
		if !ok {
			return nil, fmt.Errorf("write's first argument must be a string")
		}
		mode, ok := args[1].(interp.StringValue)
		if !ok {
			return nil, fmt.Errorf("write's second argument must be a string")
		}
		content, ok := textOf(args[2])
		if !ok {
			return nil, fmt.Errorf("write's third argument must be a string")
		}
		var callback interp.Callable
		if cb, ok := args[3].(interp.Callable); ok {
			callback = cb
		} else if args[3] != interp.Nil {
			return nil, fmt.Errorf("write's fourth argument must be a function or nil")
		}

		var flag int
		switch string(mode) {
		case "w":
			flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		case "a":
			flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		default:
			return nil, fmt.Errorf("write's mode must be \"w\" or \"a\", got %q", string(mode))
		}

		driver.Spawn(func() (interp.Value, error) {
			f, err := os.OpenFile(string(path), flag, 0644)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			if _, err := f.WriteString(content); err != nil {
				return nil, err
			}
			return interp.Nil, nil
		}, func(interp.Value) {
			if callback == nil {
				return
			}
			if _, err := in.Invoke(callback, nil); err != nil {
				driver.ReportError(err)
			}
		}, driver.ReportError)

		return interp.Nil, nil
	}
}

// nativeRequest schedules a background HTTP call, invoking
// callback(response) with a response instance carrying `body` (a string
// instance) and `headers` (a map instance) on success (spec §4.7).
// Grounded on go-mix's std/http.go httpRequest, reshaped onto the async
// task queue instead of running synchronously.
func nativeRequest(driver *async.Driver, timeout time.Duration) nativeFn {
	return func(in *interp.Interpreter, args []interp.Value) (interp.Value, error) {
		url, ok := args[0].(interp.StringValue)
		if !ok {
			return nil, fmt.Errorf("request's first argument must be a string")
		}
		var bodyReader io.Reader
		if body, ok := textOf(args[1]); ok {
			bodyReader = strings.NewReader(body)
		} else if args[1] != interp.Nil {
			return nil, fmt.Errorf("request's body argument must be a string or nil")
		}
		var headers *mapInstance
		if h, ok := args[2].(*mapInstance); ok {
			headers = h
		} else if args[2] != interp.Nil {
			return nil, fmt.Errorf("request's headers argument must be a map or nil")
		}
		method, ok := args[3].(interp.StringValue)
		if !ok {
			return nil, fmt.Errorf("request's method argument must be a string")
		}
		callback, ok := args[4].(interp.Callable)
		if !ok {
			return nil, fmt.Errorf("request's callback argument must be a function")
		}

		driver.Spawn(func() (interp.Value, error) {
			req, err := http.NewRequest(strings.ToUpper(string(method)), string(url), bodyReader)
			if err != nil {
				return nil, err
			}
			if headers != nil {
				headers.store.Iter(func(k string, v interp.Value) bool {
					if s, ok := textOf(v); ok {
						req.Header.Set(k, s)
					}
					return false
				})
			}

			client := &http.Client{Timeout: timeout}
			resp, err := client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, err
			}

			respHeaders := newMapInstance()
			for k, v := range resp.Header {
				respHeaders.store.Put(k, interp.StringValue(strings.Join(v, ", ")))
			}
			return newResponseInstance(newStringInstance(string(data)), respHeaders), nil
		}, func(result interp.Value) {
			if _, err := in.Invoke(callback, []interp.Value{result}); err != nil {
				driver.ReportError(err)
			}
		}, driver.ReportError)

		return interp.Nil, nil
	}
}
