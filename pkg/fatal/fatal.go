package fatal

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
)

// maxFrames bounds the backtrace; deeper stacks are truncated.
const maxFrames = 64

var (
	mu   sync.Mutex
	out  io.Writer = os.Stderr
	exit           = os.Exit
)

// Panic writes a structured failure report to stderr and terminates the
// process with exit status 1. It never returns.
//
// The report contains the current goroutine id, msg, the source location of
// the Panic call and a stack backtrace from the outermost frame to the call
// site. Panic is safe to call from any goroutine; report writing is
// serialized so concurrent panics cannot interleave.
func Panic(msg string) {
	abort(msg, callerSkip)
}

// Panicf is Panic with fmt.Sprintf formatting of the message.
func Panicf(format string, args ...any) {
	abort(fmt.Sprintf(format, args...), callerSkip)
}

// callerSkip drops runtime.Callers, capture, abort and Panic itself, leaving
// the Panic call site as the innermost recorded frame.
const callerSkip = 4

func abort(msg string, skip int) {
	stack := capture(skip)

	location := "<unknown>"
	if len(stack) > 0 {
		location = fmt.Sprintf("%s:%d", stack[0].File, stack[0].Line)
	}

	mu.Lock()
	fmt.Fprintf(out, "goroutine '%s' panicked at '%s', '%s'\n", goroutineID(), msg, location)
	fmt.Fprintln(out, "stack backtrace:")
	for i := range stack {
		f := stack[len(stack)-1-i] // outermost first
		fmt.Fprintf(out, "\t%2d: %s:%d - %s\n", i, f.File, f.Line, f.Function)
	}
	mu.Unlock()

	exit(1)
}

// capture returns the call frames above skip, innermost first.
func capture(skip int) []runtime.Frame {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return nil
	}

	var stack []runtime.Frame
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		stack = append(stack, f)
		if !more {
			break
		}
	}
	return stack
}

// goroutineID extracts the numeric id from the runtime stack header
// ("goroutine N [running]:"). Go deliberately hides goroutine ids; this is
// the only portable way to get one for diagnostics.
func goroutineID() string {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)

	fields := strings.Fields(string(buf[:n]))
	if len(fields) >= 2 {
		return fields[1]
	}
	return "?"
}
