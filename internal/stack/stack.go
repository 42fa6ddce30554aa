// stack.go — bounded call-stack capture shared by defects and ctxerr layers.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames so inlined frames resolve
//     correctly (FuncForPC would report the outer function only).
//   - Bounded depth; capture only happens on failure paths, never on success.
//   - No policy here: callers decide when a stack is worth paying for, and
//     how deep (internal/config StackDepth).
//
// Skip accounting:
//   - runtime.Callers(0, ...) starts at runtime.Callers itself, 1 at its
//     caller (Capture), 2 at Capture's caller.
//   - Capture adds those two, so Capture(0, n) begins at whoever called
//     Capture. A helper that captures on behalf of its own caller passes 1,
//     and so on for each wrapper in between.
//   - Inlined frames count as frames for skip purposes; CallersFrames
//     expands them, so the numbering above holds with or without inlining.
package stack

import (
	"fmt"
	"io"
	"runtime"
)

// Frame is a single resolved call site.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Stack is a list of frames, most recent call first.
type Stack []Frame

// DefaultDepth bounds captures when the caller passes a non-positive depth.
const DefaultDepth = 64

// Capture records up to maxDepth frames. skip=0 makes the first frame the
// caller of Capture; each extra skip drops one more frame.
func Capture(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = DefaultDepth
	}

	// +2: runtime.Callers itself and Capture.
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// WriteTo renders the frames one per line, indented, in the "%+v" layout
// used by defects and context errors.
func (s Stack) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, fr := range s {
		n, err := fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
