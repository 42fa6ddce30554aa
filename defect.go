// defect.go — programming defects raised by the carrier runtime.
//
// A defect means the carrier contract was broken: a zero Marker was used, a
// signal arrived with nothing in the slot, or an implicit conversion was asked
// for between unrelated types. Defects are never carried; they panic as
// ordinary (foreign) values so every Materialize lets them through.
package xgxcarrier

import (
	"errors"
	"fmt"
	"io"

	"github.com/xgx-io/xgx-carrier/internal/stack"
)

// Frame is one call site of a recorded stack.
type Frame = stack.Frame

// DefectError describes a broken carrier contract. It always records the
// stack at the point of detection.
type DefectError struct {
	msg   string
	cause error
	stk   stack.Stack
}

func newDefect(cause error, format string, args ...any) *DefectError {
	d := &DefectError{
		msg:   fmt.Sprintf(format, args...),
		cause: cause,
		stk:   stack.Capture(2, settings().StackDepth),
	}
	logDefect(d)
	return d
}

func (e *DefectError) Error() string {
	if e.cause != nil {
		return "defect: " + e.msg + ": " + e.cause.Error()
	}
	return "defect: " + e.msg
}

func (e *DefectError) Unwrap() error { return e.cause }

// Stack returns the frames recorded when the defect was detected.
func (e *DefectError) Stack() []Frame { return e.stk }

// Format implements fmt.Formatter; "%+v" adds the cause and the stack.
func (e *DefectError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "code=defect msg=%q", e.msg)
			if e.cause != nil {
				_, _ = fmt.Fprintf(s, "\ncause: %+v", e.cause)
			}
			if len(e.stk) > 0 {
				_, _ = io.WriteString(s, "\nstack:")
				_, _ = e.stk.WriteTo(s)
			}
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// IsDefect reports whether err is, or wraps, a carrier defect.
func IsDefect(err error) bool {
	var d *DefectError
	return errors.As(err, &d)
}
