package ctxerr

import (
	"errors"
	"fmt"

	"github.com/xgx-io/xgx-carrier/internal/stack"
)

// Frame is one call site of a recorded stack.
type Frame = stack.Frame

// Error is a context layer. Fluent methods never mutate the receiver; they
// return a new layer sharing nothing writable with it.
type Error interface {
	error

	// With adds one key/value field. Returns a NEW Error.
	With(key string, val any) Error

	// Code sets this layer's classification. Returns a NEW Error.
	Code(Code) Error

	// CodeVal returns this layer's code, else the nearest inner one, else "".
	CodeVal() Code

	// Context returns a fresh map of this layer's fields.
	Context() map[string]any

	// Stack returns the stack recorded for this chain, innermost capture.
	Stack() []Frame

	Unwrap() error
}

type layer struct {
	msg   string
	code  Code
	ctx   fields
	cause error
	stk   stack.Stack
}

var _ Error = (*layer)(nil)

func (e *layer) Error() string {
	switch {
	case e.cause == nil:
		return e.msg
	case e.msg == "":
		return e.cause.Error()
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

func (e *layer) Unwrap() error           { return e.cause }
func (e *layer) Context() map[string]any { return e.ctx.toMap() }

func (e *layer) CodeVal() Code {
	if e.code != "" {
		return e.code
	}
	return CodeOf(e.cause)
}

func (e *layer) Stack() []Frame {
	if len(e.stk) > 0 {
		return e.stk
	}
	var st interface{ Stack() []Frame }
	if e.cause != nil && errors.As(e.cause, &st) {
		return st.Stack()
	}
	return nil
}

func (e *layer) With(key string, val any) Error {
	n := *e
	n.ctx = appendFields(e.ctx, Field{Key: key, Val: val})
	return &n
}

func (e *layer) Code(c Code) Error {
	n := *e
	n.code = c
	return &n
}

// payload adapts a non-error failure value so it can sit at the bottom of a
// layer chain.
type payload struct {
	v any
}

func (p payload) Error() string { return fmt.Sprint(p.v) }

// Payload returns the innermost non-error failure value wrapped by err, if
// any.
func Payload(err error) (any, bool) {
	var p payload
	if errors.As(err, &p) {
		return p.v, true
	}
	return nil, false
}
