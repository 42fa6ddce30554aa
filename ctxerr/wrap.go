// wrap.go — building layers over arbitrary failure values.
package ctxerr

import (
	"errors"

	"github.com/xgx-io/xgx-carrier/internal/diag"
	"github.com/xgx-io/xgx-carrier/internal/stack"
)

// Wrap puts a new layer with msg and kv fields on top of cause. cause may be
// any failure value: an error is kept as is (and stays visible to errors.Is
// and errors.As), anything else is kept as a payload. A nil cause yields a
// bare layer.
func Wrap(cause any, msg string, kv ...any) Error {
	return wrap(cause, msg, fieldsFromKV(kv), 1)
}

func wrap(cause any, msg string, fs fields, skip int) *layer {
	e := &layer{msg: msg, ctx: fs, cause: asError(cause)}
	if diag.Settings().CaptureStacks && !hasStack(e.cause) {
		e.stk = stack.Capture(skip+1, diag.Settings().StackDepth)
	}
	return e
}

func asError(v any) error {
	switch v := v.(type) {
	case nil:
		return nil
	case error:
		return v
	default:
		return payload{v: v}
	}
}

func hasStack(err error) bool {
	var st interface{ Stack() []Frame }
	return err != nil && errors.As(err, &st) && len(st.Stack()) > 0
}
