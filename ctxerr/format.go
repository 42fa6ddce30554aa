// format.go — fmt.Formatter for layers.
//
//	%s, %v   Error()
//	%+v      code=<code> msg="<msg>"
//	         ctx: k1=v1 k2=v2
//	         cause: <cause formatted with %+v>
//	         stack:
//	           pkg.fn /path/file.go:12
//
// Notes:
//   - Only the layer that captured the stack prints it, so a deep chain shows
//     one stack at the bottom.
//   - Fields print in the order they were attached; keys dropped by
//     fieldsFromKV never reach here, and empty keys are skipped.
//   - The cause is handed back to fmt with %+v, so a nested layer, a
//     DefectError or any other fmt.Formatter renders its own verbose form.
//   - Write errors are ignored; a Formatter has nowhere to report them.
package ctxerr

import (
	"fmt"
	"io"
)

func (e *layer) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func (e *layer) formatVerbose(w io.Writer) {
	if e.code != "" {
		_, _ = fmt.Fprintf(w, "code=%s ", e.code)
	}
	_, _ = fmt.Fprintf(w, "msg=%q", e.msg)

	if len(e.ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range e.ctx {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}

	if e.cause != nil {
		_, _ = fmt.Fprintf(w, "\ncause: %+v", e.cause)
	}

	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		_, _ = e.stk.WriteTo(w)
	}
}
