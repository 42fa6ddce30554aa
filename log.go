// log.go — diagnostics sink for the carrier runtime.
//
// The runtime never logs on the happy path. It reports:
//   - foreign panics crossing a Materialize boundary (debug, if enabled),
//   - defects, where they are detected (error),
//   - slots returned to the pool while still holding a value (error),
//   - a malformed environment configuration (warn, once; see internal/diag).
package xgxcarrier

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/xgx-io/xgx-carrier/internal/config"
	"github.com/xgx-io/xgx-carrier/internal/diag"
)

// SetLogger installs l as the diagnostics logger of xgxcarrier and ctxerr. A
// nil l restores the no-op logger.
func SetLogger(l *zap.Logger) { diag.SetLogger(l) }

func log() *zap.Logger { return diag.Logger() }

func settings() config.Config { return diag.Settings() }

func logForeign(payload any) {
	if !settings().LogForeign {
		return
	}
	if ce := log().Check(zap.DebugLevel, "foreign panic crossed materialize"); ce != nil {
		ce.Write(zap.String("payload_type", fmt.Sprintf("%T", payload)))
	}
}

func logDefect(d *DefectError) {
	if ce := log().Check(zap.ErrorLevel, "carrier contract broken"); ce != nil {
		var caller string
		if len(d.stk) > 0 {
			caller = d.stk[0].Function
		}
		ce.Write(zap.String("defect", d.msg), zap.String("caller", caller), zap.NamedError("cause", d.cause))
	}
}

func logDirtySlot(s *Slot) {
	if ce := log().Check(zap.ErrorLevel, "slot released while holding a value"); ce != nil {
		ce.Write(zap.String("held_type", s.heldType()))
	}
}
