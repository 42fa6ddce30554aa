// Package diag holds the diagnostics state shared by xgxcarrier and ctxerr:
// the zap logger and the environment configuration, loaded once for the
// whole process.
//
// Whichever package reads the configuration first triggers the load; a
// malformed environment is reported once, at warn level, through the logger
// installed at that moment.
package diag

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/xgx-io/xgx-carrier/internal/config"
)

// LoggerName is the name every diagnostics entry is logged under.
const LoggerName = "xgxcarrier"

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs l. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named(LoggerName))
}

// Logger returns the current diagnostics logger.
func Logger() *zap.Logger { return logger.Load() }

var settings = sync.OnceValue(func() config.Config { return load(config.Load) })

// Settings returns the process configuration.
func Settings() config.Config { return settings() }

func load(parse func() (config.Config, error)) config.Config {
	c, err := parse()
	if err != nil {
		Logger().Warn("ignoring malformed environment", zap.Error(err))
	}
	return c
}
