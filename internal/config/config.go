// Package config loads the process-wide knobs of xgx-carrier from the
// environment. Everything has a default; a malformed variable never stops the
// library from working.
package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunables read from the environment.
type Config struct {
	// LogForeign logs (at debug level) every foreign panic that crosses a
	// Materialize boundary.
	LogForeign bool `env:"XGX_CARRIER_LOG_FOREIGN" envDefault:"true"`

	// CaptureStacks controls whether ctxerr records a stack on the innermost
	// context layer.
	CaptureStacks bool `env:"XGX_CARRIER_CAPTURE_STACKS" envDefault:"true"`

	// StackDepth bounds every stack capture.
	StackDepth int `env:"XGX_CARRIER_STACK_DEPTH" envDefault:"64"`
}

// Defaults returns the configuration used when the environment is unset.
func Defaults() Config {
	return Config{LogForeign: true, CaptureStacks: true, StackDepth: 64}
}

// Parse reads Config from the environment.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Defaults(), fmt.Errorf("parse env: %w", err)
	}
	if c.StackDepth <= 0 {
		c.StackDepth = Defaults().StackDepth
	}
	return c, nil
}

var loaded = sync.OnceValues(Parse)

// Load returns the process configuration, parsing the environment on first
// use. The error is non-nil only when the environment was malformed; the
// returned Config is usable either way.
func Load() (Config, error) {
	return loaded()
}
