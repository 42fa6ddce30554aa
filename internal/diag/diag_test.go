package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xgx-io/xgx-carrier/internal/config"
)

func TestLoad_MalformedEnvironmentIsReported(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	c := load(func() (config.Config, error) {
		return config.Defaults(), errors.New(`parse env: XGX_CARRIER_STACK_DEPTH: "deep"`)
	})
	require.Equal(t, config.Defaults(), c)

	entries := logs.FilterMessage("ignoring malformed environment").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, LoggerName, entries[0].LoggerName)
	require.Contains(t, entries[0].ContextMap()["error"], "XGX_CARRIER_STACK_DEPTH")
}

func TestLoad_CleanEnvironmentIsQuiet(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	want := config.Config{LogForeign: false, CaptureStacks: true, StackDepth: 8}
	require.Equal(t, want, load(func() (config.Config, error) { return want, nil }))
	require.Zero(t, logs.Len())
}

func TestSetLogger_Nil(t *testing.T) {
	SetLogger(nil)
	require.False(t, Logger().Core().Enabled(zapcore.ErrorLevel))
}
