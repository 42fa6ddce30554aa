package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	c, err := Parse()
	require.NoError(t, err)
	require.Equal(t, Defaults(), c)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("XGX_CARRIER_LOG_FOREIGN", "false")
	t.Setenv("XGX_CARRIER_CAPTURE_STACKS", "false")
	t.Setenv("XGX_CARRIER_STACK_DEPTH", "8")

	c, err := Parse()
	require.NoError(t, err)
	require.False(t, c.LogForeign)
	require.False(t, c.CaptureStacks)
	require.Equal(t, 8, c.StackDepth)
}

func TestParse_NonPositiveDepthFallsBack(t *testing.T) {
	t.Setenv("XGX_CARRIER_STACK_DEPTH", "0")

	c, err := Parse()
	require.NoError(t, err)
	require.Equal(t, Defaults().StackDepth, c.StackDepth)
}

func TestParse_MalformedKeepsDefaults(t *testing.T) {
	t.Setenv("XGX_CARRIER_STACK_DEPTH", "deep")

	c, err := Parse()
	require.Error(t, err)
	require.Equal(t, Defaults(), c)
}
