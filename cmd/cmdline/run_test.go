package main

import (
	"testing"
	"time"

	"github.com/aretw0/cmdline/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addRunFlags(flags)
	require.NoError(t, flags.Parse([]string{"-a", "--timeout", "250ms", "--debug"}))

	cfg := config.Default()
	cfg.History = "/from/file"
	cfg.MultiLine = true
	applyFlags(flags, &cfg)

	assert.True(t, cfg.Async)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/from/file", cfg.History)
	assert.True(t, cfg.MultiLine)
}

func TestApplyFlags_History(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addRunFlags(flags)
	require.NoError(t, flags.Parse([]string{"--history", "/tmp/other.txt", "-k", "-m", "-q"}))

	cfg := config.Default()
	applyFlags(flags, &cfg)

	assert.Equal(t, "/tmp/other.txt", cfg.History)
	assert.True(t, cfg.KeyCodes)
	assert.True(t, cfg.MultiLine)
	assert.True(t, cfg.Log.Quiet)
}
