package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_FormatsForShell(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, slog.LevelInfo)

	logger.Warn("Command args are incorrect", "command", "mask", "error", errors.New("bad"))
	logger.Debug("hidden")

	out := buf.String()
	assert.NotContains(t, out, "time=")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "component=cmdline")
	assert.Contains(t, out, "err=bad")
	assert.NotContains(t, out, "hidden")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}
