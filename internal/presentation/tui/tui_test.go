package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHint_Magenta(t *testing.T) {
	assert.Equal(t, "\x1b[35m on/off\x1b[0m", Hint(" on/off", 35, false))
}

func TestHint_BrightBold(t *testing.T) {
	got := Hint("x", 91, true)
	assert.Contains(t, got, "91")
	assert.Contains(t, got, "1")
	assert.Contains(t, got, "x")
}

func TestHint_UnknownColor(t *testing.T) {
	assert.Equal(t, "plain", Hint("plain", 12, false))
}

func TestPrintBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintBanner(buf, "1.2.3")
	assert.Contains(t, buf.String(), "version 1.2.3")
}
