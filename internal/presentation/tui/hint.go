package tui

import (
	"strconv"

	"github.com/muesli/termenv"
)

// Hint styles text with an ANSI SGR foreground code (30-37, 90-97) and
// optional bold, the way option hints are drawn after the typed command.
// Unknown codes leave the text uncolored.
func Hint(text string, sgr int, bold bool) string {
	s := termenv.String(text)
	if idx, ok := ansiIndex(sgr); ok {
		s = s.Foreground(termenv.ANSI.Color(strconv.Itoa(idx)))
	}
	if bold {
		s = s.Bold()
	}
	return s.String()
}

func ansiIndex(sgr int) (int, bool) {
	switch {
	case sgr >= 30 && sgr <= 37:
		return sgr - 30, true
	case sgr >= 90 && sgr <= 97:
		return sgr - 90 + 8, true
	default:
		return 0, false
	}
}
