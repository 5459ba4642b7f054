package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the shell banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	// Indigo to rose, one color per line.
	lines := []struct {
		text  string
		color string
	}{
		{"                 _ _ _            ", "#818cf8"},
		{"   ___ _ __ ___ | | (_)_ __   ___ ", "#a78bfa"},
		{"  / __| '_ ` _ \\| | | | '_ \\ / _ \\", "#c084fc"},
		{" | (__| | | | | | | | | | | |  __/", "#e879f9"},
		{"  \\___|_| |_| |_|_|_|_|_| |_|\\___|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  version "+version).Faint())
	fmt.Fprintln(w)
}
