package cmdline

import (
	"io"
	"log/slog"

	"github.com/aretw0/cmdline/pkg/input"
	"github.com/aretw0/cmdline/pkg/metrics"
	"github.com/aretw0/cmdline/pkg/ports"
	"github.com/aretw0/cmdline/pkg/registry"
)

// Option configures a Shell.
type Option func(*Shell)

// WithEditor sets the line editor. The default edits on the process terminal.
func WithEditor(editor ports.LineEditor) Option {
	return func(s *Shell) {
		s.editor = editor
	}
}

// WithLogger sets a custom structured logger for the shell.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// WithOutput sets where command feedback (help, usage lines) is printed.
// It defaults to the editor, so output does not corrupt the prompt.
func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

// WithPrompt sets the prompt (default "> ").
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// WithMetrics enables the dispatch and polling counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Shell) {
		s.metrics = m
	}
}

// WithIdle sets a function run each time an asynchronous poll times out.
func WithIdle(fn input.IdleFunc) Option {
	return func(s *Shell) {
		s.idle = fn
	}
}

// WithRegistry replaces the command registry, e.g. with a smaller capacity.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Shell) {
		s.registry = reg
	}
}
