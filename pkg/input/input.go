package input

import (
	"context"
	"log/slog"

	"github.com/aretw0/cmdline/internal/logging"
	"github.com/aretw0/cmdline/pkg/domain"
	"github.com/aretw0/cmdline/pkg/metrics"
	"github.com/aretw0/cmdline/pkg/ports"
)

// Strategy produces the next input line.
type Strategy interface {
	// Next returns a completed line, or one of domain.ErrInProgress,
	// domain.ErrProcessCompleted and domain.ErrTerminated.
	Next(ctx context.Context) (string, error)
}

// IdleFunc runs when an asynchronous poll times out. The prompt is hidden
// while it runs, so it may print freely.
type IdleFunc func(ctx context.Context)

type config struct {
	prompt  string
	logger  *slog.Logger
	metrics *metrics.Metrics
	idle    IdleFunc
}

// Option configures a strategy.
type Option func(*config)

// WithPrompt sets the prompt printed before each line.
func WithPrompt(prompt string) Option {
	return func(c *config) {
		c.prompt = prompt
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics configures the poll and line counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithIdle sets the function run on every asynchronous poll timeout.
func WithIdle(fn IdleFunc) Option {
	return func(c *config) {
		c.idle = fn
	}
}

func newConfig(opts []Option) config {
	c := config{
		prompt: domain.DefaultPrompt,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// New selects the strategy described by async.
func New(editor ports.LineEditor, async domain.AsyncConfig, opts ...Option) Strategy {
	if async.Enabled {
		return NewAsync(editor, async.Timeout, opts...)
	}
	return NewSync(editor, opts...)
}
