// Package dispatch resolves a tokenized line to a registered command and runs it.
//
// An unknown command or a command that rejects its arguments is a normal
// outcome of an interactive shell: both are reported to the user and logged,
// and Dispatch still returns nil.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/cmdline/internal/logging"
	"github.com/aretw0/cmdline/pkg/domain"
	"github.com/aretw0/cmdline/pkg/metrics"
	"github.com/aretw0/cmdline/pkg/registry"
)

// Dispatcher invokes commands from a registry.
type Dispatcher struct {
	registry *registry.Registry
	out      io.Writer
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithOutput sets where usage and "invalid command" messages are printed.
func WithOutput(w io.Writer) Option {
	return func(d *Dispatcher) {
		d.out = w
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithMetrics configures the dispatch counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// New creates a Dispatcher over reg.
func New(reg *registry.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: reg,
		out:      io.Discard,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs the command named by tokens[0] with the whole token list.
// It returns domain.ErrInvalidArgs only for an empty token list.
func (d *Dispatcher) Dispatch(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("%w: nothing to dispatch", domain.ErrInvalidArgs)
	}

	name := tokens[0]
	desc, ok := d.registry.Lookup(name)
	if !ok {
		d.logger.Error("Invalid command", "command", name)
		fmt.Fprintf(d.out, "Invalid command: '%s'\n", name)
		d.metrics.ObserveDispatch(name, metrics.ResultUnknown)
		return nil
	}

	if err := d.execute(ctx, desc, tokens); err != nil {
		d.logger.Warn("Command args are incorrect", "command", desc.Name, "help", desc.Help, "err", err)
		fmt.Fprintln(d.out, Usage(desc))
		d.metrics.ObserveDispatch(desc.Name, metrics.ResultHandlerError)
		return nil
	}

	d.metrics.ObserveDispatch(desc.Name, metrics.ResultOK)
	return nil
}

func (d *Dispatcher) execute(ctx context.Context, desc domain.Descriptor, tokens []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: command panicked: %v", domain.ErrGeneral, r)
		}
	}()
	return desc.Command.Execute(ctx, tokens)
}

// Usage formats the line printed when a command rejects its arguments.
func Usage(desc domain.Descriptor) string {
	if desc.Options == "" {
		return fmt.Sprintf("[Usage] %s | %s", desc.Name, desc.Help)
	}
	return fmt.Sprintf("[Usage] %s %s | %s", desc.Name, desc.Options, desc.Help)
}
