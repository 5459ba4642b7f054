package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/cmdline"
	"github.com/aretw0/cmdline/internal/config"
	"github.com/aretw0/cmdline/internal/presentation/tui"
	"github.com/aretw0/cmdline/pkg/adapters/terminal"
	"github.com/aretw0/cmdline/pkg/domain"
	"github.com/aretw0/cmdline/pkg/metrics"
	"github.com/aretw0/cmdline/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// EditorFactory builds the line editor around the configured history store.
type EditorFactory func(store ports.HistoryStore, logger *slog.Logger) ports.LineEditor

// RunOptions contains everything a host session needs.
type RunOptions struct {
	Config  config.Config
	Version string

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// NewEditor defaults to the terminal editor on In and Out.
	NewEditor EditorFactory
}

func (o *RunOptions) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.NewEditor == nil {
		in, out := o.In, o.Out
		o.NewEditor = func(store ports.HistoryStore, logger *slog.Logger) ports.LineEditor {
			return terminal.New(in, out, terminal.WithHistoryStore(store), terminal.WithLogger(logger))
		}
	}
}

// RunShell runs the sample shell until input ends or ctx is cancelled.
func RunShell(ctx context.Context, opts RunOptions) error {
	opts.defaults()
	cfg := opts.Config
	logger := createLogger(opts.Err, cfg.Log)

	if !cfg.Log.Quiet && !cfg.KeyCodes {
		tui.PrintBanner(opts.Out, opts.Version)
	}

	store, closeStore, err := createHistoryStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	registry := prometheus.NewRegistry()
	m, err := metrics.New(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}
	if cfg.Metrics.Addr != "" {
		stop, err := serveMetrics(ctx, cfg.Metrics.Addr, NewMetricsHandler(registry), logger)
		if err != nil {
			return fmt.Errorf("failed to serve metrics: %w", err)
		}
		defer stop()
	}

	editor := opts.NewEditor(store, logger)
	shellOpts := []cmdline.Option{
		cmdline.WithEditor(editor),
		cmdline.WithLogger(logger),
		cmdline.WithMetrics(m),
		cmdline.WithPrompt(cfg.Prompt),
	}
	if cfg.Async && cfg.Ticker {
		shellOpts = append(shellOpts, cmdline.WithIdle(newTicker(editor)))
	}
	sh := cmdline.New(shellOpts...)

	for _, d := range NewSample(editor).Commands() {
		if err := sh.Register(d); err != nil {
			return fmt.Errorf("failed to register %s: %w", d.Name, err)
		}
	}

	err = sh.Init(ctx, &domain.InitOptions{
		MultiLine:    cfg.MultiLine,
		ShowKeyCodes: cfg.KeyCodes,
		Async:        domain.AsyncConfig{Enabled: cfg.Async, Timeout: cfg.Timeout},
		HistoryPath:  cfg.History,
	})
	if errors.Is(err, domain.ErrProcessCompleted) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer sh.Close()

	return loop(ctx, sh, opts.Err)
}

// loop calls Run until input ends. Per-line errors are reported and the loop goes on.
func loop(ctx context.Context, sh *cmdline.Shell, errOut io.Writer) error {
	for {
		err := sh.Run(ctx)
		switch {
		case err == nil, errors.Is(err, domain.ErrInProgress):
		case errors.Is(err, domain.ErrProcessCompleted):
			return nil
		case errors.Is(err, domain.ErrTerminated):
			return err
		case ctx.Err() != nil:
			return nil
		default:
			printSystemMessage(errOut, "Error: %v", err)
		}
	}
}

// newTicker prints a counter on every idle poll, showing that the host keeps
// running while a line is being typed.
func newTicker(w io.Writer) func(context.Context) {
	counter := 0
	return func(context.Context) {
		fmt.Fprintf(w, "Async output %d\n", counter)
		counter++
	}
}
