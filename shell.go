package cmdline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/cmdline/internal/logging"
	"github.com/aretw0/cmdline/pkg/adapters/file"
	"github.com/aretw0/cmdline/pkg/adapters/terminal"
	"github.com/aretw0/cmdline/pkg/dispatch"
	"github.com/aretw0/cmdline/pkg/domain"
	"github.com/aretw0/cmdline/pkg/input"
	"github.com/aretw0/cmdline/pkg/metrics"
	"github.com/aretw0/cmdline/pkg/ports"
	"github.com/aretw0/cmdline/pkg/registry"
	"github.com/aretw0/cmdline/pkg/tokenize"
)

// Shell is the entry point of the library: it owns the command registry,
// the line editor and the input strategy chosen at Init.
type Shell struct {
	editor     ports.LineEditor
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
	strategy   input.Strategy
	out        io.Writer
	logger     *slog.Logger
	metrics    *metrics.Metrics
	prompt     string
	idle       input.IdleFunc

	initialized bool
	historyPath string
}

// New creates a Shell. Commands may be registered before or after Init.
func New(opts ...Option) *Shell {
	s := &Shell{
		prompt: domain.DefaultPrompt,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.editor == nil {
		s.editor = terminal.New(os.Stdin, os.Stdout, terminal.WithLogger(s.logger))
	}
	if s.registry == nil {
		s.registry = registry.New()
	}
	if s.out == nil {
		s.out = s.editor
	}

	s.dispatcher = dispatch.New(s.registry,
		dispatch.WithOutput(s.out),
		dispatch.WithLogger(s.logger),
		dispatch.WithMetrics(s.metrics),
	)
	return s
}

// Register adds a command. See registry.Registry.Register for the errors.
func (s *Shell) Register(d domain.Descriptor) error {
	if err := s.registry.Register(d); err != nil {
		s.logger.Error("Failed to register command", "command", d.Name, "err", err)
		return err
	}
	return nil
}

// Init prepares the shell. It runs once: later calls return
// domain.ErrInProgress without side effects.
//
// With ShowKeyCodes set, Init runs the editor's key-code loop and returns
// domain.ErrProcessCompleted when it ends; the host is expected to exit.
func (s *Shell) Init(ctx context.Context, opts *domain.InitOptions) error {
	if s.initialized {
		return fmt.Errorf("%w: already initialized", domain.ErrInProgress)
	}
	if opts == nil || opts.HistoryPath == "" {
		return fmt.Errorf("%w: history path is required", domain.ErrInvalidArgs)
	}

	if err := file.NewStore().Ensure(opts.HistoryPath); err != nil {
		s.logger.Error("Failed to create history file", "path", opts.HistoryPath, "err", err)
		return fmt.Errorf("%w: %v", domain.ErrGeneral, err)
	}

	if opts.MultiLine {
		s.logger.Info("Multi-line mode enabled")
		s.editor.SetMultiLine(true)
	}

	if opts.ShowKeyCodes {
		s.logger.Info("Print key codes mode enabled")
		if err := s.editor.PrintKeyCodes(ctx); err != nil {
			return fmt.Errorf("%w: key codes: %v", domain.ErrExternalLib, err)
		}
		return domain.ErrProcessCompleted
	}

	if opts.Async.Enabled {
		s.logger.Info("Async mode enabled", "timeout", opts.Async.Timeout)
	}

	if err := s.editor.HistoryLoad(opts.HistoryPath); err != nil {
		s.logger.Error("Failed to load history", "path", opts.HistoryPath, "err", err)
		return fmt.Errorf("%w: history load: %v", domain.ErrExternalLib, err)
	}

	for _, d := range s.defaultCommands() {
		if err := s.registry.Register(d); err != nil {
			s.logger.Error("Failed to register default command", "command", d.Name, "err", err)
			return fmt.Errorf("%w: default command %q: %w", domain.ErrGeneral, d.Name, err)
		}
	}

	s.editor.SetCompletionCallback(s.registry.Complete)
	s.editor.SetHintsCallback(func(line string) (ports.Hint, bool) {
		text, ok := s.registry.Hint(line)
		if !ok {
			return ports.Hint{}, false
		}
		return ports.Hint{Text: text, Color: ports.HintColorMagenta}, true
	})

	s.strategy = input.New(s.editor, opts.Async,
		input.WithPrompt(s.prompt),
		input.WithLogger(s.logger),
		input.WithMetrics(s.metrics),
		input.WithIdle(s.idle),
	)

	s.historyPath = opts.HistoryPath
	s.initialized = true
	return nil
}

// Run reads at most one line and dispatches it.
//
// It returns domain.ErrNotReady before Init, and passes through
// domain.ErrInProgress, domain.ErrProcessCompleted and domain.ErrTerminated
// from the input strategy. A line over the length or token limits yields
// domain.ErrExceedCapacity and is neither dispatched nor recorded.
// Unknown commands and rejected arguments are reported to the user only.
func (s *Shell) Run(ctx context.Context) error {
	if !s.initialized {
		return domain.ErrNotReady
	}

	line, err := s.strategy.Next(ctx)
	if err != nil {
		return err
	}

	tokens, err := tokenize.Tokenize(line, domain.MaxTokens)
	if err != nil {
		s.logger.Warn("Rejected line", "len", len(line), "err", err)
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	if err := s.dispatcher.Dispatch(ctx, tokens); err != nil {
		return err
	}

	s.editor.HistoryAdd(line)
	if err := s.editor.HistorySave(s.historyPath); err != nil {
		s.logger.Error("Failed to save history", "path", s.historyPath, "err", err)
		return fmt.Errorf("%w: history save: %v", domain.ErrExternalLib, err)
	}
	return nil
}

// Close stops a pending asynchronous edit and releases the editor.
func (s *Shell) Close() error {
	if stopper, ok := s.strategy.(interface{ Stop() }); ok {
		stopper.Stop()
	}
	if err := s.editor.Close(); err != nil {
		return fmt.Errorf("%w: close editor: %v", domain.ErrExternalLib, err)
	}
	return nil
}

// Initialized reports whether Init completed.
func (s *Shell) Initialized() bool {
	return s.initialized
}

// Registry returns the command registry.
func (s *Shell) Registry() *registry.Registry {
	return s.registry
}

// HistoryPath returns the path given to Init, or "" before Init.
func (s *Shell) HistoryPath() string {
	return s.historyPath
}

// Editor returns the line editor, e.g. to print through it.
func (s *Shell) Editor() ports.LineEditor {
	return s.editor
}

// ShouldExit reports whether err ends the host loop.
func ShouldExit(err error) bool {
	return errors.Is(err, domain.ErrProcessCompleted) || errors.Is(err, domain.ErrTerminated)
}
