// Package terminal implements ports.LineEditor on a real terminal with golang.org/x/term.
//
// When the input is a terminal, each read puts it in raw mode and edits the
// line with term.Terminal (cursor keys, history recall, tab completion,
// masked input through ReadPassword). Any other input is read line by line,
// which keeps pipes and tests working.
//
// Reads run on one goroutine owned by the editor. A read that was started by
// an edit session and not finished is picked up again by the next session or
// ReadLine, so a line is never read twice or lost.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/cmdline/internal/logging"
	"github.com/aretw0/cmdline/internal/presentation/tui"
	"github.com/aretw0/cmdline/pkg/adapters/file"
	"github.com/aretw0/cmdline/pkg/history"
	"github.com/aretw0/cmdline/pkg/ports"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by operations that need an interactive terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

// Editor is a ports.LineEditor bound to an input and an output stream.
type Editor struct {
	in          io.Reader
	out         io.Writer
	fd          int
	interactive bool

	term   *term.Terminal
	reader *bufio.Reader

	history *history.History
	logger  *slog.Logger

	completion ports.CompletionFunc
	hints      ports.HintFunc
	multiLine  bool
	mask       bool

	mu      sync.Mutex
	pending *read
	closed  bool
	// rawState is the terminal state saved while a read holds raw mode.
	rawState *term.State
	restore  func(fd int, state *term.State) error
}

var _ ports.LineEditor = (*Editor)(nil)

// read is one line read in flight on the reader goroutine.
type read struct {
	done chan struct{}
	line string
	err  error
}

// Option configures an Editor.
type Option func(*Editor)

// WithHistoryStore sets where history is loaded from and saved to.
// The default store keeps history in plain text files.
func WithHistoryStore(store ports.HistoryStore) Option {
	return func(e *Editor) {
		e.history = history.New(store)
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// New creates an editor reading from in and writing to out (Stdin and Stdout when nil).
func New(in io.Reader, out io.Writer, opts ...Option) *Editor {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	e := &Editor{
		in:      in,
		out:     out,
		history: history.New(file.NewStore()),
		logger:  logging.NewNop(),
		restore: term.Restore,
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		e.fd = int(f.Fd())
		e.interactive = true
		e.term = term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{in, out}, "")
		e.term.AutoCompleteCallback = e.autoComplete
	} else {
		e.reader = bufio.NewReader(in)
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.term != nil {
		e.term.History = recall{e}
	}
	return e
}

// recall lets arrow keys walk the editor history. Lines reach it through
// HistoryAdd once accepted, so the terminal's own Add is ignored.
type recall struct {
	editor *Editor
}

func (r recall) Add(string) {}

func (r recall) Len() int {
	return r.editor.history.Len()
}

func (r recall) At(idx int) string {
	return r.editor.history.At(idx)
}

// Interactive reports whether the input is a terminal.
func (e *Editor) Interactive() bool {
	return e.interactive
}

// Write prints p without corrupting a prompt that is being edited.
func (e *Editor) Write(p []byte) (int, error) {
	if e.interactive {
		return e.term.Write(p)
	}
	return e.out.Write(p)
}

// ReadLine blocks until a line is submitted. It returns io.EOF when the user
// presses Ctrl+C or Ctrl+D, or when the input stream ends.
func (e *Editor) ReadLine(prompt string) (string, error) {
	r := e.startRead(prompt)
	<-r.done
	e.finish(r)
	return r.line, r.err
}

// StartEdit begins an asynchronous read of one line. Lines are never cut to
// capacity; limits are enforced by the caller.
func (e *Editor) StartEdit(capacity int, prompt string) (ports.EditSession, error) {
	if capacity <= 1 {
		return nil, fmt.Errorf("edit buffer capacity must be greater than 1, got %d", capacity)
	}
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		return nil, errors.New("editor is closed")
	}
	return &session{editor: e, read: e.startRead(prompt)}, nil
}

func (e *Editor) startRead(prompt string) *read {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pending != nil {
		return e.pending
	}
	r := &read{done: make(chan struct{})}
	e.pending = r
	mask := e.mask
	multiLine := e.multiLine

	go func() {
		defer close(r.done)
		r.line, r.err = e.readOnce(prompt, mask, multiLine)
	}()
	return r
}

// finish forgets r once it has been consumed.
func (e *Editor) finish(r *read) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending == r {
		e.pending = nil
	}
}

func (e *Editor) readOnce(prompt string, mask, multiLine bool) (string, error) {
	if !e.interactive {
		fmt.Fprint(e.out, prompt)
		text, err := e.reader.ReadString('\n')
		text = strings.TrimRight(text, "\r\n")
		if err != nil {
			if err == io.EOF && text != "" {
				return text, nil
			}
			return "", err
		}
		return text, nil
	}

	oldState, err := term.MakeRaw(e.fd)
	if err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	e.mu.Lock()
	e.rawState = oldState
	e.mu.Unlock()
	defer e.restoreTerminal()

	if multiLine {
		if w, h, err := term.GetSize(e.fd); err == nil {
			e.term.SetSize(w, h)
		}
	}

	if mask {
		return e.term.ReadPassword(prompt)
	}
	e.term.SetPrompt(prompt)
	return e.term.ReadLine()
}

// autoComplete handles Tab: a single candidate replaces the line, several
// candidates are listed, and an exact command name shows its hint.
func (e *Editor) autoComplete(line string, pos int, key rune) (string, int, bool) {
	if key != '\t' || e.completion == nil {
		return "", 0, false
	}

	candidates := e.completion(line[:pos])
	switch {
	case len(candidates) == 1 && candidates[0] != line:
		return candidates[0], len(candidates[0]), true
	case len(candidates) > 1:
		fmt.Fprintln(e.term, strings.Join(candidates, "  "))
		prefix := commonPrefix(candidates)
		if len(prefix) > pos {
			return prefix, len(prefix), true
		}
		return line, pos, true
	}

	if e.hints != nil {
		if hint, ok := e.hints(line); ok {
			fmt.Fprintln(e.term, line+tui.Hint(hint.Text, hint.Color, hint.Bold))
		}
	}
	return line, pos, true
}

func commonPrefix(words []string) string {
	prefix := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

func (e *Editor) HistoryLoad(path string) error {
	return e.history.Load(context.Background(), path)
}

func (e *Editor) HistorySave(path string) error {
	return e.history.Save(context.Background(), path)
}

// HistoryAdd records line for persistence and arrow-key recall.
func (e *Editor) HistoryAdd(line string) {
	e.history.Add(line)
}

func (e *Editor) HistorySetMaxLen(n int) {
	if !e.history.SetMaxLen(n) {
		e.logger.Warn("Ignoring history length", "len", n)
	}
}

// History returns the entries that HistorySave would write.
func (e *Editor) History() []string {
	return e.history.Entries()
}

func (e *Editor) SetCompletionCallback(fn ports.CompletionFunc) {
	e.completion = fn
}

func (e *Editor) SetHintsCallback(fn ports.HintFunc) {
	e.hints = fn
}

// SetMultiLine makes long lines wrap at the real terminal width.
func (e *Editor) SetMultiLine(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.multiLine = enabled
}

// SetMaskMode hides typed characters from the next read on.
func (e *Editor) SetMaskMode(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mask = enabled
}

// Close marks the editor closed and restores the terminal if a read in
// flight still holds raw mode. The read itself cannot be interrupted.
func (e *Editor) Close() error {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	return e.restoreTerminal()
}

// restoreTerminal leaves raw mode once, whichever of the read and Close
// gets there first.
func (e *Editor) restoreTerminal() error {
	e.mu.Lock()
	state := e.rawState
	e.rawState = nil
	e.mu.Unlock()

	if state == nil {
		return nil
	}
	if err := e.restore(e.fd, state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// session is an asynchronous edit backed by the editor's pending read.
type session struct {
	editor *Editor
	read   *read
}

func (s *session) Ready() <-chan struct{} {
	return s.read.done
}

// Err reports a failure of the input stream. End of input is not a failure.
func (s *session) Err() error {
	select {
	case <-s.read.done:
	default:
		return nil
	}
	if s.read.err == nil || errors.Is(s.read.err, io.EOF) {
		return nil
	}
	return s.read.err
}

// Feed returns the line once the read finished.
func (s *session) Feed() (string, ports.FeedStatus) {
	select {
	case <-s.read.done:
	default:
		return "", ports.FeedMore
	}
	s.editor.finish(s.read)

	if s.read.err != nil {
		return "", ports.FeedCancelled
	}
	return s.read.line, ports.FeedLine
}

// Hide and Show are no-ops: writes through the editor already redraw the prompt.
func (s *session) Hide() {}
func (s *session) Show() {}

// Stop ends the session. An unfinished read stays pending for the next one.
func (s *session) Stop() {}
