package ports

import (
	"context"
	"io"
)

// FeedStatus is the outcome of feeding available input into an edit session.
type FeedStatus int

const (
	// FeedMore means the line is not complete yet.
	FeedMore FeedStatus = iota
	// FeedLine means the user submitted a line.
	FeedLine
	// FeedCancelled means the user ended input (Ctrl+C, Ctrl+D or end of stream).
	FeedCancelled
)

func (s FeedStatus) String() string {
	switch s {
	case FeedMore:
		return "more"
	case FeedLine:
		return "line"
	case FeedCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// HintColorMagenta is the ANSI color used for option hints.
const HintColorMagenta = 35

// Hint is text drawn after the cursor while the user types.
type Hint struct {
	Text  string
	Color int
	Bold  bool
}

// CompletionFunc returns the completion candidates for the typed prefix.
type CompletionFunc func(prefix string) []string

// HintFunc returns the hint for the typed line, if any.
type HintFunc func(line string) (Hint, bool)

// EditSession is one line being edited without blocking the caller.
// Sessions are not safe for concurrent use.
type EditSession interface {
	// Ready is signalled when input is available, or when the input source failed or ended.
	Ready() <-chan struct{}
	// Err reports a failure of the input source. End of input is not a failure.
	Err() error
	// Feed consumes the available input. The line is only meaningful with FeedLine.
	Feed() (string, FeedStatus)
	// Hide clears the prompt so the host can print; Show draws it again.
	Hide()
	Show()
	// Stop ends the session and restores the terminal.
	Stop()
}

// LineEditor is the interactive line-editing backend.
// Writes go through the editor so that output does not corrupt the prompt.
type LineEditor interface {
	io.Writer

	// StartEdit begins an asynchronous edit with a buffer of capacity bytes.
	// A longer line is still returned whole so the caller can reject it.
	StartEdit(capacity int, prompt string) (EditSession, error)
	// ReadLine blocks until a line is submitted. It returns io.EOF at end of input.
	ReadLine(prompt string) (string, error)

	HistoryLoad(path string) error
	HistorySave(path string) error
	HistoryAdd(line string)
	HistorySetMaxLen(n int)

	SetCompletionCallback(fn CompletionFunc)
	SetHintsCallback(fn HintFunc)
	SetMultiLine(enabled bool)
	SetMaskMode(enabled bool)

	// PrintKeyCodes runs a diagnostic loop echoing the codes of typed keys
	// until the user types "quit" or ctx is done.
	PrintKeyCodes(ctx context.Context) error

	// Close restores the terminal and releases the input source.
	Close() error
}
