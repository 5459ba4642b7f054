package memory

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aretw0/cmdline/pkg/history"
	"github.com/aretw0/cmdline/pkg/ports"
)

// StepKind is one scripted event of an edit session.
type StepKind int

const (
	// StepIdle makes the next readiness check time out.
	StepIdle StepKind = iota
	// StepMore delivers input that does not complete the line.
	StepMore
	// StepLine submits a line.
	StepLine
	// StepCancel ends input.
	StepCancel
	// StepFail makes the input source fail.
	StepFail
)

// Step is one scripted event.
type Step struct {
	Kind StepKind
	Line string
	Err  error
}

// Idle, More, Line, Cancel and Fail build script steps.
func Idle() Step          { return Step{Kind: StepIdle} }
func More() Step          { return Step{Kind: StepMore} }
func Line(s string) Step  { return Step{Kind: StepLine, Line: s} }
func Cancel() Step        { return Step{Kind: StepCancel} }
func Fail(err error) Step { return Step{Kind: StepFail, Err: err} }

// Editor implements ports.LineEditor from a script, for tests and headless embedding.
// ReadLine consumes Lines; edit sessions consume Steps. Once a script is
// exhausted, input ends.
type Editor struct {
	Lines []string
	Steps []Step

	// Observed state.
	Prompts       []string
	MultiLine     bool
	Mask          bool
	KeyCodesShown bool
	Completion    ports.CompletionFunc
	Hints         ports.HintFunc
	LoadedPaths   []string
	SavedPaths    []string
	StartedEdits  int
	StoppedEdits  int
	Hides, Shows  int
	Closed        bool

	// LoadErr and SaveErr, when set, are returned by HistoryLoad and HistorySave.
	LoadErr error
	SaveErr error

	history *history.History
	out     bytes.Buffer
}

var _ ports.LineEditor = (*Editor)(nil)

// NewEditor creates a scripted editor whose history is kept in store
// (a fresh memory store when nil).
func NewEditor(store ports.HistoryStore, lines ...string) *Editor {
	if store == nil {
		store = NewStore()
	}
	return &Editor{
		Lines:   lines,
		history: history.New(store),
	}
}

// Script appends steps for edit sessions.
func (e *Editor) Script(steps ...Step) *Editor {
	e.Steps = append(e.Steps, steps...)
	return e
}

// Write records output.
func (e *Editor) Write(p []byte) (int, error) {
	return e.out.Write(p)
}

// Output returns everything written so far.
func (e *Editor) Output() string {
	return e.out.String()
}

// History returns the current history entries.
func (e *Editor) History() []string {
	return e.history.Entries()
}

// HistoryMaxLen returns the current retention size.
func (e *Editor) HistoryMaxLen() int {
	return e.history.MaxLen()
}

func (e *Editor) ReadLine(prompt string) (string, error) {
	e.Prompts = append(e.Prompts, prompt)
	if len(e.Lines) == 0 {
		return "", io.EOF
	}
	line := e.Lines[0]
	e.Lines = e.Lines[1:]
	return line, nil
}

func (e *Editor) StartEdit(capacity int, prompt string) (ports.EditSession, error) {
	if capacity <= 0 {
		return nil, errors.New("edit buffer capacity must be positive")
	}
	e.Prompts = append(e.Prompts, prompt)
	e.StartedEdits++
	return &session{editor: e}, nil
}

func (e *Editor) HistoryLoad(path string) error {
	if e.LoadErr != nil {
		return e.LoadErr
	}
	e.LoadedPaths = append(e.LoadedPaths, path)
	return e.history.Load(context.Background(), path)
}

func (e *Editor) HistorySave(path string) error {
	if e.SaveErr != nil {
		return e.SaveErr
	}
	e.SavedPaths = append(e.SavedPaths, path)
	return e.history.Save(context.Background(), path)
}

func (e *Editor) HistoryAdd(line string)                        { e.history.Add(line) }
func (e *Editor) HistorySetMaxLen(n int)                        { e.history.SetMaxLen(n) }
func (e *Editor) SetCompletionCallback(fn ports.CompletionFunc) { e.Completion = fn }
func (e *Editor) SetHintsCallback(fn ports.HintFunc)            { e.Hints = fn }
func (e *Editor) SetMultiLine(enabled bool)                     { e.MultiLine = enabled }
func (e *Editor) SetMaskMode(enabled bool)                      { e.Mask = enabled }

func (e *Editor) PrintKeyCodes(ctx context.Context) error {
	e.KeyCodesShown = true
	return nil
}

func (e *Editor) Close() error {
	e.Closed = true
	return nil
}

func (e *Editor) pop() (Step, bool) {
	if len(e.Steps) == 0 {
		return Step{}, false
	}
	step := e.Steps[0]
	e.Steps = e.Steps[1:]
	return step, true
}

// session replays the editor's steps.
type session struct {
	editor  *Editor
	buf     []byte
	err     error
	stopped bool
}

var closed = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Ready consumes an idle step and returns a channel that never fires, so the
// caller's readiness wait times out. Any other step is ready immediately.
func (s *session) Ready() <-chan struct{} {
	steps := s.editor.Steps
	if len(steps) > 0 && steps[0].Kind == StepIdle {
		s.editor.pop()
		return nil
	}
	if len(steps) > 0 && steps[0].Kind == StepFail {
		step, _ := s.editor.pop()
		s.err = step.Err
	}
	return closed
}

func (s *session) Err() error {
	return s.err
}

func (s *session) Feed() (string, ports.FeedStatus) {
	step, ok := s.editor.pop()
	if !ok {
		return "", ports.FeedCancelled
	}
	switch step.Kind {
	case StepLine:
		s.buf = s.buf[:0]
		return step.Line, ports.FeedLine
	case StepCancel:
		return "", ports.FeedCancelled
	default:
		s.buf = append(s.buf, 'x')
		return "", ports.FeedMore
	}
}

func (s *session) Hide() { s.editor.Hides++ }
func (s *session) Show() { s.editor.Shows++ }

func (s *session) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.editor.StoppedEdits++
}
