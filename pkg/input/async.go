package input

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/cmdline/pkg/domain"
	"github.com/aretw0/cmdline/pkg/metrics"
	"github.com/aretw0/cmdline/pkg/ports"
)

// Phase is the state of an asynchronous edit.
type Phase int

const (
	Uninitialized Phase = iota
	Editing
	// LineReady is the transient end of an edit. Poll resets to
	// Uninitialized before returning the line.
	LineReady
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Editing:
		return "editing"
	case LineReady:
		return "line_ready"
	default:
		return "unknown"
	}
}

// EditState is the resumable state carried across polls.
type EditState struct {
	Phase   Phase
	Session ports.EditSession
}

// Async advances one edit session per Poll, waiting at most Timeout for input.
type Async struct {
	editor  ports.LineEditor
	timeout time.Duration
	cfg     config
	state   EditState
}

// NewAsync creates the polling strategy.
func NewAsync(editor ports.LineEditor, timeout time.Duration, opts ...Option) *Async {
	return &Async{
		editor:  editor,
		timeout: timeout,
		cfg:     newConfig(opts),
	}
}

// Phase reports the current edit phase between polls: Uninitialized or
// Editing. LineReady is never observed here.
func (a *Async) Phase() Phase {
	return a.state.Phase
}

// Next is Poll.
func (a *Async) Next(ctx context.Context) (string, error) {
	return a.Poll(ctx)
}

// Poll performs one readiness check and, if input is available, feeds it to
// the edit session. It returns domain.ErrInProgress while the line is
// incomplete, the line once submitted, domain.ErrProcessCompleted when the
// user ends input and domain.ErrTerminated when the input source fails.
func (a *Async) Poll(ctx context.Context) (string, error) {
	if a.state.Phase == Uninitialized {
		session, err := a.editor.StartEdit(domain.EditBufferSize, a.cfg.prompt)
		if err != nil {
			return "", fmt.Errorf("%w: start edit: %v", domain.ErrExternalLib, err)
		}
		a.state = EditState{Phase: Editing, Session: session}
	}

	session := a.state.Session
	if !a.wait(ctx, session) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		a.cfg.metrics.ObservePoll(metrics.PollTimeout)
		a.runIdle(ctx, session)
		return "", domain.ErrInProgress
	}

	if err := session.Err(); err != nil {
		a.cfg.metrics.ObservePoll(metrics.PollError)
		a.cfg.logger.Error("Input readiness check failed", "err", err)
		a.reset()
		return "", fmt.Errorf("%w: %v", domain.ErrTerminated, err)
	}

	line, status := session.Feed()
	switch status {
	case ports.FeedMore:
		a.cfg.metrics.ObservePoll(metrics.PollMore)
		return "", domain.ErrInProgress

	case ports.FeedLine:
		a.cfg.metrics.ObservePoll(metrics.PollLine)
		a.cfg.metrics.ObserveLine()
		a.reset()
		return line, nil

	default:
		a.cfg.metrics.ObservePoll(metrics.PollCancelled)
		a.cfg.logger.Debug("Input cancelled")
		a.reset()
		return "", domain.ErrProcessCompleted
	}
}

// wait is the readiness check: it reports whether input became available
// within the poll timeout.
func (a *Async) wait(ctx context.Context, session ports.EditSession) bool {
	ready := session.Ready()
	select {
	case <-ready:
		return true
	default:
	}

	timer := time.NewTimer(a.timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return false
	case <-ready:
		return true
	}
}

func (a *Async) runIdle(ctx context.Context, session ports.EditSession) {
	if a.cfg.idle == nil {
		return
	}
	session.Hide()
	a.cfg.idle(ctx)
	session.Show()
}

// reset stops the current session and returns to Uninitialized.
func (a *Async) reset() {
	if a.state.Session != nil {
		a.state.Session.Stop()
	}
	a.state = EditState{Phase: Uninitialized}
}

// Stop abandons any edit in progress.
func (a *Async) Stop() {
	a.reset()
}
