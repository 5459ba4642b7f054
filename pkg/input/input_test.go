package input

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/cmdline/pkg/adapters/memory"
	"github.com/aretw0/cmdline/pkg/domain"
	"github.com/aretw0/cmdline/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pollTimeout = 10 * time.Millisecond

func TestNew_SelectsStrategy(t *testing.T) {
	editor := memory.NewEditor(nil)

	_, isSync := New(editor, domain.AsyncConfig{}).(*Sync)
	assert.True(t, isSync)

	_, isAsync := New(editor, domain.AsyncConfig{Enabled: true, Timeout: time.Second}).(*Async)
	assert.True(t, isAsync)
}

func TestSync_ReadsLines(t *testing.T) {
	editor := memory.NewEditor(nil, "help", "sample-status")
	s := NewSync(editor, WithPrompt("$ "))
	ctx := context.Background()

	line, err := s.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "help", line)

	line, err = s.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sample-status", line)

	_, err = s.Next(ctx)
	assert.ErrorIs(t, err, domain.ErrProcessCompleted)
	assert.Equal(t, []string{"$ ", "$ ", "$ "}, editor.Prompts)
}

func TestSync_CancelledContext(t *testing.T) {
	editor := memory.NewEditor(nil, "help")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSync(editor).Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, editor.Lines, 1, "no line should be consumed")
}

func TestAsync_TimeoutReturnsInProgress(t *testing.T) {
	editor := memory.NewEditor(nil).Script(memory.Idle())
	a := NewAsync(editor, pollTimeout)

	assert.Equal(t, Uninitialized, a.Phase())

	_, err := a.Poll(context.Background())
	assert.ErrorIs(t, err, domain.ErrInProgress)
	assert.Equal(t, Editing, a.Phase())
	assert.Equal(t, 1, editor.StartedEdits)
}

func TestAsync_ResumesAcrossPolls(t *testing.T) {
	editor := memory.NewEditor(nil).Script(
		memory.Idle(),
		memory.More(),
		memory.Idle(),
		memory.Line("sample-ctrl on"),
		memory.Line("help"),
	)
	a := NewAsync(editor, pollTimeout)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := a.Poll(ctx)
		require.ErrorIs(t, err, domain.ErrInProgress, "poll %d", i)
		require.Equal(t, Editing, a.Phase())
	}
	assert.Equal(t, 1, editor.StartedEdits, "the session survives incomplete polls")

	line, err := a.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sample-ctrl on", line)
	assert.Equal(t, Uninitialized, a.Phase(), "a delivered line resets the edit")
	assert.Equal(t, 1, editor.StoppedEdits)

	line, err = a.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "help", line)
	assert.Equal(t, Uninitialized, a.Phase())
	assert.Equal(t, 2, editor.StartedEdits, "a new session starts for the next line")
}

func TestAsync_CancelCompletesProcess(t *testing.T) {
	editor := memory.NewEditor(nil).Script(memory.Cancel())
	a := NewAsync(editor, pollTimeout)

	_, err := a.Poll(context.Background())
	assert.ErrorIs(t, err, domain.ErrProcessCompleted)
	assert.Equal(t, Uninitialized, a.Phase())
	assert.Equal(t, 1, editor.StoppedEdits)
}

func TestAsync_InputFaultTerminates(t *testing.T) {
	editor := memory.NewEditor(nil).Script(memory.Fail(errors.New("bad file descriptor")))
	a := NewAsync(editor, pollTimeout)

	_, err := a.Poll(context.Background())
	assert.ErrorIs(t, err, domain.ErrTerminated)
	assert.Contains(t, err.Error(), "bad file descriptor")
	assert.Equal(t, Uninitialized, a.Phase())
}

func TestAsync_IdleHookRunsWithPromptHidden(t *testing.T) {
	editor := memory.NewEditor(nil).Script(memory.Idle(), memory.Line("help"))
	ticks := 0
	a := NewAsync(editor, pollTimeout, WithIdle(func(ctx context.Context) {
		ticks++
		assert.Equal(t, editor.Hides, editor.Shows+1, "prompt must be hidden during idle work")
	}))

	_, err := a.Poll(context.Background())
	require.ErrorIs(t, err, domain.ErrInProgress)
	_, err = a.Poll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, ticks)
	assert.Equal(t, 1, editor.Hides)
	assert.Equal(t, 1, editor.Shows)
}

func TestAsync_ContextCancelKeepsSession(t *testing.T) {
	editor := memory.NewEditor(nil).Script(memory.Idle(), memory.Line("help"))
	a := NewAsync(editor, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.Poll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Editing, a.Phase())

	a.timeout = pollTimeout
	line, err := a.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "help", line)
	assert.Equal(t, 1, editor.StartedEdits)
}

func TestAsync_Metrics(t *testing.T) {
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	editor := memory.NewEditor(nil).Script(memory.Idle(), memory.More(), memory.Line("help"))
	a := NewAsync(editor, pollTimeout, WithMetrics(m))
	for {
		if _, err := a.Poll(context.Background()); err == nil {
			break
		}
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Polls.WithLabelValues(metrics.PollTimeout)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Polls.WithLabelValues(metrics.PollMore)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Polls.WithLabelValues(metrics.PollLine)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lines))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "editing", Editing.String())
	assert.Equal(t, "line_ready", LineReady.String())
}
