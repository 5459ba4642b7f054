package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/cmdline/pkg/adapters/memory"
	"github.com/aretw0/cmdline/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func TestEditor_ReadLine_Pipe(t *testing.T) {
	var out bytes.Buffer
	e := New(strings.NewReader("hello world\r\nlast"), &out)
	require.False(t, e.Interactive())

	line, err := e.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", line)

	line, err = e.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = e.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}

func TestEditor_StartEdit_Line(t *testing.T) {
	e := New(strings.NewReader("status\n"), io.Discard)

	s, err := e.StartEdit(1024, "> ")
	require.NoError(t, err)

	select {
	case <-s.Ready():
	case <-time.After(time.Second):
		t.Fatal("edit session never became ready")
	}
	require.NoError(t, s.Err())

	line, status := s.Feed()
	assert.Equal(t, ports.FeedLine, status)
	assert.Equal(t, "status", line)
	s.Stop()
}

func TestEditor_StartEdit_OverlongLineIsNotCut(t *testing.T) {
	e := New(strings.NewReader("abcdefgh\n"), io.Discard)

	s, err := e.StartEdit(5, "")
	require.NoError(t, err)
	<-s.Ready()

	line, status := s.Feed()
	assert.Equal(t, ports.FeedLine, status)
	assert.Equal(t, "abcdefgh", line)
}

func TestEditor_StartEdit_EndOfInput(t *testing.T) {
	e := New(strings.NewReader(""), io.Discard)

	s, err := e.StartEdit(16, "")
	require.NoError(t, err)
	<-s.Ready()

	assert.NoError(t, s.Err())
	_, status := s.Feed()
	assert.Equal(t, ports.FeedCancelled, status)
}

func TestEditor_StartEdit_InvalidCapacity(t *testing.T) {
	e := New(strings.NewReader(""), io.Discard)
	_, err := e.StartEdit(1, "")
	assert.Error(t, err)
}

func TestEditor_PendingReadSurvivesStop(t *testing.T) {
	pr, pw := io.Pipe()
	e := New(pr, io.Discard)

	s, err := e.StartEdit(64, "")
	require.NoError(t, err)
	_, status := s.Feed()
	assert.Equal(t, ports.FeedMore, status)
	s.Stop()

	go func() {
		_, _ = pw.Write([]byte("later\n"))
	}()

	line, err := e.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "later", line)
}

func TestEditor_History(t *testing.T) {
	store := memory.NewStore()
	e := New(strings.NewReader(""), io.Discard, WithHistoryStore(store))

	e.HistoryAdd("one")
	e.HistoryAdd("two")
	e.HistoryAdd("two")
	assert.Equal(t, []string{"one", "two"}, e.History())

	e.HistorySetMaxLen(1)
	assert.Equal(t, []string{"two"}, e.History())

	require.NoError(t, e.HistorySave("h"))
	saved, err := store.Load(context.Background(), "h")
	require.NoError(t, err)
	assert.Equal(t, []string{"two"}, saved)
}

func TestEditor_HistoryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")

	e := New(strings.NewReader(""), io.Discard)
	require.NoError(t, e.HistoryLoad(path))
	e.HistoryAdd("sample-status")
	require.NoError(t, e.HistorySave(path))

	reloaded := New(strings.NewReader(""), io.Discard)
	require.NoError(t, reloaded.HistoryLoad(path))
	assert.Equal(t, []string{"sample-status"}, reloaded.History())
}

func TestEditor_Write(t *testing.T) {
	var out bytes.Buffer
	e := New(strings.NewReader(""), &out)
	_, err := e.Write([]byte("Invalid command: 'x'\n"))
	require.NoError(t, err)
	assert.Equal(t, "Invalid command: 'x'\n", out.String())
}

func TestEditor_PrintKeyCodes_NotTerminal(t *testing.T) {
	e := New(strings.NewReader("quit"), io.Discard)
	assert.ErrorIs(t, e.PrintKeyCodes(context.Background()), ErrNotTerminal)
}

func TestEditor_StartEdit_AfterClose(t *testing.T) {
	e := New(strings.NewReader(""), io.Discard)
	require.NoError(t, e.Close())
	_, err := e.StartEdit(16, "")
	assert.Error(t, err)
}

func TestEditor_CloseRestoresRawMode(t *testing.T) {
	e := New(strings.NewReader(""), io.Discard)
	restored := 0
	e.restore = func(int, *term.State) error {
		restored++
		return nil
	}
	e.rawState = &term.State{}

	require.NoError(t, e.Close())
	assert.Equal(t, 1, restored)

	// A read returning after Close finds nothing left to restore.
	require.NoError(t, e.restoreTerminal())
	assert.Equal(t, 1, restored)
}

func TestEditor_CloseReportsRestoreFailure(t *testing.T) {
	e := New(strings.NewReader(""), io.Discard)
	e.restore = func(int, *term.State) error { return errors.New("bad file descriptor") }
	e.rawState = &term.State{}

	assert.Error(t, e.Close())
}

func TestRecall_WalksLoadedHistory(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Save(context.Background(), "h", []string{"help", "mask on", "historylen 2"}))

	e := New(strings.NewReader(""), io.Discard, WithHistoryStore(store))
	require.NoError(t, e.HistoryLoad("h"))

	var h term.History = recall{e}
	require.Equal(t, 3, h.Len())
	assert.Equal(t, "historylen 2", h.At(0))
	assert.Equal(t, "help", h.At(2))

	h.Add("rejected line")
	assert.Equal(t, 3, h.Len())

	e.HistorySetMaxLen(2)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, "mask on", h.At(1))

	e.HistoryAdd("sample-status")
	assert.Equal(t, "sample-status", h.At(0))
}

func TestTrackQuit(t *testing.T) {
	var last strings.Builder
	seen := false
	for _, c := range []byte("xxqui") {
		seen = seen || trackQuit(&last, c)
	}
	assert.False(t, seen)
	assert.True(t, trackQuit(&last, 't'))
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "sample-", commonPrefix([]string{"sample-status", "sample-ctrl"}))
	assert.Equal(t, "", commonPrefix([]string{"help", "mask"}))
}
