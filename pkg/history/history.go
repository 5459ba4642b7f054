// Package history keeps the bounded list of recent lines owned by a line editor.
package history

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aretw0/cmdline/pkg/ports"
)

// DefaultMaxLen is the retention size of a new History.
const DefaultMaxLen = 100

// History is a bounded list of entries, oldest first, persisted through a
// ports.HistoryStore. It is safe for concurrent use, so a terminal can walk it
// from its read goroutine.
type History struct {
	mu      sync.Mutex
	entries []string
	maxLen  int
	store   ports.HistoryStore
}

// New creates an empty History persisted in store.
func New(store ports.HistoryStore) *History {
	return &History{
		maxLen: DefaultMaxLen,
		store:  store,
	}
}

// Add appends line. Empty lines and repeats of the last entry are ignored.
// The oldest entry is dropped when the list is full.
func (h *History) Add(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.add(line)
}

func (h *History) add(line string) {
	if h.maxLen == 0 || line == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	if len(h.entries) == h.maxLen {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, line)
}

// SetMaxLen changes the retention size, dropping the oldest entries if needed.
// Values below 1 are ignored and reported as false.
func (h *History) SetMaxLen(n int) bool {
	if n < 1 {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) > n {
		h.entries = append([]string(nil), h.entries[len(h.entries)-n:]...)
	}
	h.maxLen = n
	return true
}

// MaxLen returns the retention size.
func (h *History) MaxLen() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxLen
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// At returns an entry counting back from the newest, which is index 0.
// It panics if idx is out of range.
func (h *History) At(idx int) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1-idx]
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...)
}

// Load replaces the entries with those saved under key.
// A key with nothing saved yields an empty history.
func (h *History) Load(ctx context.Context, key string) error {
	entries, err := h.store.Load(ctx, key)
	if err != nil && !errors.Is(err, ports.ErrHistoryNotFound) {
		return fmt.Errorf("history load: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
	for _, e := range entries {
		h.add(e)
	}
	return nil
}

// Save writes the entries under key.
func (h *History) Save(ctx context.Context, key string) error {
	if err := h.store.Save(ctx, key, h.Entries()); err != nil {
		return fmt.Errorf("history save: %w", err)
	}
	return nil
}
