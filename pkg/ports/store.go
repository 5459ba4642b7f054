package ports

import (
	"context"
	"errors"
)

// ErrHistoryNotFound is returned by HistoryStore.Load when nothing was saved under the key.
var ErrHistoryNotFound = errors.New("history not found")

// HistoryStore persists history entries, oldest first.
type HistoryStore interface {
	// Load returns the entries saved under key.
	// Returns ErrHistoryNotFound if the key does not exist.
	Load(ctx context.Context, key string) ([]string, error)

	// Save replaces the entries stored under key.
	Save(ctx context.Context, key string, entries []string) error
}
