package memory

import (
	"context"
	"sync"

	"github.com/aretw0/cmdline/pkg/ports"
)

// Store implements ports.HistoryStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]string
	mu   sync.RWMutex
}

// NewStore creates a new in-memory history store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]string),
	}
}

// Save replaces the entries under key. The slice is copied.
func (s *Store) Save(ctx context.Context, key string, entries []string) error {
	copied := append([]string(nil), entries...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = copied
	return nil
}

// Load returns a copy of the entries under key.
func (s *Store) Load(ctx context.Context, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.data[key]
	if !ok {
		return nil, ports.ErrHistoryNotFound
	}
	return append([]string(nil), entries...), nil
}
