package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/cmdline/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.HistoryStore on Redis lists, so several hosts can
// share one history.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration of a saved history.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for histories.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis history store.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis history store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "cmdline:history:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

// Save replaces the list under key in a single transaction.
func (s *Store) Save(ctx context.Context, key string, entries []string) error {
	values := make([]any, len(entries))
	for i, e := range entries {
		values[i] = e
	}

	_, err := s.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.Del(ctx, s.key(key))
		if len(values) > 0 {
			pipe.RPush(ctx, s.key(key), values...)
			if s.ttl > 0 {
				pipe.Expire(ctx, s.key(key), s.ttl)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save history to redis: %w", err)
	}
	return nil
}

// Load returns the list under key.
func (s *Store) Load(ctx context.Context, key string) ([]string, error) {
	entries, err := s.client.LRange(ctx, s.key(key), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load history from redis: %w", err)
	}
	if len(entries) == 0 {
		// LRANGE does not distinguish an empty list from a missing key.
		n, err := s.client.Exists(ctx, s.key(key)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to load history from redis: %w", err)
		}
		if n == 0 {
			return nil, ports.ErrHistoryNotFound
		}
	}
	return entries, nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
