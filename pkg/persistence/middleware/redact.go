package middleware

import (
	"context"
	"regexp"
	"strings"

	"github.com/aretw0/cmdline/pkg/ports"
)

// Redacted replaces the arguments of sensitive commands in saved history.
const Redacted = "***"

type redactMiddleware struct {
	next     ports.HistoryStore
	patterns []*regexp.Regexp
}

// NewRedactMiddleware creates a middleware that masks the arguments of every
// entry whose command name matches one of the patterns. The command name is
// kept so the entry still shows what was run.
func NewRedactMiddleware(patterns []string) (Middleware, error) {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled[i] = re
	}
	return func(next ports.HistoryStore) ports.HistoryStore {
		return &redactMiddleware{next: next, patterns: compiled}
	}, nil
}

// Save masks a copy of entries; the caller's slice is not modified.
func (m *redactMiddleware) Save(ctx context.Context, key string, entries []string) error {
	masked := make([]string, len(entries))
	for i, e := range entries {
		masked[i] = m.mask(e)
	}
	return m.next.Save(ctx, key, masked)
}

func (m *redactMiddleware) Load(ctx context.Context, key string) ([]string, error) {
	return m.next.Load(ctx, key)
}

func (m *redactMiddleware) mask(entry string) string {
	fields := strings.Fields(entry)
	if len(fields) < 2 {
		return entry
	}
	for _, p := range m.patterns {
		if p.MatchString(fields[0]) {
			return fields[0] + " " + Redacted
		}
	}
	return entry
}
