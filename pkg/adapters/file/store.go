package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/aretw0/cmdline/pkg/ports"
)

// Store implements ports.HistoryStore on plain text files.
// The key is the file path; every entry is one line.
type Store struct {
	// Perm is the mode used when a history file is created.
	Perm os.FileMode
}

// NewStore creates a file-backed history store.
func NewStore() *Store {
	return &Store{Perm: 0600}
}

// Load reads the entries of the file at path, skipping blank lines.
func (s *Store) Load(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	return entries, nil
}

// Save replaces the file at path with one entry per line, writing a temp
// file and renaming it over the old one.
// Line breaks inside an entry are replaced by spaces.
func (s *Store) Save(ctx context.Context, path string, entries []string) error {
	if path == "" {
		return fmt.Errorf("history path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to ensure history directory: %w", err)
		}
	}

	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(strings.NewReplacer("\r", " ", "\n", " ").Replace(entry))
		b.WriteByte('\n')
	}

	// Written next to the target so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Chmod(s.Perm); err != nil {
		return fmt.Errorf("failed to set history file mode: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Windows refuses to rename over an existing file.
	if runtime.GOOS == "windows" {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to replace history file: %w", err)
		}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Ensure creates an empty file at path if none exists.
func (s *Store) Ensure(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to ensure history directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, s.Perm)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	return f.Close()
}
