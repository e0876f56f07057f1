package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// FileStore persists each key as a JSON file in a directory. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// truncated value behind.
type FileStore struct {
	dir    string
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string, logger zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{
		dir:    dir,
		logger: logger.With().Str("store", "file").Logger(),
	}, nil
}

// Read returns the value stored under key, if any.
func (s *FileStore) Read(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read key")
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return data, true, nil
}

// Write durably stores value under key.
func (s *FileStore) Write(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write key")
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to persist key")
		return fmt.Errorf("failed to persist key %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key.
func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(key string) string {
	// Keys may contain path separators; flatten them so every key maps to a
	// single file inside the store directory.
	name := strings.ReplaceAll(key, string(filepath.Separator), "_") + ".json"
	return filepath.Join(s.dir, name)
}
