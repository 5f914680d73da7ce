// Package results persists verification output as a JSON key-value file.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/lox/holdem-advisor/internal/fileutil"
)

// Store is a file-backed key-value store. Each Put rewrites the whole file
// atomically, so a crash mid-write never corrupts previously stored keys.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the file at path. The file is created
// on first Put.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Put stores value under key, merging with the keys already on disk.
func (s *Store) Put(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", key, err)
	}
	entries[key] = raw

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	return fileutil.WriteFileAtomic(s.path, data, 0o644)
}

// Get unmarshals the value stored under key into out. It returns os.ErrNotExist
// when the key (or the file) is absent.
func (s *Store) Get(key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	raw, ok := entries[key]
	if !ok {
		return fmt.Errorf("key %q: %w", key, os.ErrNotExist)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to unmarshal %q: %w", key, err)
	}
	return nil
}

func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}
	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse store: %w", err)
	}
	return entries, nil
}
