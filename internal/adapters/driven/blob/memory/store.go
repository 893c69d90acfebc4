// Package memory provides an in-memory BlobStore used by tests and as a
// reference for the path rules every backend must enforce.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fino-labs/fino-cli/internal/core/domain"
	"github.com/fino-labs/fino-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.BlobStore = (*Store)(nil)

// Store keeps blobs in a map keyed by path.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewStore creates an empty in-memory blob store.
func NewStore() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

// Exists reports whether a blob is stored at the path.
func (s *Store) Exists(_ context.Context, path string) (bool, error) {
	key, err := resolve(path)
	if err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blobs[key]
	return ok, nil
}

// Save stores a copy of the blob at the path.
func (s *Store) Save(_ context.Context, path string, data []byte) error {
	key, err := resolve(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), data...)
	return nil
}

// Get returns the stored blob, for test assertions.
func (s *Store) Get(path string) ([]byte, bool) {
	key, err := resolve(path)
	if err != nil {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[key]
	return data, ok
}

// Len returns the number of stored blobs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}

// resolve normalises and validates a storage path. The same rules apply
// to every backend: no absolute paths, no traversal outside the root.
func resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	if strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("%w: %q", domain.ErrAbsolutePath, path)
	}

	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", domain.ErrPathTraversal, path)
		}
		if part != "" && part != "." {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	return strings.Join(parts, "/"), nil
}
