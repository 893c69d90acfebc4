// Package local provides a BlobStore over a local filesystem directory.
package local

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fino-labs/fino-cli/internal/core/domain"
	"github.com/fino-labs/fino-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.BlobStore = (*Store)(nil)

// Store persists blobs as files under a configured root directory.
// Every path is resolved against the root and rejected before any I/O
// if it is absolute or would escape the root.
type Store struct {
	root string
}

// NewStore creates a local blob store rooted at dir. The directory is
// created if it does not exist.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: storage directory cannot be empty", domain.ErrInvalidInput)
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Store{root: root}, nil
}

// Exists reports whether a file is stored at the path.
func (s *Store) Exists(_ context.Context, path string) (bool, error) {
	target, err := s.resolve(path)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: stat %s: %v", domain.ErrStorageIO, path, err)
	}
	return true, nil
}

// Save writes the blob at the path, creating parent directories as
// needed. A write of fewer bytes than supplied is an error.
func (s *Store) Save(_ context.Context, path string, data []byte) error {
	target, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("%w: create parent of %s: %v", domain.ErrStorageIO, path, err)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrStorageIO, path, err)
	}

	n, err := f.Write(data)
	if err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorageIO, path, err)
	}
	if n != len(data) {
		f.Close()
		return fmt.Errorf("%w: incomplete write to %s: %d != %d", domain.ErrStorageIO, path, n, len(data))
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", domain.ErrStorageIO, path, err)
	}
	return nil
}

// resolve joins the path onto the root and verifies containment.
func (s *Store) resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("%w: %q", domain.ErrAbsolutePath, path)
	}

	full := filepath.Join(s.root, filepath.FromSlash(path))
	if full != s.root && !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", domain.ErrPathTraversal, path)
	}
	return full, nil
}
