package driven

import "context"

// BlobStore is path-addressed blob persistence, polymorphic over backends
// (local filesystem, object storage, in-memory).
//
// Paths are always relative to the backend's configured root or prefix.
// Every implementation rejects absolute paths and any path whose
// resolution would escape the root, before performing I/O.
type BlobStore interface {
	// Exists reports whether a blob is stored at the path.
	Exists(ctx context.Context, path string) (bool, error)

	// Save writes the blob at the path, creating parent structure as
	// needed. An unacknowledged or incomplete write is an error.
	Save(ctx context.Context, path string, data []byte) error
}
