package services

import (
	"context"
	"fmt"

	"github.com/fino-labs/fino-cli/internal/core/domain"
	"github.com/fino-labs/fino-cli/internal/core/ports/driven"
)

// Ensure DocumentRepository implements the interface.
var _ driven.DocumentRepository = (*DocumentRepository)(nil)

// DocumentRepository composes a blob store with the path policy. Filings
// are always stored as archives, so every path carries the .zip suffix.
//
// Exists and Save are not transactional: two concurrent runs against the
// same storage root can both observe "missing" and both write the same
// path. At-most-once persistence holds within a single run only.
type DocumentRepository struct {
	store driven.BlobStore
}

// NewDocumentRepository constructs a repository over the given blob store.
func NewDocumentRepository(store driven.BlobStore) *DocumentRepository {
	return &DocumentRepository{store: store}
}

// Exists reports whether the document is already collected.
func (r *DocumentRepository) Exists(ctx context.Context, doc domain.Document) (bool, error) {
	ok, err := r.store.Exists(ctx, GeneratePath(doc, true))
	if err != nil {
		return false, fmt.Errorf("check document %s: %w", doc.ID, err)
	}
	return ok, nil
}

// Save persists the document's raw bytes at its partition path.
// No partial-write recovery is attempted here; blob store failures
// propagate unchanged in kind.
func (r *DocumentRepository) Save(ctx context.Context, doc domain.Document, data []byte) error {
	if err := r.store.Save(ctx, GeneratePath(doc, true), data); err != nil {
		return fmt.Errorf("save document %s: %w", doc.ID, err)
	}
	return nil
}
