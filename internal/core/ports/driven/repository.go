package driven

import (
	"context"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

// DocumentRepository answers whether a document is already collected and
// persists newly downloaded ones. It is the single deduplication
// authority: a document is "already collected" if and only if a blob
// exists at its deterministic partition path.
type DocumentRepository interface {
	// Exists reports whether the document's blob is already stored.
	Exists(ctx context.Context, doc domain.Document) (bool, error)

	// Save persists the document's raw bytes at its partition path.
	// Storage failures propagate unchanged.
	Save(ctx context.Context, doc domain.Document, data []byte) error
}
