package driving

import (
	"context"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

// Collector orchestrates listing, deduplication, download and persistence
// of disclosure filings.
type Collector interface {
	// List returns the documents the source advertises for the criteria
	// and the subset already present in storage. No downloads occur.
	List(ctx context.Context, criteria domain.SearchCriteria) (*ListResult, error)

	// Collect downloads and persists every document not already stored.
	// Already-stored documents are left untouched.
	Collect(ctx context.Context, criteria domain.SearchCriteria) (*CollectResult, error)
}

// ListResult is the outcome of a List operation.
type ListResult struct {
	// Available is every document the source listed for the criteria.
	Available []domain.Document

	// Stored is the subset of Available already present in storage.
	Stored []domain.Document
}

// CollectResult is the outcome of a Collect operation.
type CollectResult struct {
	// Available is every document the source listed for the criteria.
	Available []domain.Document

	// Stored is the subset of Available that was already in storage
	// before the run.
	Stored []domain.Document

	// Collected is the documents downloaded and saved by this run.
	Collected []domain.Document

	// Failed records documents whose download or save failed. Failures
	// are isolated per document; the run continues past them.
	Failed []CollectFailure
}

// CollectFailure pairs a document with the error that prevented its
// collection.
type CollectFailure struct {
	Document domain.Document
	Err      error
}
