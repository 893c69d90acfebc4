package driven

import (
	"context"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

// DisclosureSource lists and downloads filings from one external
// disclosure system. Each source type (EDINET, EDGAR, ...) implements
// this interface.
type DisclosureSource interface {
	// Type returns the source type identifier.
	Type() domain.SourceType

	// ListAvailable returns every document matching the criteria, mapped
	// into the domain model. The listing is day-scoped internally: the
	// connector partitions the criteria's time scope into per-day calls.
	// Records that cannot be mapped are dropped, not surfaced as errors.
	ListAvailable(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Document, error)

	// Download fetches the raw bytes for one document in the format
	// encoded in its id. Bytes are returned unmodified.
	Download(ctx context.Context, doc domain.Document) ([]byte, error)
}

// DropObserver receives notifications about source records that were
// excluded during listing. Implementations must be safe for concurrent
// use; a nil observer is valid and means drops go unrecorded.
type DropObserver interface {
	// RecordDropped is called once per excluded record with the reason
	// ("unknown_type", "format_mismatch", "invalid_record").
	RecordDropped(reason string)
}
