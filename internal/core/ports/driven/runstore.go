package driven

import (
	"context"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

// RunStore persists collection run history.
type RunStore interface {
	// Record appends one completed run.
	Record(ctx context.Context, run domain.CollectionRun) error

	// List returns the most recent runs, newest first, up to limit.
	List(ctx context.Context, limit int) ([]domain.CollectionRun, error)
}
