// Package memory provides an in-memory run history store for tests and
// ephemeral runs.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/fino-labs/fino-cli/internal/core/domain"
	"github.com/fino-labs/fino-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore keeps run history in memory. Safe for concurrent use.
type RunStore struct {
	mu   sync.RWMutex
	runs []domain.CollectionRun
}

// NewRunStore creates an empty in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// Record appends one completed run.
func (s *RunStore) Record(_ context.Context, run domain.CollectionRun) error {
	if run.ID == "" {
		return fmt.Errorf("%w: run id cannot be empty", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	return nil
}

// List returns the most recent runs, newest first, up to limit.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.CollectionRun, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]domain.CollectionRun, len(s.runs))
	copy(runs, s.runs)
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Len returns the number of recorded runs.
func (s *RunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}
