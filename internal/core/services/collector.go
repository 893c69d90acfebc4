package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fino-labs/fino-cli/internal/core/domain"
	"github.com/fino-labs/fino-cli/internal/core/ports/driven"
	"github.com/fino-labs/fino-cli/internal/core/ports/driving"
	"github.com/fino-labs/fino-cli/internal/logger"
)

// DefaultDownloadWorkers bounds concurrent document downloads.
const DefaultDownloadWorkers = 4

// Ensure Collector implements the interface.
var _ driving.Collector = (*Collector)(nil)

// Collector orchestrates the collection pipeline: source listing,
// storage-backed deduplication, download and persistence.
type Collector struct {
	source  driven.DisclosureSource
	repo    driven.DocumentRepository
	runs    driven.RunStore
	metrics *Metrics
	workers int
}

// NewCollector creates a collector over a disclosure source and a document
// repository. The run store and metrics are optional - pass nil to disable
// run history or instrumentation. workers bounds concurrent downloads;
// values below 1 fall back to DefaultDownloadWorkers.
func NewCollector(
	source driven.DisclosureSource,
	repo driven.DocumentRepository,
	runs driven.RunStore,
	metrics *Metrics,
	workers int,
) *Collector {
	if workers < 1 {
		workers = DefaultDownloadWorkers
	}
	return &Collector{
		source:  source,
		repo:    repo,
		runs:    runs,
		metrics: metrics,
		workers: workers,
	}
}

// List returns the documents the source advertises for the criteria and
// the subset already stored. No downloads occur.
func (c *Collector) List(ctx context.Context, criteria domain.SearchCriteria) (*driving.ListResult, error) {
	startedAt := time.Now().UTC()

	available, stored, _, err := c.listAndPartition(ctx, criteria)
	if err != nil {
		return nil, err
	}

	c.recordRun(ctx, domain.CollectionRun{
		Operation: domain.OperationList,
		Criteria:  criteria.String(),
		Available: len(available),
		Stored:    len(stored),
		StartedAt: startedAt,
	})

	return &driving.ListResult{Available: available, Stored: stored}, nil
}

// Collect downloads and persists every document not already stored.
//
// Download+save pairs run concurrently up to the configured worker bound.
// Each pair is one unit: a failure for one document is recorded and the
// run continues, so a bad document never aborts in-flight work for
// others. Only context cancellation stops the run early.
func (c *Collector) Collect(ctx context.Context, criteria domain.SearchCriteria) (*driving.CollectResult, error) {
	startedAt := time.Now().UTC()

	available, stored, missing, err := c.listAndPartition(ctx, criteria)
	if err != nil {
		return nil, err
	}

	logger.Info("Collecting %d of %d documents (%d already stored)",
		len(missing), len(available), len(stored))

	var (
		mu        sync.Mutex
		collected []domain.Document
		failed    []driving.CollectFailure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for _, doc := range missing {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			logger.Debug("Downloading %s", doc.ID)
			data, err := c.source.Download(gctx, doc)
			if err != nil {
				c.metrics.IncrementFailure("download")
				logger.Warn("Download failed for %s: %v", doc.ID, err)
				mu.Lock()
				failed = append(failed, driving.CollectFailure{Document: doc, Err: err})
				mu.Unlock()
				return nil
			}

			if err := c.repo.Save(gctx, doc, data); err != nil {
				c.metrics.IncrementFailure("save")
				logger.Warn("Save failed for %s: %v", doc.ID, err)
				mu.Lock()
				failed = append(failed, driving.CollectFailure{Document: doc, Err: err})
				mu.Unlock()
				return nil
			}

			c.metrics.IncrementCollected()
			mu.Lock()
			collected = append(collected, doc)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collect %s: %w", criteria, err)
	}

	logger.Info("Collect complete: %d collected, %d failed", len(collected), len(failed))

	c.recordRun(ctx, domain.CollectionRun{
		Operation: domain.OperationCollect,
		Criteria:  criteria.String(),
		Available: len(available),
		Stored:    len(stored),
		Collected: len(collected),
		Failed:    len(failed),
		StartedAt: startedAt,
	})

	return &driving.CollectResult{
		Available: available,
		Stored:    stored,
		Collected: collected,
		Failed:    failed,
	}, nil
}

// listAndPartition lists the available documents and splits them into
// already-stored and missing sets using the repository's existence check.
func (c *Collector) listAndPartition(
	ctx context.Context,
	criteria domain.SearchCriteria,
) (available, stored, missing []domain.Document, err error) {
	available, err = c.source.ListAvailable(ctx, criteria)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("list available documents for %s: %w", criteria, err)
	}

	for _, doc := range available {
		if err := ctx.Err(); err != nil {
			return nil, nil, nil, err
		}

		exists, err := c.repo.Exists(ctx, doc)
		if err != nil {
			return nil, nil, nil, err
		}
		if exists {
			stored = append(stored, doc)
		} else {
			missing = append(missing, doc)
		}
	}
	return available, stored, missing, nil
}

// recordRun appends the run to history. Best effort: history must never
// fail an otherwise successful operation.
func (c *Collector) recordRun(ctx context.Context, run domain.CollectionRun) {
	if c.runs == nil {
		return
	}

	run.ID = uuid.NewString()
	run.Source = c.source.Type()
	run.FinishedAt = time.Now().UTC()

	if err := c.runs.Record(ctx, run); err != nil {
		logger.Warn("Failed to record %s run: %v", run.Operation, err)
	}
}
