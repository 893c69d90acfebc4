// Package sqlite persists run history in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/fino-labs/fino-cli/internal/core/domain"
	"github.com/fino-labs/fino-cli/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	operation   TEXT NOT NULL,
	source      TEXT NOT NULL,
	criteria    TEXT NOT NULL,
	available   INTEGER NOT NULL,
	stored      INTEGER NOT NULL,
	collected   INTEGER NOT NULL,
	failed      INTEGER NOT NULL,
	started_at  DATETIME NOT NULL,
	finished_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at DESC);
`

// RunStore is a SQLite-backed implementation of driven.RunStore.
type RunStore struct {
	db   *sql.DB
	path string
}

// NewRunStore opens (or creates) the run history database at dbPath.
func NewRunStore(dbPath string) (*RunStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating runs table: %w", err)
	}

	return &RunStore{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *RunStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *RunStore) Path() string {
	return s.path
}

// Record appends one completed run.
func (s *RunStore) Record(ctx context.Context, run domain.CollectionRun) error {
	if run.ID == "" {
		return fmt.Errorf("%w: run id cannot be empty", domain.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, operation, source, criteria, available, stored, collected, failed, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Operation, string(run.Source), run.Criteria,
		run.Available, run.Stored, run.Collected, run.Failed,
		run.StartedAt.UTC(), run.FinishedAt.UTC())

	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first, up to limit.
func (s *RunStore) List(ctx context.Context, limit int) ([]domain.CollectionRun, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, operation, source, criteria, available, stored, collected, failed, started_at, finished_at
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.CollectionRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		var run domain.CollectionRun
		var source string
		var startedAt, finishedAt time.Time
		if err := rows.Scan(&run.ID, &run.Operation, &source, &run.Criteria,
			&run.Available, &run.Stored, &run.Collected, &run.Failed,
			&startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.Source = domain.SourceType(source)
		run.StartedAt = startedAt.UTC()
		run.FinishedAt = finishedAt.UTC()
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}
