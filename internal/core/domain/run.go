package domain

import "time"

// Operation names recorded in run history.
const (
	OperationList    = "list"
	OperationCollect = "collect"
)

// CollectionRun is one list or collect invocation, recorded for operator
// visibility. Run history is informational only: the storage existence
// check remains the sole deduplication authority.
type CollectionRun struct {
	// ID is the unique run identifier.
	ID string

	// Operation is "list" or "collect".
	Operation string

	// Source is the disclosure system the run targeted.
	Source SourceType

	// Criteria is the rendered search criteria, e.g. "2024-03 XBRL".
	Criteria string

	// Available is the number of documents the source listed.
	Available int

	// Stored is the number already present in storage.
	Stored int

	// Collected is the number downloaded and saved by this run.
	Collected int

	// Failed is the number of documents whose download or save failed.
	Failed int

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run completed.
	FinishedAt time.Time
}
