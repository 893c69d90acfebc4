package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input to a value type
	// or criteria. Raised at construction time, never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedType indicates an unknown source, format or backend type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Storage Errors.

	// ErrPathTraversal indicates a storage path would escape the configured
	// root or prefix. Rejected before any I/O is performed.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrAbsolutePath indicates an absolute storage path was supplied.
	// Storage paths are always relative to the configured root.
	ErrAbsolutePath = errors.New("absolute path is not allowed")

	// ErrStorageIO indicates an incomplete write or a backend rejection.
	// Always propagated since it implies data loss risk.
	ErrStorageIO = errors.New("storage I/O failure")

	// Source Errors.

	// ErrSourceConnection indicates a transport-level failure reaching the
	// disclosure source. Recoverable by caller-driven retry.
	ErrSourceConnection = errors.New("source connection failed")

	// ErrSourceInvalidResponse indicates the source response is missing
	// required structure. Non-retryable for that call.
	ErrSourceInvalidResponse = errors.New("source returned an invalid response")

	// ErrRateLimited indicates the source API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrUnsupportedFormat indicates a download was requested in a format
	// the source has no transport code for.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// invalidInputf wraps ErrInvalidInput with a formatted reason.
func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
