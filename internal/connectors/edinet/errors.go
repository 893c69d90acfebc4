package edinet

import (
	"errors"
	"fmt"
	"time"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

// ConnectionError represents a transport-level failure reaching EDINET:
// a timeout, a refused connection, DNS failure. Recoverable by
// caller-driven retry; the operation and target date are preserved so a
// retry can be issued deterministically.
type ConnectionError struct {
	// Op is the API operation, "list" or "download".
	Op string

	// Target is the listing date or document id the call was for.
	Target string

	// Err is the underlying transport error.
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("edinet: %s %s: connection failed: %v", e.Op, e.Target, e.Err)
}

// Unwrap exposes both the domain error kind and the transport cause.
func (e *ConnectionError) Unwrap() []error {
	return []error{domain.ErrSourceConnection, e.Err}
}

// APIError represents a non-success response from the EDINET API.
// It carries the HTTP-level or metadata-level status code and the
// source-specific message when one was supplied.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("edinet: API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("edinet: API error %d", e.StatusCode)
}

// InvalidResponseError indicates the response is missing required
// structure, e.g. no results collection. Non-retryable for that call.
type InvalidResponseError struct {
	Target string
	Reason string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("edinet: invalid response for %s: %s", e.Target, e.Reason)
}

// Unwrap exposes the domain error kind.
func (e *InvalidResponseError) Unwrap() error {
	return domain.ErrSourceInvalidResponse
}

// RateLimitError indicates the API rate limit was exceeded. RetryAfter
// is zero when the source gave no hint.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("edinet: rate limit exceeded, retry after %s", e.RetryAfter)
	}
	return "edinet: rate limit exceeded"
}

// Unwrap exposes the domain error kind.
func (e *RateLimitError) Unwrap() error {
	return domain.ErrRateLimited
}

// IsUnauthorized checks if the error indicates an authentication or
// authorization failure (invalid or expired API key).
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
	}
	return false
}

// IsBadRequest checks if the error indicates a client-side request error.
func IsBadRequest(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 &&
			apiErr.StatusCode != 401 && apiErr.StatusCode != 403
	}
	return false
}

// IsServerError checks if the error indicates an EDINET-side failure.
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateErr *RateLimitError
	return errors.As(err, &rateErr)
}
