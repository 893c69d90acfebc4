package edinet

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fino-labs/fino-cli/internal/core/domain"
	"github.com/fino-labs/fino-cli/internal/core/ports/driven"
	"github.com/fino-labs/fino-cli/internal/logger"
)

// DefaultListWorkers bounds concurrent per-day listing calls. Kept small
// to respect EDINET's implicit rate limits; the client's shared limiter
// throttles across workers regardless.
const DefaultListWorkers = 3

// Ensure Connector implements the interface.
var _ driven.DisclosureSource = (*Connector)(nil)

// Connector lists and downloads filings from EDINET.
type Connector struct {
	client  *Client
	drops   driven.DropObserver
	workers int
}

// New creates an EDINET connector. The drop observer may be nil, in
// which case excluded records only show up in debug logs.
func New(client *Client, drops driven.DropObserver, listWorkers int) *Connector {
	if listWorkers < 1 {
		listWorkers = DefaultListWorkers
	}
	return &Connector{client: client, drops: drops, workers: listWorkers}
}

// Type returns the source type identifier.
func (c *Connector) Type() domain.SourceType {
	return domain.SourceEDINET
}

// ListAvailable fetches the filing listing for every day in the criteria
// window and maps the raw records into the domain model.
//
// Day-scoped calls are mutually independent and run concurrently up to
// the worker bound; the result is an order-independent union in day
// order. A listing failure for any day is terminal for the whole call.
func (c *Connector) ListAvailable(ctx context.Context, criteria domain.SearchCriteria) ([]domain.Document, error) {
	days := criteria.Scope.Days()
	perDay := make([][]domain.Document, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, day := range days {
		g.Go(func() error {
			docs, err := c.listDay(gctx, day, criteria.Format)
			if err != nil {
				return err
			}
			perDay[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var documents []domain.Document
	for _, docs := range perDay {
		documents = append(documents, docs...)
	}
	return documents, nil
}

// listDay issues one day-scoped listing call and maps its records.
func (c *Connector) listDay(ctx context.Context, day time.Time, target domain.FormatType) ([]domain.Document, error) {
	resp, err := c.client.DocumentList(ctx, day)
	if err != nil {
		return nil, err
	}
	if err := validateListResponse(resp, day); err != nil {
		return nil, err
	}

	var documents []domain.Document
	for _, rec := range resp.Results {
		doc, dropReason := mapRecord(rec, target)
		if dropReason != "" {
			if c.drops != nil {
				c.drops.RecordDropped(dropReason)
			}
			logger.Debug("Dropping record %s (%s): %s", rec.DocID, day.Format(time.DateOnly), dropReason)
			continue
		}
		documents = append(documents, doc)
	}

	logger.Debug("Listed %s: %d records, %d documents", day.Format(time.DateOnly), len(resp.Results), len(documents))
	return documents, nil
}

// validateListResponse checks the response's in-band status and the
// presence of a well-formed results collection.
func validateListResponse(resp *documentListResponse, day time.Time) error {
	target := day.Format(time.DateOnly)

	if resp.Metadata.Status != "" && resp.Metadata.Status != "200" {
		statusCode := 0
		if _, err := fmt.Sscanf(resp.Metadata.Status, "%d", &statusCode); err != nil {
			return &InvalidResponseError{Target: target, Reason: fmt.Sprintf("non-numeric status %q", resp.Metadata.Status)}
		}
		return &APIError{
			StatusCode: statusCode,
			Code:       resp.Metadata.Status,
			Message:    resp.Metadata.Message,
		}
	}

	if resp.Results == nil {
		return &InvalidResponseError{Target: target, Reason: "missing results collection"}
	}
	return nil
}

// Download fetches the raw bytes for one document. The upstream id and
// format are recovered from the structured composite id, and the format
// is mapped onto EDINET's fixed transport code table.
func (c *Connector) Download(ctx context.Context, doc domain.Document) ([]byte, error) {
	if doc.ID.Source != domain.SourceEDINET {
		return nil, fmt.Errorf("%w: document %s does not belong to EDINET", domain.ErrInvalidInput, doc.ID)
	}

	code, ok := transportCode(doc.ID.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no EDINET transport code", domain.ErrUnsupportedFormat, doc.ID.Format)
	}

	return c.client.Document(ctx, doc.ID.UpstreamID, code)
}
