package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fino-labs/fino-cli/internal/core/domain"
	"github.com/fino-labs/fino-cli/internal/core/ports/driving"
)

// mockCollector is a canned driving.Collector for command tests.
type mockCollector struct {
	listResult    *driving.ListResult
	collectResult *driving.CollectResult
	err           error
}

var _ driving.Collector = (*mockCollector)(nil)

func (m *mockCollector) List(_ context.Context, _ domain.SearchCriteria) (*driving.ListResult, error) {
	return m.listResult, m.err
}

func (m *mockCollector) Collect(_ context.Context, _ domain.SearchCriteria) (*driving.CollectResult, error) {
	return m.collectResult, m.err
}

// setupTestServices swaps in a mock collector and returns a cleanup func.
func setupTestServices(mock *mockCollector) func() {
	oldCollector := collectorService
	collectorService = mock
	return func() {
		collectorService = oldCollector
	}
}

func testFiling(t *testing.T, upstreamID, name string) domain.Document {
	t.Helper()
	id, err := domain.NewDocumentID(domain.SourceEDINET, upstreamID, domain.FormatXBRL)
	require.NoError(t, err)

	doc, err := domain.NewDocument(
		id, name, "7203",
		domain.DisclosureAnnualReport, domain.SourceEDINET,
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		domain.FormatXBRL,
	)
	require.NoError(t, err)
	return doc
}
