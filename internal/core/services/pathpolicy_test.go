package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

func testDoc(t *testing.T, ticker string) domain.Document {
	t.Helper()
	id, err := domain.NewDocumentID(domain.SourceEDINET, "S100ABCD", domain.FormatXBRL)
	require.NoError(t, err)

	doc, err := domain.NewDocument(
		id, "Annual Securities Report", ticker,
		domain.DisclosureAnnualReport, domain.SourceEDINET,
		time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		domain.FormatXBRL,
	)
	require.NoError(t, err)
	return doc
}

func TestGeneratePath(t *testing.T) {
	doc := testDoc(t, "7203")

	assert.Equal(t,
		"EDINET/7203/ANNUAL_REPORT/EDINET_S100ABCD_XBRL_2024-03-15_XBRL.zip",
		GeneratePath(doc, true))
}

func TestGeneratePath_NoZipSuffix(t *testing.T) {
	doc := testDoc(t, "7203")

	assert.Equal(t,
		"EDINET/7203/ANNUAL_REPORT/EDINET_S100ABCD_XBRL_2024-03-15_XBRL",
		GeneratePath(doc, false))
}

func TestGeneratePath_EmptyTickerCollapsed(t *testing.T) {
	doc := testDoc(t, "")

	assert.Equal(t,
		"EDINET/ANNUAL_REPORT/EDINET_S100ABCD_XBRL_2024-03-15_XBRL.zip",
		GeneratePath(doc, true))
}

func TestGeneratePath_Deterministic(t *testing.T) {
	doc := testDoc(t, "7203")

	assert.Equal(t, GeneratePath(doc, true), GeneratePath(doc, true))
}
