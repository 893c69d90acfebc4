package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocumentID(t *testing.T) DocumentID {
	t.Helper()
	id, err := NewDocumentID(SourceEDINET, "S100ABCD", FormatXBRL)
	require.NoError(t, err)
	return id
}

func TestNewDocument_Valid(t *testing.T) {
	date := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

	doc, err := NewDocument(testDocumentID(t), "Annual securities report", "7203",
		DisclosureAnnualReport, SourceEDINET, date, FormatXBRL)
	require.NoError(t, err)

	assert.Equal(t, "7203", doc.Ticker)
	// Time-of-day is truncated to a date.
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), doc.DisclosureDate)
}

func TestNewDocument_EmptyTickerAllowed(t *testing.T) {
	doc, err := NewDocument(testDocumentID(t), "Filing", "",
		DisclosureQuarterlyReport, SourceEDINET,
		time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), FormatPDF)
	require.NoError(t, err)
	assert.Empty(t, doc.Ticker)
}

func TestNewDocument_FutureDateRejected(t *testing.T) {
	future := time.Now().UTC().AddDate(0, 0, 2)

	_, err := NewDocument(testDocumentID(t), "Filing", "7203",
		DisclosureAnnualReport, SourceEDINET, future, FormatXBRL)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewDocument_ZeroIDRejected(t *testing.T) {
	_, err := NewDocument(DocumentID{}, "Filing", "7203",
		DisclosureAnnualReport, SourceEDINET,
		time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), FormatXBRL)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewDocument_UnknownDisclosureTypeRejected(t *testing.T) {
	_, err := NewDocument(testDocumentID(t), "Filing", "7203",
		DisclosureType("MYSTERY_REPORT"), SourceEDINET,
		time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), FormatXBRL)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDisclosureType_IsValid(t *testing.T) {
	assert.True(t, DisclosureAnnualReport.IsValid())
	assert.True(t, DisclosureAmendedShareRepurchaseReport.IsValid())
	assert.False(t, DisclosureType("UNKNOWN").IsValid())
	assert.False(t, DisclosureType("").IsValid())
}

func TestFormatType_Parse(t *testing.T) {
	f, err := ParseFormatType("XBRL")
	require.NoError(t, err)
	assert.Equal(t, FormatXBRL, f)

	_, err = ParseFormatType("docx")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseFormatType("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSourceType_Parse(t *testing.T) {
	s, err := ParseSourceType("EDINET")
	require.NoError(t, err)
	assert.Equal(t, SourceEDINET, s)

	_, err = ParseSourceType("TDNET")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
