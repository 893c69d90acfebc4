package domain

import "time"

// Document represents one disclosure filing in one specific file format.
// It is the aggregate root of the collection pipeline and is immutable
// after construction: connectors build it from a validated source record,
// the repository and use cases only read it.
type Document struct {
	// ID uniquely identifies one (upstream filing, format) pair.
	ID DocumentID

	// FilingName is the source's free-text description. May be empty when
	// the source omits it.
	FilingName string

	// Ticker is the issuer identifier. May be empty when the source omits
	// it; that is not an error.
	Ticker string

	// DisclosureType is the regulatory category of the filing.
	DisclosureType DisclosureType

	// Source is the origin disclosure system.
	Source SourceType

	// DisclosureDate is the calendar date the filing was disclosed.
	// Never in the future relative to processing time.
	DisclosureDate time.Time

	// Format is the file format of this filing variant.
	Format FormatType
}

// NewDocument constructs a validated Document.
// The disclosure date is truncated to a midnight UTC date.
func NewDocument(
	id DocumentID,
	filingName string,
	ticker string,
	disclosureType DisclosureType,
	source SourceType,
	disclosureDate time.Time,
	format FormatType,
) (Document, error) {
	if id.IsZero() {
		return Document{}, invalidInputf("document id cannot be empty")
	}
	if !disclosureType.IsValid() {
		return Document{}, invalidInputf("disclosure type %q", disclosureType)
	}
	if !source.IsValid() {
		return Document{}, invalidInputf("disclosure source %q", source)
	}
	if !format.IsValid() {
		return Document{}, invalidInputf("format type %q", format)
	}

	date := time.Date(
		disclosureDate.Year(), disclosureDate.Month(), disclosureDate.Day(),
		0, 0, 0, 0, time.UTC,
	)
	if date.After(today()) {
		return Document{}, invalidInputf("disclosure date %s is in the future", date.Format(time.DateOnly))
	}

	return Document{
		ID:             id,
		FilingName:     filingName,
		Ticker:         ticker,
		DisclosureType: disclosureType,
		Source:         source,
		DisclosureDate: date,
		Format:         format,
	}, nil
}

// today returns the current UTC date at midnight.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
