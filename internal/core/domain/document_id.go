package domain

import "strings"

// idSeparator joins the three components of a serialized DocumentID.
const idSeparator = "_"

// DocumentID is the composite identifier for one (filing, format) pair.
//
// Disclosure sources issue one upstream id per filing irrespective of
// format, so the format is part of this system's identifier: two formats
// of the same filing never collide.
type DocumentID struct {
	// Source is the origin disclosure system.
	Source SourceType

	// UpstreamID is the identifier assigned by the source, e.g. an EDINET
	// docID. Format-independent.
	UpstreamID string

	// Format is the file format this id addresses.
	Format FormatType
}

// NewDocumentID constructs a validated composite identifier.
func NewDocumentID(source SourceType, upstreamID string, format FormatType) (DocumentID, error) {
	if !source.IsValid() {
		return DocumentID{}, invalidInputf("document id source %q", source)
	}
	if upstreamID == "" {
		return DocumentID{}, invalidInputf("document id upstream id cannot be empty")
	}
	if strings.Contains(upstreamID, idSeparator) {
		return DocumentID{}, invalidInputf("document id upstream id %q cannot contain %q", upstreamID, idSeparator)
	}
	if !format.IsValid() {
		return DocumentID{}, invalidInputf("document id format %q", format)
	}
	return DocumentID{Source: source, UpstreamID: upstreamID, Format: format}, nil
}

// String serializes the id as "{source}_{upstream_id}_{format}".
// This is the storage and wire representation.
func (id DocumentID) String() string {
	return id.Source.String() + idSeparator + id.UpstreamID + idSeparator + id.Format.String()
}

// IsZero reports whether the id is the zero value.
func (id DocumentID) IsZero() bool {
	return id == DocumentID{}
}

// ParseDocumentID decodes a serialized composite id.
// The input must have exactly three underscore-separated parts.
func ParseDocumentID(s string) (DocumentID, error) {
	parts := strings.Split(s, idSeparator)
	if len(parts) != 3 {
		return DocumentID{}, invalidInputf("document id %q must have exactly three parts", s)
	}

	source, err := ParseSourceType(parts[0])
	if err != nil {
		return DocumentID{}, err
	}
	format, err := ParseFormatType(parts[2])
	if err != nil {
		return DocumentID{}, err
	}

	return NewDocumentID(source, parts[1], format)
}
