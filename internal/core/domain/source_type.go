package domain

// SourceType identifies the origin disclosure system for a filing.
type SourceType string

// Known disclosure sources.
const (
	// SourceEDINET is Japan's Electronic Disclosure for Investors' NETwork.
	SourceEDINET SourceType = "EDINET"

	// SourceEDGAR is the SEC's EDGAR system. Declared for forward
	// compatibility; no connector ships for it yet.
	SourceEDGAR SourceType = "EDGAR"
)

// IsValid returns true if the source type is recognised.
func (s SourceType) IsValid() bool {
	switch s {
	case SourceEDINET, SourceEDGAR:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s SourceType) String() string {
	return string(s)
}

// ParseSourceType converts a string into a SourceType.
// Returns ErrInvalidInput for empty or unknown values.
func ParseSourceType(s string) (SourceType, error) {
	st := SourceType(s)
	if !st.IsValid() {
		return "", invalidInputf("source type %q", s)
	}
	return st, nil
}
