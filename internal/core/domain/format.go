package domain

// FormatType identifies the file format of a filing.
type FormatType string

// Known filing formats.
const (
	// FormatXBRL is the structured XBRL submission archive.
	FormatXBRL FormatType = "XBRL"

	// FormatPDF is the rendered PDF document.
	FormatPDF FormatType = "PDF"

	// FormatCSV is the tabular CSV extract.
	FormatCSV FormatType = "CSV"

	// FormatOther is the fallback when a record advertises none of the
	// known format flags.
	FormatOther FormatType = "OTHER"
)

// IsValid returns true if the format is recognised.
func (f FormatType) IsValid() bool {
	switch f {
	case FormatXBRL, FormatPDF, FormatCSV, FormatOther:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f FormatType) String() string {
	return string(f)
}

// ParseFormatType converts a string into a FormatType.
// Returns ErrInvalidInput for empty or unknown values.
func ParseFormatType(s string) (FormatType, error) {
	f := FormatType(s)
	if !f.IsValid() {
		return "", invalidInputf("format type %q", s)
	}
	return f, nil
}
