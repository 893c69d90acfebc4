package domain

// SearchCriteria selects which filings a connector should list.
// The orchestration layer passes it through opaquely; only the connector
// interprets it.
type SearchCriteria struct {
	// Format is the target file format. Records not available in this
	// format are excluded from listings.
	Format FormatType

	// Scope is the collection window, partitioned into per-day listing
	// calls by the connector.
	Scope TimeScope
}

// NewSearchCriteria builds validated criteria.
func NewSearchCriteria(format FormatType, scope TimeScope) (SearchCriteria, error) {
	if !format.IsValid() {
		return SearchCriteria{}, invalidInputf("criteria format %q", format)
	}
	return SearchCriteria{Format: format, Scope: scope}, nil
}

// String renders the criteria for logs and run history.
func (c SearchCriteria) String() string {
	return c.Scope.String() + " " + c.Format.String()
}
