package edinet

// documentListResponse is the shape of the documents.json listing
// endpoint. Only the fields the connector reads are declared.
type documentListResponse struct {
	Metadata listMetadata `json:"metadata"`

	// Results is the per-day document collection. A missing or
	// malformed collection is a terminal error for the call, not a
	// per-record skip.
	Results []documentRecord `json:"results"`
}

// listMetadata carries EDINET's in-band status reporting. The API can
// answer HTTP 200 and still signal an error here.
type listMetadata struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// documentRecord is one raw filing record as EDINET lists it.
type documentRecord struct {
	// DocID is the upstream identifier, shared by all format variants
	// of one filing.
	DocID string `json:"docID"`

	// SecCode is the securities code of the issuer. May be null.
	SecCode string `json:"secCode"`

	// DocTypeCode classifies the filing ("120" = annual report, ...).
	DocTypeCode string `json:"docTypeCode"`

	// DocDescription is the free-text filing name.
	DocDescription string `json:"docDescription"`

	// SubmitDateTime is the disclosure timestamp, "2006-01-02 15:04".
	SubmitDateTime string `json:"submitDateTime"`

	// Per-format availability flags, "1" when the variant exists.
	XBRLFlag string `json:"xbrlFlag"`
	PDFFlag  string `json:"pdfFlag"`
	CSVFlag  string `json:"csvFlag"`
}
