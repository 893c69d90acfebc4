package edinet

import (
	"time"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

// submitDateTimeLayout is EDINET's disclosure timestamp format.
const submitDateTimeLayout = "2006-01-02 15:04"

// Drop reasons reported to the DropObserver.
const (
	dropUnknownType    = "unknown_type"
	dropFormatMismatch = "format_mismatch"
	dropInvalidRecord  = "invalid_record"
)

// docTypeCodes maps EDINET document type codes onto filing categories.
// Codes outside this table mean the record is dropped, never mapped to a
// sentinel member.
var docTypeCodes = map[string]domain.DisclosureType{
	"120": domain.DisclosureAnnualReport,
	"130": domain.DisclosureAmendedAnnualReport,
	"140": domain.DisclosureQuarterlyReport,
	"150": domain.DisclosureAmendedQuarterlyReport,
	"160": domain.DisclosureSemiAnnualReport,
	"170": domain.DisclosureAmendedSemiAnnualReport,
	"180": domain.DisclosureMaterialEventReport,
	"190": domain.DisclosureAmendedMaterialEventReport,
	"200": domain.DisclosureParentCompanyReport,
	"210": domain.DisclosureAmendedParentCompanyReport,
	"220": domain.DisclosureShareRepurchaseReport,
	"230": domain.DisclosureAmendedShareRepurchaseReport,
}

// formatCodes maps filing formats onto the EDINET download type
// parameter: 1 = submission archive with XBRL, 2 = PDF, 5 = CSV.
// FormatOther has no transport code and cannot be downloaded.
var formatCodes = map[domain.FormatType]int{
	domain.FormatXBRL: 1,
	domain.FormatPDF:  2,
	domain.FormatCSV:  5,
}

// mapDisclosureType resolves an EDINET docTypeCode. The second return is
// false for unknown or missing codes.
func mapDisclosureType(code string) (domain.DisclosureType, bool) {
	dt, ok := docTypeCodes[code]
	return dt, ok
}

// transportCode resolves the EDINET download type parameter for a format.
func transportCode(format domain.FormatType) (int, bool) {
	code, ok := formatCodes[format]
	return code, ok
}

// availableFormats inspects a record's per-format flags. When none of
// the known flags are set the record counts as available in the
// synthetic OTHER format.
func availableFormats(rec documentRecord) []domain.FormatType {
	var formats []domain.FormatType
	if rec.XBRLFlag == "1" {
		formats = append(formats, domain.FormatXBRL)
	}
	if rec.PDFFlag == "1" {
		formats = append(formats, domain.FormatPDF)
	}
	if rec.CSVFlag == "1" {
		formats = append(formats, domain.FormatCSV)
	}
	if len(formats) == 0 {
		formats = append(formats, domain.FormatOther)
	}
	return formats
}

// mapRecord converts one raw EDINET record into a Document addressed in
// the target format. The second return is the drop reason when the
// record is excluded: unknown type code, target format not available, or
// a record that fails domain validation. Dropping is per record - it
// never aborts the batch.
func mapRecord(rec documentRecord, target domain.FormatType) (domain.Document, string) {
	disclosureType, ok := mapDisclosureType(rec.DocTypeCode)
	if !ok {
		return domain.Document{}, dropUnknownType
	}

	if !containsFormat(availableFormats(rec), target) {
		return domain.Document{}, dropFormatMismatch
	}

	id, err := domain.NewDocumentID(domain.SourceEDINET, rec.DocID, target)
	if err != nil {
		return domain.Document{}, dropInvalidRecord
	}

	disclosedAt, err := time.Parse(submitDateTimeLayout, rec.SubmitDateTime)
	if err != nil {
		return domain.Document{}, dropInvalidRecord
	}

	doc, err := domain.NewDocument(
		id,
		rec.DocDescription,
		rec.SecCode,
		disclosureType,
		domain.SourceEDINET,
		disclosedAt,
		target,
	)
	if err != nil {
		return domain.Document{}, dropInvalidRecord
	}
	return doc, ""
}

func containsFormat(formats []domain.FormatType, target domain.FormatType) bool {
	for _, f := range formats {
		if f == target {
			return true
		}
	}
	return false
}
