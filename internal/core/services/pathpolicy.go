package services

import (
	"path"

	"github.com/fino-labs/fino-cli/internal/core/domain"
)

// zipSuffix marks archive-style storage of raw filing bytes.
const zipSuffix = ".zip"

// GeneratePath derives the deterministic partition path for a document:
//
//	{source}/{ticker}/{disclosure_type}/{document_id}_{disclosure_date}_{format}[.zip]
//
// The function is pure: the same document always maps to the same path,
// which is what makes the repository's existence check a dedup authority.
// An empty ticker segment is collapsed by path.Join. The .zip suffix is an
// explicit parameter, never inferred from content.
func GeneratePath(doc domain.Document, asZip bool) string {
	filename := doc.ID.String() +
		"_" + doc.DisclosureDate.Format("2006-01-02") +
		"_" + doc.Format.String()
	if asZip {
		filename += zipSuffix
	}

	return path.Join(
		doc.Source.String(),
		doc.Ticker,
		doc.DisclosureType.String(),
		filename,
	)
}
