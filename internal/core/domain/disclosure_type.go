package domain

// DisclosureType is the regulatory category of a filing.
//
// The enumeration is closed: upstream type codes that do not map to one of
// these members are dropped at the connector boundary rather than mapped to
// a sentinel "unknown" member.
type DisclosureType string

// Filing categories.
const (
	DisclosureAnnualReport                 DisclosureType = "ANNUAL_REPORT"
	DisclosureAmendedAnnualReport          DisclosureType = "AMENDED_ANNUAL_REPORT"
	DisclosureSemiAnnualReport             DisclosureType = "SEMI_ANNUAL_REPORT"
	DisclosureAmendedSemiAnnualReport      DisclosureType = "AMENDED_SEMI_ANNUAL_REPORT"
	DisclosureQuarterlyReport              DisclosureType = "QUARTERLY_REPORT"
	DisclosureAmendedQuarterlyReport       DisclosureType = "AMENDED_QUARTERLY_REPORT"
	DisclosureMaterialEventReport          DisclosureType = "MATERIAL_EVENT_REPORT"
	DisclosureAmendedMaterialEventReport   DisclosureType = "AMENDED_MATERIAL_EVENT_REPORT"
	DisclosureParentCompanyReport          DisclosureType = "PARENT_COMPANY_REPORT"
	DisclosureAmendedParentCompanyReport   DisclosureType = "AMENDED_PARENT_COMPANY_REPORT"
	DisclosureShareRepurchaseReport        DisclosureType = "SHARE_REPURCHASE_REPORT"
	DisclosureAmendedShareRepurchaseReport DisclosureType = "AMENDED_SHARE_REPURCHASE_REPORT"
)

// IsValid returns true if the disclosure type is recognised.
func (d DisclosureType) IsValid() bool {
	switch d {
	case DisclosureAnnualReport, DisclosureAmendedAnnualReport,
		DisclosureSemiAnnualReport, DisclosureAmendedSemiAnnualReport,
		DisclosureQuarterlyReport, DisclosureAmendedQuarterlyReport,
		DisclosureMaterialEventReport, DisclosureAmendedMaterialEventReport,
		DisclosureParentCompanyReport, DisclosureAmendedParentCompanyReport,
		DisclosureShareRepurchaseReport, DisclosureAmendedShareRepurchaseReport:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d DisclosureType) String() string {
	return string(d)
}

// Description returns a human-readable description of the filing category.
func (d DisclosureType) Description() string {
	switch d {
	case DisclosureAnnualReport:
		return "Annual securities report"
	case DisclosureAmendedAnnualReport:
		return "Amended annual securities report"
	case DisclosureSemiAnnualReport:
		return "Semi-annual report"
	case DisclosureAmendedSemiAnnualReport:
		return "Amended semi-annual report"
	case DisclosureQuarterlyReport:
		return "Quarterly report"
	case DisclosureAmendedQuarterlyReport:
		return "Amended quarterly report"
	case DisclosureMaterialEventReport:
		return "Material event report"
	case DisclosureAmendedMaterialEventReport:
		return "Amended material event report"
	case DisclosureParentCompanyReport:
		return "Parent company status report"
	case DisclosureAmendedParentCompanyReport:
		return "Amended parent company status report"
	case DisclosureShareRepurchaseReport:
		return "Share repurchase status report"
	case DisclosureAmendedShareRepurchaseReport:
		return "Amended share repurchase status report"
	default:
		return "Unknown"
	}
}
