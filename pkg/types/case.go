// Package types defines the shared domain model for the costs advisory
// engine: case attributes, cost ranges, calculation results, and precedent
// records. All types here are plain values; the engines that consume them
// live in pkg/costs and pkg/relevance.
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CourtLevel identifies the court hearing the matter. The level drives the
// party-and-party cost adjustment applied to table figures.
type CourtLevel string

const (
	CourtLevelHigh        CourtLevel = "High Court"
	CourtLevelDistrict    CourtLevel = "District Court"
	CourtLevelMagistrates CourtLevel = "Magistrates Court"
)

// ParseCourtLevel normalizes a free-form court level string. Unrecognized
// values fall back to the High Court, which is the level the cost tables are
// published for.
func ParseCourtLevel(s string) CourtLevel {
	switch normalizeKey(s) {
	case "district_court", "district", "dc":
		return CourtLevelDistrict
	case "magistrates_court", "magistrate_court", "magistrates", "mc":
		return CourtLevelMagistrates
	default:
		return CourtLevelHigh
	}
}

// CaseType classifies the matter for the general cost regime.
type CaseType string

const (
	CaseTypeDefaultJudgmentLiquidated   CaseType = "default_judgment_liquidated"
	CaseTypeDefaultJudgmentUnliquidated CaseType = "default_judgment_unliquidated"
	CaseTypeSummaryJudgment             CaseType = "summary_judgment"
	CaseTypeContestedTrial              CaseType = "contested_trial"
	CaseTypeInterlocutoryApplication    CaseType = "interlocutory_application"
	CaseTypeAppeal                      CaseType = "appeal"
	CaseTypeStrikingOut                 CaseType = "striking_out"
)

// ParseCaseType normalizes a free-form case type string. The boolean reports
// whether the value mapped onto a known category; callers that receive false
// are expected to fall back to the generic estimate.
func ParseCaseType(s string) (CaseType, bool) {
	switch CaseType(normalizeKey(s)) {
	case CaseTypeDefaultJudgmentLiquidated,
		CaseTypeDefaultJudgmentUnliquidated,
		CaseTypeSummaryJudgment,
		CaseTypeContestedTrial,
		CaseTypeInterlocutoryApplication,
		CaseTypeAppeal,
		CaseTypeStrikingOut:
		return CaseType(normalizeKey(s)), true
	}
	return CaseType(normalizeKey(s)), false
}

// ComplexityLevel grades a contested trial for the midpoint multiplier.
type ComplexityLevel string

const (
	ComplexitySimple      ComplexityLevel = "simple"
	ComplexityModerate    ComplexityLevel = "moderate"
	ComplexityComplex     ComplexityLevel = "complex"
	ComplexityVeryComplex ComplexityLevel = "very_complex"
)

// ParseComplexityLevel normalizes a complexity string. Unset or unrecognized
// values default to moderate, the unmultiplied level.
func ParseComplexityLevel(s string) ComplexityLevel {
	switch ComplexityLevel(normalizeKey(s)) {
	case ComplexitySimple, ComplexityComplex, ComplexityVeryComplex:
		return ComplexityLevel(normalizeKey(s))
	default:
		return ComplexityModerate
	}
}

// HearingDuration modulates originating-application cost entries.
type HearingDuration string

const (
	HearingHalfDay HearingDuration = "half_day"
	HearingFullDay HearingDuration = "full_day"
)

// ParseHearingDuration normalizes a hearing duration string, defaulting to a
// half-day hearing.
func ParseHearingDuration(s string) HearingDuration {
	switch normalizeKey(s) {
	case "full_day", "full", "1_day", "one_day":
		return HearingFullDay
	default:
		return HearingHalfDay
	}
}

// CaseDetails is the structured request consumed by the cost determination
// engine. It is decoded once at the advisory boundary from the dialogue
// layer's field map, so every downstream branch switches on typed values
// rather than on raw key presence.
type CaseDetails struct {
	CourtLevel      CourtLevel      `json:"court_level"`
	CaseType        CaseType        `json:"case_type"`
	CaseTypeKnown   bool            `json:"-"`
	ClaimAmount     decimal.Decimal `json:"claim_amount"`
	TrialDays       int             `json:"trial_days"`
	TrialDaysSet    bool            `json:"-"`
	ComplexityLevel ComplexityLevel `json:"complexity_level"`

	// Practice-Direction regime indicators, in routing priority order.
	ApplicationType    string `json:"application_type,omitempty"`
	TrialCategory      string `json:"trial_category,omitempty"`
	OriginatingAppType string `json:"originating_app_type,omitempty"`
	AppealLevel        string `json:"appeal_level,omitempty"`

	// Practice-Direction modulators.
	Contested          bool            `json:"contested"`
	HearingDuration    HearingDuration `json:"hearing_duration,omitempty"`
	SettledBeforeTrial bool            `json:"settled_before_trial"`

	// Scenario flags consumed by precedent relevance.
	BasisOfTaxation  string `json:"basis_of_taxation,omitempty"`
	LitigantInPerson bool   `json:"litigant_in_person"`
	NonParty         bool   `json:"non_party"`
	SolicitorCosts   bool   `json:"solicitor_costs"`
}

// HasPracticeDirectionIndicator reports whether any of the four
// Practice-Direction routing fields is present.
func (d CaseDetails) HasPracticeDirectionIndicator() bool {
	return d.ApplicationType != "" || d.TrialCategory != "" ||
		d.OriginatingAppType != "" || d.AppealLevel != ""
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// NormalizeKey exposes the shared key normalization used for table and
// mapping lookups: lowercased, trimmed, spaces and hyphens to underscores.
func NormalizeKey(s string) string {
	return normalizeKey(s)
}
