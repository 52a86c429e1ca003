// Package costs implements the cost determination engine: regime routing,
// tiered-table lookup, deterministic multiplicative adjustments, and the
// step-by-step audit trail. The engine is pure; it holds only an immutable
// table Store and never mutates it, so one Engine may serve arbitrarily many
// concurrent calls.
package costs

import (
	"github.com/shopspring/decimal"

	"github.com/coolbeans/costadvisor/pkg/tables"
	"github.com/coolbeans/costadvisor/pkg/types"
)

// Rule identifiers recorded in CalculationResult.RulesApplied.
const (
	RuleSectionA        = "appendix_g_section_a"
	RuleSectionB        = "appendix_g_section_b"
	RuleGenericEstimate = "generic_estimate"

	RuleCourtHigh        = "court_level_high"
	RuleCourtDistrict    = "court_level_district"
	RuleCourtMagistrates = "court_level_magistrates"

	RulePDApplication   = "pd_application"
	RulePDTrialCategory = "pd_trial_category"
	RulePDOriginating   = "pd_originating_application"
	RulePDAppeal        = "pd_appeal"
	RulePDUnmatched     = "pd_unmatched"
)

// DefaultTrialDays is assumed for a contested trial when the request does
// not state a duration.
const DefaultTrialDays = 2

var (
	two = decimal.NewFromInt(2)

	factorDistrict    = decimal.RequireFromString("0.65")
	factorMagistrates = decimal.RequireFromString("0.45")

	multiplierSimple      = decimal.RequireFromString("0.8")
	multiplierComplex     = decimal.RequireFromString("1.2")
	multiplierVeryComplex = decimal.RequireFromString("1.4")
)

// Engine determines party-and-party cost estimates from the tiered tables.
type Engine struct {
	tables *tables.Store
}

// NewEngine creates an engine over the given table set. A nil store falls
// back to the built-in seed tables.
func NewEngine(store *tables.Store) *Engine {
	if store == nil {
		store = tables.DefaultStore()
	}
	return &Engine{tables: store}
}

// Determine computes a cost estimate for the structured case attributes. It
// is total over all inputs: malformed or missing optional fields fall back
// to documented defaults, and unmatched classifications produce a flagged
// fallback result rather than an error.
func (e *Engine) Determine(details types.CaseDetails) *types.CalculationResult {
	if details.HasPracticeDirectionIndicator() {
		return e.determinePracticeDirection(details)
	}
	return e.determineGeneral(details)
}

// determineGeneral runs the tiered lookup for the seven general categories.
func (e *Engine) determineGeneral(details types.CaseDetails) *types.CalculationResult {
	result := newResult(details, types.SourceGeneral)

	if !details.CaseTypeKnown {
		return e.genericEstimate(details, result)
	}
	result.AddStep("Identified case type: %s", details.CaseType)

	if details.CaseType == types.CaseTypeContestedTrial {
		return e.contestedTrial(details, result)
	}

	table, ok := e.tables.GeneralTable(details.CaseType)
	if !ok {
		return e.genericEstimate(details, result)
	}

	costRange, ok := table.Lookup(details.ClaimAmount)
	if !ok {
		return e.genericEstimate(details, result)
	}

	result.CalculationBasis = table.Basis
	result.AddStep("Applied basis: %s", table.Basis)
	result.AddRule(sectionRule(table.Basis))

	base := costRange.Midpoint()
	result.AddStep("Base costs (table midpoint for claim $%s): $%s",
		details.ClaimAmount.StringFixed(2), base.StringFixed(2))

	return e.finalize(details, result, base, base, costRange)
}

// contestedTrial handles the duration-nested trial table with the
// complexity adjustment. The complexity multiplier rescales the point
// estimate only; the table bounds stay as published.
func (e *Engine) contestedTrial(details types.CaseDetails, result *types.CalculationResult) *types.CalculationResult {
	trialDays := details.TrialDays
	if !details.TrialDaysSet || trialDays <= 0 {
		trialDays = DefaultTrialDays
		result.AddAssumption("Trial duration not stated; assumed %d days", DefaultTrialDays)
	}

	if e.tables.Trial == nil {
		return e.genericEstimate(details, result)
	}
	costRange, tierLabel, ok := e.tables.Trial.Lookup(trialDays, details.ClaimAmount)
	if !ok {
		return e.genericEstimate(details, result)
	}

	result.CalculationBasis = e.tables.Trial.Basis
	result.AddStep("Applied basis: %s", e.tables.Trial.Basis)
	result.AddRule(sectionRule(e.tables.Trial.Basis))
	result.AddStep("Selected duration tier: %s (%d trial days)", tierLabel, trialDays)

	base := costRange.Midpoint()
	result.AddStep("Base costs (table midpoint for claim $%s): $%s",
		details.ClaimAmount.StringFixed(2), base.StringFixed(2))

	point := base
	if multiplier, ok := complexityMultiplier(details.ComplexityLevel); ok {
		point = point.Mul(multiplier)
		result.AddStep("Applied complexity adjustment (%s): x%s",
			details.ComplexityLevel, multiplier.String())
		result.AddRule("complexity_" + string(details.ComplexityLevel))
	}

	return e.finalize(details, result, base, point, costRange)
}

// genericEstimate is the safety net for case types the tables do not cover.
// It is a deliberate conservative fallback, flagged through the confidence
// marker and an explicit assumption, never an error.
func (e *Engine) genericEstimate(details types.CaseDetails, result *types.CalculationResult) *types.CalculationResult {
	generic := e.tables.Generic

	result.Confidence = types.ConfidenceNone
	result.CalculationBasis = generic.Basis
	result.AddAssumption("Case type %q has no published table; generic estimate applied", details.CaseType)
	result.AddStep("No table entry for case type %q; applying generic estimate", details.CaseType)
	result.AddStep("Base costs (generic estimate): $%s", generic.Base.StringFixed(2))
	result.AddRule(RuleGenericEstimate)

	return e.finalize(details, result, generic.Base, generic.Base, generic.Range)
}

// finalize applies the court-level adjustment to the point estimate and both
// bounds, rounds to currency precision, and closes the audit trail.
func (e *Engine) finalize(details types.CaseDetails, result *types.CalculationResult,
	base, point decimal.Decimal, costRange types.CostRange) *types.CalculationResult {

	factor, rule := courtAdjustment(details.CourtLevel)
	min, max := costRange.MinCost, costRange.MaxCost
	if !factor.Equal(decimal.NewFromInt(1)) {
		point = point.Mul(factor)
		min = min.Mul(factor)
		max = max.Mul(factor)
		result.AddStep("Applied court level adjustment (%s): x%s", details.CourtLevel, factor.String())
	}
	result.AddRule(rule)

	result.BaseCosts = round(base)
	result.TotalCosts = round(point)
	result.CostRangeMin = round(min)
	result.CostRangeMax = round(max)

	result.AddStep("Final estimate: $%s (range $%s - $%s)",
		result.TotalCosts.StringFixed(2),
		result.CostRangeMin.StringFixed(2),
		result.CostRangeMax.StringFixed(2))

	for _, note := range costRange.Notes {
		result.AddAssumption("%s", note)
	}
	return result
}

func newResult(details types.CaseDetails, source types.CalculationSource) *types.CalculationResult {
	return &types.CalculationResult{
		CourtLevel: string(details.CourtLevel),
		CaseType:   string(details.CaseType),
		Source:     source,
		Confidence: types.ConfidenceHigh,
	}
}

// round applies currency rounding. Banker's rounding (round half to even)
// matches the published table precision and keeps the audit trail
// reproducible; see the golden tests.
func round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// courtAdjustment returns the fixed court-level factor and its rule
// identifier. The District and Magistrates factors are the midpoints of the
// documented 60-70% and 40-50% ranges; they are not independently tunable.
func courtAdjustment(level types.CourtLevel) (decimal.Decimal, string) {
	switch level {
	case types.CourtLevelDistrict:
		return factorDistrict, RuleCourtDistrict
	case types.CourtLevelMagistrates:
		return factorMagistrates, RuleCourtMagistrates
	default:
		return decimal.NewFromInt(1), RuleCourtHigh
	}
}

// complexityMultiplier returns the midpoint multiplier for a complexity
// level. Moderate is the unmultiplied baseline; the boolean is false when no
// multiplier applies.
func complexityMultiplier(level types.ComplexityLevel) (decimal.Decimal, bool) {
	switch level {
	case types.ComplexitySimple:
		return multiplierSimple, true
	case types.ComplexityComplex:
		return multiplierComplex, true
	case types.ComplexityVeryComplex:
		return multiplierVeryComplex, true
	default:
		return decimal.Decimal{}, false
	}
}

// sectionRule maps a basis citation to its rules-applied identifier by the
// section segment it names.
func sectionRule(basis string) string {
	if containsFold(basis, "Section B") {
		return RuleSectionB
	}
	if containsFold(basis, "Section A") {
		return RuleSectionA
	}
	return RuleGenericEstimate
}
