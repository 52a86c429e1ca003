package costs

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/coolbeans/costadvisor/pkg/types"
)

// determinePracticeDirection dispatches to one of the four sub-calculators.
// The indicators are mutually exclusive by construction of the routing: the
// first present field in priority order wins.
func (e *Engine) determinePracticeDirection(details types.CaseDetails) *types.CalculationResult {
	switch {
	case details.ApplicationType != "":
		return e.applicationCosts(details)
	case details.TrialCategory != "":
		return e.trialCategoryCosts(details)
	case details.OriginatingAppType != "":
		return e.originatingAppCosts(details)
	case details.AppealLevel != "":
		return e.appealCosts(details)
	}
	return e.unmatchedPracticeDirection(details, "no Practice Direction indicator recognized")
}

// applicationCosts looks up the application table, modulated by whether the
// application was contested.
func (e *Engine) applicationCosts(details types.CaseDetails) *types.CalculationResult {
	entry, ok := e.tables.Application(details.ApplicationType)
	if !ok {
		return e.unmatchedPracticeDirection(details,
			"unrecognized application type %q", details.ApplicationType)
	}

	result := newResult(details, types.SourceApplication)
	result.AddStep("Identified application type: %s", types.NormalizeKey(details.ApplicationType))
	result.AddRule(RulePDApplication)

	costRange := entry.Uncontested
	if details.Contested {
		costRange = entry.Contested
		result.AddStep("Application was contested; using contested scale")
	} else {
		result.AddStep("Application was uncontested; using uncontested scale")
	}

	return e.finishPracticeDirection(result, entry.Basis, costRange)
}

// trialCategoryCosts looks up the per-category trial table, modulated by
// trial phase (settled before trial vs full trial). A full trial beyond
// three days accrues the category's daily tariff for each further day.
func (e *Engine) trialCategoryCosts(details types.CaseDetails) *types.CalculationResult {
	entry, ok := e.tables.TrialCategory(details.TrialCategory)
	if !ok {
		return e.unmatchedPracticeDirection(details,
			"unrecognized trial category %q", details.TrialCategory)
	}

	result := newResult(details, types.SourceTrialCategory)
	result.AddStep("Identified trial category: %s", types.NormalizeKey(details.TrialCategory))
	result.AddRule(RulePDTrialCategory)

	var costRange types.CostRange
	if details.SettledBeforeTrial {
		costRange = entry.SettledBeforeTrial
		result.AddStep("Matter settled before trial; using settled scale")
	} else {
		costRange = entry.FullTrial
		result.AddStep("Matter proceeded to full trial; using full trial scale")

		trialDays := details.TrialDays
		if !details.TrialDaysSet || trialDays <= 0 {
			trialDays = DefaultTrialDays
			result.AddAssumption("Trial duration not stated; assumed %d days", DefaultTrialDays)
		}
		if extraDays := trialDays - 3; extraDays > 0 {
			uplift := entry.DailyTariff.Mul(decimal.NewFromInt(int64(extraDays)))
			costRange = types.CostRange{
				MinCost: costRange.MinCost.Add(uplift),
				MaxCost: costRange.MaxCost.Add(uplift),
				Notes:   costRange.Notes,
			}
			result.AddStep("Added daily tariff for %d days beyond 3: $%s",
				extraDays, uplift.StringFixed(2))
		}
	}

	return e.finishPracticeDirection(result, entry.Basis, costRange)
}

// originatingAppCosts looks up the originating-application table, modulated
// by hearing duration.
func (e *Engine) originatingAppCosts(details types.CaseDetails) *types.CalculationResult {
	entry, ok := e.tables.OriginatingApp(details.OriginatingAppType)
	if !ok {
		return e.unmatchedPracticeDirection(details,
			"unrecognized originating application type %q", details.OriginatingAppType)
	}

	result := newResult(details, types.SourceOriginatingApplication)
	result.AddStep("Identified originating application type: %s", types.NormalizeKey(details.OriginatingAppType))
	result.AddRule(RulePDOriginating)

	costRange := entry.HalfDay
	if details.HearingDuration == types.HearingFullDay {
		costRange = entry.FullDay
		result.AddStep("Hearing duration: full day")
	} else {
		result.AddStep("Hearing duration: half day")
	}

	return e.finishPracticeDirection(result, entry.Basis, costRange)
}

// appealCosts looks up the appeal table by appeal level.
func (e *Engine) appealCosts(details types.CaseDetails) *types.CalculationResult {
	entry, ok := e.tables.Appeal(details.AppealLevel)
	if !ok {
		return e.unmatchedPracticeDirection(details,
			"unrecognized appeal level %q", details.AppealLevel)
	}

	result := newResult(details, types.SourceAppeal)
	result.AddStep("Identified appeal level: %s", types.NormalizeKey(details.AppealLevel))
	result.AddRule(RulePDAppeal)

	return e.finishPracticeDirection(result, entry.Basis, entry.Range)
}

// finishPracticeDirection completes a sub-calculator result: the table
// midpoint becomes the point estimate and the published bounds are carried
// unadjusted, since the Practice Direction scales are court-specific
// figures.
func (e *Engine) finishPracticeDirection(result *types.CalculationResult,
	basis string, costRange types.CostRange) *types.CalculationResult {

	result.CalculationBasis = basis
	result.AddStep("Applied basis: %s", basis)

	base := costRange.Midpoint()
	result.BaseCosts = round(base)
	result.TotalCosts = round(base)
	result.CostRangeMin = round(costRange.MinCost)
	result.CostRangeMax = round(costRange.MaxCost)

	result.AddStep("Base costs (scale midpoint): $%s", result.BaseCosts.StringFixed(2))
	result.AddStep("Final estimate: $%s (range $%s - $%s)",
		result.TotalCosts.StringFixed(2),
		result.CostRangeMin.StringFixed(2),
		result.CostRangeMax.StringFixed(2))

	for _, note := range costRange.Notes {
		result.AddAssumption("%s", note)
	}
	return result
}

// unmatchedPracticeDirection is the engine's only failure mode: a sentinel
// result with zero costs and no confidence, never an error.
func (e *Engine) unmatchedPracticeDirection(details types.CaseDetails,
	format string, args ...any) *types.CalculationResult {

	result := newResult(details, types.SourceGeneral)
	result.Confidence = types.ConfidenceNone
	result.CalculationBasis = "No applicable Practice Direction provision"
	result.AddStep("Unable to determine costs: "+format, args...)
	result.AddRule(RulePDUnmatched)

	zero := decimal.Zero
	result.BaseCosts = zero
	result.TotalCosts = zero
	result.CostRangeMin = zero
	result.CostRangeMax = zero
	return result
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
