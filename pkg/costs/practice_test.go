package costs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coolbeans/costadvisor/pkg/types"
)

func pdDetails() types.CaseDetails {
	return types.CaseDetails{
		CourtLevel:      types.CourtLevelHigh,
		ComplexityLevel: types.ComplexityModerate,
	}
}

func TestApplicationCostsContestedScale(t *testing.T) {
	engine := NewEngine(nil)

	d := pdDetails()
	d.ApplicationType = "summary_judgment"
	d.Contested = true
	result := engine.Determine(d)

	assert.Equal(t, types.SourceApplication, result.Source)
	assert.Equal(t, "9000.00", result.TotalCosts.StringFixed(2))
	assert.Equal(t, "6000.00", result.CostRangeMin.StringFixed(2))
	assert.Equal(t, "12000.00", result.CostRangeMax.StringFixed(2))
	assert.Equal(t, types.ConfidenceHigh, result.Confidence)
	assert.Contains(t, result.RulesApplied, RulePDApplication)
	assert.True(t, hasStepContaining(result, "contested scale"))
}

func TestApplicationCostsUncontestedScale(t *testing.T) {
	engine := NewEngine(nil)

	d := pdDetails()
	d.ApplicationType = "Summary Judgment" // normalized on lookup
	result := engine.Determine(d)

	assert.Equal(t, "4500.00", result.TotalCosts.StringFixed(2))
	assert.True(t, hasStepContaining(result, "uncontested scale"))
}

func TestTrialCategorySettledVersusFullTrial(t *testing.T) {
	engine := NewEngine(nil)

	settled := pdDetails()
	settled.TrialCategory = "commercial"
	settled.SettledBeforeTrial = true
	result := engine.Determine(settled)

	assert.Equal(t, types.SourceTrialCategory, result.Source)
	assert.Equal(t, "47500.00", result.TotalCosts.StringFixed(2))
	assert.Equal(t, "25000.00", result.CostRangeMin.StringFixed(2))
	assert.Equal(t, "70000.00", result.CostRangeMax.StringFixed(2))

	full := pdDetails()
	full.TrialCategory = "commercial"
	full.TrialDays = 3
	full.TrialDaysSet = true
	result = engine.Determine(full)

	assert.Equal(t, "125000.00", result.TotalCosts.StringFixed(2))
	assert.Equal(t, "70000.00", result.CostRangeMin.StringFixed(2))
	assert.Equal(t, "180000.00", result.CostRangeMax.StringFixed(2))
}

func TestTrialCategoryDailyTariffBeyondThreeDays(t *testing.T) {
	engine := NewEngine(nil)

	d := pdDetails()
	d.TrialCategory = "commercial"
	d.TrialDays = 5
	d.TrialDaysSet = true
	result := engine.Determine(d)

	// Two days beyond three at $16,000 per day lifts both bounds by
	// $32,000.
	assert.Equal(t, "102000.00", result.CostRangeMin.StringFixed(2))
	assert.Equal(t, "212000.00", result.CostRangeMax.StringFixed(2))
	assert.Equal(t, "157000.00", result.TotalCosts.StringFixed(2))
	assert.True(t, hasStepContaining(result, "daily tariff for 2 days beyond 3"))
}

func TestTrialCategoryDefaultsTrialDays(t *testing.T) {
	engine := NewEngine(nil)

	d := pdDetails()
	d.TrialCategory = "simplified"
	result := engine.Determine(d)

	// Default of 2 days stays within the base 3-day allowance, so no
	// tariff uplift applies.
	assert.Equal(t, "42500.00", result.TotalCosts.StringFixed(2))
	assert.NotEmpty(t, result.Assumptions)
	assert.False(t, hasStepContaining(result, "daily tariff"))
}

func TestOriginatingAppHearingDuration(t *testing.T) {
	engine := NewEngine(nil)

	half := pdDetails()
	half.OriginatingAppType = "complex"
	result := engine.Determine(half)

	assert.Equal(t, types.SourceOriginatingApplication, result.Source)
	assert.Equal(t, "18500.00", result.TotalCosts.StringFixed(2))

	full := pdDetails()
	full.OriginatingAppType = "complex"
	full.HearingDuration = types.HearingFullDay
	result = engine.Determine(full)

	assert.Equal(t, "37500.00", result.TotalCosts.StringFixed(2))
	assert.Equal(t, "25000.00", result.CostRangeMin.StringFixed(2))
	assert.Equal(t, "50000.00", result.CostRangeMax.StringFixed(2))
}

func TestAppealCosts(t *testing.T) {
	engine := NewEngine(nil)

	d := pdDetails()
	d.AppealLevel = "appellate_division"
	result := engine.Determine(d)

	assert.Equal(t, types.SourceAppeal, result.Source)
	assert.Equal(t, "45000.00", result.TotalCosts.StringFixed(2))
	assert.Equal(t, "30000.00", result.CostRangeMin.StringFixed(2))
	assert.Equal(t, "60000.00", result.CostRangeMax.StringFixed(2))
	assert.Contains(t, result.RulesApplied, RulePDAppeal)
}

func TestPracticeDirectionIgnoresCourtLevel(t *testing.T) {
	engine := NewEngine(nil)

	d := pdDetails()
	d.CourtLevel = types.CourtLevelDistrict
	d.AppealLevel = "registrar_appeal"
	result := engine.Determine(d)

	// Practice Direction scales are court-specific published figures;
	// no court-level factor applies.
	assert.Equal(t, "4000.00", result.TotalCosts.StringFixed(2))
	assert.NotContains(t, result.RulesApplied, RuleCourtDistrict)
}

func TestUnmatchedIndicatorReturnsSentinel(t *testing.T) {
	engine := NewEngine(nil)

	d := pdDetails()
	d.ApplicationType = "mareva_worldwide"
	result := engine.Determine(d)

	assert.True(t, result.TotalCosts.IsZero())
	assert.True(t, result.CostRangeMin.IsZero())
	assert.True(t, result.CostRangeMax.IsZero())
	assert.Equal(t, types.ConfidenceNone, result.Confidence)
	assert.Equal(t, "No applicable Practice Direction provision", result.CalculationBasis)
	assert.Contains(t, result.RulesApplied, RulePDUnmatched)
}

func TestIndicatorPriorityOrder(t *testing.T) {
	engine := NewEngine(nil)

	d := pdDetails()
	d.ApplicationType = "injunction"
	d.TrialCategory = "commercial"
	d.OriginatingAppType = "normal"
	d.AppealLevel = "court_of_appeal"
	d.Contested = true

	result := engine.Determine(d)
	assert.Equal(t, types.SourceApplication, result.Source, "application type wins")

	d.ApplicationType = ""
	result = engine.Determine(d)
	assert.Equal(t, types.SourceTrialCategory, result.Source, "then trial category")

	d.TrialCategory = ""
	result = engine.Determine(d)
	assert.Equal(t, types.SourceOriginatingApplication, result.Source, "then originating application")

	d.OriginatingAppType = ""
	result = engine.Determine(d)
	assert.Equal(t, types.SourceAppeal, result.Source, "then appeal level")
}
