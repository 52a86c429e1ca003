package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CostRange is the min/max guidance a cost table yields for one bracket.
// Immutable once constructed; a lookup produces one and a calculation
// consumes it exactly once.
type CostRange struct {
	MinCost decimal.Decimal `json:"min_cost"`
	MaxCost decimal.Decimal `json:"max_cost"`
	Notes   []string        `json:"notes,omitempty"`
}

// NewCostRange builds a range from integer dollar bounds, the form the
// published tables use.
func NewCostRange(min, max int64, notes ...string) CostRange {
	return CostRange{
		MinCost: decimal.NewFromInt(min),
		MaxCost: decimal.NewFromInt(max),
		Notes:   notes,
	}
}

// Midpoint returns the arithmetic mean of the bounds.
func (r CostRange) Midpoint() decimal.Decimal {
	return r.MinCost.Add(r.MaxCost).Div(decimal.NewFromInt(2))
}

// Valid reports whether the range invariant min <= max holds.
func (r CostRange) Valid() bool {
	return r.MinCost.LessThanOrEqual(r.MaxCost)
}

func (r CostRange) String() string {
	return fmt.Sprintf("$%s - $%s", r.MinCost.StringFixed(2), r.MaxCost.StringFixed(2))
}

// Confidence marks whether a calculation came from a fully matched table
// entry or from a fallback path.
type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceNone Confidence = "none"
)

// CalculationSource tags which regime produced a result.
type CalculationSource string

const (
	SourceGeneral                CalculationSource = "general"
	SourceApplication            CalculationSource = "pd_application"
	SourceTrialCategory          CalculationSource = "pd_trial_category"
	SourceOriginatingApplication CalculationSource = "pd_originating_application"
	SourceAppeal                 CalculationSource = "pd_appeal"
)

// PrecedentSummary is the citation-level view of a matched precedent that
// travels inside a CalculationResult.
type PrecedentSummary struct {
	CaseID         string   `json:"case_id"`
	Citation       string   `json:"citation"`
	ShortName      string   `json:"short_name"`
	Court          Court    `json:"court"`
	Year           int      `json:"year"`
	Principle      string   `json:"principle"`
	RelevanceScore float64  `json:"relevance_score"`
	MatchReasons   []string `json:"match_reasons,omitempty"`
}

// CalculationResult is the full output of one cost determination. It is
// constructed fresh per invocation and owned entirely by the caller; the
// engine keeps no reference to it.
type CalculationResult struct {
	BaseCosts    decimal.Decimal `json:"base_costs"`
	TotalCosts   decimal.Decimal `json:"total_costs"`
	CostRangeMin decimal.Decimal `json:"cost_range_min"`
	CostRangeMax decimal.Decimal `json:"cost_range_max"`

	CalculationBasis string            `json:"calculation_basis"`
	CourtLevel       string            `json:"court_level"`
	CaseType         string            `json:"case_type"`
	Source           CalculationSource `json:"source"`

	// CalculationSteps is the append-only audit trail, one line per applied
	// rule, in application order.
	CalculationSteps []string `json:"calculation_steps"`

	Assumptions  []string   `json:"assumptions,omitempty"`
	RulesApplied []string   `json:"rules_applied"`
	Confidence   Confidence `json:"confidence"`

	CaseLaw []PrecedentSummary `json:"case_law,omitempty"`
}

// AddStep appends one line to the audit trail.
func (r *CalculationResult) AddStep(format string, args ...any) {
	r.CalculationSteps = append(r.CalculationSteps, fmt.Sprintf(format, args...))
}

// AddAssumption records an assumption made while defaulting a missing or
// malformed field.
func (r *CalculationResult) AddAssumption(format string, args ...any) {
	r.Assumptions = append(r.Assumptions, fmt.Sprintf(format, args...))
}

// AddRule appends a rule identifier to the applied-rules list.
func (r *CalculationResult) AddRule(id string) {
	r.RulesApplied = append(r.RulesApplied, id)
}
