package advisory

import (
	"fmt"
	"strings"

	"github.com/coolbeans/costadvisor/pkg/types"
)

// buildArgument renders the calculation and its authorities as submission
// text a practitioner can adapt.
func buildArgument(result *types.CalculationResult, matches []types.PrecedentMatch) string {
	if result.Confidence == types.ConfidenceNone && result.TotalCosts.IsZero() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Party-and-party costs are estimated at $%s, within a range of $%s to $%s. ",
		result.TotalCosts.StringFixed(2),
		result.CostRangeMin.StringFixed(2),
		result.CostRangeMax.StringFixed(2))
	fmt.Fprintf(&b, "The estimate is grounded in %s.", result.CalculationBasis)

	for i, match := range matches {
		if i >= 2 {
			break
		}
		fmt.Fprintf(&b, "\n\nIn %s %s, the court held that %s",
			match.Case.ShortName, match.Case.Citation,
			lowerFirst(match.Case.Principle))
	}

	if len(matches) > 0 && matches[0].Case.VerbatimQuote != "" {
		fmt.Fprintf(&b, "\n\nAs the court observed in %s: %q",
			matches[0].Case.ShortName, matches[0].Case.VerbatimQuote)
	}

	return b.String()
}

// buildRecommendations produces the practical next-step notes attached to a
// response.
func buildRecommendations(details types.CaseDetails, result *types.CalculationResult) []string {
	var recs []string

	if result.Confidence == types.ConfidenceNone && result.TotalCosts.IsZero() {
		recs = append(recs,
			"Identify the application type, trial category, originating application type or appeal level so the applicable Practice Direction scale can be located.")
		return recs
	}

	if result.Confidence == types.ConfidenceNone {
		recs = append(recs,
			"This is a generic estimate; confirm the case classification to obtain a table-backed figure.")
	}
	if details.CaseType == types.CaseTypeContestedTrial && !details.TrialDaysSet {
		recs = append(recs,
			"Confirm the expected trial duration; the estimate assumes a 2-day trial.")
	}
	if details.BasisOfTaxation == "indemnity" {
		recs = append(recs,
			"Indemnity costs require exceptional conduct; be prepared to particularize the conduct relied on.")
	}
	if details.LitigantInPerson {
		recs = append(recs,
			"Costs for a litigant in person are assessed as a reasonable allowance, typically below the tabulated figures.")
	}
	if !result.CostRangeMax.IsZero() &&
		result.CostRangeMax.Sub(result.CostRangeMin).GreaterThan(result.CostRangeMin) {
		recs = append(recs,
			"The published range is wide for this bracket; the final award will turn on complexity and conduct.")
	}

	recs = append(recs,
		"Figures are estimates from published guidance; the court retains full discretion on costs.")
	return recs
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
