package advisory

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/coolbeans/costadvisor/pkg/types"
)

// DecodeCaseDetails converts the dialogue layer's field map into the typed
// request the engines consume. The upstream validator guarantees well-formed
// values; this decoder still defends against missing or malformed entries by
// coercing to documented defaults rather than failing, so the boundary is
// total over arbitrary maps.
func DecodeCaseDetails(fields map[string]any) types.CaseDetails {
	var details types.CaseDetails

	details.CourtLevel = types.ParseCourtLevel(stringField(fields, "court_level"))
	details.CaseType, details.CaseTypeKnown = types.ParseCaseType(stringField(fields, "case_type"))
	details.ClaimAmount = decimalField(fields, "claim_amount")
	details.TrialDays, details.TrialDaysSet = intField(fields, "trial_days")
	details.ComplexityLevel = types.ParseComplexityLevel(stringField(fields, "complexity_level"))

	details.ApplicationType = stringField(fields, "application_type")
	details.TrialCategory = stringField(fields, "trial_category")
	details.OriginatingAppType = stringField(fields, "originating_app_type")
	details.AppealLevel = stringField(fields, "appeal_level")

	details.Contested = boolField(fields, "contested")
	details.HearingDuration = types.ParseHearingDuration(stringField(fields, "hearing_duration"))
	details.SettledBeforeTrial = boolField(fields, "settled_before_trial")

	details.BasisOfTaxation = types.NormalizeKey(stringField(fields, "basis_of_taxation"))
	details.LitigantInPerson = boolField(fields, "litigant_in_person")
	details.NonParty = boolField(fields, "non_party")
	details.SolicitorCosts = boolField(fields, "solicitor_costs")

	return details
}

func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return ""
	}
}

// decimalField coerces a numeric field. Negative and unparseable values
// truncate to zero, the documented default for claim amounts.
func decimalField(fields map[string]any, key string) decimal.Decimal {
	var d decimal.Decimal
	switch v := fields[key].(type) {
	case decimal.Decimal:
		d = v
	case float64:
		d = decimal.NewFromFloat(v)
	case float32:
		d = decimal.NewFromFloat32(v)
	case int:
		d = decimal.NewFromInt(int64(v))
	case int64:
		d = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(sanitizeAmount(v))
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	default:
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// intField coerces an integer field. The boolean reports whether a usable
// value was present at all, which the engine uses to decide whether its
// defaults apply.
func intField(fields map[string]any, key string) (int, bool) {
	switch v := fields[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			// Tolerate "3 days" style answers from the dialogue layer.
			f, ferr := strconv.ParseFloat(strings.Fields(s)[0], 64)
			if ferr != nil {
				return 0, false
			}
			return int(f), true
		}
		return n, true
	default:
		return 0, false
	}
}

func boolField(fields map[string]any, key string) bool {
	switch v := fields[key].(type) {
	case bool:
		return v
	case string:
		switch types.NormalizeKey(v) {
		case "true", "yes", "y", "1", "contested":
			return true
		}
		return false
	case int:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

// sanitizeAmount strips the currency decorations user-supplied amounts
// arrive with: "$1,500.00" parses as 1500.00.
func sanitizeAmount(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "S$")
	s = strings.TrimPrefix(s, "$")
	return strings.ReplaceAll(s, ",", "")
}
