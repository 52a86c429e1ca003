package advisory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coolbeans/costadvisor/pkg/types"
)

func TestDecodeCaseDetailsFullMap(t *testing.T) {
	details := DecodeCaseDetails(map[string]any{
		"court_level":        "district court",
		"case_type":          "Contested Trial",
		"claim_amount":       "S$50,000",
		"trial_days":         "3 days",
		"complexity_level":   "very complex",
		"basis_of_taxation":  "Indemnity",
		"litigant_in_person": "yes",
	})

	assert.Equal(t, types.CourtLevelDistrict, details.CourtLevel)
	assert.Equal(t, types.CaseTypeContestedTrial, details.CaseType)
	assert.True(t, details.CaseTypeKnown)
	assert.True(t, details.ClaimAmount.Equal(decimal.NewFromInt(50_000)))
	assert.Equal(t, 3, details.TrialDays)
	assert.True(t, details.TrialDaysSet)
	assert.Equal(t, types.ComplexityVeryComplex, details.ComplexityLevel)
	assert.Equal(t, "indemnity", details.BasisOfTaxation)
	assert.True(t, details.LitigantInPerson)
}

func TestDecodeCaseDetailsEmptyMap(t *testing.T) {
	details := DecodeCaseDetails(map[string]any{})

	assert.Equal(t, types.CourtLevelHigh, details.CourtLevel)
	assert.False(t, details.CaseTypeKnown)
	assert.True(t, details.ClaimAmount.IsZero())
	assert.False(t, details.TrialDaysSet)
	assert.Equal(t, types.ComplexityModerate, details.ComplexityLevel)
	assert.Equal(t, types.HearingHalfDay, details.HearingDuration)
	assert.False(t, details.HasPracticeDirectionIndicator())
}

func TestDecimalFieldCoercions(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int64
	}{
		{"plain string", "50000", 50_000},
		{"currency prefix", "S$50,000", 50_000},
		{"dollar prefix with cents", "$1,500.00", 1_500},
		{"float", 2500.0, 2_500},
		{"int", 75_000, 75_000},
		{"unparseable", "abc", 0},
		{"negative truncates to zero", "-500", 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decimalField(map[string]any{"claim_amount": tt.value}, "claim_amount")
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"got %s, want %d", got, tt.want)
		})
	}
}

func TestIntFieldCoercions(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    int
		wantSet bool
	}{
		{"int", 4, 4, true},
		{"float", 4.0, 4, true},
		{"numeric string", "4", 4, true},
		{"string with unit", "3 days", 3, true},
		{"empty string", "", 0, false},
		{"garbage", "several", 0, false},
		{"missing", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, set := intField(map[string]any{"trial_days": tt.value}, "trial_days")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSet, set)
		})
	}
}

func TestBoolFieldCoercions(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{true, true},
		{false, false},
		{"yes", true},
		{"TRUE", true},
		{"contested", true},
		{"no", false},
		{"", false},
		{1, true},
		{0, false},
		{nil, false},
	}
	for _, tt := range tests {
		got := boolField(map[string]any{"contested": tt.value}, "contested")
		assert.Equal(t, tt.want, got, "boolField(%v)", tt.value)
	}
}
