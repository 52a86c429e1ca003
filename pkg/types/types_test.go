package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCostRangeMidpoint(t *testing.T) {
	tests := []struct {
		name string
		min  int64
		max  int64
		want string
	}{
		{"simple", 3000, 5000, "4000"},
		{"odd sum", 800, 1500, "1150"},
		{"equal bounds", 5000, 5000, "5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewCostRange(tt.min, tt.max)
			if got := r.Midpoint(); got.String() != tt.want {
				t.Errorf("Midpoint() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCostRangeValid(t *testing.T) {
	if !NewCostRange(100, 200).Valid() {
		t.Error("expected 100-200 to be valid")
	}
	bad := CostRange{MinCost: decimal.NewFromInt(200), MaxCost: decimal.NewFromInt(100)}
	if bad.Valid() {
		t.Error("expected inverted range to be invalid")
	}
}

func TestParseCourtLevel(t *testing.T) {
	tests := []struct {
		input string
		want  CourtLevel
	}{
		{"High Court", CourtLevelHigh},
		{"district court", CourtLevelDistrict},
		{"District-Court", CourtLevelDistrict},
		{"magistrates court", CourtLevelMagistrates},
		{"MC", CourtLevelMagistrates},
		{"", CourtLevelHigh},
		{"supreme galactic court", CourtLevelHigh},
	}
	for _, tt := range tests {
		if got := ParseCourtLevel(tt.input); got != tt.want {
			t.Errorf("ParseCourtLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseCaseType(t *testing.T) {
	got, known := ParseCaseType("Default Judgment Liquidated")
	if !known || got != CaseTypeDefaultJudgmentLiquidated {
		t.Errorf("ParseCaseType = %q known=%v", got, known)
	}

	got, known = ParseCaseType("adverse possession")
	if known {
		t.Errorf("expected unknown case type, got %q", got)
	}
	if got != "adverse_possession" {
		t.Errorf("unknown case type should keep normalized form, got %q", got)
	}
}

func TestParseComplexityLevelDefaultsToModerate(t *testing.T) {
	for _, input := range []string{"", "unheard of", "moderate"} {
		if got := ParseComplexityLevel(input); got != ComplexityModerate {
			t.Errorf("ParseComplexityLevel(%q) = %q, want moderate", input, got)
		}
	}
	if got := ParseComplexityLevel("Very Complex"); got != ComplexityVeryComplex {
		t.Errorf("ParseComplexityLevel(Very Complex) = %q", got)
	}
}

func TestHasPracticeDirectionIndicator(t *testing.T) {
	var d CaseDetails
	if d.HasPracticeDirectionIndicator() {
		t.Error("empty details should not route to Practice Direction regime")
	}
	d.AppealLevel = "court_of_appeal"
	if !d.HasPracticeDirectionIndicator() {
		t.Error("appeal level should route to Practice Direction regime")
	}
}

func TestPrecedentRecordTagAndKeyword(t *testing.T) {
	record := PrecedentRecord{
		Keywords:      []string{"Indemnity", "conduct"},
		RelevanceTags: []string{"General_Principles"},
	}
	if !record.HasKeyword("indemnity") {
		t.Error("keyword match should ignore case")
	}
	if !record.HasTag("general_principles") {
		t.Error("tag match should ignore case")
	}
	if record.HasTag("non_party_costs") {
		t.Error("unexpected tag match")
	}
}

func TestCourtIsApex(t *testing.T) {
	if !CourtSGCA.IsApex() {
		t.Error("SGCA is the apex court")
	}
	for _, c := range []Court{CourtSGHC, CourtSGHCR, CourtSGHCA} {
		if c.IsApex() {
			t.Errorf("%s should not be apex", c)
		}
	}
}
