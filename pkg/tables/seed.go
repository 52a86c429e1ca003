package tables

import (
	"github.com/shopspring/decimal"

	"github.com/coolbeans/costadvisor/pkg/types"
)

// Basis citation constants for the general regime. The audit trail and the
// rules-applied list are keyed off the "Section A"/"Section B" segment.
const (
	basisDefaultLiquidated   = "Supreme Court Practice Directions, Appendix G, Section B, Para 1 (default judgment, liquidated claims)"
	basisDefaultUnliquidated = "Supreme Court Practice Directions, Appendix G, Section B, Para 2 (default judgment, unliquidated claims)"
	basisContestedTrial      = "Supreme Court Practice Directions, Appendix G, Section A, Para 1 (contested trials)"
	basisSummaryJudgment     = "Supreme Court Practice Directions, Appendix G, Section A, Para 2 (summary judgment)"
	basisStrikingOut         = "Supreme Court Practice Directions, Appendix G, Section A, Para 4 (striking out)"
	basisInterlocutory       = "Supreme Court Practice Directions, Appendix G, Section A, Para 5 (interlocutory applications)"
	basisAppeal              = "Supreme Court Practice Directions, Appendix G, Section A, Para 6 (appeals)"
	basisGeneric             = "General estimate (no published table entry for this case type)"

	basisPDApplications    = "Supreme Court Practice Directions, Appendix 1, Part II (interlocutory and other applications)"
	basisPDTrials          = "Supreme Court Practice Directions, Appendix 1, Part III (trials by category)"
	basisPDOriginatingApps = "Supreme Court Practice Directions, Appendix 1, Part IV (originating applications)"
	basisPDAppeals         = "Supreme Court Practice Directions, Appendix 1, Part V (appeals)"
)

func bounded(upper int64, min, max int64) Bracket {
	return Bracket{UpperBound: decimal.NewFromInt(upper), Range: types.NewCostRange(min, max)}
}

func open(min, max int64) Bracket {
	return Bracket{Open: true, Range: types.NewCostRange(min, max)}
}

// DefaultStore returns the built-in cost tables. Figures are the High Court
// party-and-party guidance; the engine scales them for the lower courts.
func DefaultStore() *Store {
	return &Store{
		General: map[types.CaseType]*TieredTable{
			types.CaseTypeDefaultJudgmentLiquidated: {
				Category: types.CaseTypeDefaultJudgmentLiquidated,
				Basis:    basisDefaultLiquidated,
				Brackets: []Bracket{
					bounded(5_000, 800, 1_500),
					bounded(20_000, 1_500, 3_000),
					bounded(60_000, 3_000, 5_000),
					bounded(250_000, 5_000, 9_000),
					bounded(1_000_000, 9_000, 15_000),
					open(15_000, 25_000),
				},
			},
			types.CaseTypeDefaultJudgmentUnliquidated: {
				Category: types.CaseTypeDefaultJudgmentUnliquidated,
				Basis:    basisDefaultUnliquidated,
				Brackets: []Bracket{
					bounded(60_000, 4_000, 7_000),
					bounded(250_000, 7_000, 12_000),
					bounded(1_000_000, 12_000, 20_000),
					open(20_000, 35_000),
				},
			},
			types.CaseTypeSummaryJudgment: {
				Category: types.CaseTypeSummaryJudgment,
				Basis:    basisSummaryJudgment,
				Brackets: []Bracket{
					bounded(60_000, 6_000, 12_000),
					bounded(250_000, 10_000, 18_000),
					bounded(1_000_000, 15_000, 28_000),
					open(25_000, 45_000),
				},
			},
			types.CaseTypeStrikingOut: {
				Category: types.CaseTypeStrikingOut,
				Basis:    basisStrikingOut,
				Brackets: []Bracket{
					open(4_000, 10_000),
				},
			},
			types.CaseTypeInterlocutoryApplication: {
				Category: types.CaseTypeInterlocutoryApplication,
				Basis:    basisInterlocutory,
				Brackets: []Bracket{
					open(1_500, 7_000),
				},
			},
			types.CaseTypeAppeal: {
				Category: types.CaseTypeAppeal,
				Basis:    basisAppeal,
				Brackets: []Bracket{
					bounded(250_000, 15_000, 30_000),
					bounded(1_000_000, 25_000, 45_000),
					open(40_000, 80_000),
				},
			},
		},
		Trial: &TrialTable{
			Basis: basisContestedTrial,
			Tiers: []DurationTier{
				{
					MaxDays: 2,
					Label:   "up to 2 days",
					Brackets: []Bracket{
						bounded(250_000, 25_000, 45_000),
						bounded(1_000_000, 40_000, 70_000),
						open(60_000, 100_000),
					},
				},
				{
					MaxDays: 5,
					Label:   "3 to 5 days",
					Brackets: []Bracket{
						bounded(250_000, 40_000, 70_000),
						bounded(1_000_000, 60_000, 110_000),
						open(90_000, 160_000),
					},
				},
				{
					MaxDays: 0,
					Label:   "6 days or more",
					Brackets: []Bracket{
						bounded(250_000, 60_000, 100_000),
						bounded(1_000_000, 90_000, 160_000),
						open(140_000, 250_000),
					},
				},
			},
		},
		Applications: map[string]*ApplicationEntry{
			"summons_for_directions":         {Uncontested: types.NewCostRange(800, 1_500), Contested: types.NewCostRange(1_500, 3_500), Basis: basisPDApplications},
			"summary_judgment":               {Uncontested: types.NewCostRange(3_000, 6_000), Contested: types.NewCostRange(6_000, 12_000), Basis: basisPDApplications},
			"striking_out":                   {Uncontested: types.NewCostRange(2_000, 5_000), Contested: types.NewCostRange(4_000, 10_000), Basis: basisPDApplications},
			"injunction":                     {Uncontested: types.NewCostRange(5_000, 10_000), Contested: types.NewCostRange(10_000, 25_000), Basis: basisPDApplications},
			"security_for_costs":             {Uncontested: types.NewCostRange(1_500, 3_000), Contested: types.NewCostRange(3_000, 6_000), Basis: basisPDApplications},
			"discovery":                      {Uncontested: types.NewCostRange(2_000, 4_000), Contested: types.NewCostRange(4_000, 9_000), Basis: basisPDApplications},
			"amendment_of_pleadings":         {Uncontested: types.NewCostRange(1_000, 2_500), Contested: types.NewCostRange(2_500, 6_000), Basis: basisPDApplications},
			"stay_of_proceedings":            {Uncontested: types.NewCostRange(3_000, 6_000), Contested: types.NewCostRange(6_000, 14_000), Basis: basisPDApplications},
			"setting_aside_default_judgment": {Uncontested: types.NewCostRange(2_500, 5_000), Contested: types.NewCostRange(5_000, 11_000), Basis: basisPDApplications},
			"adjournment":                    {Uncontested: types.NewCostRange(500, 1_200), Contested: types.NewCostRange(1_200, 2_500), Basis: basisPDApplications},
		},
		TrialCategories: map[string]*TrialCategoryEntry{
			"simplified":            {SettledBeforeTrial: types.NewCostRange(10_000, 25_000), FullTrial: types.NewCostRange(25_000, 60_000), DailyTariff: decimal.NewFromInt(6_000), Basis: basisPDTrials},
			"motor_accident":        {SettledBeforeTrial: types.NewCostRange(8_000, 20_000), FullTrial: types.NewCostRange(20_000, 50_000), DailyTariff: decimal.NewFromInt(5_000), Basis: basisPDTrials},
			"personal_injury":       {SettledBeforeTrial: types.NewCostRange(12_000, 30_000), FullTrial: types.NewCostRange(30_000, 80_000), DailyTariff: decimal.NewFromInt(8_000), Basis: basisPDTrials},
			"commercial":            {SettledBeforeTrial: types.NewCostRange(25_000, 70_000), FullTrial: types.NewCostRange(70_000, 180_000), DailyTariff: decimal.NewFromInt(16_000), Basis: basisPDTrials},
			"construction":          {SettledBeforeTrial: types.NewCostRange(30_000, 80_000), FullTrial: types.NewCostRange(80_000, 220_000), DailyTariff: decimal.NewFromInt(18_000), Basis: basisPDTrials},
			"defamation":            {SettledBeforeTrial: types.NewCostRange(20_000, 50_000), FullTrial: types.NewCostRange(50_000, 130_000), DailyTariff: decimal.NewFromInt(12_000), Basis: basisPDTrials},
			"intellectual_property": {SettledBeforeTrial: types.NewCostRange(30_000, 90_000), FullTrial: types.NewCostRange(90_000, 250_000), DailyTariff: decimal.NewFromInt(20_000), Basis: basisPDTrials},
		},
		OriginatingApps: map[string]*OriginatingAppEntry{
			"normal":    {HalfDay: types.NewCostRange(6_000, 12_000), FullDay: types.NewCostRange(12_000, 22_000), Basis: basisPDOriginatingApps},
			"complex":   {HalfDay: types.NewCostRange(12_000, 25_000), FullDay: types.NewCostRange(25_000, 50_000), Basis: basisPDOriginatingApps},
			"ex_parte":  {HalfDay: types.NewCostRange(3_000, 7_000), FullDay: types.NewCostRange(7_000, 14_000), Basis: basisPDOriginatingApps},
			"committal": {HalfDay: types.NewCostRange(8_000, 16_000), FullDay: types.NewCostRange(16_000, 30_000), Basis: basisPDOriginatingApps},
		},
		Appeals: map[string]*AppealEntry{
			"registrar_appeal":     {Range: types.NewCostRange(2_000, 6_000), Basis: basisPDAppeals},
			"district_court_appeal": {Range: types.NewCostRange(8_000, 20_000), Basis: basisPDAppeals},
			"appellate_division":   {Range: types.NewCostRange(30_000, 60_000), Basis: basisPDAppeals},
			"court_of_appeal":      {Range: types.NewCostRange(40_000, 90_000), Basis: basisPDAppeals},
		},
		Generic: GenericEstimate{
			Base:  decimal.NewFromInt(5_000),
			Range: types.NewCostRange(3_000, 7_000),
			Basis: basisGeneric,
		},
	}
}
