package relevance

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolbeans/costadvisor/pkg/types"
)

const scoreDelta = 1e-9

func TestRankByFreeTextGolden(t *testing.T) {
	engine := NewEngine(nil, nil)

	matches := engine.RankByFreeText("indemnity", 5)

	require.Len(t, matches, 3, "only records with a nonzero score are returned")

	assert.Equal(t, "then_khek_koon_2014", matches[0].Case.CaseID)
	assert.InDelta(t, 0.75, matches[0].RelevanceScore, scoreDelta)

	// Airtrust scores identically; corpus insertion order breaks the tie.
	assert.Equal(t, "airtrust_2016", matches[1].Case.CaseID)
	assert.InDelta(t, 0.75, matches[1].RelevanceScore, scoreDelta)

	assert.Equal(t, "maryani_sadeli_2015", matches[2].Case.CaseID)
	assert.InDelta(t, 0.55, matches[2].RelevanceScore, scoreDelta)

	assert.NotEmpty(t, matches[0].MatchReasons)
}

func TestRankByFreeTextDeterministic(t *testing.T) {
	engine := NewEngine(nil, nil)

	first := engine.RankByFreeText("Proportionality", 10)
	second := engine.RankByFreeText("Proportionality", 10)

	require.NotEmpty(t, first)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated ranking differs (-first +second):\n%s", diff)
	}
}

func TestRankByFreeTextEdgeCases(t *testing.T) {
	engine := NewEngine(nil, nil)

	assert.Nil(t, engine.RankByFreeText("", 5))
	assert.Nil(t, engine.RankByFreeText("   ", 5))
	assert.Empty(t, engine.RankByFreeText("cryptocurrency", 5))

	// Non-positive limits fall back to the default.
	matches := engine.RankByFreeText("costs", 0)
	assert.LessOrEqual(t, len(matches), DefaultMaxResults)

	truncated := engine.RankByFreeText("costs", 2)
	assert.Len(t, truncated, 2)
}

func TestDeriveTags(t *testing.T) {
	tests := []struct {
		name     string
		scenario string
		flags    ScenarioFlags
		want     []string
	}{
		{
			name:     "baseline only",
			scenario: "judicial_review",
			want:     []string{"general_principles"},
		},
		{
			name:     "contested trial",
			scenario: "contested_trial",
			want:     []string{"general_principles", "contested_trial", "proportionality", "costs_follow_event"},
		},
		{
			name:     "summary judgment application gets both mappings",
			scenario: "summary_judgment_application",
			want:     []string{"general_principles", "summary_judgment", "costs_follow_event", "interlocutory"},
		},
		{
			name:     "descriptor normalization",
			scenario: "Default Judgment",
			want:     []string{"general_principles", "default_judgment", "costs_follow_event"},
		},
		{
			name:     "flags extend the set",
			scenario: "appeal",
			flags:    ScenarioFlags{IndemnityBasis: true, NonParty: true},
			want:     []string{"general_principles", "appeal", "indemnity_costs", "non_party_costs"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveTags(tt.scenario, tt.flags))
		})
	}
}

func TestRankByScenarioGolden(t *testing.T) {
	engine := NewEngine(nil, nil)

	matches := engine.RankByScenario("contested_trial", ScenarioFlags{}, 5)

	require.Len(t, matches, 5)
	assert.Equal(t, "singapore_shooting_2019", matches[0].Case.CaseID)
	assert.InDelta(t, 0.475, matches[0].RelevanceScore, scoreDelta)
	assert.Equal(t, "wlr_v_wls_2024", matches[1].Case.CaseID)
	assert.InDelta(t, 0.475, matches[1].RelevanceScore, scoreDelta)

	// Three authorities tie at 0.35; insertion order decides.
	assert.Equal(t, "maryani_sadeli_2015", matches[2].Case.CaseID)
	assert.Equal(t, "lock_han_chng_2008", matches[3].Case.CaseID)
	assert.Equal(t, "tullio_planeta_1994", matches[4].Case.CaseID)
	for _, m := range matches[2:] {
		assert.InDelta(t, 0.35, m.RelevanceScore, scoreDelta)
	}
}

func TestRankByScenarioExcludesUnrelated(t *testing.T) {
	engine := NewEngine(nil, nil)

	matches := engine.RankByScenario("contested_trial", ScenarioFlags{}, 100)
	for _, m := range matches {
		// A zero tag overlap with no flag bonus excludes the record even
		// when it is a recent or apex-court authority.
		assert.NotEqual(t, "mercurine_2008", m.Case.CaseID)
		assert.NotEqual(t, "gabriel_peter_1997", m.Case.CaseID)
		assert.NotEqual(t, "lin_jianwei_2021", m.Case.CaseID)
	}
}

func TestRankByScenarioIndemnityFlag(t *testing.T) {
	engine := NewEngine(nil, nil)

	matches := engine.RankByScenario("assessment", ScenarioFlags{IndemnityBasis: true}, 5)

	require.Len(t, matches, 5)
	assert.Equal(t, "then_khek_koon_2014", matches[0].Case.CaseID)
	assert.InDelta(t, 0.675, matches[0].RelevanceScore, scoreDelta)
	assert.Equal(t, "airtrust_2016", matches[1].Case.CaseID)
	assert.InDelta(t, 0.55, matches[1].RelevanceScore, scoreDelta)
	assert.Equal(t, "lock_han_chng_2008", matches[2].Case.CaseID)
	assert.InDelta(t, 0.475, matches[2].RelevanceScore, scoreDelta)
	assert.Equal(t, "wlr_v_wls_2024", matches[3].Case.CaseID)
	assert.InDelta(t, 0.475, matches[3].RelevanceScore, scoreDelta)
	assert.Equal(t, "maryani_sadeli_2015", matches[4].Case.CaseID)
	assert.InDelta(t, 0.35, matches[4].RelevanceScore, scoreDelta)

	assert.Contains(t, matches[0].MatchReasons, "authority on indemnity costs")
}

func TestForRuleExplicitReferencesFirst(t *testing.T) {
	engine := NewEngine(nil, nil)

	node := &types.RuleNode{
		NodeID:            "costs_non_party",
		CaseLawReferences: []string{"lock_han_chng_2008", "db_trustees_2010"},
	}
	matches := engine.ForRule(node, "contested_trial", ScenarioFlags{}, 2)

	require.Len(t, matches, 2)
	assert.Equal(t, "lock_han_chng_2008", matches[0].Case.CaseID)
	assert.Equal(t, "db_trustees_2010", matches[1].Case.CaseID)
	for _, m := range matches {
		assert.Equal(t, 1.0, m.RelevanceScore)
		assert.Contains(t, m.MatchReasons[0], "cited directly by rule costs_non_party")
	}
}

func TestForRuleIndexFallbackAndScenarioFill(t *testing.T) {
	engine := NewEngine(nil, nil)

	node := &types.RuleNode{NodeID: "costs_indemnity_basis"}
	matches := engine.ForRule(node, "assessment", ScenarioFlags{IndemnityBasis: true}, 3)

	require.Len(t, matches, 3)

	// The curated index entries come first at full score.
	assert.Equal(t, "then_khek_koon_2014", matches[0].Case.CaseID)
	assert.Equal(t, 1.0, matches[0].RelevanceScore)
	assert.Equal(t, "airtrust_2016", matches[1].Case.CaseID)
	assert.Equal(t, 1.0, matches[1].RelevanceScore)

	// Scenario fill skips the two already-cited cases rather than
	// repeating them.
	assert.Equal(t, "lock_han_chng_2008", matches[2].Case.CaseID)
	assert.InDelta(t, 0.475, matches[2].RelevanceScore, scoreDelta)
}

func TestForRuleNilNodeFallsBackToScenario(t *testing.T) {
	engine := NewEngine(nil, nil)

	matches := engine.ForRule(nil, "contested_trial", ScenarioFlags{}, 2)

	require.Len(t, matches, 2)
	assert.Equal(t, "singapore_shooting_2019", matches[0].Case.CaseID)
}

func TestForRuleUnknownReferencesSkipped(t *testing.T) {
	engine := NewEngine(nil, nil)

	node := &types.RuleNode{
		NodeID:            "costs_discretion_general",
		CaseLawReferences: []string{"no_such_case", "tullio_planeta_1994"},
	}
	matches := engine.ForRule(node, "", ScenarioFlags{}, 1)

	require.Len(t, matches, 1)
	assert.Equal(t, "tullio_planeta_1994", matches[0].Case.CaseID)
}

func TestRuleIndexInverse(t *testing.T) {
	idx := DefaultRuleIndex()

	assert.Equal(t,
		[]string{"costs_recovery_as_damages", "costs_solicitor_client"},
		idx.RulesForCase("maryani_sadeli_2015"))
	assert.Empty(t, idx.RulesForCase("no_such_case"))
	assert.Equal(t,
		[]string{"then_khek_koon_2014", "airtrust_2016"},
		idx.PrecedentsForRule("costs_indemnity_basis"))
	assert.Empty(t, idx.PrecedentsForRule("no_such_rule"))
}
