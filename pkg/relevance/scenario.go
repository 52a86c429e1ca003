package relevance

import (
	"fmt"
	"strings"

	"github.com/coolbeans/costadvisor/pkg/types"
)

// Scenario scoring weights and bonuses, fixed alongside the free-text
// weights.
const (
	weightTagOverlap  = 0.5
	bonusIndemnity    = 0.3
	bonusLitigantInPn = 0.3
	bonusRecency      = 0.1
	bonusApexCourt    = 0.1

	// recencyYear is the first judgment year attracting the recency bonus.
	recencyYear = 2024

	baselineTag = "general_principles"
)

// ScenarioFlags carries the structured-field conditions that augment the
// derived tag set.
type ScenarioFlags struct {
	IndemnityBasis   bool
	LitigantInPerson bool
	NonParty         bool
	SolicitorCosts   bool
}

// scenarioTagMappings maps scenario-descriptor substrings to relevance
// tags, checked in order. More specific descriptors come before generic
// ones so that, e.g., "summary_judgment_application" picks up both the
// summary judgment and application tags.
var scenarioTagMappings = []struct {
	substring string
	tags      []string
}{
	{"default_judgment", []string{"default_judgment", "costs_follow_event"}},
	{"summary_judgment", []string{"summary_judgment", "costs_follow_event"}},
	{"striking_out", []string{"striking_out", "interlocutory"}},
	{"trial", []string{"contested_trial", "proportionality", "costs_follow_event"}},
	{"appeal", []string{"appeal"}},
	{"application", []string{"interlocutory"}},
	{"interlocutory", []string{"interlocutory"}},
	{"assessment", []string{"assessment_of_costs", "proportionality"}},
	{"taxation", []string{"assessment_of_costs"}},
}

// DeriveTags computes the relevant-tag set for a scenario descriptor and
// flags. The baseline general-principles tag is always present; substring
// mappings and flag-conditional tags extend it. Order is deterministic and
// duplicates are dropped.
func DeriveTags(scenario string, flags ScenarioFlags) []string {
	descriptor := types.NormalizeKey(scenario)

	tags := []string{baselineTag}
	seen := map[string]bool{baselineTag: true}
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	for _, mapping := range scenarioTagMappings {
		if strings.Contains(descriptor, mapping.substring) {
			for _, tag := range mapping.tags {
				add(tag)
			}
		}
	}

	if flags.IndemnityBasis {
		add("indemnity_costs")
	}
	if flags.LitigantInPerson {
		add("litigant_in_person")
	}
	if flags.NonParty {
		add("non_party_costs")
	}
	if flags.SolicitorCosts {
		add("solicitor_client_costs")
	}

	return tags
}

// scoreScenario scores one record against the derived tag set. The tag
// overlap and the flag-conditional bonuses form the qualifying base; a
// record with a zero base is excluded outright, so the recency and apex
// court bonuses alone can never pull an unrelated case into the results.
func scoreScenario(record *types.PrecedentRecord, relevantTags []string, flags ScenarioFlags) (float64, []string) {
	var matched []string
	for _, tag := range relevantTags {
		if record.HasTag(tag) {
			matched = append(matched, tag)
		}
	}

	var score float64
	var reasons []string

	if len(matched) > 0 {
		score += weightTagOverlap * float64(len(matched)) / float64(len(relevantTags))
		reasons = append(reasons, fmt.Sprintf("relevant to: %s", strings.Join(matched, ", ")))
	}
	if flags.IndemnityBasis && record.HasKeyword("indemnity") {
		score += bonusIndemnity
		reasons = append(reasons, "authority on indemnity costs")
	}
	if flags.LitigantInPerson && record.HasTag("litigant_in_person") {
		score += bonusLitigantInPn
		reasons = append(reasons, "authority on litigant-in-person costs")
	}

	if score == 0 {
		return 0, nil
	}

	if record.Year >= recencyYear {
		score += bonusRecency
		reasons = append(reasons, fmt.Sprintf("recent judgment (%d)", record.Year))
	}
	if record.Court.IsApex() {
		score += bonusApexCourt
		reasons = append(reasons, "Court of Appeal authority")
	}

	return score, reasons
}
