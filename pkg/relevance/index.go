// Package relevance implements the precedent relevance engine: weighted
// free-text search, tag-based scenario matching, and the rule-to-precedent
// index that attaches curated citations to matched logic-tree rules. All
// operations are pure functions over the immutable corpus.
package relevance

import "sort"

// RuleIndex is the static two-way mapping between logic-tree rule
// identifiers and corpus case IDs. It is built once and read-only
// thereafter.
type RuleIndex struct {
	forward map[string][]string
	inverse map[string][]string
}

// NewRuleIndex builds an index from the forward mapping, deriving the
// inverse. Reference order within each rule is preserved; the inverse lists
// are sorted for determinism.
func NewRuleIndex(forward map[string][]string) *RuleIndex {
	idx := &RuleIndex{
		forward: make(map[string][]string, len(forward)),
		inverse: make(map[string][]string),
	}
	for nodeID, caseIDs := range forward {
		refs := make([]string, len(caseIDs))
		copy(refs, caseIDs)
		idx.forward[nodeID] = refs
		for _, caseID := range caseIDs {
			idx.inverse[caseID] = append(idx.inverse[caseID], nodeID)
		}
	}
	for caseID := range idx.inverse {
		sort.Strings(idx.inverse[caseID])
	}
	return idx
}

// DefaultRuleIndex returns the built-in mapping for the seed corpus.
func DefaultRuleIndex() *RuleIndex {
	return NewRuleIndex(map[string][]string{
		"costs_discretion_general":  {"tullio_planeta_1994", "singapore_shooting_2019"},
		"costs_indemnity_basis":     {"then_khek_koon_2014", "airtrust_2016"},
		"costs_litigant_in_person":  {"ong_wui_teck_2020"},
		"costs_non_party":           {"db_trustees_2010"},
		"costs_proportionality":     {"lock_han_chng_2008", "wlr_v_wls_2024"},
		"costs_default_judgment":    {"mercurine_2008"},
		"costs_summary_judgment":    {"m2b_world_2015"},
		"costs_striking_out":        {"gabriel_peter_1997"},
		"costs_appeal":              {"dcs_v_dct_2024"},
		"costs_solicitor_client":    {"lin_jianwei_2021", "maryani_sadeli_2015"},
		"costs_recovery_as_damages": {"maryani_sadeli_2015"},
	})
}

// PrecedentsForRule returns the case IDs curated for a rule, in listed
// order. Unknown rules return nil.
func (idx *RuleIndex) PrecedentsForRule(nodeID string) []string {
	refs := idx.forward[nodeID]
	out := make([]string, len(refs))
	copy(out, refs)
	return out
}

// RulesForCase returns the rule identifiers citing a case, sorted. Unknown
// cases return nil.
func (idx *RuleIndex) RulesForCase(caseID string) []string {
	rules := idx.inverse[caseID]
	out := make([]string, len(rules))
	copy(out, rules)
	return out
}
