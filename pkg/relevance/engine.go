package relevance

import (
	"fmt"
	"strings"

	"github.com/coolbeans/costadvisor/pkg/corpus"
	"github.com/coolbeans/costadvisor/pkg/types"
)

// DefaultMaxResults is used when a caller passes a non-positive result
// limit.
const DefaultMaxResults = 5

// Engine ranks precedents from an immutable corpus. It is stateless per
// call and safe for unrestricted concurrent use.
type Engine struct {
	corpus *corpus.Corpus
	index  *RuleIndex
}

// NewEngine creates a relevance engine. A nil corpus falls back to the seed
// corpus, and a nil index to the seed rule index.
func NewEngine(c *corpus.Corpus, index *RuleIndex) *Engine {
	if c == nil {
		c = corpus.Default()
	}
	if index == nil {
		index = DefaultRuleIndex()
	}
	return &Engine{corpus: c, index: index}
}

// Corpus returns the corpus this engine ranks over.
func (e *Engine) Corpus() *corpus.Corpus {
	return e.corpus
}

// Index returns the rule-to-precedent index.
func (e *Engine) Index() *RuleIndex {
	return e.index
}

// RankByFreeText scores every corpus record against the query using the
// fixed five-field weights and returns the top matches, descending by
// score. Records with zero score are excluded. Identical inputs over the
// same corpus always produce identical ordered results.
func (e *Engine) RankByFreeText(query string, maxResults int) []types.PrecedentMatch {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []types.PrecedentMatch
	for _, record := range e.corpus.All() {
		score, reasons := scoreFreeText(record, q)
		if score > 0 {
			matches = append(matches, types.PrecedentMatch{
				Case:           record,
				RelevanceScore: score,
				MatchReasons:   reasons,
			})
		}
	}

	sortMatches(matches)
	return truncate(matches, maxResults)
}

// RankByScenario derives the relevant-tag set for the scenario descriptor
// and flags, scores the corpus against it, and returns the top matches.
func (e *Engine) RankByScenario(scenario string, flags ScenarioFlags, maxResults int) []types.PrecedentMatch {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return truncate(e.rankScenario(scenario, flags), maxResults)
}

func (e *Engine) rankScenario(scenario string, flags ScenarioFlags) []types.PrecedentMatch {
	relevantTags := DeriveTags(scenario, flags)

	var matches []types.PrecedentMatch
	for _, record := range e.corpus.All() {
		score, reasons := scoreScenario(record, relevantTags, flags)
		if score > 0 {
			matches = append(matches, types.PrecedentMatch{
				Case:           record,
				RelevanceScore: score,
				MatchReasons:   reasons,
			})
		}
	}

	sortMatches(matches)
	return matches
}

// ForRule returns precedents for a matched logic-tree rule. Explicit
// case-law references on the node are honored first, in listed order; only
// if they leave room does scenario ranking fill the remainder. Results are
// de-duplicated by case ID across both tiers, so curated citations are
// never displaced by scoring.
func (e *Engine) ForRule(node *types.RuleNode, scenario string, flags ScenarioFlags, maxResults int) []types.PrecedentMatch {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	var matches []types.PrecedentMatch
	seen := make(map[string]bool)

	if node != nil {
		refs := node.CaseLawReferences
		if len(refs) == 0 {
			refs = e.index.PrecedentsForRule(node.NodeID)
		}
		for _, caseID := range refs {
			if len(matches) >= maxResults {
				break
			}
			record, ok := e.corpus.LookupByID(caseID)
			if !ok || seen[caseID] {
				continue
			}
			seen[caseID] = true
			matches = append(matches, types.PrecedentMatch{
				Case:           record,
				RelevanceScore: 1.0,
				MatchReasons:   []string{fmt.Sprintf("cited directly by rule %s", node.NodeID)},
			})
		}
	}

	if len(matches) < maxResults {
		for _, match := range e.rankScenario(scenario, flags) {
			if len(matches) >= maxResults {
				break
			}
			if seen[match.Case.CaseID] {
				continue
			}
			seen[match.Case.CaseID] = true
			matches = append(matches, match)
		}
	}

	return matches
}

// LookupByProvision returns every corpus record interpreting the provision.
func (e *Engine) LookupByProvision(provision string) []*types.PrecedentRecord {
	return e.corpus.LookupByProvision(provision)
}

// LookupByID returns the corpus record for a case ID, if present.
func (e *Engine) LookupByID(caseID string) (*types.PrecedentRecord, bool) {
	return e.corpus.LookupByID(caseID)
}
