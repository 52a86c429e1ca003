package relevance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coolbeans/costadvisor/pkg/types"
)

// Free-text field weights. These constants are part of the engine's
// contract: scores are additive across fields and deliberately not
// renormalized, so downstream fixtures can key on exact values.
const (
	weightPrinciple      = 0.4
	weightInterpretation = 0.2
	weightKeyword        = 0.15
	weightProvision      = 0.15
	weightShortName      = 0.1
)

// scoreFreeText performs the case-insensitive containment test against the
// five scored fields. A zero total means the record is excluded from
// results, not ranked last.
func scoreFreeText(record *types.PrecedentRecord, query string) (float64, []string) {
	var score float64
	var reasons []string

	if strings.Contains(strings.ToLower(record.Principle), query) {
		score += weightPrinciple
		reasons = append(reasons, "principle addresses the query")
	}
	if strings.Contains(strings.ToLower(record.Interpretation), query) {
		score += weightInterpretation
		reasons = append(reasons, "interpretation discusses the query")
	}
	for _, keyword := range record.Keywords {
		k := strings.ToLower(keyword)
		if strings.Contains(k, query) || strings.Contains(query, k) {
			score += weightKeyword
			reasons = append(reasons, fmt.Sprintf("keyword match: %s", keyword))
		}
	}
	if strings.Contains(strings.ToLower(record.Provision), query) {
		score += weightProvision
		reasons = append(reasons, fmt.Sprintf("interprets %s", record.Provision))
	}
	if strings.Contains(strings.ToLower(record.ShortName), query) {
		score += weightShortName
		reasons = append(reasons, "case name match")
	}

	return score, reasons
}

// sortMatches orders matches strictly descending by score. The sort is
// stable, so equal scores keep corpus insertion order: the first-encountered
// record wins.
func sortMatches(matches []types.PrecedentMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].RelevanceScore > matches[j].RelevanceScore
	})
}

func truncate(matches []types.PrecedentMatch, maxResults int) []types.PrecedentMatch {
	if maxResults > 0 && len(matches) > maxResults {
		return matches[:maxResults]
	}
	return matches
}
