package types

import "strings"

// Court identifies the Singapore court that delivered a judgment.
type Court string

const (
	CourtSGCA  Court = "SGCA"    // Court of Appeal
	CourtSGHC  Court = "SGHC"    // General Division of the High Court
	CourtSGHCR Court = "SGHCR"   // High Court Registrar
	CourtSGHCA Court = "SGHC(A)" // Appellate Division of the High Court
)

// IsApex reports whether the court is the Court of Appeal, the highest
// authority for the relevance bonus.
func (c Court) IsApex() bool {
	return c == CourtSGCA
}

// PrecedentRecord is one entry in the immutable case-law corpus. Identity is
// CaseID; records are never mutated after corpus construction.
type PrecedentRecord struct {
	CaseID    string `json:"case_id" yaml:"case_id"`
	Citation  string `json:"citation" yaml:"citation"`
	ShortName string `json:"short_name" yaml:"short_name"`
	Court     Court  `json:"court" yaml:"court"`
	Year      int    `json:"year" yaml:"year"`

	// Provision is the rule or statutory provision the case interprets,
	// e.g. "O 21 r 2 ROC 2021".
	Provision string `json:"provision" yaml:"provision"`

	Principle      string `json:"principle" yaml:"principle"`
	Interpretation string `json:"interpretation" yaml:"interpretation"`
	VerbatimQuote  string `json:"verbatim_quote" yaml:"verbatim_quote"`

	// Keywords drive free-text scoring; RelevanceTags drive scenario
	// matching. Both are compared case-insensitively.
	Keywords      []string `json:"keywords" yaml:"keywords"`
	RelevanceTags []string `json:"relevance_tags" yaml:"relevance_tags"`
}

// HasKeyword reports whether the record carries the keyword, ignoring case.
func (p *PrecedentRecord) HasKeyword(keyword string) bool {
	for _, k := range p.Keywords {
		if strings.EqualFold(k, keyword) {
			return true
		}
	}
	return false
}

// HasTag reports whether the record carries the relevance tag, ignoring case.
func (p *PrecedentRecord) HasTag(tag string) bool {
	for _, t := range p.RelevanceTags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Summary projects the record into the citation-level form embedded in
// calculation results.
func (p *PrecedentRecord) Summary(score float64, reasons []string) PrecedentSummary {
	return PrecedentSummary{
		CaseID:         p.CaseID,
		Citation:       p.Citation,
		ShortName:      p.ShortName,
		Court:          p.Court,
		Year:           p.Year,
		Principle:      p.Principle,
		RelevanceScore: score,
		MatchReasons:   reasons,
	}
}

// PrecedentMatch pairs a corpus record with its relevance score for one
// search call. Matches are transient; they are discarded after formatting.
// Ranking order is descending score, ties broken by corpus insertion order.
type PrecedentMatch struct {
	Case           *PrecedentRecord `json:"case"`
	RelevanceScore float64          `json:"relevance_score"`
	MatchReasons   []string         `json:"match_reasons"`
}

// RuleNode is a logic-tree entry supplied by the external rule provider.
// The relevance engine reads CaseLawReferences and never writes them.
type RuleNode struct {
	NodeID            string   `json:"node_id"`
	CaseLawReferences []string `json:"case_law_references,omitempty"`
}
