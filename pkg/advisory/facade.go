// Package advisory composes the cost determination and precedent relevance
// engines into the single calculation surface consumed by the dialogue
// layer: one call in, one response out, with cost figure, citations,
// argument text, and recommendations together.
package advisory

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coolbeans/costadvisor/pkg/costs"
	"github.com/coolbeans/costadvisor/pkg/relevance"
	"github.com/coolbeans/costadvisor/pkg/types"
)

// DefaultMaxPrecedents is the number of citations attached to a
// calculation.
const DefaultMaxPrecedents = 3

// PrecedentRanker is the slice of the relevance engine the facade needs.
type PrecedentRanker interface {
	ForRule(node *types.RuleNode, scenario string, flags relevance.ScenarioFlags, maxResults int) []types.PrecedentMatch
	RankByFreeText(query string, maxResults int) []types.PrecedentMatch
	LookupByProvision(provision string) []*types.PrecedentRecord
	LookupByID(caseID string) (*types.PrecedentRecord, bool)
}

// Facade composes the two engines behind the capability contract.
type Facade struct {
	costs         *costs.Engine
	precedents    PrecedentRanker
	logger        *zap.Logger
	maxPrecedents int
}

// Option configures a Facade.
type Option func(*Facade)

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Facade) {
		f.logger = logger
	}
}

// WithMaxPrecedents sets how many citations a calculation carries.
func WithMaxPrecedents(n int) Option {
	return func(f *Facade) {
		if n > 0 {
			f.maxPrecedents = n
		}
	}
}

// New creates a facade over the given engines. Nil engines fall back to the
// seed-data defaults.
func New(costEngine *costs.Engine, ranker PrecedentRanker, opts ...Option) *Facade {
	f := &Facade{
		costs:         costEngine,
		precedents:    ranker,
		logger:        zap.NewNop(),
		maxPrecedents: DefaultMaxPrecedents,
	}
	if f.costs == nil {
		f.costs = costs.NewEngine(nil)
	}
	if f.precedents == nil {
		f.precedents = relevance.NewEngine(nil, nil)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CalculationResponse is the full advisory output for one request.
type CalculationResponse struct {
	ResponseID      string                   `json:"response_id"`
	GeneratedAt     time.Time                `json:"generated_at"`
	Result          *types.CalculationResult `json:"result"`
	ArgumentText    string                   `json:"argument_text,omitempty"`
	Recommendations []string                 `json:"recommendations,omitempty"`
}

// Calculate runs a cost determination for the raw field map and supplements
// it with relevant precedent.
func (f *Facade) Calculate(fields map[string]any) *CalculationResponse {
	return f.CalculateWithRule(fields, nil)
}

// CalculateWithRule is Calculate with an upstream-matched logic-tree rule
// whose curated citations take priority over scenario scoring.
func (f *Facade) CalculateWithRule(fields map[string]any, node *types.RuleNode) *CalculationResponse {
	details := DecodeCaseDetails(fields)
	result := f.costs.Determine(details)

	matches := f.rankPrecedents(details, node)
	for _, match := range matches {
		result.CaseLaw = append(result.CaseLaw,
			match.Case.Summary(match.RelevanceScore, match.MatchReasons))
	}

	response := &CalculationResponse{
		ResponseID:      uuid.NewString(),
		GeneratedAt:     time.Now().UTC(),
		Result:          result,
		ArgumentText:    buildArgument(result, matches),
		Recommendations: buildRecommendations(details, result),
	}

	f.logger.Info("calculation complete",
		zap.String("response_id", response.ResponseID),
		zap.String("case_type", result.CaseType),
		zap.String("source", string(result.Source)),
		zap.String("confidence", string(result.Confidence)),
		zap.String("total_costs", result.TotalCosts.String()),
		zap.Int("precedents", len(matches)))

	return response
}

// rankPrecedents is fail-open: a fault anywhere in precedent scoring yields
// an empty citation list and never blocks the cost calculation. This is a
// hard invariant of the facade, not best-effort error hygiene.
func (f *Facade) rankPrecedents(details types.CaseDetails, node *types.RuleNode) (matches []types.PrecedentMatch) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Warn("precedent ranking failed; continuing without case law",
				zap.Any("panic", r))
			matches = nil
		}
	}()

	scenario := scenarioDescriptor(details)
	flags := scenarioFlags(details)
	return f.precedents.ForRule(node, scenario, flags, f.maxPrecedents)
}

// SearchPrecedents exposes free-text precedent search to the dialogue
// layer, with the same fail-open behavior as ranking.
func (f *Facade) SearchPrecedents(query string, maxResults int) (matches []types.PrecedentMatch) {
	defer func() {
		if r := recover(); r != nil {
			f.logger.Warn("precedent search failed",
				zap.String("query", query), zap.Any("panic", r))
			matches = nil
		}
	}()
	return f.precedents.RankByFreeText(query, maxResults)
}

// scenarioDescriptor classifies the request for tag derivation. This is the
// derived scenario, distinct from the raw case-type field: Practice
// Direction requests map onto descriptor strings the tag mappings
// understand.
func scenarioDescriptor(details types.CaseDetails) string {
	switch {
	case details.ApplicationType != "":
		return types.NormalizeKey(details.ApplicationType) + "_application"
	case details.TrialCategory != "":
		return types.NormalizeKey(details.TrialCategory) + "_trial"
	case details.OriginatingAppType != "":
		return "originating_application"
	case details.AppealLevel != "":
		return "appeal"
	}
	return string(details.CaseType)
}

func scenarioFlags(details types.CaseDetails) relevance.ScenarioFlags {
	return relevance.ScenarioFlags{
		IndemnityBasis:   details.BasisOfTaxation == "indemnity",
		LitigantInPerson: details.LitigantInPerson,
		NonParty:         details.NonParty,
		SolicitorCosts:   details.SolicitorCosts,
	}
}
