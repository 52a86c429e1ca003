// Package tables provides the immutable tiered cost tables used by the cost
// determination engine: the general regime's category tables and the four
// Practice-Direction tables. A Store is built once (from the seed data or
// from YAML documents) and is never mutated afterwards, so concurrent reads
// need no locking.
package tables

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/coolbeans/costadvisor/pkg/types"
)

// Bracket maps a claim-amount tier to a cost range. The bracket matches any
// amount less than or equal to UpperBound; a bracket with Open set is the
// unbounded top tier.
type Bracket struct {
	UpperBound decimal.Decimal
	Open       bool
	Range      types.CostRange
}

// Matches reports whether the amount falls inside this bracket. Bracket
// boundaries are inclusive on the upper edge.
func (b Bracket) Matches(amount decimal.Decimal) bool {
	return b.Open || amount.LessThanOrEqual(b.UpperBound)
}

// TieredTable is one general-regime category: an ordered list of amount
// brackets under a single citation basis.
type TieredTable struct {
	Category types.CaseType
	Basis    string
	Brackets []Bracket
}

// Lookup selects the bracket whose upper bound is the smallest value greater
// than or equal to the amount. Amounts above the highest bounded bracket fall
// into the open top tier. The boolean is false only for an empty table.
func (t *TieredTable) Lookup(amount decimal.Decimal) (types.CostRange, bool) {
	for _, b := range t.Brackets {
		if b.Matches(amount) {
			return b.Range, true
		}
	}
	return types.CostRange{}, false
}

// DurationTier nests amount brackets under a trial-duration band. MaxDays of
// zero marks the open-ended longest band.
type DurationTier struct {
	MaxDays  int
	Label    string
	Brackets []Bracket
}

// TrialTable is the contested-trial table: duration tiers, each holding its
// own amount brackets.
type TrialTable struct {
	Basis string
	Tiers []DurationTier
}

// Lookup selects the duration tier for the trial-day count, then the amount
// bracket within it. The returned label names the matched duration band for
// the audit trail.
func (t *TrialTable) Lookup(trialDays int, amount decimal.Decimal) (types.CostRange, string, bool) {
	for _, tier := range t.Tiers {
		if tier.MaxDays != 0 && trialDays > tier.MaxDays {
			continue
		}
		for _, b := range tier.Brackets {
			if b.Matches(amount) {
				return b.Range, tier.Label, true
			}
		}
		return types.CostRange{}, tier.Label, false
	}
	return types.CostRange{}, "", false
}

// ApplicationEntry is one Practice-Direction application type, with separate
// guidance for contested and uncontested hearings.
type ApplicationEntry struct {
	Uncontested types.CostRange
	Contested   types.CostRange
	Basis       string
}

// TrialCategoryEntry is one Practice-Direction trial category. The full-trial
// range covers a trial of up to three days; each further day adds DailyTariff
// to both bounds.
type TrialCategoryEntry struct {
	SettledBeforeTrial types.CostRange
	FullTrial          types.CostRange
	DailyTariff        decimal.Decimal
	Basis              string
}

// OriginatingAppEntry is one originating-application type, modulated by
// hearing duration.
type OriginatingAppEntry struct {
	HalfDay types.CostRange
	FullDay types.CostRange
	Basis   string
}

// AppealEntry is one appeal level.
type AppealEntry struct {
	Range types.CostRange
	Basis string
}

// GenericEstimate is the fixed safety-net figure returned for case types the
// general tables do not recognize.
type GenericEstimate struct {
	Base  decimal.Decimal
	Range types.CostRange
	Basis string
}

// Store holds every cost table for one table-set generation. It is
// process-wide read-only state: built once, then shared freely across
// goroutines. Hot reloading replaces the whole Store through the Registry,
// never a field of it.
type Store struct {
	General         map[types.CaseType]*TieredTable
	Trial           *TrialTable
	Applications    map[string]*ApplicationEntry
	TrialCategories map[string]*TrialCategoryEntry
	OriginatingApps map[string]*OriginatingAppEntry
	Appeals         map[string]*AppealEntry
	Generic         GenericEstimate
}

// GeneralTable returns the tiered table for a general-regime category.
func (s *Store) GeneralTable(category types.CaseType) (*TieredTable, bool) {
	t, ok := s.General[category]
	return t, ok
}

// Application returns the Practice-Direction entry for an application type.
func (s *Store) Application(key string) (*ApplicationEntry, bool) {
	e, ok := s.Applications[types.NormalizeKey(key)]
	return e, ok
}

// TrialCategoryEntry returns the Practice-Direction entry for a trial
// category.
func (s *Store) TrialCategory(key string) (*TrialCategoryEntry, bool) {
	e, ok := s.TrialCategories[types.NormalizeKey(key)]
	return e, ok
}

// OriginatingApp returns the entry for an originating-application type.
func (s *Store) OriginatingApp(key string) (*OriginatingAppEntry, bool) {
	e, ok := s.OriginatingApps[types.NormalizeKey(key)]
	return e, ok
}

// Appeal returns the entry for an appeal level.
func (s *Store) Appeal(key string) (*AppealEntry, bool) {
	e, ok := s.Appeals[types.NormalizeKey(key)]
	return e, ok
}

// Validate checks structural invariants: every bracket range must satisfy
// min <= max, bounded brackets must be in ascending order, and every table
// must end with an open bracket.
func (s *Store) Validate() error {
	for category, table := range s.General {
		if err := validateBrackets(string(category), table.Brackets); err != nil {
			return err
		}
	}
	if s.Trial != nil {
		for _, tier := range s.Trial.Tiers {
			if err := validateBrackets("contested_trial/"+tier.Label, tier.Brackets); err != nil {
				return err
			}
		}
	}
	for key, e := range s.Applications {
		if !e.Uncontested.Valid() || !e.Contested.Valid() {
			return fmt.Errorf("application %q: invalid cost range", key)
		}
	}
	for key, e := range s.TrialCategories {
		if !e.SettledBeforeTrial.Valid() || !e.FullTrial.Valid() {
			return fmt.Errorf("trial category %q: invalid cost range", key)
		}
	}
	for key, e := range s.OriginatingApps {
		if !e.HalfDay.Valid() || !e.FullDay.Valid() {
			return fmt.Errorf("originating application %q: invalid cost range", key)
		}
	}
	for key, e := range s.Appeals {
		if !e.Range.Valid() {
			return fmt.Errorf("appeal level %q: invalid cost range", key)
		}
	}
	if !s.Generic.Range.Valid() {
		return fmt.Errorf("generic estimate: invalid cost range")
	}
	return nil
}

func validateBrackets(table string, brackets []Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("table %q: no brackets", table)
	}
	var prev decimal.Decimal
	for i, b := range brackets {
		if !b.Range.Valid() {
			return fmt.Errorf("table %q bracket %d: invalid cost range", table, i)
		}
		if b.Open {
			if i != len(brackets)-1 {
				return fmt.Errorf("table %q bracket %d: open bracket before end", table, i)
			}
			continue
		}
		if i > 0 && b.UpperBound.LessThanOrEqual(prev) {
			return fmt.Errorf("table %q bracket %d: bounds not ascending", table, i)
		}
		prev = b.UpperBound
	}
	if last := brackets[len(brackets)-1]; !last.Open {
		return fmt.Errorf("table %q: missing open top tier", table)
	}
	return nil
}
