package tables

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/coolbeans/costadvisor/pkg/types"
)

// Document is the on-disk YAML form of a table set. Amounts are whole
// dollars. A document may supply any subset of sections; sections it omits
// keep the built-in seed tables, so a deployment can override just one
// table.
type Document struct {
	General         []TableDoc                `yaml:"general"`
	Trial           *TrialDoc                 `yaml:"trial"`
	Applications    map[string]ApplicationDoc `yaml:"applications"`
	TrialCategories map[string]TrialCatDoc    `yaml:"trial_categories"`
	OriginatingApps map[string]OrigAppDoc     `yaml:"originating_applications"`
	Appeals         map[string]AppealDoc      `yaml:"appeals"`
	Generic         *GenericDoc               `yaml:"generic"`
}

// RangeDoc is a min/max pair in whole dollars.
type RangeDoc struct {
	Min   int64    `yaml:"min"`
	Max   int64    `yaml:"max"`
	Notes []string `yaml:"notes"`
}

func (d RangeDoc) toRange() types.CostRange {
	return types.NewCostRange(d.Min, d.Max, d.Notes...)
}

// BracketDoc is one amount bracket. UpperBound of zero with Open unset is
// rejected by validation.
type BracketDoc struct {
	UpperBound int64 `yaml:"upper_bound"`
	Open       bool  `yaml:"open"`
	RangeDoc   `yaml:",inline"`
}

// TableDoc is one general-regime category table.
type TableDoc struct {
	Category string       `yaml:"category"`
	Basis    string       `yaml:"basis"`
	Brackets []BracketDoc `yaml:"brackets"`
}

// TrialDoc is the contested-trial table.
type TrialDoc struct {
	Basis string `yaml:"basis"`
	Tiers []struct {
		MaxDays  int          `yaml:"max_days"`
		Label    string       `yaml:"label"`
		Brackets []BracketDoc `yaml:"brackets"`
	} `yaml:"tiers"`
}

// ApplicationDoc is one Practice-Direction application entry.
type ApplicationDoc struct {
	Uncontested RangeDoc `yaml:"uncontested"`
	Contested   RangeDoc `yaml:"contested"`
	Basis       string   `yaml:"basis"`
}

// TrialCatDoc is one Practice-Direction trial-category entry.
type TrialCatDoc struct {
	SettledBeforeTrial RangeDoc `yaml:"settled_before_trial"`
	FullTrial          RangeDoc `yaml:"full_trial"`
	DailyTariff        int64    `yaml:"daily_tariff"`
	Basis              string   `yaml:"basis"`
}

// OrigAppDoc is one originating-application entry.
type OrigAppDoc struct {
	HalfDay RangeDoc `yaml:"half_day"`
	FullDay RangeDoc `yaml:"full_day"`
	Basis   string   `yaml:"basis"`
}

// AppealDoc is one appeal-level entry.
type AppealDoc struct {
	RangeDoc `yaml:",inline"`
	Basis    string `yaml:"basis"`
}

// GenericDoc is the safety-net estimate.
type GenericDoc struct {
	Base     int64 `yaml:"base"`
	RangeDoc `yaml:",inline"`
	Basis    string `yaml:"basis"`
}

func docBrackets(docs []BracketDoc) []Bracket {
	brackets := make([]Bracket, 0, len(docs))
	for _, d := range docs {
		brackets = append(brackets, Bracket{
			UpperBound: decimal.NewFromInt(d.UpperBound),
			Open:       d.Open,
			Range:      d.toRange(),
		})
	}
	return brackets
}

// Build converts the document into a Store, starting from the seed tables
// and replacing every section the document supplies. The result is
// validated before it is returned, so a bad document can never become the
// active table set.
func (doc *Document) Build() (*Store, error) {
	store := DefaultStore()

	if len(doc.General) > 0 {
		store.General = make(map[types.CaseType]*TieredTable, len(doc.General))
		for _, t := range doc.General {
			category, _ := types.ParseCaseType(t.Category)
			store.General[category] = &TieredTable{
				Category: category,
				Basis:    t.Basis,
				Brackets: docBrackets(t.Brackets),
			}
		}
	}
	if doc.Trial != nil {
		trial := &TrialTable{Basis: doc.Trial.Basis}
		for _, tier := range doc.Trial.Tiers {
			trial.Tiers = append(trial.Tiers, DurationTier{
				MaxDays:  tier.MaxDays,
				Label:    tier.Label,
				Brackets: docBrackets(tier.Brackets),
			})
		}
		store.Trial = trial
	}
	if len(doc.Applications) > 0 {
		store.Applications = make(map[string]*ApplicationEntry, len(doc.Applications))
		for key, e := range doc.Applications {
			store.Applications[types.NormalizeKey(key)] = &ApplicationEntry{
				Uncontested: e.Uncontested.toRange(),
				Contested:   e.Contested.toRange(),
				Basis:       e.Basis,
			}
		}
	}
	if len(doc.TrialCategories) > 0 {
		store.TrialCategories = make(map[string]*TrialCategoryEntry, len(doc.TrialCategories))
		for key, e := range doc.TrialCategories {
			store.TrialCategories[types.NormalizeKey(key)] = &TrialCategoryEntry{
				SettledBeforeTrial: e.SettledBeforeTrial.toRange(),
				FullTrial:          e.FullTrial.toRange(),
				DailyTariff:        decimal.NewFromInt(e.DailyTariff),
				Basis:              e.Basis,
			}
		}
	}
	if len(doc.OriginatingApps) > 0 {
		store.OriginatingApps = make(map[string]*OriginatingAppEntry, len(doc.OriginatingApps))
		for key, e := range doc.OriginatingApps {
			store.OriginatingApps[types.NormalizeKey(key)] = &OriginatingAppEntry{
				HalfDay: e.HalfDay.toRange(),
				FullDay: e.FullDay.toRange(),
				Basis:   e.Basis,
			}
		}
	}
	if len(doc.Appeals) > 0 {
		store.Appeals = make(map[string]*AppealEntry, len(doc.Appeals))
		for key, e := range doc.Appeals {
			store.Appeals[types.NormalizeKey(key)] = &AppealEntry{
				Range: e.toRange(),
				Basis: e.Basis,
			}
		}
	}
	if doc.Generic != nil {
		store.Generic = GenericEstimate{
			Base:  decimal.NewFromInt(doc.Generic.Base),
			Range: doc.Generic.toRange(),
			Basis: doc.Generic.Basis,
		}
	}

	if err := store.Validate(); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadBytes parses a YAML table document and builds a Store from it.
func LoadBytes(data []byte) (*Store, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing table document: %w", err)
	}
	return doc.Build()
}

// LoadFile loads a Store from a single YAML file.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table file: %w", err)
	}
	store, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return store, nil
}

// LoadDirectory merges every YAML document in the directory (sorted by file
// name) over the seed tables. A missing directory yields the seed tables
// unchanged.
func LoadDirectory(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultStore(), nil
		}
		return nil, fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var merged Document
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, &merged); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	}

	return merged.Build()
}
