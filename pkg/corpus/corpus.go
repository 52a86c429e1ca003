// Package corpus provides the immutable case-law corpus consumed by the
// precedent relevance engine. A Corpus preserves insertion order, which is
// the documented tie-break order for equally scored matches, and is never
// mutated after construction.
package corpus

import (
	"fmt"
	"strings"

	"github.com/coolbeans/costadvisor/pkg/types"
)

// Corpus is an ordered, read-only collection of precedent records indexed
// by case ID.
type Corpus struct {
	records []*types.PrecedentRecord
	byID    map[string]*types.PrecedentRecord
}

// New builds a corpus from records, preserving their order. Duplicate case
// IDs and records missing an ID are rejected.
func New(records []*types.PrecedentRecord) (*Corpus, error) {
	c := &Corpus{
		records: make([]*types.PrecedentRecord, 0, len(records)),
		byID:    make(map[string]*types.PrecedentRecord, len(records)),
	}
	for i, record := range records {
		if record == nil {
			return nil, fmt.Errorf("record %d is nil", i)
		}
		if record.CaseID == "" {
			return nil, fmt.Errorf("record %d (%s) has no case ID", i, record.ShortName)
		}
		if _, exists := c.byID[record.CaseID]; exists {
			return nil, fmt.Errorf("duplicate case ID %q", record.CaseID)
		}
		c.records = append(c.records, record)
		c.byID[record.CaseID] = record
	}
	return c, nil
}

// Default returns the built-in Singapore costs jurisprudence corpus.
func Default() *Corpus {
	c, err := New(seedRecords())
	if err != nil {
		// The seed data is fixed at compile time; a bad seed is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("corpus: invalid seed data: %v", err))
	}
	return c
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.records)
}

// All returns the records in insertion order. The returned slice is a copy;
// the records themselves are shared and must not be mutated.
func (c *Corpus) All() []*types.PrecedentRecord {
	out := make([]*types.PrecedentRecord, len(c.records))
	copy(out, c.records)
	return out
}

// LookupByID returns the record for a case ID, or false when the corpus
// does not contain it.
func (c *Corpus) LookupByID(caseID string) (*types.PrecedentRecord, bool) {
	record, ok := c.byID[caseID]
	return record, ok
}

// LookupByProvision returns every record interpreting the provision, in
// insertion order. Matching is case-insensitive and tolerant of surrounding
// whitespace; a substring match on the provision citation counts, so
// "O 21" finds every Order 21 authority.
func (c *Corpus) LookupByProvision(provision string) []*types.PrecedentRecord {
	needle := strings.ToLower(strings.TrimSpace(provision))
	if needle == "" {
		return nil
	}
	var matches []*types.PrecedentRecord
	for _, record := range c.records {
		if strings.Contains(strings.ToLower(record.Provision), needle) {
			matches = append(matches, record)
		}
	}
	return matches
}

// Stats summarizes the corpus composition.
type Stats struct {
	TotalRecords int            `json:"total_records"`
	ByCourt      map[string]int `json:"by_court"`
	ByTag        map[string]int `json:"by_tag"`
	EarliestYear int            `json:"earliest_year"`
	LatestYear   int            `json:"latest_year"`
}

// Stats computes aggregate statistics across the corpus.
func (c *Corpus) Stats() *Stats {
	stats := &Stats{
		ByCourt: make(map[string]int),
		ByTag:   make(map[string]int),
	}
	for _, record := range c.records {
		stats.TotalRecords++
		stats.ByCourt[string(record.Court)]++
		for _, tag := range record.RelevanceTags {
			stats.ByTag[strings.ToLower(tag)]++
		}
		if stats.EarliestYear == 0 || record.Year < stats.EarliestYear {
			stats.EarliestYear = record.Year
		}
		if record.Year > stats.LatestYear {
			stats.LatestYear = record.Year
		}
	}
	return stats
}
