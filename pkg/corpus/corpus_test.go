package corpus

import (
	"strings"
	"testing"

	"github.com/coolbeans/costadvisor/pkg/types"
)

func TestNewRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name    string
		records []*types.PrecedentRecord
		wantErr string
	}{
		{
			name:    "nil record",
			records: []*types.PrecedentRecord{nil},
			wantErr: "record 0 is nil",
		},
		{
			name:    "missing case ID",
			records: []*types.PrecedentRecord{{ShortName: "Nameless"}},
			wantErr: "has no case ID",
		},
		{
			name: "duplicate case ID",
			records: []*types.PrecedentRecord{
				{CaseID: "dup_2020"},
				{CaseID: "dup_2020"},
			},
			wantErr: `duplicate case ID "dup_2020"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			if err == nil {
				t.Fatalf("New() succeeded, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("New() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultSeedIntegrity(t *testing.T) {
	c := Default()
	if c.Len() != 14 {
		t.Fatalf("Len() = %d, want 14", c.Len())
	}
	for i, record := range c.All() {
		if record.Principle == "" {
			t.Errorf("record %d (%s) has no principle", i, record.CaseID)
		}
		if record.Provision == "" {
			t.Errorf("record %d (%s) has no provision", i, record.CaseID)
		}
		if record.Year == 0 {
			t.Errorf("record %d (%s) has no year", i, record.CaseID)
		}
		if len(record.RelevanceTags) == 0 {
			t.Errorf("record %d (%s) has no relevance tags", i, record.CaseID)
		}
	}
	// Insertion order is the ranking tie-break and must stay stable.
	if first := c.All()[0].CaseID; first != "then_khek_koon_2014" {
		t.Errorf("first record = %s, want then_khek_koon_2014", first)
	}
}

func TestLookupByID(t *testing.T) {
	c := Default()

	record, ok := c.LookupByID("mercurine_2008")
	if !ok {
		t.Fatal("LookupByID(mercurine_2008) not found")
	}
	if record.Court != types.CourtSGCA {
		t.Errorf("court = %s, want %s", record.Court, types.CourtSGCA)
	}

	if _, ok := c.LookupByID("no_such_case"); ok {
		t.Error("LookupByID(no_such_case) found, want miss")
	}
}

func TestLookupByProvision(t *testing.T) {
	c := Default()

	tests := []struct {
		provision string
		wantIDs   []string
	}{
		{"O 21 r 2(2) ROC 2021", []string{"wlr_v_wls_2024"}},
		{"  o 21 ", []string{"wlr_v_wls_2024", "dcs_v_dct_2024"}},
		{"O 59 r 5", []string{"then_khek_koon_2014", "airtrust_2016"}},
		{"O 99", nil},
		{"", nil},
	}
	for _, tt := range tests {
		matches := c.LookupByProvision(tt.provision)
		if len(matches) != len(tt.wantIDs) {
			t.Errorf("LookupByProvision(%q) returned %d records, want %d",
				tt.provision, len(matches), len(tt.wantIDs))
			continue
		}
		for i, want := range tt.wantIDs {
			if matches[i].CaseID != want {
				t.Errorf("LookupByProvision(%q)[%d] = %s, want %s",
					tt.provision, i, matches[i].CaseID, want)
			}
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0] = nil
	if c.All()[0] == nil {
		t.Error("mutating All() result changed the corpus")
	}
}

func TestStats(t *testing.T) {
	c := Default()
	stats := c.Stats()

	if stats.TotalRecords != 14 {
		t.Errorf("TotalRecords = %d, want 14", stats.TotalRecords)
	}
	if stats.EarliestYear != 1994 {
		t.Errorf("EarliestYear = %d, want 1994", stats.EarliestYear)
	}
	if stats.LatestYear != 2024 {
		t.Errorf("LatestYear = %d, want 2024", stats.LatestYear)
	}
	if got := stats.ByCourt[string(types.CourtSGCA)]; got != 9 {
		t.Errorf("ByCourt[SGCA] = %d, want 9", got)
	}
	if stats.ByTag["indemnity_costs"] == 0 {
		t.Error("ByTag missing indemnity_costs")
	}
}

func TestLoadBytes(t *testing.T) {
	doc := `
records:
  - case_id: test_case_2023
    citation: "[2023] SGHC 1"
    short_name: "Test v Case"
    court: SGHC
    year: 2023
    provision: "O 21 ROC 2021"
    principle: "Costs follow the event."
    keywords: ["costs"]
    relevance_tags: ["general_principles"]
`
	c, err := LoadBytes([]byte(doc))
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	record, ok := c.LookupByID("test_case_2023")
	if !ok {
		t.Fatal("loaded record not found by ID")
	}
	if record.Court != types.CourtSGHC {
		t.Errorf("court = %s, want SGHC", record.Court)
	}

	if _, err := LoadBytes([]byte("records: {not a list")); err == nil {
		t.Error("LoadBytes() accepted malformed YAML")
	}
}
