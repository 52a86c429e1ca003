package tables

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coolbeans/costadvisor/pkg/types"
)

const overrideDoc = `
generic:
  base: 8000
  min: 5000
  max: 11000
  basis: "Deployment-specific generic estimate"
appeals:
  court_of_appeal:
    min: 50000
    max: 120000
    basis: "Updated appellate guidance"
`

func TestLoadBytesOverridesSections(t *testing.T) {
	store, err := LoadBytes([]byte(overrideDoc))
	if err != nil {
		t.Fatalf("LoadBytes failed: %v", err)
	}

	if got := store.Generic.Base.String(); got != "8000" {
		t.Errorf("generic base = %s, want 8000", got)
	}

	entry, ok := store.Appeal("court_of_appeal")
	if !ok {
		t.Fatal("court_of_appeal entry missing")
	}
	if got := entry.Range.MaxCost.String(); got != "120000" {
		t.Errorf("appeal max = %s, want 120000", got)
	}

	// Sections the document does not mention keep the seed tables.
	if _, ok := store.GeneralTable(types.CaseTypeDefaultJudgmentLiquidated); !ok {
		t.Error("seed general tables should survive a partial override")
	}
	if _, ok := store.Application("summary_judgment"); !ok {
		t.Error("seed application tables should survive a partial override")
	}
}

func TestLoadBytesRejectsInvalidDocument(t *testing.T) {
	doc := `
general:
  - category: appeal
    basis: "broken"
    brackets:
      - upper_bound: 100
        min: 500
        max: 100
      - open: true
        min: 1
        max: 2
`
	if _, err := LoadBytes([]byte(doc)); err == nil {
		t.Error("expected validation error for inverted range")
	}
}

func TestLoadDirectoryMissingUsesSeed(t *testing.T) {
	store, err := LoadDirectory(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("LoadDirectory on missing dir: %v", err)
	}
	if err := store.Validate(); err != nil {
		t.Errorf("seed store invalid: %v", err)
	}
}

func TestRegistryReloadSwapsAtomically(t *testing.T) {
	dir := t.TempDir()
	registry, err := NewRegistryWithDirectory(dir)
	if err != nil {
		t.Fatalf("NewRegistryWithDirectory failed: %v", err)
	}

	before := registry.Current()
	if got := before.Generic.Base.String(); got != "5000" {
		t.Fatalf("seed generic base = %s, want 5000", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "override.yaml"), []byte(overrideDoc), 0644); err != nil {
		t.Fatal(err)
	}
	if err := registry.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	after := registry.Current()
	if after == before {
		t.Error("Reload should produce a new Store generation")
	}
	if got := after.Generic.Base.String(); got != "8000" {
		t.Errorf("reloaded generic base = %s, want 8000", got)
	}

	// The old generation is still internally consistent for callers that
	// captured it before the swap.
	if got := before.Generic.Base.String(); got != "5000" {
		t.Errorf("previous generation mutated: base = %s", got)
	}
}

func TestRegistryReloadKeepsActiveTablesOnError(t *testing.T) {
	dir := t.TempDir()
	registry, err := NewRegistryWithDirectory(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("general: {not: [valid"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := registry.Reload(); err == nil {
		t.Fatal("expected reload error for malformed YAML")
	}

	if got := registry.Current().Generic.Base.String(); got != "5000" {
		t.Errorf("active tables changed after failed reload: base = %s", got)
	}
}
