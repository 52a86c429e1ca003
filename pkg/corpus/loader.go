package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coolbeans/costadvisor/pkg/types"
)

// Document is the on-disk YAML form of a corpus: a flat list of precedent
// records in ranking tie-break order.
type Document struct {
	Records []*types.PrecedentRecord `yaml:"records"`
}

// LoadBytes parses a YAML corpus document into a Corpus.
func LoadBytes(data []byte) (*Corpus, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing corpus document: %w", err)
	}
	return New(doc.Records)
}

// LoadFile loads a Corpus from a YAML file. The file replaces the seed
// corpus entirely; deployments that want the seed cases keep them in the
// file.
func LoadFile(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}
	c, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
