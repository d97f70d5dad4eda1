package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProofDocument is a portable proof of a single key-value pair: the root
// digest it was built against, the pair itself and the ordered node
// encodings, all hex-encoded. It is self-contained and verifiable without
// the trie it came from.
type ProofDocument struct {
	Root  string   `yaml:"Root"`
	Key   string   `yaml:"Key"`
	Value string   `yaml:"Value"`
	Proof []string `yaml:"Proof"`
}

// LoadProof attempts to load a proof document from the given path.
func LoadProof(path string) (ProofDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ProofDocument{}, fmt.Errorf("unable to read proof file: %w", err)
	}

	var doc ProofDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ProofDocument{}, fmt.Errorf("problem unmarshaling proof file: %w", err)
	}
	return doc, nil
}

// Save writes the proof document to the given path.
func (p ProofDocument) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("problem marshaling proof file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write proof file: %w", err)
	}
	return nil
}
