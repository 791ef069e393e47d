package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, and compiles a YAML taxonomy file. Validation
// happens here, once, so extractor calls never see a malformed taxonomy.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	return Parse(data)
}

// Parse compiles a YAML taxonomy document.
func Parse(data []byte) (*Taxonomy, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy YAML: %w", err)
	}
	t, err := New(def)
	if err != nil {
		return nil, err
	}
	return t, nil
}
