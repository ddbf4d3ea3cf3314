package meta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns metadata with every default applied.
func Default() *PatchMeta {
	pm := &PatchMeta{}
	applyDefaults(pm)

	return pm
}

// LoadFile loads and parses a metadata document from the given path.
func LoadFile(path string) (*PatchMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read patch metadata %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML or JSON metadata.
func Parse(data []byte) (*PatchMeta, error) {
	var pm PatchMeta

	if err := yaml.Unmarshal(data, &pm); err != nil {
		return nil, fmt.Errorf("failed to parse patch metadata: %w", err)
	}

	applyDefaults(&pm)

	return &pm, nil
}

// Marshal serializes metadata to YAML.
func Marshal(pm *PatchMeta) ([]byte, error) {
	return yaml.Marshal(pm)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(pm *PatchMeta) {
	d := &pm.Daisy

	if d.Board == "" {
		d.Board = DefaultBoard
	}

	// blocksize 0 means "not set", like an absent key
	if d.BlockSize != nil && *d.BlockSize == 0 {
		d.BlockSize = nil
	}
}
