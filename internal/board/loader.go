package board

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// descriptionFile is the on-disk form. Pointers record which keys are present.
type descriptionFile struct {
	Name       string             `yaml:"name"`
	SOM        string             `yaml:"som"`
	Channels   *int               `yaml:"channels"`
	HasMIDI    *bool              `yaml:"has_midi"`
	Components *[]Component       `yaml:"components"`
	Aliases    *map[string]string `yaml:"aliases"`
}

// LoadFile loads and parses a board description from the given path.
func LoadFile(path string) (*Capability, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("board file %s: %w", path, err)
	}

	return c, nil
}

// Parse parses a YAML or JSON board description.
// Absent structural keys are left nil; see Capability.Missing.
func Parse(data []byte) (*Capability, error) {
	var df descriptionFile

	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse board description: %w", err)
	}

	c := &Capability{
		Name:     df.Name,
		SOM:      df.SOM,
		Channels: df.Channels,
		HasMIDI:  df.HasMIDI,
	}

	if c.SOM == "" {
		c.SOM = "seed"
	}

	if df.Components != nil {
		c.Components = *df.Components
		if c.Components == nil {
			c.Components = []Component{}
		}
	}

	if df.Aliases != nil {
		c.Aliases = *df.Aliases
		if c.Aliases == nil {
			c.Aliases = map[string]string{}
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}
