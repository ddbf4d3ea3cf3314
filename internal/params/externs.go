package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// externsFile mirrors the part of the compiler's externs document we consume.
// The document is JSON; yaml.v3 reads it as a YAML flow document.
type externsFile struct {
	Parameters struct {
		In  []externEntry `yaml:"in"`
		Out []externEntry `yaml:"out"`
	} `yaml:"parameters"`
}

// externEntry is a ["name", {hash, attributes}] pair.
type externEntry struct {
	Name string
	Info externInfo
}

type externInfo struct {
	Hash       string     `yaml:"hash"`
	Attributes Attributes `yaml:"attributes"`
}

// UnmarshalYAML decodes the two-element tuple form.
func (e *externEntry) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode || len(n.Content) == 0 {
		return fmt.Errorf("line %d: parameter entry must be a [name, info] pair", n.Line)
	}

	if err := n.Content[0].Decode(&e.Name); err != nil {
		return fmt.Errorf("line %d: parameter name: %w", n.Line, err)
	}

	if e.Name == "" {
		return fmt.Errorf("line %d: parameter name is empty", n.Line)
	}

	if len(n.Content) > 1 {
		if err := n.Content[1].Decode(&e.Info); err != nil {
			return fmt.Errorf("line %d: parameter %q: %w", n.Line, e.Name, err)
		}
	}

	return nil
}

// LoadExterns loads and parses an externs document from the given path.
func LoadExterns(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read externs file %s: %w", path, err)
	}

	return ParseExterns(data)
}

// ParseExterns parses an externs document into a parameter set.
func ParseExterns(data []byte) (Set, error) {
	var ef externsFile

	if err := yaml.Unmarshal(data, &ef); err != nil {
		return Set{}, fmt.Errorf("failed to parse externs: %w", err)
	}

	return Set{
		In:  toDescriptors(ef.Parameters.In, In),
		Out: toDescriptors(ef.Parameters.Out, Out),
	}, nil
}

func toDescriptors(entries []externEntry, dir Direction) []ParameterDescriptor {
	out := make([]ParameterDescriptor, 0, len(entries))

	for _, e := range entries {
		typ := e.Info.Attributes.Type
		if typ == "" {
			typ = DefaultType
		}

		hash := e.Info.Hash
		if hash == "" {
			hash = Hash(e.Name)
		}

		out = append(out, ParameterDescriptor{
			Name:       e.Name,
			Direction:  dir,
			Type:       typ,
			Hash:       hash,
			Attributes: e.Info.Attributes,
		})
	}

	return out
}
