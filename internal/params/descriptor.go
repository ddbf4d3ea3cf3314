package params

import (
	"fmt"
)

// Direction tells whether a parameter flows into or out of the patch.
type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

// DefaultType is the type tag of parameters that do not declare one.
const DefaultType = "float"

// ParameterDescriptor describes one exposed parameter of a compiled patch.
type ParameterDescriptor struct {
	Name       string
	Direction  Direction
	Type       string
	Hash       string
	Attributes Attributes
}

// Attributes are the optional range hints the compiler emits for a parameter.
type Attributes struct {
	Min     *float64 `yaml:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty"`
	Default *float64 `yaml:"default,omitempty"`
	Type    string   `yaml:"type,omitempty"`
}

// Set is the grouped parameter set of a patch.
type Set struct {
	In  []ParameterDescriptor
	Out []ParameterDescriptor
}

// Len returns the total number of parameters.
func (s Set) Len() int {
	return len(s.In) + len(s.Out)
}

// Clone returns a deep copy of s; nothing in it aliases s.
func (s Set) Clone() Set {
	return Set{
		In:  cloneDescriptors(s.In),
		Out: cloneDescriptors(s.Out),
	}
}

func cloneDescriptors(ps []ParameterDescriptor) []ParameterDescriptor {
	if ps == nil {
		return nil
	}

	out := make([]ParameterDescriptor, len(ps))
	for i, p := range ps {
		p.Attributes = p.Attributes.clone()
		out[i] = p
	}

	return out
}

func (a Attributes) clone() Attributes {
	a.Min = cloneFloat(a.Min)
	a.Max = cloneFloat(a.Max)
	a.Default = cloneFloat(a.Default)

	return a
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}

	c := *v

	return &c
}

// String returns "name(direction)".
func (p ParameterDescriptor) String() string {
	return fmt.Sprintf("%s(%s)", p.Name, p.Direction)
}
