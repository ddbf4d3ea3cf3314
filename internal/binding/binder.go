package binding

import (
	"fmt"
	"slices"

	"daisy-generator/internal/board"
	"daisy-generator/internal/match"
	"daisy-generator/internal/params"
)

// suggestionThreshold is the minimum similarity for a "did you mean" hint.
const suggestionThreshold = 0.6

// InputBinding feeds a control reading into a patch parameter.
type InputBinding struct {
	Parameter string
	Hash      string
	Component string
	Type      board.ComponentType
	Variant   string
	// Process is the C++ expression read every audio block.
	Process string
	Bang    bool
}

// OutputBinding drives a control from a patch output parameter.
type OutputBinding struct {
	Parameter string
	Hash      string
	Component string
	Type      board.ComponentType
	Variant   string
	// Global is the C++ variable the send hook stores the value in.
	Global string
	// Write is the C++ statement applying Global to the control.
	Write string
}

// Unbound records a parameter no control could take.
type Unbound struct {
	Parameter  string
	Direction  params.Direction
	Suggestion string
}

// Glue is the per-control binding table.
type Glue struct {
	Inputs  []InputBinding
	Outputs []OutputBinding
	Unbound []Unbound
}

// Binder assigns parameters to controls.
type Binder interface {
	Bind(set params.Set, capability *board.Capability, aliases map[string]string) (Glue, error)
}

// NameBinder is the default Binder: it matches parameter names to control
// names and aliases. It is deterministic and has no state.
type NameBinder struct{}

var _ Binder = NameBinder{}

// slot is a (component, variant) pair that can take one parameter.
type slot struct {
	comp    board.Component
	variant variant
	names   []string
}

// Bind walks parameters in order and gives each the first free matching slot.
func (NameBinder) Bind(set params.Set, capability *board.Capability, aliases map[string]string) (Glue, error) {
	var glue Glue

	inSlots := slots(params.In, capability, aliases)
	outSlots := slots(params.Out, capability, aliases)
	used := make(map[string]string)

	for _, p := range set.In {
		s, ok := take(p, inSlots, used)
		if !ok {
			glue.Unbound = append(glue.Unbound, unbound(p, inSlots))

			continue
		}

		glue.Inputs = append(glue.Inputs, InputBinding{
			Parameter: p.Name,
			Hash:      p.Hash,
			Component: s.comp.Name,
			Type:      s.comp.Type,
			Variant:   s.variant.Suffix,
			Process:   fmt.Sprintf(s.variant.Expr, s.comp.Name),
			Bang:      s.variant.Bang,
		})
	}

	for _, p := range set.Out {
		s, ok := take(p, outSlots, used)
		if !ok {
			glue.Unbound = append(glue.Unbound, unbound(p, outSlots))

			continue
		}

		global := "output_" + s.comp.Name + s.variant.Suffix

		var write string
		if s.comp.Type == board.CVOut {
			write = cvWrite(s.comp, global)
		} else {
			write = fmt.Sprintf(s.variant.Expr, s.comp.Name, global)
		}

		glue.Outputs = append(glue.Outputs, OutputBinding{
			Parameter: p.Name,
			Hash:      p.Hash,
			Component: s.comp.Name,
			Type:      s.comp.Type,
			Variant:   s.variant.Suffix,
			Global:    global,
			Write:     write,
		})
	}

	return glue, nil
}

// slots lists every bindable (component, variant) pair in component order.
func slots(dir params.Direction, capability *board.Capability, aliases map[string]string) []slot {
	byTarget := make(map[string][]string)
	for alias, target := range aliases {
		byTarget[target] = append(byTarget[target], alias)
	}

	var out []slot

	for _, comp := range capability.Components {
		aliasNames := byTarget[comp.Name]
		slices.Sort(aliasNames)
		bases := append([]string{comp.Name}, aliasNames...)

		for _, v := range variantsFor(dir, comp.Type) {
			names := make([]string, 0, len(bases))
			for _, b := range bases {
				names = append(names, b+v.Suffix)
			}

			out = append(out, slot{comp: comp, variant: v, names: names})
		}
	}

	return out
}

func take(p params.ParameterDescriptor, candidates []slot, used map[string]string) (slot, bool) {
	for _, s := range candidates {
		key := s.comp.Name + s.variant.Suffix
		if _, taken := used[key]; taken {
			continue
		}

		for _, n := range s.names {
			if match.SameIdent(n, p.Name) {
				used[key] = p.Name

				return s, true
			}
		}
	}

	return slot{}, false
}

func unbound(p params.ParameterDescriptor, candidates []slot) Unbound {
	var names []string
	for _, s := range candidates {
		names = append(names, s.names[0])
	}

	suggestion, _ := match.Closest(p.Name, names, suggestionThreshold)

	return Unbound{Parameter: p.Name, Direction: p.Direction, Suggestion: suggestion}
}
