package board

import (
	"fmt"
	"slices"
)

// ComponentType names the kind of physical control.
type ComponentType string

const (
	AnalogControl        ComponentType = "AnalogControl"
	AnalogControlBipolar ComponentType = "AnalogControlBipolar"
	Switch               ComponentType = "Switch"
	Switch3              ComponentType = "Switch3"
	Encoder              ComponentType = "Encoder"
	GateIn               ComponentType = "GateIn"
	Led                  ComponentType = "Led"
	RgbLed               ComponentType = "RgbLed"
	CVOut                ComponentType = "CVOut"
	GateOut              ComponentType = "GateOut"
)

// requiredPins lists the pin keys every component type must declare.
var requiredPins = map[ComponentType][]string{
	AnalogControl:        {"pin"},
	AnalogControlBipolar: {"pin"},
	Switch:               {"pin"},
	Switch3:              {"a", "b"},
	Encoder:              {"a", "b", "click"},
	GateIn:               {"pin"},
	Led:                  {"pin"},
	RgbLed:               {"r", "g", "b"},
	CVOut:                {"channel"},
	GateOut:              {"pin"},
}

// Known reports whether t is a supported component type.
func (t ComponentType) Known() bool {
	_, ok := requiredPins[t]

	return ok
}

// IsAnalog reports whether the component is read through the ADC.
func (t ComponentType) IsAnalog() bool {
	return t == AnalogControl || t == AnalogControlBipolar
}

// Component is one physical control of a board.
type Component struct {
	Name string         `yaml:"name"`
	Type ComponentType  `yaml:"type"`
	Pins map[string]int `yaml:"pins"`
}

// Pin returns the named pin number.
func (c Component) Pin(key string) int {
	return c.Pins[key]
}

// Capability describes what a board offers. Pointer and nil-able fields are
// nil when the description omits them; a Capability is read-only once resolved.
type Capability struct {
	Name       string
	SOM        string
	Channels   *int
	HasMIDI    *bool
	Components []Component
	Aliases    map[string]string
}

// Missing returns the structural fields absent from c, in a fixed order.
func (c *Capability) Missing() []string {
	var missing []string

	if c.Components == nil {
		missing = append(missing, "components")
	}

	if c.Aliases == nil {
		missing = append(missing, "aliases")
	}

	if c.Channels == nil {
		missing = append(missing, "channels")
	}

	if c.HasMIDI == nil {
		missing = append(missing, "has_midi")
	}

	return missing
}

// Component looks a component up by name.
func (c *Capability) Component(name string) (Component, bool) {
	i := slices.IndexFunc(c.Components, func(comp Component) bool { return comp.Name == name })
	if i < 0 {
		return Component{}, false
	}

	return c.Components[i], true
}

// validate checks the internal consistency of a parsed description.
func (c *Capability) validate() error {
	if c.Name == "" {
		return fmt.Errorf("board name is empty")
	}

	seen := make(map[string]struct{}, len(c.Components))

	for _, comp := range c.Components {
		if comp.Name == "" {
			return fmt.Errorf("component without a name")
		}

		if _, dup := seen[comp.Name]; dup {
			return fmt.Errorf("duplicate component %q", comp.Name)
		}

		seen[comp.Name] = struct{}{}

		if !comp.Type.Known() {
			return fmt.Errorf("component %q: unknown type %q", comp.Name, comp.Type)
		}

		for _, key := range requiredPins[comp.Type] {
			if _, ok := comp.Pins[key]; !ok {
				return fmt.Errorf("component %q: missing pin %q", comp.Name, key)
			}
		}
	}

	for alias, target := range c.Aliases {
		if _, ok := seen[target]; !ok {
			return fmt.Errorf("alias %q points at unknown component %q", alias, target)
		}
	}

	return nil
}
