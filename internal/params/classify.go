package params

import (
	"slices"

	"daisy-generator/internal/common"
)

// Reserved names of the MIDI output events. The wrapper forwards these
// through its MIDI path, so they never become bindable hardware parameters.
const (
	NoteOut      = "__hv_noteout"
	CtlOut       = "__hv_ctlout"
	PolyTouchOut = "__hv_polytouchout"
	PgmOut       = "__hv_pgmout"
	TouchOut     = "__hv_touchout"
	BendOut      = "__hv_bendout"
	MidiOut      = "__hv_midiout"
	MidiOutPort  = "__hv_midioutport"
)

var protocolEvents = map[string]struct{}{
	NoteOut:      {},
	CtlOut:       {},
	PolyTouchOut: {},
	PgmOut:       {},
	TouchOut:     {},
	BendOut:      {},
	MidiOut:      {},
	MidiOutPort:  {},
}

// ProtocolEvents returns the reserved protocol event names, sorted.
func ProtocolEvents() []string {
	names := make([]string, 0, len(protocolEvents))
	for n := range protocolEvents {
		names = append(names, n)
	}

	slices.Sort(names)

	return names
}

// IsProtocolEvent reports whether name is exactly one of the reserved event names.
func IsProtocolEvent(name string) bool {
	_, ok := protocolEvents[name]

	return ok
}

// FilterProtocolEvents returns out without the reserved protocol events.
// Order is preserved and out is not modified.
func FilterProtocolEvents(out []ParameterDescriptor) []ParameterDescriptor {
	return common.Filter(out, func(p ParameterDescriptor) bool {
		return !IsProtocolEvent(p.Name)
	})
}

// Classify returns a copy of set with protocol events removed from the output side.
func Classify(set Set) Set {
	c := set.Clone()
	c.Out = FilterProtocolEvents(c.Out)

	return c
}
