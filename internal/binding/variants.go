package binding

import (
	"fmt"

	"daisy-generator/internal/board"
	"daisy-generator/internal/params"
)

// variant is one bindable facet of a component, e.g. the rising edge of a switch.
type variant struct {
	Suffix string
	// Expr is a printf format taking the component name. For inputs it yields
	// the value expression, for outputs it takes the component name and the
	// global holding the value and yields a statement.
	Expr string
	// Bang marks inputs delivered as bangs when the expression is true.
	Bang bool
}

var inputVariants = map[board.ComponentType][]variant{
	board.AnalogControl:        {{Expr: "hardware.%s.Value()"}},
	board.AnalogControlBipolar: {{Expr: "hardware.%s.Value()"}},
	board.Switch: {
		{Expr: "hardware.%s.Pressed()"},
		{Suffix: "_rise", Expr: "hardware.%s.RisingEdge()", Bang: true},
		{Suffix: "_fall", Expr: "hardware.%s.FallingEdge()", Bang: true},
		{Suffix: "_seconds", Expr: "hardware.%s.TimeHeldMs() * 0.001f"},
	},
	board.Switch3: {{Expr: "hardware.%s.Read()"}},
	board.Encoder: {
		{Expr: "hardware.%s.Increment()"},
		{Suffix: "_press", Expr: "hardware.%s.Pressed()"},
		{Suffix: "_rise", Expr: "hardware.%s.RisingEdge()", Bang: true},
		{Suffix: "_fall", Expr: "hardware.%s.FallingEdge()", Bang: true},
		{Suffix: "_seconds", Expr: "hardware.%s.TimeHeldMs() * 0.001f"},
	},
	board.GateIn: {
		{Expr: "hardware.%s.State()"},
		{Suffix: "_trig", Expr: "hardware.%s.Trig()", Bang: true},
	},
}

var outputVariants = map[board.ComponentType][]variant{
	board.Led: {{Expr: "hardware.%s.Set(%s);"}},
	board.RgbLed: {
		{Suffix: "_red", Expr: "hardware.%s.SetRed(%s);"},
		{Suffix: "_green", Expr: "hardware.%s.SetGreen(%s);"},
		{Suffix: "_blue", Expr: "hardware.%s.SetBlue(%s);"},
	},
	board.GateOut: {{Expr: "hardware.%s.Write(%s > 0.5f);"}},
	// CV outputs write through the DAC, see cvWrite.
	board.CVOut: {{}},
}

func variantsFor(dir params.Direction, t board.ComponentType) []variant {
	if dir == params.Out {
		return outputVariants[t]
	}

	return inputVariants[t]
}

// cvWrite returns the DAC write statement for a CV output channel.
func cvWrite(comp board.Component, global string) string {
	channel := "ONE"
	if comp.Pin("channel") == 2 {
		channel = "TWO"
	}

	return fmt.Sprintf("hardware.seed.dac.WriteValue(daisy::DacHandle::Channel::%s, %s * 4095);", channel, global)
}
