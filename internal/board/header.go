package board

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/board.hpp.tmpl
var templateFS embed.FS

var headerTemplate = template.Must(
	template.New("board.hpp.tmpl").Option("missingkey=error").ParseFS(templateFS, "templates/board.hpp.tmpl"),
)

// headerData holds all data needed for the board header template.
type headerData struct {
	Name        string
	Guard       string
	SOM         string
	Analog      []Component
	HasDAC      bool
	Members     []string
	Inits       []string
	Process     []string
	PostProcess []string
}

// GenerateHeader renders the C++ header declaring c's controls.
// Output depends only on c.
func GenerateHeader(c *Capability) (string, error) {
	data := buildHeaderData(c)

	var buf bytes.Buffer
	if err := headerTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing board header template: %w", err)
	}

	return buf.String(), nil
}

func buildHeaderData(c *Capability) *headerData {
	data := &headerData{
		Name:  c.Name,
		Guard: "JSON2DAISY_" + strings.ToUpper(c.Name),
		SOM:   c.SOM,
	}

	for _, comp := range c.Components {
		if comp.Type.IsAnalog() {
			data.Analog = append(data.Analog, comp)
		}
	}

	adcIndex := 0

	for _, comp := range c.Components {
		n := comp.Name

		switch comp.Type {
		case AnalogControl, AnalogControlBipolar:
			data.Members = append(data.Members, "daisy::AnalogControl "+n+";")
			initFn := "Init"
			if comp.Type == AnalogControlBipolar {
				initFn = "InitBipolarCv"
			}

			data.Inits = append(data.Inits,
				fmt.Sprintf("%s.%s(seed.adc.GetPtr(%d), seed.AudioCallbackRate());", n, initFn, adcIndex))
			data.Process = append(data.Process, n+".Process();")
			adcIndex++
		case Switch:
			data.Members = append(data.Members, "daisy::Switch "+n+";")
			data.Inits = append(data.Inits,
				fmt.Sprintf("%s.Init(daisy::seed::D%d, seed.AudioCallbackRate());", n, comp.Pin("pin")))
			data.Process = append(data.Process, n+".Debounce();")
		case Switch3:
			data.Members = append(data.Members, "daisy::Switch3 "+n+";")
			data.Inits = append(data.Inits,
				fmt.Sprintf("%s.Init(daisy::seed::D%d, daisy::seed::D%d);", n, comp.Pin("a"), comp.Pin("b")))
		case Encoder:
			data.Members = append(data.Members, "daisy::Encoder "+n+";")
			data.Inits = append(data.Inits,
				fmt.Sprintf("%s.Init(daisy::seed::D%d, daisy::seed::D%d, daisy::seed::D%d, seed.AudioCallbackRate());",
					n, comp.Pin("a"), comp.Pin("b"), comp.Pin("click")))
			data.Process = append(data.Process, n+".Debounce();")
		case GateIn:
			data.Members = append(data.Members, "daisy::GateIn "+n+";")
			data.Inits = append(data.Inits, fmt.Sprintf("%s.Init(daisy::seed::D%d);", n, comp.Pin("pin")))
		case Led:
			data.Members = append(data.Members, "daisy::Led "+n+";")
			data.Inits = append(data.Inits, fmt.Sprintf("%s.Init(daisy::seed::D%d, false);", n, comp.Pin("pin")))
			data.PostProcess = append(data.PostProcess, n+".Update();")
		case RgbLed:
			data.Members = append(data.Members, "daisy::RgbLed "+n+";")
			data.Inits = append(data.Inits,
				fmt.Sprintf("%s.Init(daisy::seed::D%d, daisy::seed::D%d, daisy::seed::D%d, true);",
					n, comp.Pin("r"), comp.Pin("g"), comp.Pin("b")))
			data.PostProcess = append(data.PostProcess, n+".Update();")
		case CVOut:
			data.HasDAC = true
		case GateOut:
			data.Members = append(data.Members, "daisy::GPIO "+n+";")
			data.Inits = append(data.Inits,
				fmt.Sprintf("%s.Init(daisy::seed::D%d, daisy::GPIO::Mode::OUTPUT);", n, comp.Pin("pin")))
		}
	}

	return data
}
