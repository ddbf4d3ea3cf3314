package pipeline

import (
	"encoding/json"
	"time"

	"daisy-generator/internal/binding"
	"daisy-generator/internal/diagnostic"
)

// Stage identifies this generator in reports.
const Stage = "c2daisy"

// Report is the outcome of one run. It is never modified after Run returns.
// It serializes to JSON and YAML with compile_time in float seconds.
type Report struct {
	RunID  string
	Stage  string
	Notifs diagnostic.Notifications
	InDir  string
	InFile string
	// OutDir is set on failure too; it may hold a partial tree.
	OutDir      string
	OutFile     string
	CompileTime time.Duration

	// Context is the binding context of a successful run. Not serialized.
	Context *binding.Context
}

// reportDocument is the serialized form of a Report.
type reportDocument struct {
	RunID       string                   `json:"run_id" yaml:"run_id"`
	Stage       string                   `json:"stage" yaml:"stage"`
	Notifs      diagnostic.Notifications `json:"notifs" yaml:"notifs"`
	InDir       string                   `json:"in_dir" yaml:"in_dir"`
	InFile      string                   `json:"in_file" yaml:"in_file"`
	OutDir      string                   `json:"out_dir" yaml:"out_dir"`
	OutFile     string                   `json:"out_file" yaml:"out_file"`
	CompileTime float64                  `json:"compile_time" yaml:"compile_time"`
}

func (r Report) document() reportDocument {
	return reportDocument{
		RunID:       r.RunID,
		Stage:       r.Stage,
		Notifs:      r.Notifs,
		InDir:       r.InDir,
		InFile:      r.InFile,
		OutDir:      r.OutDir,
		OutFile:     r.OutFile,
		CompileTime: r.CompileTime.Seconds(),
	}
}

// MarshalJSON implements json.Marshaler.
func (r Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.document())
}

// MarshalYAML implements yaml.Marshaler.
func (r Report) MarshalYAML() (any, error) {
	return r.document(), nil
}

// HasError reports whether the run failed.
func (r Report) HasError() bool {
	return r.Notifs.HasError
}

// Kind returns the failure kind, or KindUnknown on success.
func (r Report) Kind() diagnostic.Kind {
	return r.Notifs.Kind()
}

// Result returns the report together with its failure, if any.
func (r Report) Result() (Report, error) {
	return r, r.Notifs.Err()
}
