package meta

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the metadata document leaves a key out.
const (
	DefaultBoard          = "pod"
	DefaultSampleRate     = 48000
	DefaultLibDaisyLevels = 2
	libDaisyDir           = "libdaisy"
)

// PatchMeta is the root of the patch metadata document.
type PatchMeta struct {
	Name  string       `yaml:"name,omitempty"`
	Daisy HardwareMeta `yaml:"daisy"`
}

// HardwareMeta holds the Daisy specific settings.
type HardwareMeta struct {
	Board         string       `yaml:"board,omitempty"`
	BoardFile     string       `yaml:"board_file,omitempty"`
	SampleRate    *float64     `yaml:"samplerate,omitempty"`
	BlockSize     *int         `yaml:"blocksize,omitempty"`
	DebugPrinting bool         `yaml:"debug_printing,omitempty"`
	USBMIDI       bool         `yaml:"usb_midi,omitempty"`
	LinkerScript  string       `yaml:"linker_script,omitempty"`
	Bootloader    string       `yaml:"bootloader,omitempty"`
	LibDaisyPath  LibDaisyPath `yaml:"libdaisy_path,omitempty"`
}

// RequestedSampleRate returns the requested rate or DefaultSampleRate.
func (h HardwareMeta) RequestedSampleRate() float64 {
	if h.SampleRate == nil {
		return DefaultSampleRate
	}

	return *h.SampleRate
}

// UsesBoardFile reports whether a custom board file takes precedence over Board.
func (h HardwareMeta) UsesBoardFile() bool {
	return h.BoardFile != ""
}

// LibDaisyPath locates libDaisy either as a number of parent directories
// above the generated source dir or as an explicit path. The zero value is
// DefaultLibDaisyLevels parent directories.
type LibDaisyPath struct {
	kind   pathKind
	levels int
	path   string
}

type pathKind int

const (
	pathDefault pathKind = iota
	pathLevels
	pathExplicit
)

// RelativeLevels returns a LibDaisyPath n parent directories up.
func RelativeLevels(n int) LibDaisyPath {
	return LibDaisyPath{kind: pathLevels, levels: n}
}

// ExplicitPath returns a LibDaisyPath pointing at p.
func ExplicitPath(p string) LibDaisyPath {
	return LibDaisyPath{kind: pathExplicit, path: p}
}

// Levels returns the parent level count, or false for explicit paths.
func (l LibDaisyPath) Levels() (int, bool) {
	switch l.kind {
	case pathExplicit:
		return 0, false
	case pathLevels:
		return l.levels, true
	default:
		return DefaultLibDaisyLevels, true
	}
}

// Path returns the explicit path, or false for relative levels.
func (l LibDaisyPath) Path() (string, bool) {
	return l.path, l.kind == pathExplicit
}

// String renders the path used by the build description.
func (l LibDaisyPath) String() string {
	if p, ok := l.Path(); ok {
		return p
	}

	n, _ := l.Levels()

	return strings.Repeat("../", n) + libDaisyDir
}

// IsZero lets omitempty drop an unset value.
func (l LibDaisyPath) IsZero() bool {
	return l.kind == pathDefault
}

// UnmarshalYAML accepts an integer (levels) or a string (explicit path).
func (l *LibDaisyPath) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: libdaisy_path must be an integer or a string", n.Line)
	}

	if n.ShortTag() != "!!int" {
		*l = ExplicitPath(n.Value)

		return nil
	}

	var levels int
	if err := n.Decode(&levels); err != nil {
		return fmt.Errorf("line %d: libdaisy_path: %w", n.Line, err)
	}

	if levels < 0 {
		return fmt.Errorf("line %d: libdaisy_path levels must not be negative", n.Line)
	}

	*l = RelativeLevels(levels)

	return nil
}

// MarshalYAML writes levels as an integer and explicit paths as a string.
func (l LibDaisyPath) MarshalYAML() (any, error) {
	if p, ok := l.Path(); ok {
		return p, nil
	}

	n, _ := l.Levels()

	return n, nil
}
