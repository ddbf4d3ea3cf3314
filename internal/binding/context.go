package binding

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"daisy-generator/internal/board"
	"daisy-generator/internal/copyright"
	"daisy-generator/internal/diagnostic"
	"daisy-generator/internal/meta"
	"daisy-generator/internal/params"
	"daisy-generator/internal/quant"
)

// FilePrefix prefixes every generated wrapper file.
const FilePrefix = "HeavyDaisy_"

// Context is everything the source and build templates read.
// One Context belongs to one generation run.
type Context struct {
	ClassName         string
	PatchName         string
	Header            string
	Source            string
	MaxChannels       int
	NumOutputChannels int
	// OutputChannels is NumOutputChannels capped at MaxChannels.
	OutputChannels int
	HasMIDI        bool
	DebugPrinting  bool
	USBMIDI        bool
	SampleRate     int
	// BlockSize is nil when the target default applies.
	BlockSize *int
	Copyright string

	Inputs  []InputBinding
	Outputs []OutputBinding
	Unbound []Unbound

	Build BuildContext
}

// BuildContext is the build description template's context.
type BuildContext struct {
	Name          string
	LinkerScript  string
	LibDaisyPath  string
	Bootloader    string
	DebugPrinting bool
}

// HeaderName returns the board header file name for patchName.
func HeaderName(patchName string) string {
	return FilePrefix + patchName + ".hpp"
}

// ErrInvalidPatchName is returned for names that are not C identifiers.
var ErrInvalidPatchName = errors.New("invalid patch name")

var patchNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidatePatchName checks that name can be used in file names and as part
// of C++ identifiers such as Heavy_<name>.
func ValidatePatchName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidPatchName)
	}

	if !patchNamePattern.MatchString(name) {
		return fmt.Errorf("%w %q: must be a C identifier", ErrInvalidPatchName, name)
	}

	return nil
}

// SourceName returns the wrapper source file name for patchName.
func SourceName(patchName string) string {
	return FilePrefix + patchName + ".cpp"
}

// Input is what Build needs to assemble a Context.
type Input struct {
	Parameters params.Set
	Capability *board.Capability
	// Aliases overrides Capability.Aliases when non-nil.
	Aliases           map[string]string
	PatchName         string
	Hardware          meta.HardwareMeta
	NumOutputChannels int
	Copyright         string
}

// Builder assembles binding contexts.
type Builder struct {
	binder    Binder
	copyright copyright.Formatter
	logger    *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithBinder replaces the default NameBinder.
func WithBinder(b Binder) Option {
	return func(bld *Builder) { bld.binder = b }
}

// WithCopyright sets the copyright formatter.
func WithCopyright(f copyright.Formatter) Option {
	return func(bld *Builder) { bld.copyright = f }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(bld *Builder) { bld.logger = l }
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		binder: NameBinder{},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build validates the capability, classifies and binds the parameters and
// fills every key the templates need.
func (b *Builder) Build(in Input) (*Context, error) {
	const op = "build binding context"

	if in.Capability == nil {
		return nil, diagnostic.Errorf(diagnostic.KindStructuralBoard, op, "no board capability")
	}

	if missing := in.Capability.Missing(); len(missing) > 0 {
		return nil, diagnostic.Errorf(diagnostic.KindStructuralBoard, op,
			"board %q is missing required field(s): %s", in.Capability.Name, strings.Join(missing, ", "))
	}

	if err := ValidatePatchName(in.PatchName); err != nil {
		return nil, diagnostic.New(diagnostic.KindBinding, op, err)
	}

	aliases := in.Aliases
	if aliases == nil {
		aliases = in.Capability.Aliases
	}

	glue, err := b.binder.Bind(params.Classify(in.Parameters), in.Capability, aliases)
	if err != nil {
		return nil, diagnostic.Wrap(diagnostic.KindBinding, op, err)
	}

	if err := checkGlue(glue); err != nil {
		return nil, diagnostic.New(diagnostic.KindBinding, op, err)
	}

	for _, u := range glue.Unbound {
		fields := []zap.Field{
			zap.String("parameter", u.Parameter),
			zap.String("direction", string(u.Direction)),
		}
		if u.Suggestion != "" {
			fields = append(fields, zap.String("closest_control", u.Suggestion))
		}

		b.logger.Info("parameter not bound to any control", fields...)
	}

	hw := in.Hardware
	maxChannels := *in.Capability.Channels

	ctx := &Context{
		ClassName:         in.Capability.Name,
		PatchName:         in.PatchName,
		Header:            HeaderName(in.PatchName),
		Source:            SourceName(in.PatchName),
		MaxChannels:       maxChannels,
		NumOutputChannels: in.NumOutputChannels,
		OutputChannels:    min(in.NumOutputChannels, maxChannels),
		HasMIDI:           *in.Capability.HasMIDI,
		DebugPrinting:     hw.DebugPrinting,
		USBMIDI:           hw.USBMIDI,
		SampleRate:        quant.SampleRate(hw.RequestedSampleRate()),
		BlockSize:         quant.BlockSize(hw.BlockSize),
		Copyright:         b.copyright.Format(in.Copyright),
		Inputs:            glue.Inputs,
		Outputs:           glue.Outputs,
		Unbound:           glue.Unbound,
		Build: BuildContext{
			Name:          in.PatchName,
			LinkerScript:  hw.LinkerScript,
			LibDaisyPath:  hw.LibDaisyPath.String(),
			Bootloader:    hw.Bootloader,
			DebugPrinting: hw.DebugPrinting,
		},
	}

	b.logger.Debug("binding context built",
		zap.String("board", ctx.ClassName),
		zap.Int("inputs", len(ctx.Inputs)),
		zap.Int("outputs", len(ctx.Outputs)),
		zap.Int("unbound", len(ctx.Unbound)),
		zap.Int("samplerate", ctx.SampleRate))

	return ctx, nil
}

// checkGlue enforces the binder contract: a parameter and a control slot
// each appear at most once.
func checkGlue(g Glue) error {
	seen := make(map[string]struct{})
	controls := make(map[string]string)

	check := func(dir params.Direction, param, control string) error {
		key := string(dir) + ":" + param
		if _, dup := seen[key]; dup {
			return fmt.Errorf("parameter %q bound more than once", param)
		}

		if other, dup := controls[control]; dup {
			return fmt.Errorf("control %q bound to both %q and %q", control, other, param)
		}

		seen[key] = struct{}{}
		controls[control] = param

		return nil
	}

	for _, in := range g.Inputs {
		if err := check(params.In, in.Parameter, in.Component+in.Variant); err != nil {
			return err
		}
	}

	for _, out := range g.Outputs {
		if err := check(params.Out, out.Parameter, out.Component+out.Variant); err != nil {
			return err
		}
	}

	return nil
}
