package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"daisy-generator/internal/binding"
	"daisy-generator/internal/board"
	"daisy-generator/internal/diagnostic"
	"daisy-generator/internal/gen"
	"daisy-generator/internal/meta"
	"daisy-generator/internal/params"
)

// Directory layout of the output tree.
const (
	OutSubdir    = "daisy"
	SourceSubdir = "source"
	BuildFile    = "Makefile"
)

// BoardResolver turns board metadata into header text and a capability descriptor.
type BoardResolver interface {
	ResolveByName(name string) (string, *board.Capability, error)
	ResolveByFile(path string) (string, *board.Capability, error)
}

// Request is the input of one run.
type Request struct {
	// Parameters are the patch's exposed parameters.
	Parameters params.Set
	// SourceDir holds the compiled patch sources.
	SourceDir string
	// OutRoot receives the "daisy" output directory.
	OutRoot string
	// PatchName is used when Meta has no name.
	PatchName string
	// Meta is optional; nil means every default.
	Meta              *meta.PatchMeta
	NumOutputChannels int
	Copyright         string
	// StaticAssets defaults to the embedded asset tree.
	StaticAssets fs.FS
}

// Pipeline runs generations. It holds no per-run state and may be reused.
type Pipeline struct {
	resolver BoardResolver
	builder  *binding.Builder
	renderer *gen.Renderer
	logger   *zap.Logger
	now      func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithResolver replaces the built-in board resolver.
func WithResolver(r BoardResolver) Option {
	return func(p *Pipeline) { p.resolver = r }
}

// WithBuilder replaces the default binding context builder.
func WithBuilder(b *binding.Builder) Option {
	return func(p *Pipeline) { p.builder = b }
}

// WithRenderer replaces the embedded templates.
func WithRenderer(r *gen.Renderer) Option {
	return func(p *Pipeline) { p.renderer = r }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithClock sets the clock used to time runs.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		resolver: board.NewResolver(),
		logger:   zap.NewNop(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.builder == nil {
		p.builder = binding.NewBuilder(binding.WithLogger(p.logger))
	}

	if p.renderer == nil {
		p.renderer = gen.MustNewRenderer()
	}

	return p
}

// Run materializes the output tree for req and reports the outcome.
// It always returns a Report; failures are carried in Report.Notifs.
func (p *Pipeline) Run(req Request) (rep Report) {
	tick := p.now()
	runID := uuid.NewString()
	log := p.logger.With(zap.String("run_id", runID))

	rep = Report{
		RunID: runID,
		Stage: Stage,
		InDir: req.SourceDir,
	}

	if abs, err := filepath.Abs(filepath.Join(req.OutRoot, OutSubdir)); err == nil {
		rep.OutDir = abs
	} else {
		rep.OutDir = filepath.Join(req.OutRoot, OutSubdir)
	}

	defer func() {
		if r := recover(); r != nil {
			p.fail(log, &rep, diagnostic.New(diagnostic.KindUnknown, "generate", fmt.Errorf("panic: %v", r)))
		}

		rep.CompileTime = p.now().Sub(tick)
	}()

	ctx, err := p.materialize(log, rep.OutDir, req)
	if err != nil {
		p.fail(log, &rep, err)

		return rep
	}

	rep.Notifs = diagnostic.Success()
	rep.OutFile = ctx.Header
	rep.Context = ctx

	log.Info("generation finished",
		zap.String("out_dir", rep.OutDir),
		zap.String("out_file", rep.OutFile))

	return rep
}

func (p *Pipeline) fail(log *zap.Logger, rep *Report, err error) {
	rep.Notifs = diagnostic.Failure(err)
	rep.OutFile = ""
	rep.Context = nil

	log.Error("generation failed",
		zap.Stringer("kind", diagnostic.KindOf(err)),
		zap.String("out_dir", rep.OutDir),
		zap.Error(err))
}

// materialize performs the side effects in order and stops at the first failure.
func (p *Pipeline) materialize(log *zap.Logger, outDir string, req Request) (*binding.Context, error) {
	pm := req.Meta
	if pm == nil {
		pm = meta.Default()
	}

	hw := pm.Daisy

	name := pm.Name
	if name == "" {
		name = req.PatchName
	}

	if err := binding.ValidatePatchName(name); err != nil {
		return nil, diagnostic.New(diagnostic.KindBinding, "generate", err)
	}

	if _, err := os.Stat(outDir); err == nil {
		log.Debug("removing previous output", zap.String("dir", outDir))
	}

	if err := gen.ReplaceDir(outDir); err != nil {
		return nil, err
	}

	assets := req.StaticAssets
	if assets == nil {
		assets = gen.StaticAssets()
	}

	log.Debug("copying static assets", zap.String("dir", outDir))

	if err := gen.CopyTree(outDir, assets); err != nil {
		return nil, err
	}

	sourceDir := filepath.Join(outDir, SourceSubdir)

	log.Debug("copying patch sources", zap.String("from", req.SourceDir), zap.String("to", sourceDir))

	if err := gen.CopyDir(sourceDir, req.SourceDir); err != nil {
		return nil, err
	}

	header, capability, err := p.resolveBoard(log, hw)
	if err != nil {
		return nil, err
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{
		{Filename: binding.HeaderName(name), Content: []byte(header)},
	}, sourceDir); err != nil {
		return nil, err
	}

	ctx, err := p.builder.Build(binding.Input{
		Parameters:        req.Parameters,
		Capability:        capability,
		PatchName:         name,
		Hardware:          hw,
		NumOutputChannels: req.NumOutputChannels,
		Copyright:         req.Copyright,
	})
	if err != nil {
		return nil, err
	}

	source, err := p.renderer.Render(gen.SourceTemplate, ctx)
	if err != nil {
		return nil, err
	}

	build, err := p.renderer.Render(gen.BuildTemplate, ctx.Build)
	if err != nil {
		return nil, err
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{
		{Filename: ctx.Source, Content: source},
		{Filename: BuildFile, Content: build},
	}, sourceDir); err != nil {
		return nil, err
	}

	return ctx, nil
}

func (p *Pipeline) resolveBoard(log *zap.Logger, hw meta.HardwareMeta) (string, *board.Capability, error) {
	if hw.UsesBoardFile() {
		log.Debug("resolving board file", zap.String("board_file", hw.BoardFile), zap.String("ignored_board", hw.Board))

		header, c, err := p.resolver.ResolveByFile(hw.BoardFile)

		return header, c, diagnostic.Wrap(diagnostic.KindGenerator, "resolve board file", err)
	}

	name := hw.Board
	if name == "" {
		name = meta.DefaultBoard
	}

	log.Debug("resolving board", zap.String("board", name))

	header, c, err := p.resolver.ResolveByName(name)

	return header, c, diagnostic.Wrap(diagnostic.KindGenerator, "resolve board", err)
}
