package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"daisy-generator/internal/meta"
	"daisy-generator/internal/params"
	"daisy-generator/internal/pipeline"
	"daisy-generator/internal/quant"
)

var errGenerationFailed = errors.New("generation failed")

// genOptions are the flags shared by gen and watch.
type genOptions struct {
	externs        string
	src            string
	out            string
	meta           string
	name           string
	board          string
	boardFile      string
	sampleRate     float64
	blockSize      int
	static         string
	outputChannels int
	copyright      string
	dumpContext    bool
	format         string
}

func (o *genOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.externs, "externs", "", "Externs file of the compiled patch (required)")
	f.StringVar(&o.src, "src", "", "Directory with the compiled patch sources (required)")
	f.StringVar(&o.out, "out", "", "Output root; the project is written to <out>/daisy (required)")
	f.StringVar(&o.meta, "meta", "", "Patch metadata file (YAML or JSON)")
	f.StringVar(&o.name, "name", "", "Patch name, overrides the metadata")
	f.StringVar(&o.board, "board", "", "Built-in board name, overrides the metadata")
	f.StringVar(&o.boardFile, "board-file", "", "Custom board description, takes precedence over --board")
	f.Float64Var(&o.sampleRate, "samplerate", meta.DefaultSampleRate,
		fmt.Sprintf("Requested sample rate in Hz, rounded down to one of %v", quant.Tiers()))
	f.IntVar(&o.blockSize, "blocksize", 0, "Requested audio block size, 0 for the target default")
	f.StringVar(&o.static, "static", "", "Directory replacing the built-in static project files")
	f.IntVar(&o.outputChannels, "output-channels", 2, "Number of output channels of the patch")
	f.StringVar(&o.copyright, "copyright", "", "Copyright notice for generated sources")
	f.BoolVar(&o.dumpContext, "dump-context", false, "Dump the binding context to stderr")
	f.StringVar(&o.format, "format", "yaml", "Report format: yaml or json")

	_ = cmd.MarkFlagRequired("externs")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("out")
}

func (o *genOptions) validate() error {
	switch o.format {
	case "yaml", "json":
		return nil
	default:
		return fmt.Errorf("unsupported report format %q", o.format)
	}
}

// request loads the externs and metadata and applies flag overrides.
func (o *genOptions) request(cmd *cobra.Command) (pipeline.Request, error) {
	set, err := params.LoadExterns(o.externs)
	if err != nil {
		return pipeline.Request{}, err
	}

	pm := meta.Default()
	if o.meta != "" {
		if pm, err = meta.LoadFile(o.meta); err != nil {
			return pipeline.Request{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("name") {
		pm.Name = o.name
	}

	if flags.Changed("board") {
		pm.Daisy.Board = o.board
	}

	if flags.Changed("board-file") {
		pm.Daisy.BoardFile = o.boardFile
	}

	if flags.Changed("samplerate") {
		sr := o.sampleRate
		pm.Daisy.SampleRate = &sr
	}

	if flags.Changed("blocksize") {
		pm.Daisy.BlockSize = nil

		// 0 means unset, as in the metadata file
		if o.blockSize != 0 {
			bs := o.blockSize
			pm.Daisy.BlockSize = &bs
		}
	}

	req := pipeline.Request{
		Parameters:        set,
		SourceDir:         o.src,
		OutRoot:           o.out,
		Meta:              pm,
		NumOutputChannels: o.outputChannels,
		Copyright:         o.copyright,
	}

	if o.static != "" {
		req.StaticAssets = os.DirFS(o.static)
	}

	return req, nil
}

// generate runs one generation and prints its report.
func (a *app) generate(cmd *cobra.Command, o *genOptions) (pipeline.Report, error) {
	req, err := o.request(cmd)
	if err != nil {
		return pipeline.Report{}, err
	}

	rep := pipeline.New(pipeline.WithLogger(a.logger)).Run(req)

	if o.dumpContext && rep.Context != nil {
		spew.Fdump(cmd.ErrOrStderr(), rep.Context)
	}

	if err := writeReport(cmd.OutOrStdout(), rep, o.format); err != nil {
		return rep, err
	}

	if rep.HasError() {
		return rep, fmt.Errorf("%w: %s", errGenerationFailed, rep.Kind())
	}

	return rep, nil
}

func writeReport(w io.Writer, rep pipeline.Report, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rep)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(rep); err != nil {
		return err
	}

	return enc.Close()
}

func (a *app) genCmd() *cobra.Command {
	o := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the Daisy project for a compiled patch",
		Example: `  daisy-generator gen --externs ir/externs.json --src c --out build --meta meta.json
  daisy-generator gen --externs externs.json --src c --out build --name synth --board patch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.validate(); err != nil {
				return err
			}

			_, err := a.generate(cmd, o)

			return err
		},
	}

	o.register(cmd)

	return cmd
}
