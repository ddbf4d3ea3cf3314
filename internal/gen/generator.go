package gen

import (
	"bytes"
	"embed"
	"io/fs"
	"strconv"
	"text/template"

	"daisy-generator/internal/diagnostic"
)

// Template identifiers.
const (
	SourceTemplate = "HeavyDaisy.cpp"
	BuildTemplate  = "Makefile"
)

const templateExt = ".tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

// RendererConfig holds configuration for template rendering.
type RendererConfig struct {
	// Templates holds <id>.tmpl files. Defaults to the embedded set.
	Templates fs.FS
}

// DefaultRendererConfig returns the default renderer configuration.
func DefaultRendererConfig() RendererConfig {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}

	return RendererConfig{Templates: sub}
}

// Renderer renders templates against a generation context.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses every template in config.Templates.
func NewRenderer(config RendererConfig) (*Renderer, error) {
	if config.Templates == nil {
		config = DefaultRendererConfig()
	}

	tmpl, err := template.New("").
		Option("missingkey=error").
		Funcs(funcMap).
		ParseFS(config.Templates, "*"+templateExt)
	if err != nil {
		return nil, diagnostic.New(diagnostic.KindTemplate, "parse templates", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// MustNewRenderer is NewRenderer for the embedded templates.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer(DefaultRendererConfig())
	if err != nil {
		panic(err)
	}

	return r
}

// Render executes template id against data.
func (r *Renderer) Render(id string, data any) ([]byte, error) {
	op := "render " + id

	t := r.tmpl.Lookup(id + templateExt)
	if t == nil {
		return nil, diagnostic.Errorf(diagnostic.KindTemplate, op, "template %q not found", id)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, diagnostic.New(diagnostic.KindTemplate, op, err)
	}

	return buf.Bytes(), nil
}

var funcMap = template.FuncMap{
	"khz": khz,
}

// khz renders a sample rate in whole kilohertz, e.g. 48000 -> "48".
func khz(rate int) string {
	return strconv.Itoa(rate / 1000)
}

// GeneratedFile represents a rendered output file.
type GeneratedFile struct {
	// Filename is relative to the output directory (e.g. "HeavyDaisy_Synth.cpp").
	Filename string
	Content  []byte
}
