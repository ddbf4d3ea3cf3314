package board

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"daisy-generator/internal/diagnostic"
)

//go:embed boards/*.yaml
var builtinFS embed.FS

// DefaultBoard is used when patch metadata names no board.
const DefaultBoard = "pod"

// ErrUnknownBoard is returned for names with no built-in description.
var ErrUnknownBoard = errors.New("unknown board")

// Resolver turns a board name or board file into header text and a capability descriptor.
type Resolver struct {
	boards fs.FS
}

// NewResolver returns a Resolver over the built-in board descriptions.
func NewResolver() *Resolver {
	sub, err := fs.Sub(builtinFS, "boards")
	if err != nil {
		panic(err)
	}

	return &Resolver{boards: sub}
}

// NewResolverFS returns a Resolver reading board descriptions named <board>.yaml from fsys.
func NewResolverFS(fsys fs.FS) *Resolver {
	return &Resolver{boards: fsys}
}

// Names lists the boards available by name, sorted.
func (r *Resolver) Names() []string {
	matches, err := fs.Glob(r.boards, "*.yaml")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".yaml"))
	}

	slices.Sort(names)

	return names
}

// ResolveByName resolves a built-in board. Names are case-insensitive.
func (r *Resolver) ResolveByName(name string) (string, *Capability, error) {
	const op = "resolve board"

	key := strings.ToLower(strings.TrimSpace(name))

	data, err := fs.ReadFile(r.boards, key+".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, diagnostic.New(diagnostic.KindGenerator, op,
				fmt.Errorf("%w %q (available: %s)", ErrUnknownBoard, name, strings.Join(r.Names(), ", ")))
		}

		return "", nil, diagnostic.New(diagnostic.KindGenerator, op, err)
	}

	c, err := Parse(data)
	if err != nil {
		return "", nil, diagnostic.New(diagnostic.KindGenerator, op, fmt.Errorf("board %q: %w", name, err))
	}

	return r.header(op, c)
}

// ResolveByFile resolves a custom board description file.
func (r *Resolver) ResolveByFile(path string) (string, *Capability, error) {
	const op = "resolve board file"

	c, err := LoadFile(path)
	if err != nil {
		return "", nil, diagnostic.New(diagnostic.KindGenerator, op, err)
	}

	return r.header(op, c)
}

func (r *Resolver) header(op string, c *Capability) (string, *Capability, error) {
	text, err := GenerateHeader(c)
	if err != nil {
		return "", nil, diagnostic.New(diagnostic.KindGenerator, op, err)
	}

	return text, c, nil
}
