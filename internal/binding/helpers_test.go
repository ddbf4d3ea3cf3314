package binding

import (
	"testing"

	"github.com/stretchr/testify/require"

	"daisy-generator/internal/board"
	"daisy-generator/internal/params"
)

func pod(t *testing.T) *board.Capability {
	t.Helper()

	_, c, err := board.NewResolver().ResolveByName("pod")
	require.NoError(t, err)

	return c
}

func resolve(t *testing.T, name string) *board.Capability {
	t.Helper()

	_, c, err := board.NewResolver().ResolveByName(name)
	require.NoError(t, err)

	return c
}

func in(names ...string) []params.ParameterDescriptor {
	return descriptors(params.In, names)
}

func out(names ...string) []params.ParameterDescriptor {
	return descriptors(params.Out, names)
}

func descriptors(dir params.Direction, names []string) []params.ParameterDescriptor {
	ds := make([]params.ParameterDescriptor, 0, len(names))
	for _, n := range names {
		ds = append(ds, params.ParameterDescriptor{
			Name:      n,
			Direction: dir,
			Type:      params.DefaultType,
			Hash:      params.Hash(n),
		})
	}

	return ds
}
