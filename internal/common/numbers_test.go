package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(1, -5, 256))
	assert.Equal(t, 64, Clamp(1, 64, 256))
	assert.Equal(t, 256, Clamp(1, 1024, 256))
	assert.InDelta(t, 0.5, Clamp(0.0, 0.5, 1.0), 1e-9)
}

func TestFilter(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}

	got := Filter(in, func(v int) bool { return v%2 == 1 })
	assert.Equal(t, []int{1, 3, 5}, got)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, in)

	assert.Empty(t, Filter([]string(nil), func(string) bool { return true }))
}
