package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExterns = `{
  "parameters": {
    "in": [
      ["knob1", {"display": "knob1", "hash": "0x7EE2D2B1", "extern": "param",
                 "attributes": {"min": 0.0, "max": 1.0, "default": 0.5}}],
      ["sw1_rise", {"hash": "0x1B2E3A44"}]
    ],
    "out": [
      ["led1", {"hash": "0x23F5A3D3", "attributes": {"type": "float"}}],
      ["__hv_noteout", {"hash": "0xD1D4AC2"}]
    ]
  },
  "events": {"in": [], "out": []}
}`

func TestParseExterns(t *testing.T) {
	set, err := ParseExterns([]byte(sampleExterns))
	require.NoError(t, err)

	require.Len(t, set.In, 2)
	require.Len(t, set.Out, 2)

	knob := set.In[0]
	assert.Equal(t, "knob1", knob.Name)
	assert.Equal(t, In, knob.Direction)
	assert.Equal(t, DefaultType, knob.Type)
	assert.Equal(t, "0x7EE2D2B1", knob.Hash)
	require.NotNil(t, knob.Attributes.Default)
	assert.InDelta(t, 0.5, *knob.Attributes.Default, 1e-9)

	assert.Equal(t, "sw1_rise", set.In[1].Name)
	assert.Nil(t, set.In[1].Attributes.Min)

	assert.Equal(t, Out, set.Out[0].Direction)
	assert.Equal(t, "__hv_noteout", set.Out[1].Name)
}

func TestParseExterns_NoParameters(t *testing.T) {
	set, err := ParseExterns([]byte(`{"events": {"in": []}}`))
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestParseExterns_Invalid(t *testing.T) {
	_, err := ParseExterns([]byte(`{"parameters": {"in": [{"name": "knob1"}]}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[name, info] pair")

	_, err = ParseExterns([]byte(`{"parameters": {"in": [[""]]}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadExterns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "externs.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleExterns), 0o644))

	set, err := LoadExterns(path)
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len())

	_, err = LoadExterns(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
