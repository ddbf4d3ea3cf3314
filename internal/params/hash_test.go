package params

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	format := regexp.MustCompile(`^0x[0-9A-F]{8}$`)

	seen := map[string]string{}
	for _, n := range []string{"", "a", "ab", "abc", "knob", "knob1", "knob2", "sw1_rise"} {
		h := Hash(n)
		require.Regexp(t, format, h)
		assert.Equal(t, h, Hash(n))

		if prev, dup := seen[h]; dup {
			t.Fatalf("hash collision between %q and %q", prev, n)
		}

		seen[h] = n
	}
}

func TestHashString_Empty(t *testing.T) {
	// zero length, zero seed: only the final avalanche runs
	assert.Equal(t, uint32(0), hashString(""))
}

func TestParseExterns_FillsMissingHash(t *testing.T) {
	set, err := ParseExterns([]byte(`{"parameters": {"in": [["knob1"]]}}`))
	require.NoError(t, err)
	require.Len(t, set.In, 1)
	assert.Equal(t, Hash("knob1"), set.In[0].Hash)
}
