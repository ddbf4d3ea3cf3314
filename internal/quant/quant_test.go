package quant

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRate(t *testing.T) {
	tests := []struct {
		name      string
		requested float64
		want      int
	}{
		{"negative", -1, 8000},
		{"zero", 0, 8000},
		{"below floor", 7999, 8000},
		{"exact floor", 8000, 8000},
		{"between 8k and 16k", 11025, 8000},
		{"exact 16k", 16000, 16000},
		{"cd rate", 44100, 32000},
		{"exact 48k", 48000, 48000},
		{"just below 96k", 95999.9, 48000},
		{"exact 96k", 96000, 96000},
		{"above ceiling", 192000, 96000},
		{"nan", math.NaN(), 8000},
		{"positive infinity", math.Inf(1), 96000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SampleRate(tt.requested))
		})
	}
}

func TestSampleRate_AlwaysATier(t *testing.T) {
	for r := -1000; r <= 200000; r += 250 {
		got := SampleRate(float64(r))
		require.True(t, IsTier(got), "rate %d resolved to %d", r, got)

		if r >= 8000 {
			assert.LessOrEqual(t, got, r)
		}
	}
}

func TestSampleRate_ExactTierIsIdentity(t *testing.T) {
	for _, tier := range Tiers() {
		assert.Equal(t, tier, SampleRate(float64(tier)))
	}
}

func TestBlockSize(t *testing.T) {
	assert.Nil(t, BlockSize(nil))

	for b := MinBlockSize; b <= MaxBlockSize; b++ {
		in := b
		got := BlockSize(&in)
		require.NotNil(t, got)
		assert.Equal(t, b, *got)
	}

	for _, tc := range []struct{ in, want int }{
		{0, 1},
		{-64, 1},
		{257, 256},
		{4096, 256},
	} {
		in := tc.in
		got := BlockSize(&in)
		require.NotNil(t, got)
		assert.Equal(t, tc.want, *got, "blocksize %d", tc.in)
	}
}

func TestBlockSize_DoesNotAliasInput(t *testing.T) {
	in := 48
	got := BlockSize(&in)
	require.NotNil(t, got)

	*got = 7
	assert.Equal(t, 48, in)
}

func TestTiers_ReturnsCopy(t *testing.T) {
	a := Tiers()
	a[0] = 1
	assert.Equal(t, []int{8000, 16000, 32000, 48000, 96000}, Tiers())
}
