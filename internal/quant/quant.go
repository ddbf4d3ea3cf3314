package quant

import (
	"daisy-generator/internal/common"
)

// Supported block size range, inclusive.
const (
	MinBlockSize = 1
	MaxBlockSize = 256
)

// DefaultSampleRate is used when the patch metadata does not request a rate.
const DefaultSampleRate = 48000

// tiers is the sample rate ladder, ascending.
var tiers = [...]int{8000, 16000, 32000, 48000, 96000}

// Tiers returns the supported sample rates in ascending order.
func Tiers() []int {
	out := make([]int, len(tiers))
	copy(out, tiers[:])

	return out
}

// SampleRate returns the largest supported tier that does not exceed requested.
// Requests below the smallest tier (and NaN) resolve to the smallest tier.
func SampleRate(requested float64) int {
	for i := len(tiers) - 1; i >= 0; i-- {
		if requested >= float64(tiers[i]) {
			return tiers[i]
		}
	}

	return tiers[0]
}

// BlockSize clamps requested to [MinBlockSize, MaxBlockSize].
// A nil request stays nil, meaning the target default applies.
func BlockSize(requested *int) *int {
	if requested == nil {
		return nil
	}

	v := common.Clamp(MinBlockSize, *requested, MaxBlockSize)

	return &v
}

// IsTier reports whether rate is one of the supported tiers.
func IsTier(rate int) bool {
	for _, t := range tiers {
		if t == rate {
			return true
		}
	}

	return false
}
