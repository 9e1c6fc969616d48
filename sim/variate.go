package sim

import (
	"math"
	"math/rand"
)

// VariateScale multiplies every mean before sampling so that rounding to an
// integer tick keeps two decimal digits of resolution. Accumulated times are
// divided by it again when reported.
const VariateScale = 100

// maxExpFactor is -ln(1-u) for the largest u rand.Float64 returns, 1-2^-53.
var maxExpFactor = 53 * math.Ln2

// DurationSampler produces positive integer durations in scaled ticks.
type DurationSampler interface {
	// Sample returns the next duration. Always returns a value >= 1.
	Sample() int64
}

// DrawExponential returns ceil(-100*mean*ln(1-u)) for u uniform in [0, 1).
// rand.Float64 never yields 1.0, so the logarithm is always finite. The
// result is floored at 1 for the u == 0 draw and saturates at math.MaxInt64.
func DrawExponential(rng *rand.Rand, mean float64) int64 {
	scaled := mean * VariateScale
	u := rng.Float64()
	v := math.Ceil(-scaled * math.Log(1-u))
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	d := int64(v)
	if d < 1 {
		return 1
	}
	return d
}

// ExponentialSampler draws exponentially distributed durations with a fixed mean.
type ExponentialSampler struct {
	mean float64 // unscaled mean
	rng  *rand.Rand
}

// NewExponentialSampler creates a sampler with the given unscaled mean.
func NewExponentialSampler(mean float64, rng *rand.Rand) *ExponentialSampler {
	return &ExponentialSampler{mean: mean, rng: rng}
}

func (s *ExponentialSampler) Sample() int64 {
	return DrawExponential(s.rng, s.mean)
}
