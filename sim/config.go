package sim

import (
	"fmt"
	"math"
)

// Config groups the parameters of a single simulation run. All four are
// required before the first event is scheduled.
type Config struct {
	MeanInterarrival float64 // mean time between arrivals (unscaled ticks, > 0)
	MeanService      float64 // mean service burst (unscaled ticks, > 0)
	Length           int64   // end-of-simulation time in scaled ticks (> 0)
	Seed             uint64  // same seed and parameters => identical run
}

// NewConfig creates a Config from its four parameters.
func NewConfig(meanInterarrival, meanService float64, length int64, seed uint64) Config {
	return Config{
		MeanInterarrival: meanInterarrival,
		MeanService:      meanService,
		Length:           length,
		Seed:             seed,
	}
}

// Validate checks every parameter constraint.
func (c Config) Validate() error {
	if !validMean(c.MeanInterarrival) {
		return fmt.Errorf("mean interarrival time must be a finite value > 0, got %v", c.MeanInterarrival)
	}
	if !validMean(c.MeanService) {
		return fmt.Errorf("mean service time must be a finite value > 0, got %v", c.MeanService)
	}
	if c.Length <= 0 {
		return fmt.Errorf("simulation length must be > 0, got %d", c.Length)
	}
	// An event is scheduled at most one draw past the end of the run.
	headroom := float64(math.MaxInt64 - c.Length)
	if maxDraw(c.MeanInterarrival) > headroom {
		return fmt.Errorf("mean interarrival time %v is too large for simulation length %d", c.MeanInterarrival, c.Length)
	}
	if maxDraw(c.MeanService) > headroom {
		return fmt.Errorf("mean service time %v is too large for simulation length %d", c.MeanService, c.Length)
	}
	return nil
}

// maxDraw is the largest duration DrawExponential can return for mean.
func maxDraw(mean float64) float64 {
	return math.Ceil(mean * VariateScale * maxExpFactor)
}

func validMean(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
