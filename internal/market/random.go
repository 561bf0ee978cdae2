package market

import (
	"math/rand/v2"
	"time"
)

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded PCG source. A zero seed picks one from the clock.
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform maps a [0, 1) draw onto [lo, hi).
func uniform(rnd RandomSource, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}
