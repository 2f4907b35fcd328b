package core

import (
	"math/rand/v2"
)

// Sampler provides random sampling for intersection routines that need it
// (participating media). Can be swapped out for deterministic testing.
// Implementations are not safe for concurrent use.
type Sampler interface {
	Get1D() float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler over a PCG stream. Distinct stream values
// give independent sequences for the same seed.
func NewSeededSampler(seed, stream uint64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewPCG(seed, stream)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// ConstantSampler always returns the same value. Useful in tests.
type ConstantSampler float64

// Get1D returns the constant
func (c ConstantSampler) Get1D() float64 {
	return float64(c)
}
