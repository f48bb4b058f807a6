package core

import "math/rand/v2"

// Rand is the randomness contract the maze pipeline consumes. Tests can swap
// in scripted implementations to force carving choices or probability checks.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewRNGFromHash seeds a generator from an already mixed 64-bit value.
func NewRNGFromHash(h uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(h, h>>32|h<<32))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}
