package random

import "math/rand/v2"

// RNG implements domain.RNG over a PCG source. It is not safe for
// concurrent use; the engine serialises access.
type RNG struct {
	r *rand.Rand
}

// NewSeeded returns a reproducible generator for seed.
func NewSeeded(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// New returns a generator seeded from entropy.
func New() *RNG {
	return NewSeeded(rand.Uint64())
}

func (g *RNG) Intn(n int) int { return g.r.IntN(n) }
