// Package random wraps randomness so shuffles are deterministic in tests.
package random

import "math/rand"

type Random interface {
	// Intn returns a non-negative value in [0, n).
	Intn(n int) int
}

type systemRandom struct {
	rng *rand.Rand
}

func NewSystemRandom(seed int64) Random {
	return &systemRandom{rng: rand.New(rand.NewSource(seed))}
}

func (r *systemRandom) Intn(n int) int {
	return r.rng.Intn(n)
}
