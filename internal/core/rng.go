package core

import "math/rand"

// Rand is the random source consumed by the simulation. Physics formulas
// never reach for a global generator; they receive a Rand so tests can
// supply a deterministic stub and assert exact outputs.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// NewRand returns a seeded Rand backed by math/rand.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
