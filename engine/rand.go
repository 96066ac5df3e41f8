package engine

import "math/rand/v2"

// osRand wraps math/rand/v2's package-level generator, which is seeded
// from the OS CSPRNG on first use. It satisfies Rand for production
// deals; tests construct their own seeded rand.Rand (also math/rand/v2)
// for reproducibility instead of using this type.
type osRand struct{}

// NewOSRand returns the production Rand source.
func NewOSRand() Rand { return osRand{} }

func (osRand) IntN(n int) int { return rand.IntN(n) }
