package rng

import (
	"math/rand"

	"perturb/internal/port"
)

// New returns a seeded random source. The same seed reproduces the same
// draw sequence, which is what makes perturbation runs replayable. The
// returned source is not safe for concurrent use; give each goroutine
// its own.
func New(seed int64) port.Rand {
	return rand.New(rand.NewSource(seed))
}
