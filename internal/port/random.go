package port

// Rand supplies the randomness used by the mutation adapters. A seeded
// *math/rand.Rand satisfies it; tests use a scripted implementation so
// exact output strings can be asserted.
type Rand interface {
	// Float64 returns a uniform draw in [0,1).
	Float64() float64
	// Intn returns a uniform draw in [0,n). It panics if n <= 0.
	Intn(n int) int
}
