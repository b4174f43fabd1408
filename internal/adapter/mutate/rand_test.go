package mutate

// scriptedRand replays a fixed sequence of draws so tests can assert
// exact output strings.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[r.fi]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[r.ii]
	r.ii++
	return v % n
}
