package port

// Transformer maps an input sentence to a mutated sentence. It must be
// side-effect free: the same input and the same random draws reproduce
// the same output.
type Transformer interface {
	Transform(sentence string) (string, error)
}
