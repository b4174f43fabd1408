package mutate

import "strings"

// Lowercase maps a sentence to its lowercase form. The simplest
// perturbation, useful as a baseline in robustness runs.
type Lowercase struct{}

func NewLowercase() *Lowercase {
	return &Lowercase{}
}

func (l *Lowercase) Transform(sentence string) (string, error) {
	return strings.ToLower(sentence), nil
}
