package port

import "perturb/internal/domain"

// SynsetIndex is a read-only lexical synonym lookup.
type SynsetIndex interface {
	// Synsets returns up to max synonym sets for a lowercased alphabetic
	// word, in sense order. An unknown word yields an empty slice, not an
	// error.
	Synsets(word string, max int) ([]domain.Synset, error)
}
