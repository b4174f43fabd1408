package domain

import "strings"

// Sentence is an ordered sequence of word tokens. Transformations produce
// new sentences; a Sentence is never mutated in place.
type Sentence struct {
	Tokens []string
}

// String rejoins the tokens with single-space separators.
func (s Sentence) String() string {
	return strings.Join(s.Tokens, " ")
}

// Synset is one sense of a word: the lemmas considered interchangeable
// in that sense, most common sense first in a lexicon's listing.
type Synset struct {
	Lemmas []string `json:"lemmas"`
}

// LexiconStats describes a compiled lexicon.
type LexiconStats struct {
	Words   int `json:"words"`
	Synsets int `json:"synsets"`
	Lemmas  int `json:"lemmas"`
}

// CorpusResult summarizes a batch perturbation run.
type CorpusResult struct {
	FilesProcessed int
	LinesTotal     int
	LinesChanged   int
	Errors         []string
}
