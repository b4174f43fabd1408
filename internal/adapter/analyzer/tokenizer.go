package analyzer

import (
	"strings"
	"unicode"

	"perturb/internal/domain"
)

// Tokenizer splits raw text into word tokens on whitespace and
// punctuation boundaries. Unlike an index tokenizer it is lossless about
// content: punctuation survives as its own tokens, case is preserved, and
// nothing is filtered, so a transformation can copy ineligible tokens
// through unchanged.
type Tokenizer struct{}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text into a Sentence of word and punctuation tokens.
func (t *Tokenizer) Tokenize(text string) domain.Sentence {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			current.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()

	return domain.Sentence{Tokens: tokens}
}

// Words splits text on whitespace only, keeping punctuation attached to
// its word. This is the view the typo path operates on.
func (t *Tokenizer) Words(text string) []string {
	return strings.Fields(text)
}

// IsAlphabetic reports whether the token consists solely of letters.
func IsAlphabetic(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
