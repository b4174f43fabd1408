package mutate

import (
	"strings"

	"perturb/internal/adapter/analyzer"
	"perturb/internal/domain"
	"perturb/internal/port"
)

// SynonymReplacer replaces eligible word tokens with a synonym drawn
// from a lexical index. Stopwords and non-alphabetic tokens pass through
// unchanged; a token with no usable synonyms is kept as is, never an
// error.
type SynonymReplacer struct {
	tokenizer   *analyzer.Tokenizer
	stopwords   *analyzer.Stopwords
	index       port.SynsetIndex
	rand        port.Rand
	probability float64
	maxSynsets  int
}

// NewSynonymReplacer creates a replacer. probability must be in [0,1]
// and maxSynsets >= 0; both are validated at config load.
func NewSynonymReplacer(index port.SynsetIndex, stopwords *analyzer.Stopwords, rnd port.Rand, probability float64, maxSynsets int) *SynonymReplacer {
	return &SynonymReplacer{
		tokenizer:   analyzer.NewTokenizer(),
		stopwords:   stopwords,
		index:       index,
		rand:        rnd,
		probability: probability,
		maxSynsets:  maxSynsets,
	}
}

// Transform rewrites sentence token by token, preserving order, and
// rejoins with single spaces. Output is fully determined by the input
// and the sequence of draws from the random source.
func (s *SynonymReplacer) Transform(sentence string) (string, error) {
	tokens := s.tokenizer.Tokenize(sentence).Tokens
	out := make([]string, 0, len(tokens))

	for _, token := range tokens {
		if s.stopwords.Contains(token) || !analyzer.IsAlphabetic(token) {
			out = append(out, token)
			continue
		}
		if s.rand.Float64() >= s.probability {
			out = append(out, token)
			continue
		}
		candidates, err := s.candidates(token)
		if err != nil {
			return "", err
		}
		if len(candidates) == 0 {
			out = append(out, token)
			continue
		}
		out = append(out, candidates[s.rand.Intn(len(candidates))])
	}

	return domain.Sentence{Tokens: out}.String(), nil
}

// candidates flattens up to maxSynsets senses into replacement lemmas,
// converting word-joining underscores to spaces and dropping any lemma
// equal to the original token case-insensitively.
func (s *SynonymReplacer) candidates(token string) ([]string, error) {
	senses, err := s.index.Synsets(strings.ToLower(token), s.maxSynsets)
	if err != nil {
		return nil, err
	}
	var candidates []string
	for _, sense := range senses {
		for _, lemma := range sense.Lemmas {
			if strings.EqualFold(lemma, token) {
				continue
			}
			candidates = append(candidates, strings.ReplaceAll(lemma, "_", " "))
		}
	}
	return candidates, nil
}
