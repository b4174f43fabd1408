package mutate

import (
	"strings"
	"unicode"

	"perturb/internal/port"
)

// TypoInjector corrupts characters of selected words with keyboard
// neighbors. Words at or below the minimum length are never touched, and
// characters without a QWERTY neighbor (digits, punctuation) pass
// through even when their position is selected.
type TypoInjector struct {
	rand            port.Rand
	wordProbability float64
	charRate        float64
	minWordLen      int
}

// NewTypoInjector creates an injector. Both probabilities must be in
// [0,1] and minWordLen >= 1; validated at config load.
func NewTypoInjector(rnd port.Rand, wordProbability, charRate float64, minWordLen int) *TypoInjector {
	return &TypoInjector{
		rand:            rnd,
		wordProbability: wordProbability,
		charRate:        charRate,
		minWordLen:      minWordLen,
	}
}

// Transform corrupts each whitespace-delimited word independently and
// rejoins with single spaces. A word longer than the minimum length is
// selected with wordProbability; a selected word of length L gets
// max(1, floor(L*charRate)) distinct positions corrupted, clamped to L.
func (t *TypoInjector) Transform(sentence string) (string, error) {
	words := strings.Fields(sentence)
	out := make([]string, 0, len(words))

	for _, word := range words {
		runes := []rune(word)
		if len(runes) <= t.minWordLen {
			out = append(out, word)
			continue
		}
		if t.rand.Float64() >= t.wordProbability {
			out = append(out, word)
			continue
		}
		out = append(out, string(t.corrupt(runes)))
	}

	return strings.Join(out, " "), nil
}

func (t *TypoInjector) corrupt(runes []rune) []rune {
	count := int(float64(len(runes)) * t.charRate)
	if count < 1 {
		count = 1
	}
	if count > len(runes) {
		count = len(runes)
	}

	// Partial Fisher-Yates: the first count slots end up holding
	// distinct positions chosen uniformly without replacement.
	positions := make([]int, len(runes))
	for i := range positions {
		positions[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + t.rand.Intn(len(positions)-i)
		positions[i], positions[j] = positions[j], positions[i]
	}

	for _, pos := range positions[:count] {
		c := runes[pos]
		neighbors, ok := keyboardNeighbors[unicode.ToLower(c)]
		if !ok {
			continue
		}
		repl := neighbors[t.rand.Intn(len(neighbors))]
		if unicode.IsUpper(c) {
			repl = unicode.ToUpper(repl)
		}
		runes[pos] = repl
	}
	return runes
}
