package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"perturb/internal/domain"
)

// MemLexicon is an in-memory synset index. It is read-only after
// construction and safe for concurrent lookups.
type MemLexicon struct {
	synsets map[string][]domain.Synset
	stats   domain.LexiconStats
}

// Parse reads a plaintext synset file: one synset per line in the form
//
//	word<TAB>lemma,lemma,...
//
// Multiple lines for the same word define its senses in file order.
// Blank lines and lines starting with '#' are skipped. Lemma phrases use
// underscores for internal spaces, as lexical resources conventionally do.
func Parse(path string) (*MemLexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer f.Close()

	lex := &MemLexicon{synsets: make(map[string][]domain.Synset)}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, rest, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("lexicon line %d: missing tab separator", lineNo)
		}
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			return nil, fmt.Errorf("lexicon line %d: empty word", lineNo)
		}
		var lemmas []string
		for _, l := range strings.Split(rest, ",") {
			l = strings.TrimSpace(l)
			if l != "" {
				lemmas = append(lemmas, l)
			}
		}
		if len(lemmas) == 0 {
			return nil, fmt.Errorf("lexicon line %d: synset for %q has no lemmas", lineNo, word)
		}
		lex.add(word, domain.Synset{Lemmas: lemmas})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	return lex, nil
}

func (l *MemLexicon) add(word string, s domain.Synset) {
	if _, seen := l.synsets[word]; !seen {
		l.stats.Words++
	}
	l.synsets[word] = append(l.synsets[word], s)
	l.stats.Synsets++
	l.stats.Lemmas += len(s.Lemmas)
}

// Synsets returns up to max senses for word, in file order.
func (l *MemLexicon) Synsets(word string, max int) ([]domain.Synset, error) {
	senses := l.synsets[strings.ToLower(word)]
	if max >= 0 && len(senses) > max {
		senses = senses[:max]
	}
	return senses, nil
}

// Stats returns counts over the loaded lexicon.
func (l *MemLexicon) Stats() domain.LexiconStats {
	return l.stats
}

// Entries streams every (word, senses) pair, for compilation into a
// persistent store.
func (l *MemLexicon) Entries(fn func(word string, senses []domain.Synset) error) error {
	for word, senses := range l.synsets {
		if err := fn(word, senses); err != nil {
			return err
		}
	}
	return nil
}
