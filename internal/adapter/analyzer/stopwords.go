package analyzer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Stopwords is a fixed set of function words, read-only after
// construction and safe to share across concurrent callers.
type Stopwords struct {
	words map[string]struct{}
}

// NewStopwords returns the built-in English stopword set.
func NewStopwords() *Stopwords {
	return &Stopwords{words: defaultStopwords()}
}

// LoadStopwords reads one word per line from path, lowercased. Blank
// lines and lines starting with '#' are skipped. A missing file is a
// configuration error, surfaced here rather than mid-transform.
func LoadStopwords(path string) (*Stopwords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stopword list: %w", err)
	}
	defer f.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stopword list: %w", err)
	}
	return &Stopwords{words: words}, nil
}

// Contains reports whether word (case-insensitively) is a stopword.
func (s *Stopwords) Contains(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of stopwords in the set.
func (s *Stopwords) Len() int {
	return len(s.words)
}

// defaultStopwords returns a set of common English function words.
func defaultStopwords() map[string]struct{} {
	stops := []string{
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with", "this",
		"have", "had", "but", "not", "you", "your", "we", "our",
		"they", "their", "she", "her", "his", "if", "or", "so",
		"no", "can", "do", "does", "did", "been", "being", "would",
		"could", "should", "may", "might", "must", "shall", "which",
		"who", "whom", "what", "when", "where", "why", "how", "all",
		"each", "every", "both", "few", "more", "most", "other",
		"some", "such", "than", "too", "very", "just", "also",
		"i", "me", "my", "him", "us", "them", "there", "here",
		"am", "then", "once", "while", "about", "into", "over",
		"under", "again", "further", "because", "until", "up", "down",
		"out", "off", "own", "same", "any", "only", "now",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}
