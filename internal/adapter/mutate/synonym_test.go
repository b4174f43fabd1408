package mutate

import (
	"strings"
	"testing"

	"perturb/internal/adapter/analyzer"
	"perturb/internal/adapter/lexicon"
	"perturb/internal/adapter/rng"
	"perturb/internal/domain"
)

type stubIndex struct {
	senses map[string][]domain.Synset
}

func (s stubIndex) Synsets(word string, max int) ([]domain.Synset, error) {
	senses := s.senses[word]
	if max >= 0 && len(senses) > max {
		senses = senses[:max]
	}
	return senses, nil
}

func TestSynonymReplacer_GoldenOutput(t *testing.T) {
	index := stubIndex{senses: map[string][]domain.Synset{
		"movie":  {{Lemmas: []string{"film"}}},
		"really": {{Lemmas: []string{"genuinely"}}},
	}}
	// One Float64 per eligible token (movie, really, great, entertaining),
	// one Intn per token with candidates (movie, really).
	rnd := &scriptedRand{floats: []float64{0, 0, 0, 0}, ints: []int{0, 0}}

	r := NewSynonymReplacer(index, analyzer.NewStopwords(), rnd, 1.0, 1)
	out, err := r.Transform("This movie was really great and entertaining")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "This film was genuinely great and entertaining"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestSynonymReplacer_IdentityAtZeroProbability(t *testing.T) {
	r := NewSynonymReplacer(lexicon.Builtin(), analyzer.NewStopwords(), rng.New(0), 0, 1)

	in := "This movie was really great and entertaining"
	out, err := r.Transform(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != in {
		t.Errorf("probability 0 should be the identity, got %q", out)
	}
}

func TestSynonymReplacer_TokenCountInvariant(t *testing.T) {
	r := NewSynonymReplacer(lexicon.Builtin(), analyzer.NewStopwords(), rng.New(7), 1.0, 1)
	tok := analyzer.NewTokenizer()

	in := "The story was boring but the actors were good"
	out, err := r.Transform(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Multi-word lemmas can add whitespace words, so compare against the
	// replaced token count, not a naive field count.
	inTokens := len(tok.Tokenize(in).Tokens)
	outTokens := len(tok.Tokenize(out).Tokens)
	if outTokens < inTokens {
		t.Errorf("token count shrank: %d -> %d (%q)", inTokens, outTokens, out)
	}
}

func TestSynonymReplacer_StopwordsUnchanged(t *testing.T) {
	r := NewSynonymReplacer(lexicon.Builtin(), analyzer.NewStopwords(), rng.New(3), 1.0, 1)

	out, err := r.Transform("a an the")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a an the" {
		t.Errorf("stopword-only sentence should be unchanged, got %q", out)
	}
}

func TestSynonymReplacer_PunctuationUnchanged(t *testing.T) {
	index := stubIndex{senses: map[string][]domain.Synset{}}
	rnd := &scriptedRand{floats: []float64{0, 0, 0}}

	r := NewSynonymReplacer(index, analyzer.NewStopwords(), rnd, 1.0, 1)
	out, err := r.Transform("great movie, truly!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "truly" is alphabetic and eligible; "," and "!" become their own
	// tokens and are copied through.
	want := "great movie , truly !"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestSynonymReplacer_UnderscoreLemmasBecomePhrases(t *testing.T) {
	index := stubIndex{senses: map[string][]domain.Synset{
		"movie": {{Lemmas: []string{"motion_picture"}}},
	}}
	rnd := &scriptedRand{floats: []float64{0}, ints: []int{0}}

	r := NewSynonymReplacer(index, analyzer.NewStopwords(), rnd, 1.0, 1)
	out, err := r.Transform("movie")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "motion picture" {
		t.Errorf("got %q, want %q", out, "motion picture")
	}
}

func TestSynonymReplacer_SelfLemmaRemovedCaseInsensitively(t *testing.T) {
	index := stubIndex{senses: map[string][]domain.Synset{
		"movie": {{Lemmas: []string{"Movie", "movie", "film"}}},
	}}
	rnd := &scriptedRand{floats: []float64{0, 0}, ints: []int{0, 0}}

	r := NewSynonymReplacer(index, analyzer.NewStopwords(), rnd, 1.0, 1)

	out, err := r.Transform("Movie movie")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "film film" {
		t.Errorf("self lemmas should be filtered, got %q", out)
	}
}

func TestSynonymReplacer_NoCandidatesKeepsToken(t *testing.T) {
	r := NewSynonymReplacer(lexicon.Builtin(), analyzer.NewStopwords(), rng.New(1), 1.0, 0)

	in := "movie night"
	out, err := r.Transform(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != in {
		t.Errorf("max_synsets=0 should leave everything unchanged, got %q", out)
	}
}

func TestSynonymReplacer_Deterministic(t *testing.T) {
	in := "The new movie was really good and the story was great"

	run := func(seed int64) string {
		r := NewSynonymReplacer(lexicon.Builtin(), analyzer.NewStopwords(), rng.New(seed), 0.5, 2)
		out, err := r.Transform(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return out
	}

	if a, b := run(42), run(42); a != b {
		t.Errorf("same seed should reproduce output: %q vs %q", a, b)
	}
}

func TestSynonymReplacer_ReplacementComesFromLexicon(t *testing.T) {
	r := NewSynonymReplacer(lexicon.Builtin(), analyzer.NewStopwords(), rng.New(9), 1.0, 1)

	out, err := r.Transform("movie")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	valid := map[string]bool{
		"film": true, "picture": true,
		"moving picture": true, "motion picture": true,
	}
	if !valid[strings.ToLower(out)] {
		t.Errorf("replacement %q not among the known synonyms of movie", out)
	}
}
