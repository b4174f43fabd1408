package usecase

import (
	"fmt"

	"perturb/internal/adapter/lexicon"
	"perturb/internal/adapter/store"
	"perturb/internal/domain"
)

// CompileUseCase parses a plaintext synset file and writes it into a
// bolt-backed lexicon so transform runs skip the parse.
type CompileUseCase struct {
	store *store.BoltLexicon
}

func NewCompileUseCase(st *store.BoltLexicon) *CompileUseCase {
	return &CompileUseCase{store: st}
}

// Compile replaces the compiled lexicon with the contents of path.
func (u *CompileUseCase) Compile(path string) (domain.LexiconStats, error) {
	lex, err := lexicon.Parse(path)
	if err != nil {
		return domain.LexiconStats{}, err
	}

	if err := u.store.Clear(); err != nil {
		return domain.LexiconStats{}, fmt.Errorf("failed to clear lexicon db: %w", err)
	}

	err = lex.Entries(func(word string, senses []domain.Synset) error {
		return u.store.PutSynsets(word, senses)
	})
	if err != nil {
		return domain.LexiconStats{}, fmt.Errorf("failed to write lexicon db: %w", err)
	}

	stats := lex.Stats()
	if err := u.store.PutStats(stats); err != nil {
		return stats, fmt.Errorf("failed to write lexicon stats: %w", err)
	}
	return stats, nil
}
