package cli

import (
	"github.com/spf13/cobra"
	"perturb/internal/adapter/mutate"
	"perturb/internal/adapter/rng"
	"perturb/internal/port"
	"perturb/internal/usecase"
)

var (
	typoWordProb float64
	typoCharRate float64
	typoMinLen   int
	typoLower    bool
	typoInDir    string
	typoOutDir   string
)

var typosCmd = &cobra.Command{
	Use:   "typos [text]",
	Short: "Inject keyboard-adjacency typos",
	Long: `Corrupt characters of randomly selected words with QWERTY-adjacent
keys. Digits and punctuation are never corrupted, and case is preserved.

Examples:
  perturb typos "This movie was really great"
  perturb typos --word-prob 0.4 --char-rate 0.2 "some text"
  perturb typos --in data/ --out data-typos/ --seed 42`,
	RunE: runTypos,
}

func init() {
	rootCmd.AddCommand(typosCmd)
	typosCmd.Flags().Float64Var(&typoWordProb, "word-prob", -1, "per-word selection probability (default from config)")
	typosCmd.Flags().Float64Var(&typoCharRate, "char-rate", -1, "fraction of characters corrupted per selected word (default from config)")
	typosCmd.Flags().IntVar(&typoMinLen, "min-len", 0, "words this long or shorter are left alone (default from config)")
	typosCmd.Flags().BoolVar(&typoLower, "lower", false, "lowercase the text before corrupting")
	typosCmd.Flags().StringVar(&typoInDir, "in", "", "input corpus directory")
	typosCmd.Flags().StringVar(&typoOutDir, "out", "", "output directory for perturbed corpus")
}

func runTypos(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	wordProb := cfg.Typos.WordProbability
	if typoWordProb >= 0 {
		wordProb = typoWordProb
	}
	charRate := cfg.Typos.CharRate
	if typoCharRate >= 0 {
		charRate = typoCharRate
	}
	minLen := cfg.Typos.MinWordLength
	if typoMinLen > 0 {
		minLen = typoMinLen
	}

	injector := mutate.NewTypoInjector(rng.New(cfg.Seed), wordProb, charRate, minLen)

	var chain []port.Transformer
	if typoLower {
		chain = append(chain, mutate.NewLowercase())
	}
	chain = append(chain, injector)

	uc := usecase.NewTransformUseCase(newCorpusWalker(), chain...)
	return runTransform(uc, args, typoInDir, typoOutDir)
}
