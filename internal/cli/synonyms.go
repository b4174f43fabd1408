package cli

import (
	"github.com/spf13/cobra"
	"perturb/internal/adapter/mutate"
	"perturb/internal/adapter/rng"
	"perturb/internal/port"
	"perturb/internal/usecase"
)

var (
	synProbability float64
	synMaxSynsets  int
	synLower       bool
	synInDir       string
	synOutDir      string
)

var synonymsCmd = &cobra.Command{
	Use:   "synonyms [text]",
	Short: "Replace words with synonyms from the lexicon",
	Long: `Replace non-stopword alphabetic tokens with synonyms drawn from the
synset index. Reads inline text, stdin, or a whole corpus directory.

Examples:
  perturb synonyms "This movie was really great"
  cat reviews.txt | perturb synonyms -p 0.3
  perturb synonyms --in data/ --out data-syn/ --seed 42`,
	RunE: runSynonyms,
}

func init() {
	rootCmd.AddCommand(synonymsCmd)
	synonymsCmd.Flags().Float64VarP(&synProbability, "probability", "p", -1, "per-token replacement probability (default from config)")
	synonymsCmd.Flags().IntVar(&synMaxSynsets, "max-synsets", -1, "senses consulted per word (default from config)")
	synonymsCmd.Flags().BoolVar(&synLower, "lower", false, "lowercase the text before replacing")
	synonymsCmd.Flags().StringVar(&synInDir, "in", "", "input corpus directory")
	synonymsCmd.Flags().StringVar(&synOutDir, "out", "", "output directory for perturbed corpus")
}

func runSynonyms(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	probability := cfg.Synonyms.Probability
	if synProbability >= 0 {
		probability = synProbability
	}
	maxSynsets := cfg.Synonyms.MaxSynsets
	if synMaxSynsets >= 0 {
		maxSynsets = synMaxSynsets
	}

	stopwords, err := newStopwords()
	if err != nil {
		return err
	}

	index, closeIndex, err := newSynsetIndex()
	if err != nil {
		return err
	}
	defer closeIndex()

	replacer := mutate.NewSynonymReplacer(index, stopwords, rng.New(cfg.Seed), probability, maxSynsets)

	var chain []port.Transformer
	if synLower {
		chain = append(chain, mutate.NewLowercase())
	}
	chain = append(chain, replacer)

	uc := usecase.NewTransformUseCase(newCorpusWalker(), chain...)
	return runTransform(uc, args, synInDir, synOutDir)
}
