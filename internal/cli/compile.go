package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"perturb/config"
	"perturb/internal/adapter/store"
	"perturb/internal/usecase"
)

var compileCmd = &cobra.Command{
	Use:   "compile [lexicon-file]",
	Short: "Compile a plaintext synset file into a fast lexicon database",
	Long: `Compile a plaintext synset file (word<TAB>lemma,lemma,... per line)
into .perturb/lexicon.db. Later synonym runs look words up there instead
of re-parsing the text file.

Examples:
  perturb compile wordnet.tsv
  perturb compile            # uses lexicon.path from config`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	source := cfg.Lexicon.Path
	if len(args) > 0 {
		source = args[0]
	}
	if source == "" {
		return fmt.Errorf("no lexicon file given and lexicon.path not configured")
	}

	if err := config.EnsurePerturbDir(rootDir); err != nil {
		return fmt.Errorf("failed to create .perturb directory: %w", err)
	}

	dbPath := config.LexiconDBPath(rootDir)
	st, err := store.NewBoltLexicon(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open lexicon db: %w", err)
	}
	defer st.Close()

	stats, err := usecase.NewCompileUseCase(st).Compile(source)
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}

	fmt.Printf("Lexicon compiled:\n")
	fmt.Printf("  Words:   %d\n", stats.Words)
	fmt.Printf("  Synsets: %d\n", stats.Synsets)
	fmt.Printf("  Lemmas:  %d\n", stats.Lemmas)
	fmt.Printf("\nLexicon stored at: %s\n", dbPath)
	return nil
}
