package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"perturb/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	seed    int64
)

var rootCmd = &cobra.Command{
	Use:   "perturb",
	Short: "Adversarial text perturbation - synonym replacement and keyboard typos",
	Long: `perturb mutates natural-language text for classifier robustness testing:
synonym replacement against a lexical synset index, and keyboard-adjacency
typo injection. Runs are reproducible for a fixed seed.

Example usage:
  perturb synonyms "This movie was really great"   # Replace words with synonyms
  perturb typos --in data/ --out data-typos/       # Corrupt a whole corpus
  perturb compile wordnet.tsv                      # Compile a synset file`,
}

func rootPersistentPreRunE(cmd *cobra.Command, args []string) error {
	var err error

	if rootDir == "" {
		rootDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromDir(rootDir)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if rootCmd.PersistentFlags().Changed("seed") {
		cfg.Seed = seed
	}

	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = rootPersistentPreRunE
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./perturb.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (default from config)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
