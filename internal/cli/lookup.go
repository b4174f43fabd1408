package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	lookupMax  int
	lookupJSON bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [word]",
	Short: "Show the synsets known for a word",
	Long: `Query the active synset index (compiled lexicon, configured file, or
the built-in fallback) and print the senses for a word.

Examples:
  perturb lookup movie
  perturb lookup great --max 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().IntVar(&lookupMax, "max", -1, "maximum senses to show (-1 for all)")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	word := strings.ToLower(args[0])

	index, closeIndex, err := newSynsetIndex()
	if err != nil {
		return err
	}
	defer closeIndex()

	senses, err := index.Synsets(word, lookupMax)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	if lookupJSON {
		output, _ := json.MarshalIndent(senses, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(senses) == 0 {
		fmt.Printf("No synsets found for %q.\n", word)
		return nil
	}

	fmt.Printf("Synsets for %q:\n", word)
	for i, sense := range senses {
		fmt.Printf("  %d. %s\n", i+1, strings.Join(sense.Lemmas, ", "))
	}
	return nil
}
