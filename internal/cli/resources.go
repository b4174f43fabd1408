package cli

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"perturb/config"
	"perturb/internal/adapter/analyzer"
	"perturb/internal/adapter/fs"
	"perturb/internal/adapter/lexicon"
	"perturb/internal/adapter/store"
	"perturb/internal/port"
	"perturb/internal/usecase"
)

// newStopwords loads the configured stopword list, falling back to the
// built-in English set.
func newStopwords() (*analyzer.Stopwords, error) {
	if cfg.Lexicon.Stopwords != "" {
		return analyzer.LoadStopwords(cfg.Lexicon.Stopwords)
	}
	return analyzer.NewStopwords(), nil
}

// newSynsetIndex picks the best available lexical resource: a compiled
// bolt lexicon if one exists, otherwise the configured plaintext file,
// otherwise the built-in lexicon. The returned closer is a no-op for
// in-memory variants.
func newSynsetIndex() (port.SynsetIndex, func() error, error) {
	dbPath := config.LexiconDBPath(rootDir)
	if _, err := os.Stat(dbPath); err == nil {
		st, err := store.NewBoltLexicon(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open compiled lexicon: %w", err)
		}
		return st, st.Close, nil
	}

	if cfg.Lexicon.Path != "" {
		lex, err := lexicon.Parse(cfg.Lexicon.Path)
		if err != nil {
			return nil, nil, err
		}
		return lex, func() error { return nil }, nil
	}

	return lexicon.Builtin(), func() error { return nil }, nil
}

// runTransform executes a transformer chain in one of three modes:
// inline text from args, stdin-to-stdout streaming, or corpus directory
// perturbation with a progress bar.
func runTransform(uc *usecase.TransformUseCase, args []string, inDir, outDir string) error {
	if inDir != "" {
		return runCorpus(uc, inDir, outDir)
	}

	if len(args) > 0 {
		out, err := uc.Sentence(strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("transform failed: %w", err)
		}
		fmt.Println(out)
		return nil
	}

	if _, _, err := uc.Stream(os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("transform failed: %w", err)
	}
	return nil
}

func runCorpus(uc *usecase.TransformUseCase, inDir, outDir string) error {
	if outDir == "" {
		return fmt.Errorf("--out is required with --in")
	}

	info, err := os.Stat(inDir)
	if err != nil {
		return fmt.Errorf("input path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path is not a directory: %s", inDir)
	}

	fmt.Printf("Scanning %s...\n", inDir)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time
	var initialized bool

	progress := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if !initialized {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Perturbing[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
			initialized = true
		}

		bar.Set(processed)

		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			if remaining := total - processed; rate > 0 && remaining > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Perturbing[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := uc.Corpus(inDir, outDir, progress)
	if err != nil {
		return fmt.Errorf("corpus perturbation failed: %w", err)
	}

	fmt.Printf("\nPerturbation complete:\n")
	fmt.Printf("  Files processed: %d\n", result.FilesProcessed)
	fmt.Printf("  Lines total:     %d\n", result.LinesTotal)
	fmt.Printf("  Lines changed:   %d\n", result.LinesChanged)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}

	fmt.Printf("\nOutput written to: %s\n", outDir)
	return nil
}

func newCorpusWalker() *fs.Walker {
	return fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
