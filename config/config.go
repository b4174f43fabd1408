package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the perturbation tool.
type Config struct {
	Synonyms SynonymConfig `yaml:"synonyms"`
	Typos    TypoConfig    `yaml:"typos"`
	Lexicon  LexiconConfig `yaml:"lexicon"`
	Corpus   CorpusConfig  `yaml:"corpus"`
	Logging  LoggingConfig `yaml:"logging"`
	Seed     int64         `yaml:"seed"`
}

// SynonymConfig controls synonym replacement.
type SynonymConfig struct {
	Probability float64 `yaml:"probability"` // per-token replacement probability, [0,1]
	MaxSynsets  int     `yaml:"max_synsets"` // senses consulted per word
}

// TypoConfig controls keyboard-typo injection.
type TypoConfig struct {
	WordProbability float64 `yaml:"word_probability"` // per-word selection probability, [0,1]
	CharRate        float64 `yaml:"char_rate"`        // fraction of characters corrupted in a selected word
	MinWordLength   int     `yaml:"min_word_length"`  // words this long or shorter are never corrupted
}

// LexiconConfig points at the lexical resources.
type LexiconConfig struct {
	Path      string `yaml:"path"`      // plaintext synset file; empty uses the built-in lexicon
	Stopwords string `yaml:"stopwords"` // stopword list file; empty uses the built-in set
}

// CorpusConfig selects files for batch perturbation.
type CorpusConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Synonyms: SynonymConfig{
			Probability: 0.2,
			MaxSynsets:  1,
		},
		Typos: TypoConfig{
			WordProbability: 0.2,
			CharRate:        0.1,
			MinWordLength:   3,
		},
		Corpus: CorpusConfig{
			Includes: []string{"**/*.txt", "**/*.tsv", "**/*.csv"},
			Excludes: []string{"**/.perturb/**", "**/.git/**"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Seed: 0,
	}
}

// Validate checks parameter ranges so bad values surface once at load,
// not mid-transform.
func (c *Config) Validate() error {
	if c.Synonyms.Probability < 0 || c.Synonyms.Probability > 1 {
		return fmt.Errorf("synonyms.probability must be in [0,1], got %g", c.Synonyms.Probability)
	}
	if c.Synonyms.MaxSynsets < 0 {
		return fmt.Errorf("synonyms.max_synsets must be >= 0, got %d", c.Synonyms.MaxSynsets)
	}
	if c.Typos.WordProbability < 0 || c.Typos.WordProbability > 1 {
		return fmt.Errorf("typos.word_probability must be in [0,1], got %g", c.Typos.WordProbability)
	}
	if c.Typos.CharRate < 0 || c.Typos.CharRate > 1 {
		return fmt.Errorf("typos.char_rate must be in [0,1], got %g", c.Typos.CharRate)
	}
	if c.Typos.MinWordLength < 1 {
		return fmt.Errorf("typos.min_word_length must be >= 1, got %d", c.Typos.MinWordLength)
	}
	return nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for perturb.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "perturb.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".perturb", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LexiconDBPath returns the path to the compiled lexicon database.
func LexiconDBPath(dir string) string {
	return filepath.Join(dir, ".perturb", "lexicon.db")
}

// EnsurePerturbDir ensures the .perturb directory exists.
func EnsurePerturbDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".perturb"), 0755)
}
