package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/FrenchMajesty/bow-classifier/pkg/classifier"
)

// DefaultPath is where the run configuration is looked up when no path is given
const DefaultPath = "nbbow.yaml"

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of one training and evaluation run
type Config struct {
	Training  DatasetConfig `yaml:"training"`
	Test      DatasetConfig `yaml:"test"`
	OutputDir string        `yaml:"output_dir"`
	Models    []ModelConfig `yaml:"models"`
	Logging   LoggingConfig `yaml:"logging"`
}

// DatasetConfig locates a TSV dataset
type DatasetConfig struct {
	Path      string `yaml:"path"`
	HasHeader bool   `yaml:"has_header"`
}

// ModelConfig describes one classifier variant
type ModelConfig struct {
	Name          string  `yaml:"name"`
	MinOccurrence int     `yaml:"min_occurrence"`
	Delta         float64 `yaml:"delta"`
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the original and filtered vocabulary variants over the COVID tweet datasets
func DefaultConfig() *Config {
	return &Config{
		Training: DatasetConfig{
			Path:      "data/covid_training.tsv",
			HasHeader: true,
		},
		Test: DatasetConfig{
			Path: "data/covid_test_public.tsv",
		},
		OutputDir: "results",
		Models: []ModelConfig{
			{Name: "NB-BOW-OV", MinOccurrence: 1, Delta: classifier.DefaultDelta},
			{Name: "NB-BOW-FV", MinOccurrence: 2, Delta: classifier.DefaultDelta},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from a YAML file, then applies .env and environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Existing environment variables win over .env entries
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	cfg.applyEnvOverrides()
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets NBBOW_* variables replace file settings
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("NBBOW_TRAINING_PATH"); v != "" {
		c.Training.Path = v
	}
	if v := os.Getenv("NBBOW_TEST_PATH"); v != "" {
		c.Test.Path = v
	}
	if v := os.Getenv("NBBOW_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("NBBOW_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// applyDefaults fills in per-model values left unset in the file
func (c *Config) applyDefaults() {
	for i := range c.Models {
		if c.Models[i].Name == "" {
			c.Models[i].Name = fmt.Sprintf("%s-%d", classifier.DefaultName, i+1)
		}
		if c.Models[i].MinOccurrence == 0 {
			c.Models[i].MinOccurrence = classifier.DefaultMinOccurrence
		}
		if c.Models[i].Delta == 0 {
			c.Models[i].Delta = classifier.DefaultDelta
		}
	}
	if c.OutputDir == "" {
		c.OutputDir = "results"
	}
}

// Validate checks that the configuration can drive a run
func (c *Config) Validate() error {
	if c.Training.Path == "" {
		return fmt.Errorf("%w: training path is required", ErrInvalidConfig)
	}
	if c.Test.Path == "" {
		return fmt.Errorf("%w: test path is required", ErrInvalidConfig)
	}
	if len(c.Models) == 0 {
		return fmt.Errorf("%w: at least one model is required", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.Models))
	for _, m := range c.Models {
		if seen[m.Name] {
			return fmt.Errorf("%w: duplicate model name %q", ErrInvalidConfig, m.Name)
		}
		seen[m.Name] = true

		if m.MinOccurrence < 1 {
			return fmt.Errorf("%w: model %s: min_occurrence must be at least 1", ErrInvalidConfig, m.Name)
		}
		if m.Delta <= 0 {
			return fmt.Errorf("%w: model %s: delta must be positive", ErrInvalidConfig, m.Name)
		}
	}
	return nil
}

// ClassifierConfig converts a model entry into classifier settings
func (m ModelConfig) ClassifierConfig(observer classifier.Observer) classifier.Config {
	return classifier.Config{
		Name:          m.Name,
		MinOccurrence: m.MinOccurrence,
		Delta:         m.Delta,
		Observer:      observer,
	}
}
