// Package config loads the YAML run configuration: the RNG seed, the
// sliding-window caps, which locations are scarce, and where to find the
// CSV input and write report output. Everything else the core needs (teams,
// matchups, gameslots, blackouts, preassignments) is ingested from CSV by
// internal/csvio — the core is indifferent to YAML vs CSV, this package
// only owns the run-level knobs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConstraint is a (days, max_games) sliding-window cap, read directly
// into a model.WindowConstraint by the caller.
type WindowConstraint struct {
	Days     int `yaml:"days"`
	MaxGames int `yaml:"max_games"`
}

// Config is the top-level run configuration.
type Config struct {
	Seed             int64              `yaml:"seed"`
	WindowConstraints []WindowConstraint `yaml:"window_constraints"`
	ScarceLocations  []string           `yaml:"scarce_locations"`
	InputDir         string             `yaml:"input_dir"`
	OutputDir        string             `yaml:"output_dir"`

	// DeadEndBudget bounds Phase 2 backtracking. Defaults to 10000 when
	// zero/unset.
	DeadEndBudget int `yaml:"dead_end_budget"`
}

// LoadFromBytes parses YAML bytes into a Config and validates it.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.DeadEndBudget == 0 {
		cfg.DeadEndBudget = 10000
	}
	return &cfg, nil
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

func (c *Config) validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("config.yaml should include an `input_dir` field")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config.yaml should include an `output_dir` field")
	}
	for _, wc := range c.WindowConstraints {
		if wc.Days < 1 {
			return fmt.Errorf("window constraint days must be >= 1, got %d", wc.Days)
		}
		if wc.MaxGames < 1 {
			return fmt.Errorf("window constraint max_games must be >= 1, got %d", wc.MaxGames)
		}
	}
	return nil
}
