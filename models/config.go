// Package models defines data structures for configuration shared across commands.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for all commands. Secrets (API keys) are
// never stored in files; they come from the environment at load time.
type Config struct {
	LLM       LLMConfig       `yaml:"llm"`
	Search    SearchConfig    `yaml:"search"`
	Images    ImagesConfig    `yaml:"images"`
	Collector CollectorConfig `yaml:"collector"`
}

// LLMConfig selects the generation model.
type LLMConfig struct {
	Model string `yaml:"model"`
	// APIKey is populated from GEMINI_API_KEY, not from the YAML file.
	APIKey string `yaml:"-"`
}

// SearchConfig tunes the resilient search client.
type SearchConfig struct {
	Region   string        `yaml:"region"`
	Timeout  time.Duration `yaml:"timeout"`
	Attempts int           `yaml:"attempts"`
	// ExpandHits fetches the first genuine news hit and folds its readable
	// text into the grounding context.
	ExpandHits bool `yaml:"expand_hits"`
}

// ImagesConfig configures the best-effort image lookup.
type ImagesConfig struct {
	// AccessKey is populated from UNSPLASH_ACCESS_KEY, not from the YAML file.
	AccessKey string `yaml:"-"`
}

// CollectorConfig configures the keyword collector store.
type CollectorConfig struct {
	DBPath string `yaml:"db_path"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Model: "gemini-2.5-flash",
		},
		Search: SearchConfig{
			Region:   "kr-kr",
			Timeout:  20 * time.Second,
			Attempts: 3,
		},
		Collector: CollectorConfig{
			DBPath: "ghostwriter.db",
		},
	}
}

// LoadConfig reads the YAML config at path and overlays environment secrets.
// A missing file is not an error; defaults are used instead.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Search.Timeout <= 0 {
		cfg.Search.Timeout = 20 * time.Second
	}
	if cfg.Search.Attempts <= 0 {
		cfg.Search.Attempts = 3
	}
	if cfg.Search.Region == "" {
		cfg.Search.Region = "kr-kr"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gemini-2.5-flash"
	}
	if cfg.Collector.DBPath == "" {
		cfg.Collector.DBPath = "ghostwriter.db"
	}

	cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.Images.AccessKey = os.Getenv("UNSPLASH_ACCESS_KEY")

	return cfg, nil
}
