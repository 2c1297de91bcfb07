package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LLM.Model != "gemini-2.5-flash" {
		t.Errorf("LLM.Model = %q, want default", cfg.LLM.Model)
	}
	if cfg.Search.Region != "kr-kr" {
		t.Errorf("Search.Region = %q, want kr-kr", cfg.Search.Region)
	}
	if cfg.Search.Timeout != 20*time.Second {
		t.Errorf("Search.Timeout = %v, want 20s", cfg.Search.Timeout)
	}
	if cfg.Search.Attempts != 3 {
		t.Errorf("Search.Attempts = %d, want 3", cfg.Search.Attempts)
	}
	if cfg.Collector.DBPath != "ghostwriter.db" {
		t.Errorf("Collector.DBPath = %q, want default", cfg.Collector.DBPath)
	}
}

func TestLoadConfigOverridesAndEnvSecrets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
llm:
  model: gemini-2.5-pro
search:
  region: us-en
  timeout: 5s
  attempts: 2
  expand_hits: true
collector:
  db_path: /tmp/keywords.db
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("GEMINI_API_KEY", "test-gemini-key")
	t.Setenv("UNSPLASH_ACCESS_KEY", "test-unsplash-key")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LLM.Model != "gemini-2.5-pro" {
		t.Errorf("LLM.Model = %q, want gemini-2.5-pro", cfg.LLM.Model)
	}
	if cfg.Search.Timeout != 5*time.Second {
		t.Errorf("Search.Timeout = %v, want 5s", cfg.Search.Timeout)
	}
	if !cfg.Search.ExpandHits {
		t.Error("Search.ExpandHits = false, want true")
	}
	if cfg.LLM.APIKey != "test-gemini-key" {
		t.Errorf("LLM.APIKey = %q, want env value", cfg.LLM.APIKey)
	}
	if cfg.Images.AccessKey != "test-unsplash-key" {
		t.Errorf("Images.AccessKey = %q, want env value", cfg.Images.AccessKey)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("llm: [not a map"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() error = nil, want parse error")
	}
}
