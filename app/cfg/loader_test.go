package cfg

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Expected port '8000', got '%s'", cfg.Port)
	}
	if cfg.NewsAPIURL != "https://newsapi.org" {
		t.Errorf("Expected default news API URL, got '%s'", cfg.NewsAPIURL)
	}
	if cfg.SearchTimeout != 10*time.Second {
		t.Errorf("Expected search timeout 10s, got %v", cfg.SearchTimeout)
	}
	if cfg.FeedTimeout != 10*time.Second {
		t.Errorf("Expected feed timeout 10s, got %v", cfg.FeedTimeout)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("Expected cache TTL 1h, got %v", cfg.CacheTTL)
	}
	if cfg.UserAgent != "News Pulse/1.0" {
		t.Errorf("Expected default user agent, got '%s'", cfg.UserAgent)
	}
	if cfg.Version == "" {
		t.Error("Expected version to be set")
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := Parse([]string{
		"--port", "9090",
		"--news-api-url", "http://localhost:4000/",
		"--news-page-size", "50",
		"--concurrent-fetch",
		"--llm-provider", "anthropic",
		"--cache-ttl", "60",
		"--debug",
	})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Expected port '9090', got '%s'", cfg.Port)
	}
	if cfg.NewsAPIURL != "http://localhost:4000" {
		t.Errorf("Expected trailing slash to be trimmed, got '%s'", cfg.NewsAPIURL)
	}
	if cfg.NewsPageSize != 50 {
		t.Errorf("Expected page size 50, got %d", cfg.NewsPageSize)
	}
	if !cfg.ConcurrentFetch {
		t.Error("Expected concurrent fetch to be enabled")
	}
	if cfg.LLMProvider != "anthropic" {
		t.Errorf("Expected provider 'anthropic', got '%s'", cfg.LLMProvider)
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("Expected cache TTL 1m, got %v", cfg.CacheTTL)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}

func TestParseEnvironment(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "  secret  ")
	t.Setenv("FEEDS_DIR", "/etc/pulse/feeds")

	cfg, err := Parse([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.NewsAPIKey != "secret" {
		t.Errorf("Expected trimmed API key, got '%s'", cfg.NewsAPIKey)
	}
	if cfg.FeedsDir != "/etc/pulse/feeds" {
		t.Errorf("Expected feeds dir from environment, got '%s'", cfg.FeedsDir)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := [][]string{
		{"--news-page-size", "500"},
		{"--search-timeout", "0"},
		{"--feed-timeout", "-1"},
		{"--cache-ttl", "-5"},
		{"--llm-provider", "unknown"},
		{"--port"},
	}

	for _, args := range tests {
		if _, err := Parse(args); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}
}

func TestLoadEnvFiles(t *testing.T) {
	const key = "PULSE_CFG_TEST_VALUE"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env"), path); err != nil {
		t.Fatalf("Expected missing file to be skipped, got %v", err)
	}

	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("Expected 'from-file', got '%s'", got)
	}
}
