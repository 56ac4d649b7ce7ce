package news

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// FeedSource describes one RSS/Atom endpoint polled for company news.
type FeedSource struct {
	ID      string // Derived from filename (without .yml extension)
	Name    string `yaml:"name"`
	URL     string `yaml:"url"`
	Enabled *bool  `yaml:"enabled"`
	Timeout int    `yaml:"timeout"` // seconds
}

func (s FeedSource) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

var defaultFeedSources = []FeedSource{
	{ID: "economic-times", Name: "Economic Times", URL: "https://economictimes.indiatimes.com/markets/rssfeeds/1977021501.cms"},
	{ID: "business-standard", Name: "Business Standard", URL: "https://www.business-standard.com/rss/markets-106.rss"},
	{ID: "livemint", Name: "LiveMint", URL: "https://www.livemint.com/rss/markets"},
}

// FeedCatalog holds the feed sources, loaded from a directory of YAML files
// or the built-in market feeds when none are configured.
type FeedCatalog struct {
	feedsDir       string
	defaultTimeout int
	sources        []FeedSource
	mu             sync.RWMutex
}

func NewFeedCatalog(feedsDir string, defaultTimeout int) *FeedCatalog {
	if defaultTimeout <= 0 {
		defaultTimeout = 10
	}
	return &FeedCatalog{
		feedsDir:       feedsDir,
		defaultTimeout: defaultTimeout,
		sources:        withTimeout(defaultFeedSources, defaultTimeout),
	}
}

func (fc *FeedCatalog) Run() error {
	if fc.feedsDir == "" {
		return nil
	}
	if _, err := os.Stat(fc.feedsDir); os.IsNotExist(err) {
		slog.Debug("Feeds directory not found, using built-in feeds", "dir", fc.feedsDir)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(fc.feedsDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}
	if len(files) == 0 {
		return nil
	}

	sort.Strings(files)

	sources := make([]FeedSource, 0, len(files))
	for _, file := range files {
		source, err := fc.parseSource(file)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}

		slog.Debug("Feed source loaded", "feed", source.ID, "enabled", source.IsEnabled(), "timeout", source.Timeout)

		sources = append(sources, *source)
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.sources = sources

	return nil
}

// Sources returns the enabled feeds in polling order.
func (fc *FeedCatalog) Sources() []FeedSource {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	enabled := make([]FeedSource, 0, len(fc.sources))
	for _, s := range fc.sources {
		if s.IsEnabled() {
			enabled = append(enabled, s)
		}
	}
	return enabled
}

func (fc *FeedCatalog) Count() int {
	return len(fc.Sources())
}

func (fc *FeedCatalog) parseSource(file string) (*FeedSource, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var source FeedSource
	if err := yaml.Unmarshal(data, &source); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	source.ID = strings.TrimSuffix(filepath.Base(file), ".yml")

	if source.Name == "" {
		source.Name = source.ID
	}
	if source.Timeout == 0 {
		source.Timeout = fc.defaultTimeout
	}

	if source.URL == "" {
		return nil, fmt.Errorf("feed URL is required")
	}
	if source.Timeout < 0 {
		return nil, fmt.Errorf("timeout must be non-negative")
	}

	return &source, nil
}

func withTimeout(sources []FeedSource, timeout int) []FeedSource {
	out := make([]FeedSource, len(sources))
	for i, s := range sources {
		s.Timeout = timeout
		out[i] = s
	}
	return out
}
