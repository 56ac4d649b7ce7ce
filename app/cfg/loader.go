package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	Port string `long:"port" env:"PORT" default:"8000" description:"HTTP server port"`

	// News search API
	NewsAPIKey      string `long:"news-api-key" env:"NEWS_API_KEY" description:"API key for the news search service"`
	NewsAPIURL      string `long:"news-api-url" env:"NEWS_API_URL" default:"https://newsapi.org" description:"Base URL of the news search service"`
	NewsPageSize    int    `long:"news-page-size" env:"NEWS_PAGE_SIZE" default:"0" description:"Results requested per search (0 uses the service default)"`
	SearchTimeout   int    `long:"search-timeout" env:"SEARCH_TIMEOUT" default:"10" description:"News search timeout in seconds"`
	ConcurrentFetch bool   `long:"concurrent-fetch" env:"CONCURRENT_FETCH" description:"Query news search and RSS feeds concurrently"`

	// RSS feeds
	FeedsDir    string `long:"feeds-dir" env:"FEEDS_DIR" description:"Directory containing feed configuration files (built-in feeds when empty)"`
	FeedTimeout int    `long:"feed-timeout" env:"FEED_TIMEOUT" default:"10" description:"Default RSS feed timeout in seconds"`
	AliasesFile string `long:"aliases-file" env:"ALIASES_FILE" description:"YAML file with additional company aliases"`

	// Simplification
	LLMProvider     string `long:"llm-provider" env:"LLM_PROVIDER" default:"gemini" choice:"gemini" choice:"anthropic" choice:"none" description:"Text generation provider for simplification"`
	GeminiAPIKey    string `long:"gemini-api-key" env:"GEMINI_API_KEY" description:"Gemini API key"`
	GeminiModel     string `long:"gemini-model" env:"GEMINI_MODEL" default:"gemini-1.5-flash" description:"Gemini model name"`
	AnthropicAPIKey string `long:"anthropic-api-key" env:"ANTHROPIC_API_KEY" description:"Anthropic API key"`
	AnthropicModel  string `long:"anthropic-model" env:"ANTHROPIC_MODEL" default:"claude-haiku-4-5" description:"Anthropic model name"`
	ExtractTimeout  int    `long:"extract-timeout" env:"EXTRACT_TIMEOUT" default:"10" description:"Article page download timeout in seconds"`

	// Cache
	RedisAddr string `long:"redis-addr" env:"REDIS_ADDR" description:"Redis address for the explanation cache (disabled when empty)"`
	CacheTTL  int    `long:"cache-ttl" env:"CACHE_TTL" default:"3600" description:"Explanation cache TTL in seconds"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"News Pulse/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Asia/Kolkata)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load reads .env files, then command line flags and environment variables.
func Load() (*Cfg, error) {
	if err := LoadEnvFiles(".env"); err != nil {
		return nil, err
	}
	return Parse(os.Args[1:])
}

// LoadEnvFiles populates the environment from the given dotenv files.
// Missing files are skipped and variables already set are left alone.
func LoadEnvFiles(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
		slog.Debug("Environment file loaded", "file", file)
	}
	return nil
}

// Parse builds the configuration from args and the environment. It returns
// nil, nil when help was requested.
func Parse(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := raw.validate(); err != nil {
		return nil, err
	}

	cfg := &Cfg{
		Port:            raw.Port,
		NewsAPIKey:      strings.TrimSpace(raw.NewsAPIKey),
		NewsAPIURL:      strings.TrimRight(raw.NewsAPIURL, "/"),
		NewsPageSize:    raw.NewsPageSize,
		SearchTimeout:   seconds(raw.SearchTimeout),
		ConcurrentFetch: raw.ConcurrentFetch,
		FeedsDir:        raw.FeedsDir,
		FeedTimeout:     seconds(raw.FeedTimeout),
		AliasesFile:     raw.AliasesFile,
		LLMProvider:     raw.LLMProvider,
		GeminiAPIKey:    strings.TrimSpace(raw.GeminiAPIKey),
		GeminiModel:     raw.GeminiModel,
		AnthropicAPIKey: strings.TrimSpace(raw.AnthropicAPIKey),
		AnthropicModel:  raw.AnthropicModel,
		ExtractTimeout:  seconds(raw.ExtractTimeout),
		RedisAddr:       raw.RedisAddr,
		CacheTTL:        seconds(raw.CacheTTL),
		UserAgent:       raw.UserAgent,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		slog.Warn("Invalid timezone, using system default", "timezone", cfg.Timezone, "error", err)
	}

	return cfg, nil
}

func (r *rawCfg) validate() error {
	switch {
	case r.NewsPageSize < 0 || r.NewsPageSize > 100:
		return fmt.Errorf("news page size must be between 0 and 100, got %d", r.NewsPageSize)
	case r.SearchTimeout <= 0:
		return fmt.Errorf("search timeout must be positive, got %d", r.SearchTimeout)
	case r.FeedTimeout <= 0:
		return fmt.Errorf("feed timeout must be positive, got %d", r.FeedTimeout)
	case r.ExtractTimeout <= 0:
		return fmt.Errorf("extract timeout must be positive, got %d", r.ExtractTimeout)
	case r.CacheTTL < 0:
		return fmt.Errorf("cache TTL must not be negative, got %d", r.CacheTTL)
	}
	return nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return err
		}
		time.Local = loc
		slog.Debug("Timezone configured", "timezone", timezone)
	}
	return nil
}
