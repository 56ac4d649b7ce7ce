package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/news-pulse/app/api"
	"github.com/lysyi3m/news-pulse/app/cache"
	"github.com/lysyi3m/news-pulse/app/cfg"
	"github.com/lysyi3m/news-pulse/app/pipeline"
	"github.com/lysyi3m/news-pulse/app/simplify"
)

func main() {
	appConfig, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appConfig == nil {
		return
	}

	level := slog.LevelInfo
	if appConfig.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting News Pulse", "version", appConfig.Version, "port", appConfig.Port)

	ctx := context.Background()
	httpClient := &http.Client{Timeout: 30 * time.Second}

	components, err := pipeline.Setup(appConfig, httpClient)
	if err != nil {
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}

	generator, closeGenerator := newGenerator(ctx, appConfig)
	defer closeGenerator()

	var explanationCache simplify.Cache
	var cacheHealth api.HealthReporter
	if appConfig.RedisAddr != "" {
		redisCache, err := cache.NewCache(ctx, appConfig.RedisAddr, "pulse")
		if err != nil {
			slog.Warn("Explanation cache disabled", "addr", appConfig.RedisAddr, "error", err)
		} else {
			defer redisCache.Close()
			explanationCache = redisCache
			cacheHealth = redisCache
		}
	}

	simplifier := simplify.NewSimplifier(generator, explanationCache, appConfig.CacheTTL)
	extractor := simplify.NewExtractor(httpClient, appConfig.UserAgent, appConfig.ExtractTimeout)

	apiHandler := api.NewHandler(components.Service, components.Search, simplifier, extractor, cacheHealth, api.Info{
		Version:       appConfig.Version,
		Feeds:         components.Catalog.Count(),
		Aliases:       components.Expander.Count(),
		SearchEnabled: components.Search.Configured(),
	})
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening",
			"addr", httpServer.Addr,
			"text_provider", simplifier.Provider(),
			"cache", cacheHealth != nil)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("News Pulse shutdown complete")
}

// newGenerator picks the text generation provider. A missing key disables
// generation and leaves the glossary fallback in place.
func newGenerator(ctx context.Context, c *cfg.Cfg) (simplify.Generator, func()) {
	noop := func() {}

	switch c.LLMProvider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			slog.Warn("GEMINI_API_KEY not set, using glossary fallback")
			return nil, noop
		}
		gemini, err := simplify.NewGeminiGenerator(ctx, c.GeminiAPIKey, c.GeminiModel)
		if err != nil {
			slog.Warn("Gemini unavailable, using glossary fallback", "error", err)
			return nil, noop
		}
		return gemini, func() { gemini.Close() }

	case "anthropic":
		if c.AnthropicAPIKey == "" {
			slog.Warn("ANTHROPIC_API_KEY not set, using glossary fallback")
			return nil, noop
		}
		return simplify.NewAnthropicGenerator(c.AnthropicAPIKey, c.AnthropicModel), noop

	default:
		return nil, noop
	}
}
