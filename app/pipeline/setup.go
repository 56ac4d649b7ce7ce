package pipeline

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lysyi3m/news-pulse/app/aggregate"
	"github.com/lysyi3m/news-pulse/app/cfg"
	"github.com/lysyi3m/news-pulse/app/entity"
	"github.com/lysyi3m/news-pulse/app/news"
	"github.com/lysyi3m/news-pulse/app/sentiment"
)

// Components are the long-lived collaborators shared by the server and the CLI.
type Components struct {
	Service  *Service
	Search   *news.SearchClient
	Expander *entity.Expander
	Catalog  *news.FeedCatalog
}

// Setup loads aliases and feed sources and wires the sentiment pipeline.
func Setup(c *cfg.Cfg, httpClient *http.Client) (*Components, error) {
	expander := entity.NewExpander()
	if err := expander.LoadAliases(c.AliasesFile); err != nil {
		return nil, fmt.Errorf("failed to load aliases: %w", err)
	}

	catalog := news.NewFeedCatalog(c.FeedsDir, int(c.FeedTimeout/time.Second))
	if err := catalog.Run(); err != nil {
		return nil, fmt.Errorf("failed to load feed sources: %w", err)
	}

	classifier := sentiment.NewClassifier(sentiment.NewVaderScorer(), nil)
	search := news.NewSearchClient(httpClient, c.NewsAPIURL, c.NewsAPIKey, c.UserAgent, c.SearchTimeout)

	service := NewService(
		expander,
		news.NewSearchFetcher(search, classifier, c.NewsPageSize),
		news.NewFeedFetcher(httpClient, catalog, classifier, c.UserAgent),
		aggregate.NewAggregator(),
		c.ConcurrentFetch,
	)

	slog.Info("Pipeline ready",
		"aliases", expander.Count(),
		"feeds", catalog.Count(),
		"search_enabled", search.Configured(),
		"concurrent", c.ConcurrentFetch)

	return &Components{
		Service:  service,
		Search:   search,
		Expander: expander,
		Catalog:  catalog,
	}, nil
}
