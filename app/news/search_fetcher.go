package news

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const searchLimit = 15

// SearchFetcher queries the search provider for a company and keeps the
// relevant, scored results.
type SearchFetcher struct {
	client     *SearchClient
	classifier Classifier
	pageSize   int
	now        func() time.Time
}

var _ Fetcher = (*SearchFetcher)(nil)

// NewSearchFetcher builds a fetcher. A pageSize of zero leaves the result
// count to the provider.
func NewSearchFetcher(client *SearchClient, classifier Classifier, pageSize int) *SearchFetcher {
	return &SearchFetcher{
		client:     client,
		classifier: classifier,
		pageSize:   pageSize,
		now:        time.Now,
	}
}

func (f *SearchFetcher) Name() string {
	return "newsapi"
}

func (f *SearchFetcher) Fetch(ctx context.Context, q Query) []Article {
	articles, err := f.fetch(ctx, q)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingAPIKey):
			slog.Debug("Search provider skipped", "reason", err)
		case errors.Is(err, ErrRateLimited):
			slog.Warn("Search provider rate limited", "company", q.Identifier)
		default:
			slog.Error("Search provider error", "company", q.Identifier, "error", err)
		}
		return []Article{}
	}

	slog.Debug("Search provider results", "company", q.Identifier, "relevant", len(articles))

	return articles
}

func (f *SearchFetcher) fetch(ctx context.Context, q Query) ([]Article, error) {
	candidates, err := f.client.Search(ctx, SearchRequest{
		Query:    CompanyQuery(q.Identifier),
		From:     q.DateRange.Since(f.now().UTC()),
		PageSize: f.pageSize,
	})
	if err != nil {
		return nil, err
	}

	return scoreRelevant(candidates, q, f.classifier, searchLimit), nil
}

// CompanyQuery builds the provider query for an exact company name.
func CompanyQuery(company string) string {
	return `"` + company + `" AND ` + marketScope
}

// TopicQuery builds the provider query for a free-form topic.
func TopicQuery(topic string) string {
	return topic + " AND " + marketScope
}

const marketScope = "(India OR Indian OR stock OR market OR business)"
