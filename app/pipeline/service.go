package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lysyi3m/news-pulse/app/aggregate"
	"github.com/lysyi3m/news-pulse/app/entity"
	"github.com/lysyi3m/news-pulse/app/news"
	"golang.org/x/sync/errgroup"
)

const (
	StatusSuccess    = "success"
	StatusSampleData = "sample_data"
)

var ErrMissingCompany = errors.New("company name required")

type Report struct {
	Articles     []news.Article    `json:"articles"`
	TotalResults int               `json:"totalResults"`
	Summary      aggregate.Summary `json:"summary"`
	Status       string            `json:"status"`
	Message      string            `json:"message,omitempty"`
}

// Service runs the company sentiment pipeline: alias expansion, search and
// feed fetches, aggregation.
type Service struct {
	expander   *entity.Expander
	search     news.Fetcher
	feeds      news.Fetcher
	aggregator *aggregate.Aggregator
	concurrent bool
}

func NewService(expander *entity.Expander, search, feeds news.Fetcher, aggregator *aggregate.Aggregator, concurrent bool) *Service {
	return &Service{
		expander:   expander,
		search:     search,
		feeds:      feeds,
		aggregator: aggregator,
		concurrent: concurrent,
	}
}

// Analyze always produces a report for a non-blank company. Internal failures
// are logged and answered with placeholder data.
func (s *Service) Analyze(ctx context.Context, company string, dateRange news.DateRange) (report *Report, err error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil, ErrMissingCompany
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Pipeline failed, returning sample data", "company", company, "date_range", dateRange, "panic", r)
			report = s.sampleReport(company, dateRange, fmt.Sprintf("%v", r))
			err = nil
		}
	}()

	q := news.Query{
		Identifier: company,
		Aliases:    s.expander.Expand(company),
		DateRange:  dateRange,
	}

	searchResults, feedResults := s.fetch(ctx, q)

	result := s.aggregator.Run(searchResults, feedResults, dateRange, company)

	status, message := StatusSuccess, ""
	if result.Fallback {
		status = StatusSampleData
		message = fmt.Sprintf("Sample data for %s - no live articles found", dateRange)
	}

	slog.Info("Sentiment analysis completed",
		"company", company,
		"date_range", dateRange,
		"search", len(searchResults),
		"feeds", len(feedResults),
		"articles", len(result.Articles),
		"overall", result.Summary.OverallSentiment,
		"status", status)

	return &Report{
		Articles:     result.Articles,
		TotalResults: len(result.Articles),
		Summary:      result.Summary,
		Status:       status,
		Message:      message,
	}, nil
}

// fetch runs both fetchers. Results keep search-then-feed order whether or
// not the fetchers run concurrently.
func (s *Service) fetch(ctx context.Context, q news.Query) ([]news.Article, []news.Article) {
	if !s.concurrent {
		return s.search.Fetch(ctx, q), s.feeds.Fetch(ctx, q)
	}

	var searchResults, feedResults []news.Article

	g, gctx := errgroup.WithContext(ctx)
	run := func(f news.Fetcher, out *[]news.Article) func() error {
		return func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s fetcher panicked: %v", f.Name(), r)
				}
			}()
			*out = f.Fetch(gctx, q)
			return nil
		}
	}
	g.Go(run(s.search, &searchResults))
	g.Go(run(s.feeds, &feedResults))

	// Re-raised so Analyze answers with sample data.
	if err := g.Wait(); err != nil {
		panic(err)
	}

	return searchResults, feedResults
}

func (s *Service) sampleReport(company string, dateRange news.DateRange, reason string) *Report {
	articles := s.aggregator.Synthetic(company, dateRange)
	return &Report{
		Articles:     articles,
		TotalResults: len(articles),
		Summary:      s.aggregator.Summarize(articles, company, dateRange),
		Status:       StatusSampleData,
		Message:      "Sample data returned: " + reason,
	}
}
