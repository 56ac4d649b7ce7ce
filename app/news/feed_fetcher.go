package news

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/text/unicode/norm"
)

const (
	feedEntriesPerSource = 10
	feedLimit            = 5
)

// FeedFetcher polls the catalog feeds and keeps entries that mention the
// company. The result cap is shared across all feeds.
type FeedFetcher struct {
	httpClient *http.Client
	catalog    *FeedCatalog
	classifier Classifier
	userAgent  string
	now        func() time.Time
}

var _ Fetcher = (*FeedFetcher)(nil)

func NewFeedFetcher(httpClient *http.Client, catalog *FeedCatalog, classifier Classifier, userAgent string) *FeedFetcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &FeedFetcher{
		httpClient: httpClient,
		catalog:    catalog,
		classifier: classifier,
		userAgent:  userAgent,
		now:        time.Now,
	}
}

func (f *FeedFetcher) Name() string {
	return "rss"
}

func (f *FeedFetcher) Fetch(ctx context.Context, q Query) []Article {
	articles := make([]Article, 0, feedLimit)

	for _, source := range f.catalog.Sources() {
		if len(articles) >= feedLimit {
			break
		}

		candidates, err := f.poll(ctx, source)
		if err != nil {
			slog.Error("Feed poll failed", "feed", source.Name, "url", source.URL, "error", err)
			continue
		}

		found := scoreRelevant(candidates, q, f.classifier, feedLimit-len(articles))
		articles = append(articles, found...)

		slog.Debug("Feed polled", "feed", source.Name, "entries", len(candidates), "relevant", len(found))
	}

	return articles
}

// poll fetches and parses one feed, returning at most the first
// feedEntriesPerSource entries as candidates.
func (f *FeedFetcher) poll(ctx context.Context, source FeedSource) ([]Candidate, error) {
	data, err := f.fetchFeed(ctx, source)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := feed.Items
	if len(items) > feedEntriesPerSource {
		items = items[:feedEntriesPerSource]
	}

	candidates := make([]Candidate, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		candidates = append(candidates, f.normalizeItem(item, source))
	}

	return candidates, nil
}

func (f *FeedFetcher) normalizeItem(item *gofeed.Item, source FeedSource) Candidate {
	return Candidate{
		Title:       normalizeText(item.Title),
		Description: normalizeText(item.Description),
		URL:         item.Link,
		PublishedAt: cmp.Or(item.Published, f.now().UTC().Format(time.RFC3339)),
		SourceName:  source.Name,
	}
}

func (f *FeedFetcher) fetchFeed(ctx context.Context, source FeedSource) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, time.Duration(source.Timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", source.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

func normalizeText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
