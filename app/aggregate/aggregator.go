package aggregate

import (
	"fmt"
	"strings"
	"time"

	"github.com/lysyi3m/news-pulse/app/news"
	"github.com/lysyi3m/news-pulse/app/sentiment"
)

const (
	dedupWords = 5

	monthLimit   = 20
	defaultLimit = 15

	emptyConfidence = 0.6
)

type Counts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

func (c Counts) Total() int {
	return c.Positive + c.Negative + c.Neutral
}

type Summary struct {
	OverallSentiment  sentiment.Label `json:"overall_sentiment"`
	SentimentCounts   Counts          `json:"sentiment_counts"`
	AverageConfidence float64         `json:"average_confidence"`
	Company           string          `json:"company"`
	DateRange         news.DateRange  `json:"date_range"`
	GeneratedAt       string          `json:"generated_at"`
	Reasoning         string          `json:"reasoning"`
	SourcesUsed       []string        `json:"sources_used"`
}

type Result struct {
	Articles []news.Article
	Summary  Summary
	// Fallback is set when the articles are synthetic placeholders.
	Fallback bool
}

type Aggregator struct {
	now func() time.Time
}

func NewAggregator() *Aggregator {
	return &Aggregator{now: time.Now}
}

// Run merges search results ahead of feed results, drops duplicates, caps the
// list for the date range and summarizes it. An empty merge is replaced by
// synthetic articles so the result is never empty.
func (a *Aggregator) Run(search, feeds []news.Article, dateRange news.DateRange, company string) Result {
	merged := make([]news.Article, 0, len(search)+len(feeds))
	merged = append(merged, search...)
	merged = append(merged, feeds...)

	articles := Dedup(merged)

	fallback := false
	if len(articles) == 0 {
		articles = a.Synthetic(company, dateRange)
		fallback = true
	}

	if limit := Limit(dateRange); len(articles) > limit {
		articles = articles[:limit]
	}

	return Result{
		Articles: articles,
		Summary:  a.Summarize(articles, company, dateRange),
		Fallback: fallback,
	}
}

// Limit is the maximum number of articles returned for a date range.
func Limit(dateRange news.DateRange) int {
	if dateRange == news.OneMonth {
		return monthLimit
	}
	return defaultLimit
}

// Dedup keeps the first article for each title key. Articles whose title
// yields an empty key are dropped.
func Dedup(articles []news.Article) []news.Article {
	seen := make(map[string]bool, len(articles))
	unique := make([]news.Article, 0, len(articles))

	for _, article := range articles {
		key := dedupKey(article.Title)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, article)
	}

	return unique
}

func dedupKey(title string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(title)))
	if len(words) > dedupWords {
		words = words[:dedupWords]
	}
	return strings.Join(words, " ")
}

func (a *Aggregator) Summarize(articles []news.Article, company string, dateRange news.DateRange) Summary {
	var counts Counts
	var confidence float64
	sources := make([]string, 0)
	seenSources := make(map[string]bool)

	for _, article := range articles {
		switch article.Sentiment {
		case sentiment.Positive:
			counts.Positive++
		case sentiment.Negative:
			counts.Negative++
		default:
			counts.Neutral++
		}

		confidence += article.SentimentConfidence

		if name := article.Source.Name; !seenSources[name] {
			seenSources[name] = true
			sources = append(sources, name)
		}
	}

	average := emptyConfidence
	if len(articles) > 0 {
		average = sentiment.Round(confidence / float64(len(articles)))
	}

	overall := Overall(counts)

	return Summary{
		OverallSentiment:  overall,
		SentimentCounts:   counts,
		AverageConfidence: average,
		Company:           company,
		DateRange:         dateRange,
		GeneratedAt:       a.now().UTC().Format(time.RFC3339),
		Reasoning:         Reasoning(counts, overall),
		SourcesUsed:       sources,
	}
}

// Overall picks the label with the highest count. Ties resolve in the order
// positive, negative, neutral.
func Overall(counts Counts) sentiment.Label {
	switch {
	case counts.Positive >= counts.Negative && counts.Positive >= counts.Neutral && counts.Positive > 0:
		return sentiment.Positive
	case counts.Negative >= counts.Neutral && counts.Negative > 0:
		return sentiment.Negative
	default:
		return sentiment.Neutral
	}
}

func Reasoning(counts Counts, overall sentiment.Label) string {
	total := counts.Total()
	if total == 0 {
		return "No articles found"
	}

	switch overall {
	case sentiment.Positive:
		return fmt.Sprintf("Positive sentiment in %d out of %d articles", counts.Positive, total)
	case sentiment.Negative:
		return fmt.Sprintf("Negative sentiment in %d out of %d articles", counts.Negative, total)
	default:
		return fmt.Sprintf("Mixed sentiment: %d positive, %d negative, %d neutral", counts.Positive, counts.Negative, counts.Neutral)
	}
}
