package news

import (
	"context"
	"errors"

	"github.com/lysyi3m/news-pulse/app/entity"
	"github.com/lysyi3m/news-pulse/app/sentiment"
)

var (
	ErrRateLimited   = errors.New("news provider rate limit exceeded")
	ErrMissingAPIKey = errors.New("news provider API key is not configured")
)

type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Article is a news item that has been through sentiment classification.
type Article struct {
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	URL                 string          `json:"url"`
	PublishedAt         string          `json:"publishedAt"`
	Source              Source          `json:"source"`
	Author              string          `json:"author,omitempty"`
	Content             string          `json:"content,omitempty"`
	URLToImage          *string         `json:"urlToImage"`
	Sentiment           sentiment.Label `json:"sentiment"`
	SentimentConfidence float64         `json:"sentiment_confidence"`
	SentimentReasoning  string          `json:"sentiment_reasoning"`
}

// Candidate is a raw provider item before relevance filtering and scoring.
type Candidate struct {
	Title       string
	Description string
	URL         string
	PublishedAt string
	SourceID    string
	SourceName  string
	Author      string
	Content     string
	URLToImage  *string
}

// Text is the string used both for relevance matching and classification.
func (c Candidate) Text() string {
	return c.Title + " " + c.Description
}

type Query struct {
	Identifier string
	Aliases    entity.AliasSet
	DateRange  DateRange
}

// Fetcher retrieves scored, relevant articles from one provider. Provider
// failures are logged and yield an empty slice.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, q Query) []Article
}

type Classifier interface {
	Classify(text string) sentiment.Result
}

var _ Classifier = (*sentiment.Classifier)(nil)
