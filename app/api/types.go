package api

import (
	"context"
	"time"

	"github.com/lysyi3m/news-pulse/app/cache"
	"github.com/lysyi3m/news-pulse/app/news"
	"github.com/lysyi3m/news-pulse/app/pipeline"
	"github.com/lysyi3m/news-pulse/app/simplify"
)

type AnalyzerInterface interface {
	Analyze(ctx context.Context, company string, dateRange news.DateRange) (*pipeline.Report, error)
}

type SearcherInterface interface {
	Search(ctx context.Context, req news.SearchRequest) ([]news.Candidate, error)
}

type ExtractorInterface interface {
	Run(ctx context.Context, rawURL string) (*simplify.Page, error)
}

type HealthReporter interface {
	Health(ctx context.Context) map[string]any
}

var (
	_ AnalyzerInterface  = (*pipeline.Service)(nil)
	_ SearcherInterface  = (*news.SearchClient)(nil)
	_ ExtractorInterface = (*simplify.Extractor)(nil)
	_ HealthReporter     = (*cache.Cache)(nil)
)

// Info is static service metadata reported by the health endpoints.
type Info struct {
	Version       string
	Feeds         int
	Aliases       int
	SearchEnabled bool
}

type Handler struct {
	analyzer   AnalyzerInterface
	searcher   SearcherInterface
	simplifier *simplify.Simplifier
	extractor  ExtractorInterface
	cache      HealthReporter
	info       Info
	startedAt  time.Time
	now        func() time.Time
}

type searchNewsRequest struct {
	Query     string `json:"query"`
	Level     string `json:"level"`
	DateRange string `json:"date_range"`
}

type simplifyTextRequest struct {
	Text  string `json:"text"`
	Level string `json:"level"`
}

type simplifyURLRequest struct {
	URL   string `json:"url"`
	Level string `json:"level"`
}

type insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type analysis struct {
	simplify.Complexity
	JargonCount    int             `json:"jargon_count"`
	JargonDetected []simplify.Term `json:"jargon_detected"`
	Insights       []insight       `json:"insights"`
}

type originalArticle struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"publishedAt"`
	Source      string  `json:"source"`
	URLToImage  *string `json:"urlToImage"`
}

type simplifiedArticle struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Summary string `json:"summary"`
}

type processedArticle struct {
	Original   originalArticle   `json:"original"`
	Simplified simplifiedArticle `json:"simplified"`
	Analysis   analysis          `json:"analysis"`
	AIPowered  bool              `json:"ai_powered"`
}

type searchNewsResponse struct {
	Articles   []processedArticle `json:"articles"`
	TotalFound int                `json:"total_found"`
	Query      string             `json:"query"`
	Level      simplify.Level     `json:"level"`
	DateRange  news.DateRange     `json:"date_range"`
	Status     string             `json:"status"`
	AIPowered  bool               `json:"ai_powered"`
}

type simplifiedText struct {
	URL            string `json:"url,omitempty"`
	Title          string `json:"title,omitempty"`
	OriginalText   string `json:"original_text"`
	SimplifiedText string `json:"simplified_text"`
	analysis
	AIPowered bool `json:"ai_powered"`
}
