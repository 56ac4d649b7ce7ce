package api

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/news-pulse/app/news"
	"github.com/lysyi3m/news-pulse/app/pipeline"
	"github.com/lysyi3m/news-pulse/app/simplify"
)

const (
	maxTextLength   = 10000
	maxSearchItems  = 10
	searchPageSize  = 15
	summaryLength   = 200
	extractedLength = 4000
)

var trendingTopics = []string{
	"Reliance Industries",
	"TCS",
	"Infosys",
	"HDFC Bank",
	"Sensex",
	"Nifty",
	"Tata Motors",
	"Stock Market India",
}

func NewHandler(analyzer AnalyzerInterface, searcher SearcherInterface, simplifier *simplify.Simplifier,
	extractor ExtractorInterface, cache HealthReporter, info Info) *Handler {
	return &Handler{
		analyzer:   analyzer,
		searcher:   searcher,
		simplifier: simplifier,
		extractor:  extractor,
		cache:      cache,
		info:       info,
		startedAt:  time.Now(),
		now:        time.Now,
	}
}

func (h *Handler) GetNews(c *gin.Context) {
	company := c.Query("company")
	dateRange := news.ParseDateRange(c.Query("date_range"))

	// Analyze only fails for a blank company; other failures come back as
	// the sample report.
	report, err := h.analyzer.Analyze(c.Request.Context(), company, dateRange)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company name required"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) SearchNews(c *gin.Context) {
	var req searchNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	ctx := c.Request.Context()
	level := simplify.ParseLevel(req.Level)
	dateRange := news.ParseDateRange(req.DateRange)

	slog.Info("News search", "query", query, "level", level, "date_range", dateRange)

	candidates := h.search(ctx, query, dateRange)
	if len(candidates) == 0 {
		slog.Info("No search results, using sample article", "query", query)
		candidates = sampleCandidates(query, h.now())
	}

	articles := make([]processedArticle, 0, maxSearchItems)
	aiPowered := false
	for _, candidate := range candidates[:min(len(candidates), maxSearchItems)] {
		if candidate.Title == "" {
			continue
		}

		article := h.processArticle(ctx, candidate, level)
		aiPowered = aiPowered || article.AIPowered
		articles = append(articles, article)
	}

	slog.Info("News search completed", "query", query, "articles", len(articles), "ai_powered", aiPowered)

	c.JSON(http.StatusOK, searchNewsResponse{
		Articles:   articles,
		TotalFound: len(articles),
		Query:      query,
		Level:      level,
		DateRange:  dateRange,
		Status:     pipeline.StatusSuccess,
		AIPowered:  aiPowered,
	})
}

func (h *Handler) SimplifyText(c *gin.Context) {
	var req simplifyTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}
	if utf8.RuneCountInString(text) > maxTextLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Text too long (max %d characters)", maxTextLength)})
		return
	}

	result := h.simplifyText(c.Request.Context(), "Custom Text", text, text, simplify.ParseLevel(req.Level))
	c.JSON(http.StatusOK, result)
}

func (h *Handler) SimplifyURL(c *gin.Context) {
	var req simplifyURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	ctx := c.Request.Context()
	page, err := h.extractor.Run(ctx, req.URL)
	if err != nil {
		slog.Warn("Content extraction failed", "url", req.URL, "error", err)
		status := http.StatusUnprocessableEntity
		if errors.Is(err, simplify.ErrInvalidURL) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":   "Could not extract article content",
			"details": err.Error(),
		})
		return
	}

	text := truncate(page.Text, extractedLength)
	title := cmp.Or(page.Title, "Article")

	result := h.simplifyText(ctx, title, cmp.Or(page.Excerpt, text), text, simplify.ParseLevel(req.Level))
	result.URL = page.URL
	result.Title = page.Title

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetTrendingTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"trending_topics": trendingTopics})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"status":    "healthy",
		"timestamp": h.timestamp(),
		"version":   h.info.Version,
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
		"services": gin.H{
			"sentiment_analysis":  "available",
			"news_simplification": "available",
		},
		"news_search":   h.info.SearchEnabled,
		"feeds":         h.info.Feeds,
		"aliases":       h.info.Aliases,
		"text_provider": h.simplifier.Provider(),
	}

	if h.cache != nil {
		health["cache"] = h.cache.Health(c.Request.Context())
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetSentimentHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "sentiment-analysis",
		"timestamp": h.timestamp(),
	})
}

func (h *Handler) GetNewsHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "news-simplification",
		"ai_model":  h.simplifier.Provider(),
		"timestamp": h.timestamp(),
	})
}

func (h *Handler) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": h.timestamp(),
	})
}

func (h *Handler) search(ctx context.Context, query string, dateRange news.DateRange) []news.Candidate {
	candidates, err := h.searcher.Search(ctx, news.SearchRequest{
		Query:    news.TopicQuery(query),
		From:     dateRange.Since(h.now()),
		PageSize: searchPageSize,
	})
	switch {
	case errors.Is(err, news.ErrMissingAPIKey):
		slog.Debug("News search skipped", "reason", err)
	case err != nil:
		slog.Warn("News search failed", "query", query, "error", err)
	}
	return candidates
}

func (h *Handler) processArticle(ctx context.Context, candidate news.Candidate, level simplify.Level) processedArticle {
	explanation := h.simplifier.Explain(ctx, candidate.Title, candidate.Description, level)

	terms := []simplify.Term{}
	if level != simplify.Basic {
		terms = h.simplifier.ExtractTerms(ctx, candidate.Title+". "+candidate.Description)
	}

	return processedArticle{
		Original: originalArticle{
			Title:       candidate.Title,
			Description: candidate.Description,
			Content:     cmp.Or(candidate.Content, candidate.Description),
			URL:         candidate.URL,
			PublishedAt: candidate.PublishedAt,
			Source:      cmp.Or(candidate.SourceName, "Unknown"),
			URLToImage:  candidate.URLToImage,
		},
		Simplified: simplifiedArticle{
			Title:   candidate.Title,
			Content: explanation.Text,
			Summary: truncate(explanation.Text, summaryLength),
		},
		Analysis: analysis{
			Complexity:     simplify.Rate(candidate.Text()),
			JargonCount:    len(terms),
			JargonDetected: terms,
			Insights: []insight{{
				Title:       "Explanation",
				Description: h.explainedBy(explanation, level),
			}},
		},
		AIPowered: explanation.AIPowered,
	}
}

func (h *Handler) simplifyText(ctx context.Context, title, description, text string, level simplify.Level) simplifiedText {
	explanation := h.simplifier.Explain(ctx, title, description, level)
	terms := h.simplifier.ExtractTerms(ctx, text)
	complexity := simplify.Rate(text)

	return simplifiedText{
		OriginalText:   text,
		SimplifiedText: explanation.Text,
		analysis: analysis{
			Complexity:     complexity,
			JargonCount:    len(terms),
			JargonDetected: terms,
			Insights: []insight{
				{Title: "Simplification", Description: h.explainedBy(explanation, level)},
				{Title: "Complexity Level", Description: "Original text complexity: " + strings.ToUpper(complexity.Level)},
				{Title: "Key Terms Found", Description: fmt.Sprintf("Identified %d important financial terms", len(terms))},
			},
		},
		AIPowered: explanation.AIPowered,
	}
}

func (h *Handler) explainedBy(explanation simplify.Explanation, level simplify.Level) string {
	if explanation.AIPowered {
		return fmt.Sprintf("Explained using %s at %s level", h.simplifier.Provider(), level)
	}
	return fmt.Sprintf("Simplified with the built-in glossary at %s level", level)
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}

func sampleCandidates(query string, now time.Time) []news.Candidate {
	return []news.Candidate{{
		Title:       query + " shows strong quarterly performance",
		Description: query + " reported better than expected results with revenue growth of 15% and improved market position in the latest quarter.",
		Content:     query + " announced quarterly results with revenue growth.",
		URL:         "https://example.com/article1",
		PublishedAt: now.UTC().Format(time.RFC3339),
		SourceName:  "Financial Times",
	}}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
