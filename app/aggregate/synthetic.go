package aggregate

import (
	"time"

	"github.com/lysyi3m/news-pulse/app/news"
	"github.com/lysyi3m/news-pulse/app/sentiment"
)

// Synthetic returns the placeholder articles used when no provider produced
// anything. The copy depends only on company and date range.
func (a *Aggregator) Synthetic(company string, dateRange news.DateRange) []news.Article {
	now := a.now().UTC()

	if dateRange == news.OneMonth {
		return []news.Article{{
			Title:               company + " reports quarterly earnings with mixed results",
			Description:         "Latest quarterly earnings from " + company + " show revenue growth but margin pressures.",
			URL:                 "https://example.com/earnings",
			PublishedAt:         now.AddDate(0, 0, -7).Format(time.RFC3339),
			Source:              news.Source{Name: "Financial Express"},
			Sentiment:           sentiment.Neutral,
			SentimentConfidence: 0.68,
			SentimentReasoning:  "Mixed indicators (Score: 0.1)",
		}}
	}

	return []news.Article{{
		Title:               company + " maintains steady performance",
		Description:         company + " trading within expected ranges with stable investor sentiment.",
		URL:                 "https://example.com/analysis",
		PublishedAt:         now.Format(time.RFC3339),
		Source:              news.Source{Name: "Market Analysis"},
		Sentiment:           sentiment.Neutral,
		SentimentConfidence: 0.65,
		SentimentReasoning:  "Based on overall tone (Score: 0.02)",
	}}
}
