package news

import (
	"github.com/lysyi3m/news-pulse/app/sentiment"
)

// NewScoredArticle attaches a classification result to a candidate.
func NewScoredArticle(c Candidate, result sentiment.Result) Article {
	return Article{
		Title:               c.Title,
		Description:         c.Description,
		URL:                 c.URL,
		PublishedAt:         c.PublishedAt,
		Source:              Source{ID: c.SourceID, Name: c.SourceName},
		Author:              c.Author,
		Content:             c.Content,
		URLToImage:          c.URLToImage,
		Sentiment:           result.Label,
		SentimentConfidence: sentiment.Round(result.Confidence),
		SentimentReasoning:  result.Reasoning,
	}
}

// scoreRelevant keeps candidates mentioning one of the aliases, classifies
// them and stops once limit articles have been collected.
func scoreRelevant(candidates []Candidate, q Query, classifier Classifier, limit int) []Article {
	articles := make([]Article, 0, min(len(candidates), limit))
	for _, c := range candidates {
		if len(articles) >= limit {
			break
		}

		text := c.Text()
		if !q.Aliases.Matches(text) {
			continue
		}

		articles = append(articles, NewScoredArticle(c, classifier.Classify(text)))
	}
	return articles
}
