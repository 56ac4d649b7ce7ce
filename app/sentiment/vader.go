package sentiment

import (
	"github.com/jonreiter/govader"
)

// VaderScorer computes base polarity with the VADER lexicon.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ PolarityScorer = (*VaderScorer)(nil)

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

func (s *VaderScorer) Compound(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}
