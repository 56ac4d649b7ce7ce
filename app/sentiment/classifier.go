package sentiment

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2

	neutralConfidence = 0.6
	blankConfidence   = 0.5
	maxConfidence     = 0.95

	reasoningMatches = 3
)

type Classifier struct {
	scorer  PolarityScorer
	lexicon *Lexicon
}

func NewClassifier(scorer PolarityScorer, lexicon *Lexicon) *Classifier {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Classifier{
		scorer:  scorer,
		lexicon: lexicon,
	}
}

// Classify labels text as positive, negative or neutral. The base polarity
// is computed on the raw text while phrase matching runs on its lowercased
// form.
func (c *Classifier) Classify(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{
			Label:      Neutral,
			Confidence: blankConfidence,
			Reasoning:  "No content to analyze",
		}
	}

	lowered := strings.ToLower(strings.TrimSpace(text))

	base := c.scorer.Compound(text)

	// Single running sum, positive table first.
	var adjustment float64
	positive := match(c.lexicon.Positive, lowered, &adjustment)
	negative := match(c.lexicon.Negative, lowered, &adjustment)

	score := clamp(base+adjustment, -1, 1)

	result := Result{
		Label:      Neutral,
		Confidence: neutralConfidence,
		Score:      score,
	}

	switch {
	case score >= positiveThreshold:
		result.Label = Positive
		result.Confidence = math.Min(maxConfidence, neutralConfidence+math.Abs(score)*0.4)
	case score <= negativeThreshold:
		result.Label = Negative
		result.Confidence = math.Min(maxConfidence, neutralConfidence+math.Abs(score)*0.4)
	}

	result.Confidence = Round(result.Confidence)
	result.Reasoning = reasoning(positive, negative, score)

	return result
}

// Round rounds v to three decimal places.
func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(3).InexactFloat64()
}

func reasoning(positive, negative []string, score float64) string {
	var parts []string
	if len(positive) > 0 {
		parts = append(parts, "Positive: "+strings.Join(positive[:min(len(positive), reasoningMatches)], ", "))
	}
	if len(negative) > 0 {
		parts = append(parts, "Negative: "+strings.Join(negative[:min(len(negative), reasoningMatches)], ", "))
	}
	if len(parts) == 0 {
		parts = append(parts, "Based on overall tone")
	}
	return strings.Join(parts, " | ") + fmt.Sprintf(" (Score: %.2f)", score)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
