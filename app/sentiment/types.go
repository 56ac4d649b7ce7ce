package sentiment

type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Result is the outcome of classifying one piece of text.
type Result struct {
	Label      Label
	Confidence float64
	Reasoning  string
	Score      float64
}

type Phrase struct {
	Text   string
	Weight float64
}

// PolarityScorer returns a compound polarity score in [-1, 1].
type PolarityScorer interface {
	Compound(text string) float64
}
