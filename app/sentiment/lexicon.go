package sentiment

import "strings"

// Lexicon holds the financial phrase adjustments applied on top of the base
// polarity score. Table order is significant: it drives the reasoning text.
type Lexicon struct {
	Positive []Phrase
	Negative []Phrase
}

func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Positive: []Phrase{
			{"partnership", 0.5}, {"pact", 0.5}, {"agreement", 0.4}, {"tie-up", 0.4},
			{"collaboration", 0.4}, {"alliance", 0.4}, {"joint venture", 0.5},
			{"launch", 0.4}, {"introduces", 0.4}, {"expansion", 0.5}, {"foray", 0.4},
			{"growth", 0.4}, {"increase", 0.3}, {"rise", 0.3}, {"surge", 0.5},
			{"profit", 0.6}, {"revenue growth", 0.5}, {"earnings", 0.4}, {"dividend", 0.4},
			{"buyback", 0.5}, {"bonus", 0.3}, {"record", 0.4}, {"strong", 0.3},
			{"contract", 0.4}, {"deal", 0.4}, {"order", 0.3}, {"wins", 0.5},
			{"acquisition", 0.4}, {"investment", 0.4}, {"funding", 0.4},
			{"upgrade", 0.5}, {"outperform", 0.6}, {"buy rating", 0.7},
			{"target raised", 0.6}, {"bullish", 0.5}, {"beat estimates", 0.6},
		},
		Negative: []Phrase{
			{"slashed", -0.7}, {"cut", -0.5}, {"reduced", -0.4}, {"lowered", -0.4},
			{"downgrade", -0.6}, {"target cut", -0.6}, {"decline", -0.4}, {"fall", -0.4},
			{"drop", -0.5}, {"plunge", -0.7}, {"loss", -0.6}, {"losses", -0.6},
			{"deficit", -0.5}, {"bearish", -0.5}, {"concern", -0.4}, {"worry", -0.4},
			{"investigation", -0.6}, {"probe", -0.5}, {"lawsuit", -0.5},
			{"penalty", -0.5}, {"scandal", -0.8}, {"layoffs", -0.7},
			{"bankruptcy", -0.9}, {"debt", -0.4}, {"underperform", -0.5},
			{"sell rating", -0.7}, {"missed estimates", -0.6},
		},
	}
}

// match returns the phrases of the table contained in text and adds their
// weights to adjustment in table order. text is expected to be lowercased.
func match(table []Phrase, text string, adjustment *float64) []string {
	var found []string
	for _, p := range table {
		if strings.Contains(text, p.Text) {
			found = append(found, p.Text)
			*adjustment += p.Weight
		}
	}
	return found
}
