package simplify

import "strings"

var financialKeywords = map[string]bool{
	"market":     true,
	"stock":      true,
	"revenue":    true,
	"profit":     true,
	"investment": true,
	"quarterly":  true,
	"earnings":   true,
	"capital":    true,
	"shares":     true,
	"equity":     true,
}

// Rate scores text complexity from its length and financial keyword density.
func Rate(text string) Complexity {
	if text == "" {
		return Complexity{Level: "low", Readability: 50}
	}

	words := strings.Fields(text)
	keywords := 0
	for _, w := range words {
		if financialKeywords[strings.ToLower(w)] {
			keywords++
		}
	}

	switch {
	case keywords > 8 || len(words) > 100:
		return Complexity{Level: "high", Readability: 30}
	case keywords > 4 || len(words) > 50:
		return Complexity{Level: "medium", Readability: 60}
	default:
		return Complexity{Level: "low", Readability: 80}
	}
}
