package simplify

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const fallbackMaxLen = 300

type replacement struct {
	from, to string
}

// Applied in order; later entries see the output of earlier ones.
var jargon = []replacement{
	{"market cap", "company value"},
	{"revenue", "money earned"},
	{"profit", "money made"},
	{"loss", "money lost"},
	{"IPO", "selling shares for the first time"},
	{"stock", "company share"},
	{"shares", "pieces of the company"},
	{"investors", "people who bought shares"},
	{"quarterly", "every 3 months"},
	{"fiscal year", "financial year"},
	{"EBITDA", "earnings"},
	{"merger", "two companies joining"},
	{"acquisition", "one company buying another"},
}

// Fallback rewrites a headline without a generator by swapping common jargon
// for plain words.
func Fallback(title, description string) string {
	if strings.TrimSpace(description) == "" {
		return "This news is about: " + title
	}

	text := title + ". " + description
	for _, r := range jargon {
		text = strings.ReplaceAll(text, r.from, r.to)
		text = strings.ReplaceAll(text, capitalize(r.from), capitalize(r.to))
	}

	if utf8.RuneCountInString(text) > fallbackMaxLen {
		runes := []rune(text)
		text = string(runes[:fallbackMaxLen-3]) + "..."
	}

	return text
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
