package simplify

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minExplanationLen = 20
	maxTerms          = 5
)

type Simplifier struct {
	generator Generator
	cache     Cache
	cacheTTL  time.Duration
	attempts  int
	pause     time.Duration
}

// NewSimplifier builds a simplifier. generator and cache may be nil; without
// a generator every explanation uses the jargon substitution fallback.
func NewSimplifier(generator Generator, cache Cache, cacheTTL time.Duration) *Simplifier {
	return &Simplifier{
		generator: generator,
		cache:     cache,
		cacheTTL:  cacheTTL,
		attempts:  2,
		pause:     time.Second,
	}
}

func (s *Simplifier) Provider() string {
	if s.generator == nil {
		return "none"
	}
	return s.generator.Name()
}

// Explain rewrites a news item for the given reading level.
func (s *Simplifier) Explain(ctx context.Context, title, description string, level Level) Explanation {
	if s.generator == nil {
		return Explanation{Text: Fallback(title, description)}
	}

	key := explanationKey(s.generator.Name(), title, description, level)
	if cached, ok := s.cached(ctx, key); ok {
		return cached
	}

	full := title
	if description != "" {
		full = title + ". " + description
	}

	prompt := explainPrompt(full, level)

	for attempt := 1; attempt <= s.attempts; attempt++ {
		text, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			slog.Warn("Explanation attempt failed", "provider", s.generator.Name(), "attempt", attempt, "error", err)
			if attempt < s.attempts && !s.wait(ctx) {
				break
			}
			continue
		}

		text = strings.TrimSpace(text)
		if utf8.RuneCountInString(text) > minExplanationLen && !strings.EqualFold(text, full) {
			explanation := Explanation{Text: text, AIPowered: true}
			s.store(ctx, key, explanation)
			return explanation
		}

		slog.Debug("Explanation rejected", "provider", s.generator.Name(), "attempt", attempt, "length", utf8.RuneCountInString(text))
	}

	slog.Warn("Generator unavailable, using fallback explanation", "provider", s.generator.Name())

	return Explanation{Text: Fallback(title, description)}
}

// ExtractTerms asks the generator for up to five key financial terms.
func (s *Simplifier) ExtractTerms(ctx context.Context, text string) []Term {
	if s.generator == nil || strings.TrimSpace(text) == "" {
		return []Term{}
	}

	answer, err := s.generator.Generate(ctx, termsPrompt(text))
	if err != nil {
		slog.Warn("Term extraction failed", "provider", s.generator.Name(), "error", err)
		return []Term{}
	}

	return ParseTerms(answer)
}

// ParseTerms reads "N. Term: explanation" lines.
func ParseTerms(answer string) []Term {
	terms := make([]Term, 0, maxTerms)
	for _, line := range strings.Split(strings.TrimSpace(answer), "\n") {
		name, explanation, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		name = strings.Trim(name, "1234567890. ")
		explanation = strings.TrimSpace(explanation)
		if name == "" || explanation == "" {
			continue
		}

		terms = append(terms, Term{Term: name, Explanation: explanation, Count: 1})
		if len(terms) == maxTerms {
			break
		}
	}
	return terms
}

func (s *Simplifier) wait(ctx context.Context) bool {
	if s.pause <= 0 {
		return true
	}
	timer := time.NewTimer(s.pause)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (s *Simplifier) cached(ctx context.Context, key string) (Explanation, bool) {
	if s.cache == nil {
		return Explanation{}, false
	}

	var explanation Explanation
	found, err := s.cache.GetJSON(ctx, key, &explanation)
	if err != nil {
		slog.Warn("Explanation cache read failed", "key", key, "error", err)
		return Explanation{}, false
	}
	return explanation, found
}

func (s *Simplifier) store(ctx context.Context, key string, explanation Explanation) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, explanation, s.cacheTTL); err != nil {
		slog.Warn("Explanation cache write failed", "key", key, "error", err)
	}
}

func explanationKey(provider, title, description string, level Level) string {
	hash := sha256.Sum256([]byte(title + "\x00" + description))
	return fmt.Sprintf("explain:%s:%s:%x", provider, level, hash[:8])
}
