package simplify

import (
	"context"
	"strings"
	"time"
)

type Level string

const (
	Basic    Level = "basic"
	Detailed Level = "detailed"
	Expert   Level = "expert"
)

// ParseLevel maps user input to a reading level, defaulting to basic.
func ParseLevel(s string) Level {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case Basic, Detailed, Expert:
		return l
	default:
		return Basic
	}
}

// Generator sends a prompt to a text generation provider and returns its
// best-effort answer.
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Cache stores generated explanations. Implementations report a miss with
// found == false and a nil error.
type Cache interface {
	GetJSON(ctx context.Context, key string, v any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
}

type Explanation struct {
	Text      string `json:"text"`
	AIPowered bool   `json:"ai_powered"`
}

type Term struct {
	Term        string `json:"term"`
	Explanation string `json:"explanation"`
	Count       int    `json:"count"`
}

type Complexity struct {
	Level       string `json:"complexity"`
	Readability int    `json:"readability_score"`
}

type Page struct {
	URL     string
	Title   string
	Excerpt string
	Text    string
}
