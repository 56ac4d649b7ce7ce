package main

import (
	"strings"
	"testing"

	"github.com/lysyi3m/news-pulse/app/aggregate"
	"github.com/lysyi3m/news-pulse/app/news"
	"github.com/lysyi3m/news-pulse/app/pipeline"
	"github.com/lysyi3m/news-pulse/app/sentiment"
)

func TestRender(t *testing.T) {
	report := &pipeline.Report{
		Articles: []news.Article{
			{
				Title:               "TCS wins large contract",
				URL:                 "https://example.com/tcs",
				PublishedAt:         "2025-03-10T10:00:00Z",
				Source:              news.Source{Name: "Mint"},
				Sentiment:           sentiment.Positive,
				SentimentConfidence: 0.84,
			},
		},
		TotalResults: 1,
		Summary: aggregate.Summary{
			OverallSentiment:  sentiment.Positive,
			SentimentCounts:   aggregate.Counts{Positive: 1},
			AverageConfidence: 0.84,
			Company:           "TCS",
			DateRange:         news.OneWeek,
			Reasoning:         "Analysis of 1 articles shows positive sentiment",
			SourcesUsed:       []string{"Mint"},
		},
		Status: pipeline.StatusSuccess,
	}

	out := Render(report)

	for _, expected := range []string{
		"TCS · 1w",
		"POSITIVE",
		"confidence 0.840",
		"[positive 0.84] TCS wins large contract",
		"Mint",
		"https://example.com/tcs",
		"Sources: Mint",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q, got:\n%s", expected, out)
		}
	}
	if strings.Contains(out, "Sample data") {
		t.Error("Expected no sample data banner")
	}
}

func TestRenderSampleData(t *testing.T) {
	report := &pipeline.Report{
		Summary: aggregate.Summary{Company: "Acme", DateRange: news.OneDay, OverallSentiment: sentiment.Neutral},
		Status:  pipeline.StatusSampleData,
		Message: "Live sources returned no articles",
	}

	out := Render(report)

	if !strings.Contains(out, "Sample data: Live sources returned no articles") {
		t.Errorf("Expected sample data banner, got:\n%s", out)
	}
}

func TestRunRejectsMissingCompany(t *testing.T) {
	if code := run([]string{}); code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
	if code := run([]string{"--date-range", "9y", "TCS"}); code != 2 {
		t.Errorf("Expected exit code 2 for invalid range, got %d", code)
	}
}
