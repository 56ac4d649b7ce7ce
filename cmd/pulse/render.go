package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lysyi3m/news-pulse/app/pipeline"
	"github.com/lysyi3m/news-pulse/app/sentiment"
)

var (
	positiveColor = lipgloss.Color("#2DA44E")
	negativeColor = lipgloss.Color("#CF222E")
	neutralColor  = lipgloss.Color("#6E7681")
	primaryColor  = lipgloss.Color("#0969DA")
	sourceColor   = lipgloss.Color("#FFA657")
	dateColor     = lipgloss.Color("#A371F7")

	HeaderStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(positiveColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(negativeColor).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(neutralColor)

	SourceStyle = lipgloss.NewStyle().
			Foreground(sourceColor).
			Bold(true)

	DateStyle = lipgloss.NewStyle().
			Foreground(dateColor).
			Italic(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D29922")).
			Bold(true)
)

func labelStyle(label sentiment.Label) lipgloss.Style {
	switch label {
	case sentiment.Positive:
		return lipgloss.NewStyle().Foreground(positiveColor).Bold(true)
	case sentiment.Negative:
		return lipgloss.NewStyle().Foreground(negativeColor).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(neutralColor).Bold(true)
	}
}

// Render formats a report for the terminal.
func Render(report *pipeline.Report) string {
	var b strings.Builder
	summary := report.Summary

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%s · %s", summary.Company, summary.DateRange)))
	b.WriteString("\n")

	if report.Status == pipeline.StatusSampleData {
		b.WriteString(WarningStyle.Render("Sample data: " + report.Message))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Overall: %s (confidence %.3f)\n",
		labelStyle(summary.OverallSentiment).Render(strings.ToUpper(string(summary.OverallSentiment))),
		summary.AverageConfidence)
	fmt.Fprintf(&b, "Articles: %d  %s %d  %s %d  %s %d\n",
		report.TotalResults,
		labelStyle(sentiment.Positive).Render("+"), summary.SentimentCounts.Positive,
		labelStyle(sentiment.Negative).Render("-"), summary.SentimentCounts.Negative,
		labelStyle(sentiment.Neutral).Render("="), summary.SentimentCounts.Neutral)
	b.WriteString(DimStyle.Render(summary.Reasoning))
	b.WriteString("\n\n")

	for i, article := range report.Articles {
		fmt.Fprintf(&b, "%2d. %s %s\n", i+1,
			labelStyle(article.Sentiment).Render(fmt.Sprintf("[%s %.2f]", article.Sentiment, article.SentimentConfidence)),
			article.Title)
		fmt.Fprintf(&b, "    %s  %s\n", SourceStyle.Render(article.Source.Name), DateStyle.Render(article.PublishedAt))
		if article.URL != "" {
			b.WriteString("    " + DimStyle.Render(article.URL) + "\n")
		}
	}

	if len(summary.SourcesUsed) > 0 {
		b.WriteString("\n" + DimStyle.Render("Sources: "+strings.Join(summary.SourcesUsed, ", ")))
	}

	return b.String()
}
