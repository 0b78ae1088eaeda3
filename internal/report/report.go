// Package report renders a user's performance summary for the CLI,
// as colored terminal output, markdown, or an exported PDF.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/studyflow-app/studyflow/internal/performance"
)

// Render writes the summary as a colored terminal report.
func Render(w io.Writer, userID string, s *performance.Summary) {
	heading := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgWhite, color.Bold)

	heading.Fprintf(w, "Performance report for %s\n", userID)
	fmt.Fprintln(w)

	if s.TotalReviews == 0 {
		fmt.Fprintln(w, "No reviews recorded yet.")
		return
	}

	label.Fprintln(w, "Overview")
	fmt.Fprintf(w, "  Reviews:           %d\n", s.TotalReviews)
	fmt.Fprintf(w, "  Retention rate:    %.1f%%\n", s.RetentionRate)
	fmt.Fprintf(w, "  Learning velocity: %.1f\n", s.LearningVelocity)
	fmt.Fprintf(w, "  Mean quality:      %.2f\n", s.MeanQuality)
	fmt.Fprintf(w, "  Mastery level:     %s\n", masteryColor(s.Mastery).Sprint(string(s.Mastery)))
	fmt.Fprintln(w)

	if len(s.Difficulties) > 0 {
		label.Fprintln(w, "Topic difficulty")
		for _, d := range s.Difficulties {
			fmt.Fprintf(w, "  %-24s %.2f  %s (%d reviews)\n",
				d.Topic, d.Difficulty, trendColor(d.Trend).Sprint(string(d.Trend)), d.Reviews)
		}
		fmt.Fprintln(w)
	}

	if len(s.OptimalHours) > 0 {
		label.Fprintln(w, "Best study hours")
		for _, h := range s.OptimalHours {
			fmt.Fprintf(w, "  %02d:00  mean quality %.2f over %d reviews\n",
				h.Hour, h.MeanQuality, h.Reviews)
		}
		fmt.Fprintln(w)
	}

	if len(s.Recommendations) > 0 {
		label.Fprintln(w, "Recommendations")
		for _, r := range s.Recommendations {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}
}

// WriteMarkdown writes the summary as a markdown document.
func WriteMarkdown(w io.Writer, userID string, s *performance.Summary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Performance report for %s\n\n", userID)

	if s.TotalReviews == 0 {
		b.WriteString("No reviews recorded yet.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Reviews | %d |\n", s.TotalReviews)
	fmt.Fprintf(&b, "| Retention rate | %.1f%% |\n", s.RetentionRate)
	fmt.Fprintf(&b, "| Learning velocity | %.1f |\n", s.LearningVelocity)
	fmt.Fprintf(&b, "| Mean quality | %.2f |\n", s.MeanQuality)
	fmt.Fprintf(&b, "| Mastery level | %s |\n\n", s.Mastery)

	if len(s.Difficulties) > 0 {
		b.WriteString("## Topic difficulty\n\n")
		b.WriteString("| Topic | Difficulty | Trend | Reviews |\n|---|---|---|---|\n")
		for _, d := range s.Difficulties {
			fmt.Fprintf(&b, "| %s | %.2f | %s | %d |\n", d.Topic, d.Difficulty, d.Trend, d.Reviews)
		}
		b.WriteString("\n")
	}

	if len(s.OptimalHours) > 0 {
		b.WriteString("## Best study hours\n\n")
		b.WriteString("| Hour | Mean quality | Reviews |\n|---|---|---|\n")
		for _, h := range s.OptimalHours {
			fmt.Fprintf(&b, "| %02d:00 | %.2f | %d |\n", h.Hour, h.MeanQuality, h.Reviews)
		}
		b.WriteString("\n")
	}

	if len(s.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, r := range s.Recommendations {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func masteryColor(m performance.Mastery) *color.Color {
	switch m {
	case performance.MasteryAdvanced:
		return color.New(color.FgGreen)
	case performance.MasteryIntermediate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func trendColor(t performance.Trend) *color.Color {
	switch t {
	case performance.TrendImproving:
		return color.New(color.FgGreen)
	case performance.TrendDeclining:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}
