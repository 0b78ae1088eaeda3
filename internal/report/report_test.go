package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow-app/studyflow/internal/performance"
)

func sampleSummary() *performance.Summary {
	return &performance.Summary{
		TotalReviews:     42,
		RetentionRate:    71.4,
		LearningVelocity: 12.5,
		MeanQuality:      3.8,
		MeanEaseFactor:   2.6,
		Mastery:          performance.MasteryIntermediate,
		Difficulties: []performance.TopicDifficulty{
			{Topic: "calculus", Reviews: 12, Difficulty: 1.86, Trend: performance.TrendImproving},
			{Topic: "organic chemistry", Reviews: 9, Difficulty: 3.14, Trend: performance.TrendDeclining},
		},
		OptimalHours: []performance.StudyHour{
			{Hour: 20, Reviews: 11, MeanQuality: 4.2},
			{Hour: 9, Reviews: 6, MeanQuality: 3.9},
		},
		Recommendations: []string{
			"Schedule more frequent reviews to push retention above 70%.",
		},
	}
}

func TestRender(t *testing.T) {
	t.Run("includes every section", func(t *testing.T) {
		var buf bytes.Buffer
		Render(&buf, "u1", sampleSummary())

		out := buf.String()
		assert.Contains(t, out, "Performance report for u1")
		assert.Contains(t, out, "Retention rate:    71.4%")
		assert.Contains(t, out, "intermediate")
		assert.Contains(t, out, "calculus")
		assert.Contains(t, out, "20:00")
		assert.Contains(t, out, "Schedule more frequent reviews")
	})

	t.Run("empty history renders a placeholder", func(t *testing.T) {
		var buf bytes.Buffer
		Render(&buf, "u1", &performance.Summary{})
		assert.Contains(t, buf.String(), "No reviews recorded yet.")
	})
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, "u1", sampleSummary()))

	out := buf.String()
	assert.Contains(t, out, "# Performance report for u1")
	assert.Contains(t, out, "| Retention rate | 71.4% |")
	assert.Contains(t, out, "| calculus | 1.86 | improving | 12 |")
	assert.Contains(t, out, "| 20:00 | 4.20 | 11 |")
	assert.Contains(t, out, "- Schedule more frequent reviews")
}

func TestExportPDF(t *testing.T) {
	t.Run("rejects non-markdown input", func(t *testing.T) {
		_, err := ExportPDF("report.txt")
		assert.Error(t, err)
	})

	t.Run("converts a markdown report", func(t *testing.T) {
		dir := t.TempDir()
		mdPath := filepath.Join(dir, "report.md")

		var buf bytes.Buffer
		require.NoError(t, WriteMarkdown(&buf, "u1", sampleSummary()))
		require.NoError(t, os.WriteFile(mdPath, buf.Bytes(), 0o644))

		pdfPath, err := ExportPDF(mdPath)
		require.NoError(t, err)
		assert.FileExists(t, pdfPath)
	})
}
