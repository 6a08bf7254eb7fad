package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11y-lint/src/config"
	"a11y-lint/src/model"
)

func sampleReport() *model.AnalysisReport {
	issues := []model.Issue{
		{
			Family:   model.FamilyImages,
			Rule:     "img-missing-alt",
			Severity: model.SeverityHigh,
			Line:     1,
			Message:  "Image has no alt attribute",
			Span:     model.WholeLineSpan(0, `<img src="a.png">`),
		},
		{
			Family:   model.FamilySemantic,
			Rule:     "generic-link-text",
			Severity: model.SeverityMedium,
			Line:     3,
			Message:  `Link text "click here" is generic`,
			Span:     model.WholeLineSpan(2, `<a href="/x">click here</a>`),
		},
	}
	return &model.AnalysisReport{
		FilePath:    "page.html",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Issues:      issues,
		Summary: model.ReportSummary{
			TotalIssues: 2,
			ByFamily:    map[model.Family]int{model.FamilyImages: 1, model.FamilySemantic: 1},
			BySeverity:  map[model.Severity]int{model.SeverityHigh: 1, model.SeverityMedium: 1},
			Score:       95,
		},
	}
}

func TestGenerateJSON(t *testing.T) {
	g := NewGenerator(config.OutputConfig{})
	out, err := g.Generate(sampleReport(), "json")
	require.NoError(t, err)

	var decoded model.AnalysisReport
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "page.html", decoded.FilePath)
	assert.Len(t, decoded.Issues, 2)
	assert.Equal(t, "img-missing-alt", decoded.Issues[0].Rule)
}

func TestGenerateMarkdown(t *testing.T) {
	g := NewGenerator(config.OutputConfig{})
	out, err := g.Generate(sampleReport(), "markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# Accessibility Analysis Report")
	assert.Contains(t, out, "**File:** page.html")
	assert.Contains(t, out, "| high | 1 |")
	assert.Contains(t, out, "| images | 1 |")
	assert.Contains(t, out, "Image has no alt attribute")
}

func TestGenerateText(t *testing.T) {
	g := NewGenerator(config.OutputConfig{Color: false})
	out, err := g.Generate(sampleReport(), "text")
	require.NoError(t, err)

	assert.Contains(t, out, "page.html")
	assert.Contains(t, out, "score 95.0/100")
	assert.Contains(t, out, "Image has no alt attribute")
	assert.Contains(t, out, "high=1, medium=1, low=0")
}

func TestGenerateTextNoIssues(t *testing.T) {
	r := sampleReport()
	r.Issues = nil
	r.Summary = model.ReportSummary{Score: 100}

	g := NewGenerator(config.OutputConfig{Color: false})
	out, err := g.Generate(r, "text")
	require.NoError(t, err)
	assert.Contains(t, out, "No accessibility issues found.")
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	g := NewGenerator(config.OutputConfig{})
	_, err := g.Generate(sampleReport(), "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
