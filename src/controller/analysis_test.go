package controller

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11y-lint/src/config"
	"a11y-lint/src/model"
)

func newController() *AnalysisController {
	return NewAnalysisController(config.DefaultConfig())
}

func TestAnalyzeTextSummary(t *testing.T) {
	text := strings.Join([]string{
		`<img src="logo.png">`,
		`<p lang="en">fine</p>`,
	}, "\n")

	report := newController().AnalyzeText("page.html", text)
	assert.Equal(t, "page.html", report.FilePath)
	assert.Equal(t, len(report.Issues), report.Summary.TotalIssues)
	assert.Greater(t, report.Summary.BySeverity[model.SeverityHigh], 0)
	assert.Greater(t, report.Summary.ByFamily[model.FamilyImages], 0)

	var total int
	for _, n := range report.Summary.ByFamily {
		total += n
	}
	assert.Equal(t, report.Summary.TotalIssues, total)
}

func TestScore(t *testing.T) {
	c := newController()

	clean := c.AnalyzeText("clean.html", `<p lang="en">hello</p>`)
	assert.Equal(t, 100.0, clean.Summary.Score)

	dirty := c.AnalyzeText("dirty.html", `<img src="a.png">`)
	assert.Less(t, dirty.Summary.Score, 100.0)
	assert.GreaterOrEqual(t, dirty.Summary.Score, 0.0)
}

func TestScoreFloorsAtZero(t *testing.T) {
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, `<img src="a.png">`)
	}
	report := newController().AnalyzeText("bad.html", strings.Join(lines, "\n"))
	assert.Equal(t, 0.0, report.Summary.Score)
}

func TestAnalyzeFilesPreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 3)
	for _, name := range []string{"a.html", "b.html", "c.html"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(`<img src="x.png">`), 0o644))
		paths = append(paths, p)
	}

	reports, err := newController().AnalyzeFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	for i, p := range paths {
		assert.Equal(t, p, reports[i].FilePath)
	}
}

func TestAnalyzeFilesMissingFile(t *testing.T) {
	_, err := newController().AnalyzeFiles(context.Background(),
		[]string{filepath.Join(t.TempDir(), "missing.html")})
	require.Error(t, err)
}

func TestAnalyzeFileReadsFromDisk(t *testing.T) {
	p := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(p, []byte(`<img src="x.png">`), 0o644))

	report, err := newController().AnalyzeFile(p)
	require.NoError(t, err)
	assert.Equal(t, p, report.FilePath)
	assert.NotEmpty(t, report.Issues)
}
