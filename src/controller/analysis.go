package controller

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"a11y-lint/src/config"
	"a11y-lint/src/model"
	"a11y-lint/src/service/detector"
	"a11y-lint/src/util"
)

// AnalysisController orchestrates accessibility analysis over one or more
// documents.
type AnalysisController struct {
	cfg    *config.Config
	runner *detector.Runner
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{
		cfg:    cfg,
		runner: detector.NewRunner(),
	}
}

// AnalyzeText runs a full analysis pass over one document's text. Each
// pass works on an immutable snapshot taken here, so concurrent edits to
// the underlying file never produce a half-observed buffer.
func (c *AnalysisController) AnalyzeText(filePath, text string) *model.AnalysisReport {
	startTime := time.Now()
	doc := model.NewDocument(text)

	issues := c.runner.Analyze(doc)

	report := &model.AnalysisReport{
		FilePath:    filePath,
		GeneratedAt: time.Now().UTC(),
		Issues:      issues,
		Summary:     c.generateSummary(issues),
	}

	util.Debug("Analyzed %s: %d lines, %d issues (took %v)",
		filePath, doc.LineCount(), len(issues), time.Since(startTime))
	return report
}

// AnalyzeFile reads and analyzes a single file.
func (c *AnalysisController) AnalyzeFile(filePath string) (*model.AnalysisReport, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}
	return c.AnalyzeText(filePath, string(data)), nil
}

// AnalyzeFiles analyzes several files concurrently. Results come back in
// input order regardless of completion order; per-document issue ordering
// is a contract, and so is the order across files.
func (c *AnalysisController) AnalyzeFiles(ctx context.Context, paths []string) ([]*model.AnalysisReport, error) {
	util.Info("Analyzing %d file(s)", len(paths))

	reports := make([]*model.AnalysisReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxParallel())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := c.AnalyzeFile(path)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *AnalysisController) maxParallel() int {
	if n := c.cfg.Concurrency.MaxParallelFiles; n > 0 {
		return n
	}
	return 1
}

func (c *AnalysisController) generateSummary(issues []model.Issue) model.ReportSummary {
	byFamily := make(map[model.Family]int)
	bySeverity := make(map[model.Severity]int)

	for _, is := range issues {
		byFamily[is.Family]++
		bySeverity[is.Severity]++
	}

	return model.ReportSummary{
		TotalIssues: len(issues),
		ByFamily:    byFamily,
		BySeverity:  bySeverity,
		Score:       c.calculateScore(issues),
	}
}

// calculateScore turns the issue list into a 0-100 accessibility score,
// weighting severities the way the summary groups them.
func (c *AnalysisController) calculateScore(issues []model.Issue) float64 {
	weights := map[model.Severity]int{
		model.SeverityLow:    1,
		model.SeverityMedium: 3,
		model.SeverityHigh:   7,
	}

	var penalty int
	for _, is := range issues {
		penalty += weights[is.Severity]
	}

	score := 100 - float64(penalty)/2.0
	if score < 0 {
		score = 0
	}
	return score
}
