package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"a11y-lint/src/config"
	"a11y-lint/src/model"
	"a11y-lint/src/service/repair"
	"a11y-lint/src/util"
)

// RepairController drives the assisted-repair workflow for a file on
// disk. All failure modes leave the file byte-for-byte unchanged.
type RepairController struct {
	cfg      *config.Config
	workflow *repair.Workflow
}

// NewRepairController creates a new repair controller
func NewRepairController(cfg *config.Config) *RepairController {
	return &RepairController{
		cfg:      cfg,
		workflow: repair.NewWorkflow(cfg.GenAI),
	}
}

// SuggestAlt computes the alt-text edit for one line of a file without
// applying it. Line numbers are 1-based as presented to the user.
func (c *RepairController) SuggestAlt(ctx context.Context, filePath string, line int) (repair.Edit, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return repair.Edit{}, fmt.Errorf("reading %s: %w", filePath, err)
	}

	doc := model.NewDocument(string(data))
	if line < 1 || line > doc.LineCount() {
		return repair.Edit{}, fmt.Errorf("line %d is out of range; %s has %d lines", line, filePath, doc.LineCount())
	}

	return c.workflow.SuggestAlt(ctx, doc, line-1)
}

// ApplyEdit writes the single-line replacement back to the file as one
// atomic whole-file rewrite. Line endings of untouched lines are
// preserved; a CRLF target line keeps its carriage return.
func (c *RepairController) ApplyEdit(filePath string, edit repair.Edit) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filePath, err)
	}

	lines := strings.Split(string(data), "\n")
	if edit.LineIndex < 0 || edit.LineIndex >= len(lines) {
		return fmt.Errorf("edit targets line %d, but %s has %d lines", edit.LineIndex+1, filePath, len(lines))
	}

	newText := edit.NewText
	if strings.HasSuffix(lines[edit.LineIndex], "\r") && !strings.HasSuffix(newText, "\r") {
		newText += "\r"
	}
	lines[edit.LineIndex] = newText

	if err := os.WriteFile(filePath, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filePath, err)
	}

	util.Info("Applied alt-text edit to %s:%d", filePath, edit.LineIndex+1)
	return nil
}
