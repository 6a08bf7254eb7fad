package detector

import (
	"a11y-lint/src/model"
	"a11y-lint/src/util"
)

// Runner drives the rule families across a document and aggregates their
// output into one ordered issue list: primary order is line index,
// secondary is family declaration order, tertiary is rule declaration
// order within the family. Each pass works on an immutable snapshot and
// keeps no state between passes, so running twice on the same document
// yields an identical list.
type Runner struct {
	registry *Registry
}

// NewRunner creates a runner over the default registry.
func NewRunner() *Runner {
	return NewRunnerWithRegistry(NewRegistry())
}

// NewRunnerWithRegistry creates a runner over an explicit registry;
// tests use this to analyze with a reduced rule set.
func NewRunnerWithRegistry(reg *Registry) *Runner {
	return &Runner{registry: reg}
}

// Registry returns the runner's rule registry.
func (r *Runner) Registry() *Registry {
	return r.registry
}

// Analyze runs every family over every line of the document.
func (r *Runner) Analyze(doc *model.Document) []model.Issue {
	var all []model.Issue
	for idx := 0; idx < doc.LineCount(); idx++ {
		lc := NewLineContext(doc, idx)
		if lc.Line == "" {
			continue
		}
		for _, fam := range r.registry.Families() {
			all = append(all, r.RunFamily(fam, lc)...)
		}
	}
	return all
}

// AnalyzeLine runs every family against a single line context and
// concatenates their results in registration order.
func (r *Runner) AnalyzeLine(lc LineContext) []model.Issue {
	var out []model.Issue
	for _, fam := range r.registry.Families() {
		out = append(out, r.RunFamily(fam, lc)...)
	}
	return out
}

// RunFamily runs every rule of one family against the line context. A
// rule that panics on pathological input is skipped and logged; one bad
// rule must not blank the rest of the document's diagnostics.
func (r *Runner) RunFamily(fam Family, lc LineContext) []model.Issue {
	var out []model.Issue
	for _, rule := range fam.Rules {
		out = append(out, r.safeCheck(fam, rule, lc)...)
	}
	return out
}

func (r *Runner) safeCheck(fam Family, rule Rule, lc LineContext) (issues []model.Issue) {
	defer func() {
		if rec := recover(); rec != nil {
			util.Warn("Rule %s/%s panicked on line %d: %v", fam.Name, rule.Name, lc.Index+1, rec)
			issues = nil
		}
	}()
	return rule.Check(lc)
}

// Diagnostics runs a full analysis pass and converts every issue into the
// host-facing diagnostic form. The returned slice fully supersedes any
// previous pass's diagnostics; passes are never merged.
func (r *Runner) Diagnostics(doc *model.Document) []model.Diagnostic {
	issues := r.Analyze(doc)
	diags := make([]model.Diagnostic, len(issues))
	for i, is := range issues {
		diags[i] = model.ToDiagnostic(is)
	}
	return diags
}
