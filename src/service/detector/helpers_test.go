package detector

import (
	"a11y-lint/src/model"
)

// analyze runs a full pass over the given document text with a fresh
// registry.
func analyze(text string) []model.Issue {
	return NewRunner().Analyze(model.NewDocument(text))
}

// famIssues filters an issue list down to one family.
func famIssues(issues []model.Issue, fam model.Family) []model.Issue {
	var out []model.Issue
	for _, is := range issues {
		if is.Family == fam {
			out = append(out, is)
		}
	}
	return out
}

// ruleIssues filters an issue list down to one rule name.
func ruleIssues(issues []model.Issue, rule string) []model.Issue {
	var out []model.Issue
	for _, is := range issues {
		if is.Rule == rule {
			out = append(out, is)
		}
	}
	return out
}

// sevIssues filters an issue list down to one severity.
func sevIssues(issues []model.Issue, sev model.Severity) []model.Issue {
	var out []model.Issue
	for _, is := range issues {
		if is.Severity == sev {
			out = append(out, is)
		}
	}
	return out
}
