package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11y-lint/src/model"
)

func TestColorSoleSignal(t *testing.T) {
	issues := ruleIssues(analyze(`<span style="color: red">overdue</span>`), "color-sole-signal")
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityHigh, issues[0].Severity)

	// A textual signal alongside the color downgrades the finding.
	assert.Empty(t, ruleIssues(analyze(`<span style="color: red" title="Overdue invoice">overdue</span>`), "color-sole-signal"))
	// Non-named values are not treated as a semantic signal.
	assert.Empty(t, ruleIssues(analyze(`.muted { color: #777; }`), "color-sole-signal"))
}

func TestColorDeclarationHint(t *testing.T) {
	assert.Len(t, ruleIssues(analyze(`.muted { color: #777; background-color: #fff; }`), "color-declaration"), 1)

	// The sole-signal rule owns lines with a bare color name and no text cue.
	report := analyze(`<span style="color: red">overdue</span>`)
	assert.Empty(t, ruleIssues(report, "color-declaration"))
	assert.Len(t, ruleIssues(report, "color-sole-signal"), 1)
}

func TestColorNoBackground(t *testing.T) {
	assert.Len(t, ruleIssues(analyze(`.note { color: #333; }`), "color-no-background"), 1)
	assert.Empty(t, ruleIssues(analyze(`.note { color: #333; background-color: #fff; }`), "color-no-background"))
	assert.Empty(t, ruleIssues(analyze(`.note { color: #333; background: white; }`), "color-no-background"))
}

func TestRedGreenPairing(t *testing.T) {
	issues := ruleIssues(analyze(`.status { color: red; background-color: green; }`), "red-green-pairing")
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityMedium, issues[0].Severity)

	assert.Empty(t, ruleIssues(analyze(`.status { color: red; background-color: white; }`), "red-green-pairing"))
}
