package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11y-lint/src/model"
)

func TestCustomControlWithoutTabindex(t *testing.T) {
	issues := analyze(`<div role="button" onclick="f()">X</div>`)

	missing := ruleIssues(issues, "interactive-role-no-tabindex")
	require.Len(t, missing, 1)
	assert.Equal(t, model.SeverityHigh, missing[0].Severity)

	assert.Empty(t, ruleIssues(issues, "tabindex-redundant"),
		"the redundant-tabindex rule must not fire when no tabindex exists")
}

func TestCustomControlWithPositiveTabindex(t *testing.T) {
	issues := analyze(`<div role="button" onclick="f()" tabindex="5">X</div>`)

	highs := sevIssues(issues, model.SeverityHigh)
	mediums := sevIssues(issues, model.SeverityMedium)
	assert.NotEmpty(t, highs, "the keyboard gap is still a high-severity finding")
	assert.NotEmpty(t, mediums)

	positive := ruleIssues(issues, "tabindex-positive")
	require.Len(t, positive, 1)
	assert.Equal(t, model.SeverityMedium, positive[0].Severity)
	assert.Contains(t, positive[0].Message, "5")

	assert.Empty(t, ruleIssues(issues, "interactive-role-no-tabindex"))
}

func TestTabindexValues(t *testing.T) {
	tests := []struct {
		name string
		line string
		rule string
		sev  model.Severity
	}{
		{"negative", `<div tabindex="-1" role="note">x</div>`, "tabindex-negative", model.SeverityHigh},
		{"zero without role", `<div tabindex="0">x</div>`, "tabindex-zero-static", model.SeverityHigh},
		{"non numeric", `<div tabindex="first" role="note">x</div>`, "tabindex-not-numeric", model.SeverityHigh},
		{"too large", `<div tabindex="40000" role="note">x</div>`, "tabindex-too-large", model.SeverityLow},
		{"redundant on button", `<button tabindex="0">Go</button>`, "tabindex-redundant", model.SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ruleIssues(analyze(tt.line), tt.rule)
			require.Len(t, issues, 1)
			assert.Equal(t, tt.sev, issues[0].Severity)
		})
	}
}

func TestTabindexConflicts(t *testing.T) {
	tests := []struct {
		name string
		line string
		rule string
		sev  model.Severity
	}{
		{"aria-hidden", `<div tabindex="0" role="button" onkeydown="k()" aria-hidden="true">x</div>`, "tabindex-aria-hidden", model.SeverityHigh},
		{"presentation role", `<div tabindex="0" role="presentation">x</div>`, "tabindex-presentation", model.SeverityHigh},
		{"disabled", `<button tabindex="1" disabled>x</button>`, "tabindex-disabled", model.SeverityMedium},
		{"hidden", `<div tabindex="0" role="button" onkeydown="k()" hidden>x</div>`, "tabindex-hidden", model.SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ruleIssues(analyze(tt.line), tt.rule)
			require.Len(t, issues, 1)
			assert.Equal(t, tt.sev, issues[0].Severity)
		})
	}
}

func TestTabindexCleanLines(t *testing.T) {
	for _, line := range []string{
		`<button onclick="f()">Go</button>`,
		`<a href="/home">Home</a>`,
		`<div class="wrapper">text</div>`,
	} {
		assert.Empty(t, famIssues(analyze(line), model.FamilyTabindex), "line %q", line)
	}
}
