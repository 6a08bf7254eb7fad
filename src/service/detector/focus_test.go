package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11y-lint/src/model"
)

func TestFocusOutlineRemoval(t *testing.T) {
	issues := ruleIssues(analyze(`a:focus { outline: none; }`), "focus-outline-none")
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityHigh, issues[0].Severity)

	// outline: 0 is the same suppression.
	assert.Len(t, ruleIssues(analyze(`button:focus { outline: 0; }`), "focus-outline-none"), 1)
	assert.Empty(t, ruleIssues(analyze(`a:focus { outline: 2px solid blue; }`), "focus-outline-none"))
}

func TestInlineOutlineNone(t *testing.T) {
	issues := ruleIssues(analyze(`<button style="outline: none">Go</button>`), "inline-outline-none")
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityHigh, issues[0].Severity)

	assert.Empty(t, ruleIssues(analyze(`<button style="color: red">Go</button>`), "inline-outline-none"))
}

func TestOutlineNoneNoReplacement(t *testing.T) {
	assert.Len(t, ruleIssues(analyze(`.card { outline: none; }`), "outline-none-no-replacement"), 1)
	// A declared replacement indicator is accepted.
	assert.Empty(t, ruleIssues(analyze(`.card { outline: none; box-shadow: 0 0 2px blue; }`), "outline-none-no-replacement"))
	// :focus selectors are covered by the dedicated rule.
	assert.Empty(t, ruleIssues(analyze(`a:focus { outline: none; }`), "outline-none-no-replacement"))
}

func TestFocusRejectionHandlers(t *testing.T) {
	issues := ruleIssues(analyze(`<input type="text" onfocus="this.blur()">`), "onfocus-blur")
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityHigh, issues[0].Severity)

	assert.Len(t, ruleIssues(analyze(`<input type="text" onblur="this.focus()">`), "onblur-refocus"), 1)
	assert.Empty(t, ruleIssues(analyze(`<input type="text" onfocus="highlight()">`), "onfocus-blur"))
}

func TestAutofocusAndDialog(t *testing.T) {
	assert.Len(t, ruleIssues(analyze(`<input type="search" autofocus>`), "autofocus-used"), 1)

	assert.Len(t, ruleIssues(analyze(`<div role="dialog" aria-label="Settings">`), "dialog-no-modal"), 1)
	assert.Empty(t, ruleIssues(analyze(`<div role="dialog" aria-modal="true" aria-label="Settings">`), "dialog-no-modal"))
}

func TestInteractiveOptedOut(t *testing.T) {
	assert.Len(t, ruleIssues(analyze(`<button tabindex="-1">Hidden step</button>`), "interactive-opted-out"), 1)
	assert.Empty(t, ruleIssues(analyze(`<div tabindex="-1">scroll target</div>`), "interactive-opted-out"))
}

func TestFocusVisibleSuppressed(t *testing.T) {
	issues := ruleIssues(analyze(`:focus-visible { outline: none; }`), "focus-visible-suppressed")
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityHigh, issues[0].Severity)

	assert.Empty(t, ruleIssues(analyze(`:focus-visible { outline: 3px solid; }`), "focus-visible-suppressed"))
}
