package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11y-lint/src/model"
)

func TestAutocompleteMissing(t *testing.T) {
	issues := ruleIssues(analyze(`<input type="text" name="nickname" aria-label="Nickname">`), "autocomplete-missing")
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityHigh, issues[0].Severity)

	tests := []struct {
		name string
		line string
	}{
		{"declared", `<input type="text" name="nickname" autocomplete="nickname" aria-label="Nickname">`},
		{"checkbox exempt", `<input type="checkbox" name="agree" aria-label="Agree">`},
		{"disabled exempt", `<input type="text" name="nickname" disabled aria-label="Nickname">`},
		{"readonly exempt", `<input type="text" name="ref" readonly aria-label="Reference">`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ruleIssues(analyze(tt.line), "autocomplete-missing"))
		})
	}
}

func TestAutocompleteInvalidToken(t *testing.T) {
	issues := ruleIssues(analyze(`<input type="text" autocomplete="emial" aria-label="Email">`), "autocomplete-invalid-token")
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityHigh, issues[0].Severity)

	tests := []string{
		`<input type="text" autocomplete="name" aria-label="Name">`,
		`<input type="text" autocomplete="off" aria-label="One-off code">`,
		`<input type="text" autocomplete="shipping street-address" aria-label="Street">`,
		`<input type="text" autocomplete="section-blue billing postal-code" aria-label="Postcode">`,
	}
	for _, line := range tests {
		assert.Empty(t, ruleIssues(analyze(line), "autocomplete-invalid-token"), "line %q", line)
	}
}

func TestTypePurposeMismatch(t *testing.T) {
	tests := []struct {
		name string
		line string
		rule string
		want int
	}{
		{"email with name purpose", `<input type="email" autocomplete="name" aria-label="Email">`, "autocomplete-email-mismatch", 1},
		{"email ok", `<input type="email" autocomplete="email" aria-label="Email">`, "autocomplete-email-mismatch", 0},
		{"email username ok", `<input type="email" autocomplete="username" aria-label="Login">`, "autocomplete-email-mismatch", 0},
		{"password with email purpose", `<input type="password" autocomplete="email" aria-label="Password">`, "autocomplete-password-mismatch", 1},
		{"new password ok", `<input type="password" autocomplete="new-password" aria-label="Password">`, "autocomplete-password-mismatch", 0},
		{"otp ok", `<input type="password" autocomplete="one-time-code" aria-label="Code">`, "autocomplete-password-mismatch", 0},
		{"tel with email purpose", `<input type="tel" autocomplete="email" aria-label="Phone">`, "autocomplete-tel-mismatch", 1},
		{"tel national ok", `<input type="tel" autocomplete="tel-national" aria-label="Phone">`, "autocomplete-tel-mismatch", 0},
		{"off is never a mismatch", `<input type="password" autocomplete="off" aria-label="PIN">`, "autocomplete-password-mismatch", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ruleIssues(analyze(tt.line), tt.rule), tt.want)
		})
	}
}

func TestFieldCategoryHeuristics(t *testing.T) {
	tests := []struct {
		name string
		line string
		rule string
		sev  model.Severity
	}{
		{"auth", `<input type="password" name="password" aria-label="Password">`, "auth-field-no-purpose", model.SeverityHigh},
		{"financial", `<input type="text" name="ccnum" aria-label="Card number">`, "financial-field-no-purpose", model.SeverityHigh},
		{"personal", `<input type="text" id="first_name" aria-label="First name">`, "personal-field-no-purpose", model.SeverityHigh},
		{"contact", `<input type="text" name="phone" aria-label="Phone">`, "contact-field-no-purpose", model.SeverityMedium},
		{"address", `<input type="text" name="city" aria-label="City">`, "address-field-no-purpose", model.SeverityMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ruleIssues(analyze(tt.line), tt.rule)
			require.Len(t, issues, 1)
			assert.Equal(t, tt.sev, issues[0].Severity)
		})
	}

	// Declaring a purpose silences the heuristics even when the name matches.
	assert.Empty(t, ruleIssues(
		analyze(`<input type="text" name="city" autocomplete="address-level2" aria-label="City">`),
		"address-field-no-purpose"))
}
