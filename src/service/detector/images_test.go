package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a11y-lint/src/model"
)

func TestImgMissingAlt(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{"no alt", `<img src="logo.png">`, 1},
		{"self closing", `<img src="logo.png" />`, 1},
		{"alt present", `<img src="logo.png" alt="Company logo">`, 0},
		{"empty alt still counts as declared", `<img src="logo.png" alt="">`, 0},
		{"no image at all", `<p>hello</p>`, 0},
		{"unterminated tag", `<img src="logo.png"`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := ruleIssues(analyze(tt.line), "img-missing-alt")
			require.Len(t, issues, tt.want)
			if tt.want > 0 {
				assert.Equal(t, model.SeverityHigh, issues[0].Severity)
				assert.Contains(t, issues[0].Message, "alt")
			}
		})
	}
}

func TestImgEmptyAlt(t *testing.T) {
	for _, line := range []string{`<img src="x.png" alt="">`, `<img src="x.png" alt=''>`, `<img src="x.png" alt="   ">`} {
		issues := famIssues(analyze(line), model.FamilyImages)
		require.Len(t, issues, 1, "line %q", line)
		assert.Equal(t, "img-empty-alt", issues[0].Rule)
		assert.Equal(t, model.SeverityMedium, issues[0].Severity)
	}
}

func TestImgFilenameAlt(t *testing.T) {
	issues := ruleIssues(analyze(`<img src="x.png" alt="photo.jpg">`), "img-filename-alt")
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityMedium, issues[0].Severity)

	assert.Empty(t, ruleIssues(analyze(`<img src="x.png" alt="A red bicycle">`), "img-filename-alt"))
}

func TestImgLongAlt(t *testing.T) {
	long := strings.Repeat("a very long description ", 10)
	issues := ruleIssues(analyze(`<img src="x.png" alt="`+long+`">`), "img-long-alt")
	require.Len(t, issues, 1)
	assert.Equal(t, model.SeverityLow, issues[0].Severity)
}

func TestAreaAndInputImageAlt(t *testing.T) {
	issues := analyze(`<area shape="rect" coords="0,0,1,1" href="a.html">`)
	assert.Len(t, ruleIssues(issues, "area-missing-alt"), 1)

	issues = analyze(`<input type="image" src="go.png">`)
	assert.Len(t, ruleIssues(issues, "input-image-missing-alt"), 1)

	issues = analyze(`<input type="image" src="go.png" alt="Go">`)
	assert.Empty(t, ruleIssues(issues, "input-image-missing-alt"))
}

func TestSVGNotLabelled(t *testing.T) {
	assert.Len(t, ruleIssues(analyze(`<svg viewBox="0 0 10 10">`), "svg-not-labelled"), 1)
	assert.Empty(t, ruleIssues(analyze(`<svg role="img" aria-label="Chart">`), "svg-not-labelled"))
	assert.Empty(t, ruleIssues(analyze(`<svg aria-hidden="true">`), "svg-not-labelled"))
}
