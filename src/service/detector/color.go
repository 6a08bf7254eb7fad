package detector

import (
	"regexp"
	"strings"

	"a11y-lint/src/model"
)

// The color family cannot measure contrast from raw text; it flags
// declarations whose bare color-name tokens suggest color alone is
// carrying meaning, and leaves the rest as hints for manual review.

var (
	colorDeclRe      = regexp.MustCompile(`(?:^|[^-a-zA-Z])(color|background-color)\s*:\s*([^;"'}]+)`)
	colorNameTokenRe = regexp.MustCompile(`[a-zA-Z]+`)
)

func colorRules() []Rule {
	return []Rule{
		{Name: "color-sole-signal", Check: checkColorSoleSignal},
		{Name: "color-declaration", Check: checkColorDeclaration},
		{Name: "color-no-background", Check: checkColorNoBackground},
		{Name: "red-green-pairing", Check: checkRedGreenPairing},
	}
}

// namedColorInDecls reports whether any color declaration on the line uses
// a bare color-name token.
func namedColorInDecls(line string) bool {
	for _, m := range colorDeclRe.FindAllStringSubmatch(line, -1) {
		for _, tok := range colorNameTokenRe.FindAllString(m[2], -1) {
			if cssColorNames[strings.ToLower(tok)] {
				return true
			}
		}
	}
	return false
}

func hasColorDecl(line string) bool {
	return colorDeclRe.MatchString(line)
}

func checkColorSoleSignal(lc LineContext) []model.Issue {
	if !hasColorDecl(lc.Line) || !namedColorInDecls(lc.Line) {
		return nil
	}
	if hasAttr(lc.Line, "aria-label") || hasAttr(lc.Line, "title") {
		return nil
	}
	return one(issue(lc, model.FamilyColor, "color-sole-signal", model.SeverityHigh,
		"A named color appears to be the only signal on this line; color alone is invisible to color-blind and screen reader users."))
}

func checkColorDeclaration(lc LineContext) []model.Issue {
	if !hasColorDecl(lc.Line) {
		return nil
	}
	// Lines already flagged as sole-signal get the stronger message only.
	if namedColorInDecls(lc.Line) && !hasAttr(lc.Line, "aria-label") && !hasAttr(lc.Line, "title") {
		return nil
	}
	return one(issue(lc, model.FamilyColor, "color-declaration", model.SeverityLow,
		"Color declaration found; verify the combination meets the 4.5:1 contrast ratio for normal text."))
}

func checkColorNoBackground(lc LineContext) []model.Issue {
	if !strings.Contains(lc.Line, "color:") && !strings.Contains(lc.Line, "color :") {
		return nil
	}
	if strings.Contains(lc.Line, "background-color") || strings.Contains(lc.Line, "background:") {
		return nil
	}
	// Only the foreground is set; the effective background is unknown.
	if !hasColorDecl(lc.Line) {
		return nil
	}
	return one(issue(lc, model.FamilyColor, "color-no-background", model.SeverityLow,
		"Text color is set without a background color; the effective contrast depends on inherited styles and cannot be verified here."))
}

func checkRedGreenPairing(lc LineContext) []model.Issue {
	if !hasColorDecl(lc.Line) {
		return nil
	}
	lower := strings.ToLower(lc.Line)
	if !strings.Contains(lower, "red") || !strings.Contains(lower, "green") {
		return nil
	}
	return one(issue(lc, model.FamilyColor, "red-green-pairing", model.SeverityMedium,
		"Red and green are paired on this line; the distinction is lost on the most common form of color blindness."))
}
