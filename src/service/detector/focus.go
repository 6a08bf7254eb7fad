package detector

import (
	"regexp"
	"strings"

	"a11y-lint/src/model"
)

var outlineRemovedRe = regexp.MustCompile(`outline\s*:\s*(none|0)\b`)

func focusRules() []Rule {
	return []Rule{
		{Name: "focus-outline-none", Check: checkFocusOutlineNone},
		{Name: "inline-outline-none", Check: checkInlineOutlineNone},
		{Name: "outline-none-no-replacement", Check: checkOutlineNoneNoReplacement},
		{Name: "onfocus-blur", Check: checkOnfocusBlur},
		{Name: "autofocus-used", Check: checkAutofocusUsed},
		{Name: "dialog-no-modal", Check: checkDialogNoModal},
		{Name: "interactive-opted-out", Check: checkInteractiveOptedOut},
		{Name: "focus-visible-suppressed", Check: checkFocusVisibleSuppressed},
		{Name: "onblur-refocus", Check: checkOnblurRefocus},
	}
}

func checkFocusOutlineNone(lc LineContext) []model.Issue {
	if !strings.Contains(lc.Line, ":focus") || !outlineRemovedRe.MatchString(lc.Line) {
		return nil
	}
	return one(issue(lc, model.FamilyFocus, "focus-outline-none", model.SeverityHigh,
		"A :focus rule removes the outline; keyboard users lose the only visible indication of where focus is."))
}

func checkInlineOutlineNone(lc LineContext) []model.Issue {
	style, present := attrValue(lc.Line, "style")
	if !present || !outlineRemovedRe.MatchString(style) {
		return nil
	}
	return one(issue(lc, model.FamilyFocus, "inline-outline-none", model.SeverityHigh,
		"Inline style removes the focus outline; keyboard users lose the visible focus indicator for this element."))
}

func checkOutlineNoneNoReplacement(lc LineContext) []model.Issue {
	if strings.Contains(lc.Line, ":focus") || hasAttr(lc.Line, "style") {
		return nil
	}
	if !outlineRemovedRe.MatchString(lc.Line) {
		return nil
	}
	if strings.Contains(lc.Line, "box-shadow") || strings.Contains(lc.Line, "border") {
		return nil
	}
	return one(issue(lc, model.FamilyFocus, "outline-none-no-replacement", model.SeverityMedium,
		"A style rule removes the outline without declaring a replacement indicator such as box-shadow or border."))
}

func checkOnfocusBlur(lc LineContext) []model.Issue {
	v, present := attrValue(lc.Line, "onfocus")
	if !present || !strings.Contains(v, "blur(") {
		return nil
	}
	return one(issue(lc, model.FamilyFocus, "onfocus-blur", model.SeverityHigh,
		"The onfocus handler calls blur(), actively rejecting keyboard focus; the element can never be operated by keyboard."))
}

func checkAutofocusUsed(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "autofocus") {
		return nil
	}
	return one(issue(lc, model.FamilyFocus, "autofocus-used", model.SeverityMedium,
		"Element uses autofocus; moving focus on page load disorients screen reader and screen magnifier users."))
}

func checkDialogNoModal(lc LineContext) []model.Issue {
	tokens, present := roleTokens(lc.Line)
	if !present || len(tokens) == 0 {
		return nil
	}
	if tokens[0] != "dialog" && tokens[0] != "alertdialog" {
		return nil
	}
	if hasAttr(lc.Line, "aria-modal") {
		return nil
	}
	return one(issue(lc, model.FamilyFocus, "dialog-no-modal", model.SeverityMedium,
		`Dialog role does not declare aria-modal; screen readers cannot tell whether background content is inert.`))
}

func checkInteractiveOptedOut(lc LineContext) []model.Issue {
	if !naturallyFocusable(lc.Line) {
		return nil
	}
	v, present := attrValue(lc.Line, "tabindex")
	if !present || strings.TrimSpace(v) != "-1" {
		return nil
	}
	return one(issue(lc, model.FamilyFocus, "interactive-opted-out", model.SeverityMedium,
		`A naturally focusable element is removed from the tab order with tabindex="-1"; confirm focus is restored programmatically.`))
}

func checkFocusVisibleSuppressed(lc LineContext) []model.Issue {
	if !strings.Contains(lc.Line, ":focus-visible") {
		return nil
	}
	if !outlineRemovedRe.MatchString(lc.Line) &&
		!strings.Contains(lc.Line, "display:none") && !strings.Contains(lc.Line, "display: none") &&
		!strings.Contains(lc.Line, "visibility:hidden") && !strings.Contains(lc.Line, "visibility: hidden") {
		return nil
	}
	return one(issue(lc, model.FamilyFocus, "focus-visible-suppressed", model.SeverityHigh,
		"A :focus-visible rule suppresses the focus indicator; keyboard users lose focus visibility with no fallback."))
}

func checkOnblurRefocus(lc LineContext) []model.Issue {
	v, present := attrValue(lc.Line, "onblur")
	if !present || !strings.Contains(v, "focus(") {
		return nil
	}
	return one(issue(lc, model.FamilyFocus, "onblur-refocus", model.SeverityMedium,
		"The onblur handler calls focus(), which can trap keyboard users on this element."))
}
