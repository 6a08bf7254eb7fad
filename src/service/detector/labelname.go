package detector

import (
	"fmt"
	"strings"

	"a11y-lint/src/model"
)

// The label-name family checks WCAG 2.5.3: the accessible name of a
// control must contain its visible label, or speech-input users cannot
// address the control by the text they see.

func labelNameRules() []Rule {
	return []Rule{
		{Name: "label-not-in-name", Check: checkLabelNotInName},
		{Name: "title-not-in-name", Check: checkTitleNotInName},
		{Name: "aria-label-duplicates-text", Check: checkAriaLabelDuplicatesText},
		{Name: "label-and-labelledby", Check: checkLabelAndLabelledby},
		{Name: "labelledby-overrides-text", Check: checkLabelledbyOverridesText},
		{Name: "title-duplicates-label", Check: checkTitleDuplicatesLabel},
		{Name: "submit-value-not-in-name", Check: checkSubmitValueNotInName},
	}
}

func normalizedText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func checkLabelNotInName(lc LineContext) []model.Issue {
	label, present := attrValue(lc.Line, "aria-label")
	if !present || isBlank(label) {
		return nil
	}
	text := innerText(lc.Line)
	if text == "" {
		return nil
	}
	if strings.Contains(normalizedText(label), normalizedText(text)) {
		return nil
	}
	return one(issue(lc, model.FamilyLabelName, "label-not-in-name", model.SeverityHigh,
		fmt.Sprintf("The aria-label %q does not contain the visible text %q; speech-input users cannot activate the control by the text they see.", label, text)))
}

func checkTitleNotInName(lc LineContext) []model.Issue {
	// aria-label wins over title, so mismatches are the label rule's job.
	if hasAttr(lc.Line, "aria-label") || hasAttr(lc.Line, "aria-labelledby") {
		return nil
	}
	title, present := attrValue(lc.Line, "title")
	if !present || isBlank(title) {
		return nil
	}
	text := innerText(lc.Line)
	if text == "" || !interactiveTag(lc.Line) {
		return nil
	}
	if strings.Contains(normalizedText(title), normalizedText(text)) {
		return nil
	}
	return one(issue(lc, model.FamilyLabelName, "title-not-in-name", model.SeverityMedium,
		fmt.Sprintf("The title %q does not contain the visible text %q; the announced name differs from what sighted users read.", title, text)))
}

func checkAriaLabelDuplicatesText(lc LineContext) []model.Issue {
	label, present := attrValue(lc.Line, "aria-label")
	if !present || isBlank(label) {
		return nil
	}
	text := innerText(lc.Line)
	if text == "" || normalizedText(label) != normalizedText(text) {
		return nil
	}
	return one(issue(lc, model.FamilyLabelName, "aria-label-duplicates-text", model.SeverityLow,
		fmt.Sprintf("The aria-label %q exactly duplicates the visible text; the attribute is redundant and can drift out of sync.", label)))
}

func checkLabelAndLabelledby(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "aria-label") || !hasAttr(lc.Line, "aria-labelledby") {
		return nil
	}
	return one(issue(lc, model.FamilyLabelName, "label-and-labelledby", model.SeverityMedium,
		"Element declares both aria-label and aria-labelledby; aria-labelledby wins and the aria-label is silently ignored."))
}

func checkLabelledbyOverridesText(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "aria-labelledby") || hasAttr(lc.Line, "aria-label") {
		return nil
	}
	text := innerText(lc.Line)
	if text == "" || !interactiveTag(lc.Line) {
		return nil
	}
	return one(issue(lc, model.FamilyLabelName, "labelledby-overrides-text", model.SeverityMedium,
		fmt.Sprintf("The aria-labelledby reference overrides the visible text %q; confirm the referenced element contains that text.", text)))
}

func checkTitleDuplicatesLabel(lc LineContext) []model.Issue {
	label, labelPresent := attrValue(lc.Line, "aria-label")
	title, titlePresent := attrValue(lc.Line, "title")
	if !labelPresent || !titlePresent || isBlank(label) {
		return nil
	}
	if normalizedText(label) != normalizedText(title) {
		return nil
	}
	return one(issue(lc, model.FamilyLabelName, "title-duplicates-label", model.SeverityLow,
		"Element carries a title identical to its aria-label; some screen readers announce the name twice."))
}

func checkSubmitValueNotInName(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "input")
	if !ok || !attrEquals(seg, "type", "submit") {
		return nil
	}
	label, labelPresent := attrValue(seg, "aria-label")
	value, valuePresent := attrValue(seg, "value")
	if !labelPresent || !valuePresent || isBlank(label) || isBlank(value) {
		return nil
	}
	if strings.Contains(normalizedText(label), normalizedText(value)) {
		return nil
	}
	return one(issue(lc, model.FamilyLabelName, "submit-value-not-in-name", model.SeverityMedium,
		fmt.Sprintf("The aria-label %q does not contain the button's visible value %q.", label, value)))
}
