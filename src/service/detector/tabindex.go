package detector

import (
	"fmt"
	"strconv"
	"strings"

	"a11y-lint/src/model"
)

// maxTabindex is the largest value browsers honor for tabindex.
const maxTabindex = 32767

func tabindexRules() []Rule {
	return []Rule{
		{Name: "tabindex-negative", Check: checkTabindexNegative},
		{Name: "tabindex-zero-static", Check: checkTabindexZeroStatic},
		{Name: "interactive-role-no-tabindex", Check: checkInteractiveRoleNoTabindex},
		{Name: "tabindex-positive", Check: checkTabindexPositive},
		{Name: "tabindex-aria-hidden", Check: checkTabindexAriaHidden},
		{Name: "tabindex-presentation", Check: checkTabindexPresentation},
		{Name: "tabindex-disabled", Check: checkTabindexDisabled},
		{Name: "tabindex-hidden", Check: checkTabindexHidden},
		{Name: "tabindex-redundant", Check: checkTabindexRedundant},
		{Name: "tabindex-not-numeric", Check: checkTabindexNotNumeric},
		{Name: "tabindex-too-large", Check: checkTabindexTooLarge},
		{Name: "tabindex-duplicate", Check: checkTabindexDuplicate},
		{Name: "tabindex-on-dialog", Check: checkTabindexOnDialog},
	}
}

// tabindexInt returns the parsed tabindex value when the attribute is
// present and numeric.
func tabindexInt(line string) (int, bool) {
	v, present := attrValue(line, "tabindex")
	if !present {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func checkTabindexNegative(lc LineContext) []model.Issue {
	n, ok := tabindexInt(lc.Line)
	if !ok || n >= 0 {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-negative", model.SeverityHigh,
		fmt.Sprintf("Element has tabindex=\"%d\" and is removed from the keyboard tab order; confirm focus is managed programmatically.", n)))
}

func checkTabindexZeroStatic(lc LineContext) []model.Issue {
	n, ok := tabindexInt(lc.Line)
	if !ok || n != 0 {
		return nil
	}
	if naturallyFocusable(lc.Line) || hasAttr(lc.Line, "role") {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-zero-static", model.SeverityHigh,
		`Element has tabindex="0" but no role; keyboard users reach an element that announces nothing about what it does.`))
}

func checkInteractiveRoleNoTabindex(lc LineContext) []model.Issue {
	tokens, present := roleTokens(lc.Line)
	if !present || len(tokens) == 0 || !interactiveRoles[tokens[0]] {
		return nil
	}
	if hasAttr(lc.Line, "tabindex") || naturallyFocusable(lc.Line) {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "interactive-role-no-tabindex", model.SeverityHigh,
		fmt.Sprintf("Element with interactive role %q has no tabindex; keyboard users cannot reach it.", tokens[0])))
}

func checkTabindexPositive(lc LineContext) []model.Issue {
	n, ok := tabindexInt(lc.Line)
	if !ok || n <= 0 {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-positive", model.SeverityMedium,
		fmt.Sprintf("Element has a positive tabindex of %d; positive values override the natural tab order and are hard to maintain.", n)))
}

func checkTabindexAriaHidden(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "tabindex") || !attrEquals(lc.Line, "aria-hidden", "true") {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-aria-hidden", model.SeverityHigh,
		`Element is focusable via tabindex but hidden with aria-hidden="true"; keyboard focus lands on an invisible element.`))
}

func checkTabindexPresentation(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "tabindex") {
		return nil
	}
	if !attrEquals(lc.Line, "role", "presentation") && !attrEquals(lc.Line, "role", "none") {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-presentation", model.SeverityHigh,
		"Element is focusable via tabindex but its role removes it from the accessibility tree; focus lands on a semantic void."))
}

func checkTabindexDisabled(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "tabindex") || !hasAttr(lc.Line, "disabled") {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-disabled", model.SeverityMedium,
		"Element combines tabindex with disabled; disabled elements should not participate in the tab order."))
}

func checkTabindexHidden(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "tabindex") || !hasAttr(lc.Line, "hidden") {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-hidden", model.SeverityMedium,
		"Element combines tabindex with the hidden attribute; a hidden element must not receive keyboard focus."))
}

func checkTabindexRedundant(lc LineContext) []model.Issue {
	n, ok := tabindexInt(lc.Line)
	if !ok || n != 0 || !naturallyFocusable(lc.Line) {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-redundant", model.SeverityMedium,
		`Element is naturally focusable; the explicit tabindex="0" is redundant and can be removed.`))
}

func checkTabindexNotNumeric(lc LineContext) []model.Issue {
	v, present := attrValue(lc.Line, "tabindex")
	if !present || isBlank(v) {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-not-numeric", model.SeverityHigh,
		fmt.Sprintf("The tabindex value %q is not a number; browsers ignore it and the intended tab order is lost.", v)))
}

func checkTabindexTooLarge(lc LineContext) []model.Issue {
	n, ok := tabindexInt(lc.Line)
	if !ok || n <= maxTabindex {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-too-large", model.SeverityLow,
		fmt.Sprintf("The tabindex value %d exceeds the maximum of %d honored by browsers.", n, maxTabindex)))
}

func checkTabindexDuplicate(lc LineContext) []model.Issue {
	if countOccurrences(lc.Line, "tabindex=") < 2 {
		return nil
	}
	// Two tags on one line may each carry a tabindex legitimately.
	if countOccurrences(lc.Line, "<") > 1 {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-duplicate", model.SeverityMedium,
		"Tag declares tabindex more than once; only the first occurrence takes effect."))
}

func checkTabindexOnDialog(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "dialog")
	if !ok || !hasAttr(seg, "tabindex") {
		return nil
	}
	return one(issue(lc, model.FamilyTabindex, "tabindex-on-dialog", model.SeverityLow,
		"Dialog element carries a tabindex; focus should be moved into the dialog programmatically, not via the tab order."))
}
