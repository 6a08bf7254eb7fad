package detector

import (
	"fmt"
	"regexp"
	"strings"

	"a11y-lint/src/model"
)

// ariaLabelMaxLen caps how long an aria-label can get before it becomes a
// paragraph screen readers must read in one breath.
const ariaLabelMaxLen = 100

var ariaTokenRe = regexp.MustCompile(`aria-[a-z][a-z-]*`)

func ariaRules() []Rule {
	return []Rule{
		{Name: "aria-label-empty", Check: checkAriaLabelEmpty},
		{Name: "aria-label-generic", Check: checkAriaLabelGeneric},
		{Name: "aria-label-with-placeholder", Check: checkAriaLabelWithPlaceholder},
		{Name: "aria-label-on-presentation", Check: checkAriaLabelOnPresentation},
		{Name: "aria-label-too-long", Check: checkAriaLabelTooLong},
		{Name: "interactive-no-name", Check: checkInteractiveNoName},
		{Name: "labelledby-dangling", Check: checkLabelledbyDangling},
		{Name: "describedby-dangling", Check: checkDescribedbyDangling},
		{Name: "owns-dangling", Check: checkOwnsDangling},
		{Name: "aria-hidden-focusable", Check: checkAriaHiddenFocusable},
		{Name: "aria-hidden-false", Check: checkAriaHiddenFalse},
		{Name: "aria-bool-invalid", Check: checkAriaBoolInvalid},
		{Name: "aria-unknown-attr", Check: checkAriaUnknownAttr},
		{Name: "aria-live-invalid", Check: checkAriaLiveInvalid},
		{Name: "toggle-role-no-checked", Check: checkToggleRoleNoChecked},
		{Name: "slider-no-valuenow", Check: checkSliderNoValuenow},
		{Name: "combobox-no-expanded", Check: checkComboboxNoExpanded},
		{Name: "heading-role-no-level", Check: checkHeadingRoleNoLevel},
		{Name: "aria-expanded-static", Check: checkAriaExpandedStatic},
		{Name: "aria-label-on-generic", Check: checkAriaLabelOnGeneric},
	}
}

func checkAriaLabelEmpty(lc LineContext) []model.Issue {
	v, present := attrValue(lc.Line, "aria-label")
	if !present || !isBlank(v) {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "aria-label-empty", model.SeverityHigh,
		"Element has an empty aria-label; an empty accessible name hides the element's purpose entirely."))
}

func checkAriaLabelGeneric(lc LineContext) []model.Issue {
	v, present := attrValue(lc.Line, "aria-label")
	if !present || isBlank(v) {
		return nil
	}
	if !genericLabelWords[strings.ToLower(strings.TrimSpace(v))] {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "aria-label-generic", model.SeverityMedium,
		fmt.Sprintf("The aria-label %q is generic; describe what the element does rather than what it is.", v)))
}

func checkAriaLabelWithPlaceholder(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "aria-label") || !hasAttr(lc.Line, "placeholder") {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "aria-label-with-placeholder", model.SeverityMedium,
		"Element combines aria-label with placeholder; the two can disagree and confuse screen reader users."))
}

func checkAriaLabelOnPresentation(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "aria-label") {
		return nil
	}
	if !attrEquals(lc.Line, "role", "presentation") && !attrEquals(lc.Line, "role", "none") {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "aria-label-on-presentation", model.SeverityMedium,
		"Element has an aria-label but its role removes it from the accessibility tree; the label will never be announced."))
}

func checkAriaLabelTooLong(lc LineContext) []model.Issue {
	v, present := attrValue(lc.Line, "aria-label")
	if !present || len(v) <= ariaLabelMaxLen {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "aria-label-too-long", model.SeverityLow,
		fmt.Sprintf("The aria-label is %d characters long; keep labels concise and move detail to aria-describedby.", len(v))))
}

func checkInteractiveNoName(lc LineContext) []model.Issue {
	if !interactiveTag(lc.Line) || hasAccessibleName(lc.Line) {
		return nil
	}
	// Container elements are only judged when they close on the same
	// line; their visible text may live on the lines in between.
	for _, tag := range []string{"a", "button", "summary", "textarea"} {
		if tagOpen(lc.Line, tag) && !strings.Contains(lc.Line, "</"+tag+">") {
			return nil
		}
	}
	if seg, ok := tagSegment(lc.Line, "input"); ok {
		typ, _ := attrValue(seg, "type")
		if strings.ToLower(typ) == "hidden" {
			return nil
		}
		// Inputs name themselves through value on button-like types.
		if v, present := attrValue(seg, "value"); present && !isBlank(v) {
			return nil
		}
	}
	// Form controls may be named by a <label for=…> elsewhere in the
	// document.
	for _, tag := range []string{"input", "select", "textarea"} {
		if seg, ok := tagSegment(lc.Line, tag); ok && controlLabelled(seg, lc.Doc.FullText) {
			return nil
		}
	}
	return one(issue(lc, model.FamilyARIA, "interactive-no-name", model.SeverityHigh,
		"Interactive element has no accessible name; add visible text, an aria-label, aria-labelledby or a title."))
}

func checkIDRefsDangling(lc LineContext, attr, rule string) []model.Issue {
	v, present := attrValue(lc.Line, attr)
	if !present || isBlank(v) {
		return nil
	}
	var out []model.Issue
	for _, id := range strings.Fields(v) {
		if !idExists(lc.Doc.FullText, id) {
			out = append(out, issue(lc, model.FamilyARIA, rule, model.SeverityHigh,
				fmt.Sprintf("The %s attribute references id %q, but no element with that id exists in the document.", attr, id)))
		}
	}
	return out
}

func checkLabelledbyDangling(lc LineContext) []model.Issue {
	return checkIDRefsDangling(lc, "aria-labelledby", "labelledby-dangling")
}

func checkDescribedbyDangling(lc LineContext) []model.Issue {
	return checkIDRefsDangling(lc, "aria-describedby", "describedby-dangling")
}

func checkOwnsDangling(lc LineContext) []model.Issue {
	return checkIDRefsDangling(lc, "aria-owns", "owns-dangling")
}

func checkAriaHiddenFocusable(lc LineContext) []model.Issue {
	if !attrEquals(lc.Line, "aria-hidden", "true") {
		return nil
	}
	if !naturallyFocusable(lc.Line) && !hasAttr(lc.Line, "tabindex") {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "aria-hidden-focusable", model.SeverityHigh,
		`A focusable element carries aria-hidden="true"; keyboard users can reach an element screen readers cannot see.`))
}

func checkAriaHiddenFalse(lc LineContext) []model.Issue {
	if !attrEquals(lc.Line, "aria-hidden", "false") {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "aria-hidden-false", model.SeverityLow,
		`The value aria-hidden="false" is unreliably supported; remove the attribute instead.`))
}

func checkAriaBoolInvalid(lc LineContext) []model.Issue {
	var out []model.Issue
	for _, attr := range ariaBooleanAttributes {
		v, present := attrValue(lc.Line, attr)
		if !present {
			continue
		}
		t := strings.ToLower(strings.TrimSpace(v))
		if t == "true" || t == "false" {
			continue
		}
		out = append(out, issue(lc, model.FamilyARIA, "aria-bool-invalid", model.SeverityHigh,
			fmt.Sprintf("The attribute %s has value %q; only \"true\" or \"false\" are valid.", attr, v)))
	}
	return out
}

func checkAriaUnknownAttr(lc LineContext) []model.Issue {
	if !strings.Contains(lc.Line, "aria-") || !strings.Contains(lc.Line, "<") {
		return nil
	}
	var out []model.Issue
	seen := map[string]bool{}
	for _, tok := range ariaTokenRe.FindAllString(lc.Line, -1) {
		if ariaAttributes[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, issue(lc, model.FamilyARIA, "aria-unknown-attr", model.SeverityHigh,
			fmt.Sprintf("Unknown ARIA attribute %q; misspelled ARIA attributes are silently ignored by browsers.", tok)))
	}
	return out
}

func checkAriaLiveInvalid(lc LineContext) []model.Issue {
	v, present := attrValue(lc.Line, "aria-live")
	if !present {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "off", "polite", "assertive":
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "aria-live-invalid", model.SeverityMedium,
		fmt.Sprintf("The aria-live value %q is invalid; use \"off\", \"polite\" or \"assertive\".", v)))
}

func checkToggleRoleNoChecked(lc LineContext) []model.Issue {
	role, present := attrValue(lc.Line, "role")
	if !present {
		return nil
	}
	r := strings.ToLower(strings.TrimSpace(role))
	if r != "checkbox" && r != "radio" && r != "switch" {
		return nil
	}
	if hasAttr(lc.Line, "aria-checked") {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "toggle-role-no-checked", model.SeverityHigh,
		fmt.Sprintf("Element with role %q does not declare aria-checked; its state is invisible to assistive technology.", r)))
}

func checkSliderNoValuenow(lc LineContext) []model.Issue {
	if !attrEquals(lc.Line, "role", "slider") || hasAttr(lc.Line, "aria-valuenow") {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "slider-no-valuenow", model.SeverityHigh,
		`Element with role="slider" does not declare aria-valuenow; the current value cannot be announced.`))
}

func checkComboboxNoExpanded(lc LineContext) []model.Issue {
	if !attrEquals(lc.Line, "role", "combobox") || hasAttr(lc.Line, "aria-expanded") {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "combobox-no-expanded", model.SeverityHigh,
		`Element with role="combobox" does not declare aria-expanded; users cannot tell whether the list is open.`))
}

func checkHeadingRoleNoLevel(lc LineContext) []model.Issue {
	if !attrEquals(lc.Line, "role", "heading") || hasAttr(lc.Line, "aria-level") {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "heading-role-no-level", model.SeverityMedium,
		`Element with role="heading" does not declare aria-level; the heading's depth in the outline is undefined.`))
}

func checkAriaExpandedStatic(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "aria-expanded") {
		return nil
	}
	if interactiveTag(lc.Line) || hasAttr(lc.Line, "role") {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "aria-expanded-static", model.SeverityMedium,
		"The aria-expanded attribute appears on a non-interactive element without a role; move it to the triggering control."))
}

func checkAriaLabelOnGeneric(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "aria-label") {
		return nil
	}
	if !tagOpen(lc.Line, "div") && !tagOpen(lc.Line, "span") {
		return nil
	}
	if hasAttr(lc.Line, "role") || hasAttr(lc.Line, "tabindex") {
		return nil
	}
	return one(issue(lc, model.FamilyARIA, "aria-label-on-generic", model.SeverityMedium,
		"An aria-label on a generic div or span is not consistently exposed; give the element a role or use a semantic tag."))
}
