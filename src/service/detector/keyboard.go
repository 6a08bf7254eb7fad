package detector

import (
	"strings"

	"a11y-lint/src/model"
)

func keyboardRules() []Rule {
	return []Rule{
		{Name: "click-no-keyboard", Check: checkClickNoKeyboard},
		{Name: "custom-control-no-key-handler", Check: checkCustomControlNoKeyHandler},
		{Name: "mouseover-no-focus", Check: checkMouseoverNoFocus},
		{Name: "mouseout-no-blur", Check: checkMouseoutNoBlur},
		{Name: "dblclick-no-keyboard", Check: checkDblclickNoKeyboard},
		{Name: "mousedown-no-keydown", Check: checkMousedownNoKeydown},
		{Name: "accesskey-used", Check: checkAccesskeyUsed},
		{Name: "draggable-no-alternative", Check: checkDraggableNoAlternative},
		{Name: "anchor-click-no-href", Check: checkAnchorClickNoHref},
		{Name: "keypress-only", Check: checkKeypressOnly},
		{Name: "touch-only-handler", Check: checkTouchOnlyHandler},
	}
}

// hasKeyHandler reports whether the line wires up any keyboard event.
func hasKeyHandler(line string) bool {
	return hasAttr(line, "onkeydown") || hasAttr(line, "onkeyup") || hasAttr(line, "onkeypress")
}

func checkClickNoKeyboard(lc LineContext) []model.Issue {
	if !tagOpen(lc.Line, "div") && !tagOpen(lc.Line, "span") {
		return nil
	}
	if !hasAttr(lc.Line, "onclick") || hasKeyHandler(lc.Line) {
		return nil
	}
	if hasAttr(lc.Line, "tabindex") || hasAttr(lc.Line, "role") {
		return nil
	}
	return one(issue(lc, model.FamilyKeyboard, "click-no-keyboard", model.SeverityHigh,
		"Clickable div or span has no keyboard handler, tabindex or role; the control is unusable without a mouse."))
}

func checkCustomControlNoKeyHandler(lc LineContext) []model.Issue {
	if !tagOpen(lc.Line, "div") && !tagOpen(lc.Line, "span") {
		return nil
	}
	tokens, present := roleTokens(lc.Line)
	if !present || len(tokens) == 0 || !interactiveRoles[tokens[0]] {
		return nil
	}
	if hasKeyHandler(lc.Line) {
		return nil
	}
	return one(issue(lc, model.FamilyKeyboard, "custom-control-no-key-handler", model.SeverityHigh,
		"Custom interactive element has no keyboard event handler; unlike native controls, it will not react to Enter or Space."))
}

func checkMouseoverNoFocus(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "onmouseover") || hasAttr(lc.Line, "onfocus") {
		return nil
	}
	return one(issue(lc, model.FamilyKeyboard, "mouseover-no-focus", model.SeverityMedium,
		"Element handles onmouseover without a matching onfocus; keyboard users never trigger the hover behavior."))
}

func checkMouseoutNoBlur(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "onmouseout") || hasAttr(lc.Line, "onblur") {
		return nil
	}
	return one(issue(lc, model.FamilyKeyboard, "mouseout-no-blur", model.SeverityMedium,
		"Element handles onmouseout without a matching onblur; keyboard users never trigger the corresponding behavior."))
}

func checkDblclickNoKeyboard(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "ondblclick") || hasKeyHandler(lc.Line) {
		return nil
	}
	return one(issue(lc, model.FamilyKeyboard, "dblclick-no-keyboard", model.SeverityMedium,
		"Element handles double-click with no keyboard equivalent; double-click has no standard keyboard gesture."))
}

func checkMousedownNoKeydown(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "onmousedown") || hasAttr(lc.Line, "onkeydown") {
		return nil
	}
	return one(issue(lc, model.FamilyKeyboard, "mousedown-no-keydown", model.SeverityMedium,
		"Element handles onmousedown without a matching onkeydown handler."))
}

func checkAccesskeyUsed(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "accesskey") {
		return nil
	}
	return one(issue(lc, model.FamilyKeyboard, "accesskey-used", model.SeverityMedium,
		"Element declares an accesskey; access keys conflict with screen reader and browser shortcuts on most platforms."))
}

func checkDraggableNoAlternative(lc LineContext) []model.Issue {
	if !attrEquals(lc.Line, "draggable", "true") {
		return nil
	}
	if hasKeyHandler(lc.Line) {
		return nil
	}
	return one(issue(lc, model.FamilyKeyboard, "draggable-no-alternative", model.SeverityMedium,
		"Draggable element has no keyboard handler; drag and drop needs a keyboard-operable alternative."))
}

func checkAnchorClickNoHref(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "a")
	if !ok || !hasAttr(seg, "onclick") || hasAttr(seg, "href") {
		return nil
	}
	return one(issue(lc, model.FamilyKeyboard, "anchor-click-no-href", model.SeverityHigh,
		"Anchor with onclick has no href; without one the link is not focusable and never fires from the keyboard."))
}

func checkKeypressOnly(lc LineContext) []model.Issue {
	if !hasAttr(lc.Line, "onkeypress") {
		return nil
	}
	if hasAttr(lc.Line, "onkeydown") || hasAttr(lc.Line, "onkeyup") {
		return nil
	}
	return one(issue(lc, model.FamilyKeyboard, "keypress-only", model.SeverityLow,
		"Element relies on the deprecated onkeypress event, which does not fire for all keys; use onkeydown instead."))
}

func checkTouchOnlyHandler(lc LineContext) []model.Issue {
	if !strings.Contains(lc.Line, "ontouchstart") && !strings.Contains(lc.Line, "ontouchend") {
		return nil
	}
	if hasAttr(lc.Line, "onclick") || hasKeyHandler(lc.Line) {
		return nil
	}
	return one(issue(lc, model.FamilyKeyboard, "touch-only-handler", model.SeverityMedium,
		"Element handles touch events only; add click and keyboard equivalents for non-touch users."))
}
