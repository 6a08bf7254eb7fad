package detector

import (
	"fmt"
	"strings"

	"a11y-lint/src/model"
)

func formRules() []Rule {
	return []Rule{
		{Name: "control-no-label", Check: checkControlNoLabel},
		{Name: "fieldset-no-legend", Check: checkFieldsetNoLegend},
		{Name: "placeholder-as-label", Check: checkPlaceholderAsLabel},
		{Name: "label-no-for", Check: checkLabelNoFor},
		{Name: "submit-no-value", Check: checkSubmitNoValue},
		{Name: "button-no-type", Check: checkButtonNoType},
		{Name: "input-no-type", Check: checkInputNoType},
		{Name: "required-not-announced", Check: checkRequiredNotAnnounced},
	}
}

// controlLabelled reports whether a form control carries an accessible
// name of its own or is associated with a <label for=…> anywhere in the
// document.
func controlLabelled(seg, fullText string) bool {
	if v, ok := attrValue(seg, "aria-label"); ok && !isBlank(v) {
		return true
	}
	if v, ok := attrValue(seg, "aria-labelledby"); ok && !isBlank(v) {
		return true
	}
	if v, ok := attrValue(seg, "title"); ok && !isBlank(v) {
		return true
	}
	if id, ok := attrValue(seg, "id"); ok && id != "" {
		if strings.Contains(fullText, `for="`+id+`"`) || strings.Contains(fullText, `for='`+id+`'`) {
			return true
		}
	}
	return false
}

func checkControlNoLabel(lc LineContext) []model.Issue {
	var out []model.Issue
	for _, tag := range []string{"input", "select", "textarea"} {
		seg, ok := tagSegment(lc.Line, tag)
		if !ok {
			continue
		}
		if tag == "input" {
			typ, _ := attrValue(seg, "type")
			switch strings.ToLower(typ) {
			case "hidden", "submit", "button", "reset", "image":
				continue
			}
		}
		if controlLabelled(seg, lc.Doc.FullText) {
			continue
		}
		out = append(out, issue(lc, model.FamilyForms, "control-no-label", model.SeverityHigh,
			fmt.Sprintf("Form %s has no associated label; add a <label for=…>, aria-label or aria-labelledby.", tag)))
	}
	return out
}

func checkFieldsetNoLegend(lc LineContext) []model.Issue {
	if !tagOpen(lc.Line, "fieldset") || strings.Contains(lc.Doc.FullText, "<legend") {
		return nil
	}
	return one(issue(lc, model.FamilyForms, "fieldset-no-legend", model.SeverityHigh,
		"Fieldset has no legend; the group's purpose is not announced to screen reader users."))
}

func checkPlaceholderAsLabel(lc LineContext) []model.Issue {
	var out []model.Issue
	for _, tag := range []string{"input", "textarea"} {
		seg, ok := tagSegment(lc.Line, tag)
		if !ok || !hasAttr(seg, "placeholder") {
			continue
		}
		if controlLabelled(seg, lc.Doc.FullText) {
			continue
		}
		out = append(out, issue(lc, model.FamilyForms, "placeholder-as-label", model.SeverityMedium,
			"Placeholder text is the only label for this field; placeholders disappear on input and are not a label substitute."))
	}
	return out
}

func checkLabelNoFor(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "label")
	if !ok || hasAttr(seg, "for") {
		return nil
	}
	// A label wrapping its control on the same line is fine.
	if tagOpen(lc.Line, "input") || tagOpen(lc.Line, "select") || tagOpen(lc.Line, "textarea") {
		return nil
	}
	return one(issue(lc, model.FamilyForms, "label-no-for", model.SeverityMedium,
		"Label has no for attribute and does not wrap a control; it is not associated with any field."))
}

func checkSubmitNoValue(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "input")
	if !ok {
		return nil
	}
	typ, _ := attrValue(seg, "type")
	lower := strings.ToLower(typ)
	if lower != "submit" && lower != "reset" {
		return nil
	}
	if v, present := attrValue(seg, "value"); present && !isBlank(v) {
		return nil
	}
	if v, present := attrValue(seg, "aria-label"); present && !isBlank(v) {
		return nil
	}
	return one(issue(lc, model.FamilyForms, "submit-no-value", model.SeverityHigh,
		fmt.Sprintf("Input of type %q has no value attribute; the button is announced with a generic default.", typ)))
}

func checkButtonNoType(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "button")
	if !ok || hasAttr(seg, "type") {
		return nil
	}
	return one(issue(lc, model.FamilyForms, "button-no-type", model.SeverityLow,
		`Button has no type attribute and defaults to "submit"; declare type="button" unless submission is intended.`))
}

func checkInputNoType(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "input")
	if !ok || hasAttr(seg, "type") {
		return nil
	}
	return one(issue(lc, model.FamilyForms, "input-no-type", model.SeverityLow,
		"Input has no type attribute and defaults to text; declare the intended type explicitly."))
}

func checkRequiredNotAnnounced(lc LineContext) []model.Issue {
	seg := lc.Line
	if !hasAttr(seg, "required") || hasAttr(seg, "aria-required") {
		return nil
	}
	if !tagOpen(seg, "input") && !tagOpen(seg, "select") && !tagOpen(seg, "textarea") {
		return nil
	}
	return one(issue(lc, model.FamilyForms, "required-not-announced", model.SeverityLow,
		`Required field does not declare aria-required="true"; some older assistive technology misses the bare attribute.`))
}
