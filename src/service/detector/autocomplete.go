package detector

import (
	"fmt"
	"strings"

	"a11y-lint/src/model"
)

func autocompleteRules() []Rule {
	return []Rule{
		{Name: "autocomplete-missing", Check: checkAutocompleteMissing},
		{Name: "autocomplete-invalid-token", Check: checkAutocompleteInvalidToken},
		{Name: "autocomplete-email-mismatch", Check: checkAutocompleteEmailMismatch},
		{Name: "autocomplete-password-mismatch", Check: checkAutocompletePasswordMismatch},
		{Name: "autocomplete-tel-mismatch", Check: checkAutocompleteTelMismatch},
		{Name: "auth-field-no-purpose", Check: checkAuthFieldNoPurpose},
		{Name: "financial-field-no-purpose", Check: checkFinancialFieldNoPurpose},
		{Name: "personal-field-no-purpose", Check: checkPersonalFieldNoPurpose},
		{Name: "contact-field-no-purpose", Check: checkContactFieldNoPurpose},
		{Name: "address-field-no-purpose", Check: checkAddressFieldNoPurpose},
	}
}

// formControlSegment returns the first input, select or textarea tag on
// the line that accepts user data: not disabled, not readonly, and for
// inputs a text-entry type.
func formControlSegment(line string) (string, bool) {
	for _, tag := range []string{"input", "select", "textarea"} {
		seg, ok := tagSegment(line, tag)
		if !ok {
			continue
		}
		if hasAttr(seg, "disabled") || hasAttr(seg, "readonly") {
			continue
		}
		if tag == "input" {
			typ, _ := attrValue(seg, "type")
			if !textEntryType(strings.ToLower(typ)) {
				continue
			}
		}
		return seg, true
	}
	return "", false
}

// fieldIdentity joins the name and id attributes of a control for the
// field-purpose heuristics.
func fieldIdentity(seg string) string {
	name, _ := attrValue(seg, "name")
	id, _ := attrValue(seg, "id")
	return strings.ToLower(name + " " + id)
}

// autocompletePurpose returns the purpose token of an autocomplete value,
// skipping any section-*, shipping or billing prefixes.
func autocompletePurpose(value string) string {
	fields := strings.Fields(strings.ToLower(value))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func checkAutocompleteMissing(lc LineContext) []model.Issue {
	seg, ok := formControlSegment(lc.Line)
	if !ok || hasAttr(seg, "autocomplete") {
		return nil
	}
	return one(issue(lc, model.FamilyAutocomplete, "autocomplete-missing", model.SeverityHigh,
		"Form field has no autocomplete attribute; declaring the field's purpose lets browsers and assistive tools fill it correctly."))
}

func checkAutocompleteInvalidToken(lc LineContext) []model.Issue {
	seg, ok := formControlSegment(lc.Line)
	if !ok {
		return nil
	}
	v, present := attrValue(seg, "autocomplete")
	if !present || isBlank(v) {
		return nil
	}
	purpose := autocompletePurpose(v)
	if purpose == "off" || purpose == "on" || autocompleteTokens[purpose] {
		return nil
	}
	return one(issue(lc, model.FamilyAutocomplete, "autocomplete-invalid-token", model.SeverityHigh,
		fmt.Sprintf("The autocomplete value %q is not a standard token; nonstandard values defeat autofill entirely.", v)))
}

func checkTypePurposeMismatch(lc LineContext, inputType, rule string, allowed ...string) []model.Issue {
	seg, ok := tagSegment(lc.Line, "input")
	if !ok || !attrEquals(seg, "type", inputType) {
		return nil
	}
	v, present := attrValue(seg, "autocomplete")
	if !present || isBlank(v) {
		return nil
	}
	purpose := autocompletePurpose(v)
	if purpose == "off" || purpose == "on" {
		return nil
	}
	for _, a := range allowed {
		if purpose == a || strings.HasPrefix(purpose, a+"-") {
			return nil
		}
	}
	return one(issue(lc, model.FamilyAutocomplete, rule, model.SeverityMedium,
		fmt.Sprintf("Input of type %q declares autocomplete %q, which does not match the field's purpose.", inputType, v)))
}

func checkAutocompleteEmailMismatch(lc LineContext) []model.Issue {
	return checkTypePurposeMismatch(lc, "email", "autocomplete-email-mismatch", "email", "username")
}

func checkAutocompletePasswordMismatch(lc LineContext) []model.Issue {
	return checkTypePurposeMismatch(lc, "password", "autocomplete-password-mismatch",
		"current-password", "new-password", "one-time-code")
}

func checkAutocompleteTelMismatch(lc LineContext) []model.Issue {
	return checkTypePurposeMismatch(lc, "tel", "autocomplete-tel-mismatch", "tel")
}

func checkFieldCategory(lc LineContext, hints []string, rule, category string, sev model.Severity) []model.Issue {
	seg, ok := formControlSegment(lc.Line)
	if !ok || hasAttr(seg, "autocomplete") {
		return nil
	}
	identity := fieldIdentity(seg)
	if identity == " " {
		return nil
	}
	for _, hint := range hints {
		if strings.Contains(identity, hint) {
			return one(issue(lc, model.FamilyAutocomplete, rule, sev,
				fmt.Sprintf("Field looks like %s data but declares no autocomplete purpose; users who rely on autofill must retype it.", category)))
		}
	}
	return nil
}

func checkAuthFieldNoPurpose(lc LineContext) []model.Issue {
	return checkFieldCategory(lc, authFieldHints, "auth-field-no-purpose", "authentication", model.SeverityHigh)
}

func checkFinancialFieldNoPurpose(lc LineContext) []model.Issue {
	return checkFieldCategory(lc, financialFieldHints, "financial-field-no-purpose", "financial", model.SeverityHigh)
}

func checkPersonalFieldNoPurpose(lc LineContext) []model.Issue {
	return checkFieldCategory(lc, personalFieldHints, "personal-field-no-purpose", "personal-identity", model.SeverityHigh)
}

func checkContactFieldNoPurpose(lc LineContext) []model.Issue {
	return checkFieldCategory(lc, contactFieldHints, "contact-field-no-purpose", "contact", model.SeverityMedium)
}

func checkAddressFieldNoPurpose(lc LineContext) []model.Issue {
	return checkFieldCategory(lc, addressFieldHints, "address-field-no-purpose", "address", model.SeverityMedium)
}
