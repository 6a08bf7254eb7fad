package detector

import (
	"fmt"
	"strings"

	"a11y-lint/src/model"
)

func roleRules() []Rule {
	return []Rule{
		{Name: "role-empty", Check: checkRoleEmpty},
		{Name: "role-invalid", Check: checkRoleInvalid},
		{Name: "role-abstract", Check: checkRoleAbstract},
		{Name: "role-redundant", Check: checkRoleRedundant},
		{Name: "role-presentation-interactive", Check: checkRolePresentationInteractive},
		{Name: "role-application", Check: checkRoleApplication},
		{Name: "role-menu-no-items", Check: checkRoleMenuNoItems},
		{Name: "role-multiple", Check: checkRoleMultiple},
	}
}

// roleTokens splits a role attribute into its space-separated tokens.
func roleTokens(line string) ([]string, bool) {
	v, present := attrValue(line, "role")
	if !present {
		return nil, false
	}
	return strings.Fields(strings.ToLower(v)), true
}

func checkRoleEmpty(lc LineContext) []model.Issue {
	v, present := attrValue(lc.Line, "role")
	if !present || !isBlank(v) {
		return nil
	}
	return one(issue(lc, model.FamilyRoles, "role-empty", model.SeverityHigh,
		"Element has an empty role attribute; an empty role is invalid and ignored by assistive technology."))
}

func checkRoleInvalid(lc LineContext) []model.Issue {
	tokens, present := roleTokens(lc.Line)
	if !present || len(tokens) == 0 {
		return nil
	}
	var out []model.Issue
	for _, tok := range tokens {
		if validRoles[tok] || abstractRoles[tok] {
			continue
		}
		out = append(out, issue(lc, model.FamilyRoles, "role-invalid", model.SeverityHigh,
			fmt.Sprintf("The role %q is not a valid ARIA role; invalid roles are ignored and the element falls back to its implicit semantics.", tok)))
	}
	return out
}

func checkRoleAbstract(lc LineContext) []model.Issue {
	tokens, present := roleTokens(lc.Line)
	if !present {
		return nil
	}
	var out []model.Issue
	for _, tok := range tokens {
		if !abstractRoles[tok] {
			continue
		}
		out = append(out, issue(lc, model.FamilyRoles, "role-abstract", model.SeverityHigh,
			fmt.Sprintf("The role %q is an abstract ARIA role; abstract roles must never be used in markup.", tok)))
	}
	return out
}

func checkRoleRedundant(lc LineContext) []model.Issue {
	tokens, present := roleTokens(lc.Line)
	if !present || len(tokens) == 0 {
		return nil
	}
	role := tokens[0]
	tags, known := implicitRoleTags[role]
	if !known {
		return nil
	}
	for _, tag := range tags {
		seg, ok := tagSegment(lc.Line, tag)
		if !ok {
			continue
		}
		// input only carries the matching implicit role for its type.
		if tag == "input" {
			if !attrEquals(seg, "type", role) {
				continue
			}
		}
		return one(issue(lc, model.FamilyRoles, "role-redundant", model.SeverityLow,
			fmt.Sprintf("The role %q is redundant on a <%s> element, which carries that role implicitly.", role, tag)))
	}
	return nil
}

func checkRolePresentationInteractive(lc LineContext) []model.Issue {
	tokens, present := roleTokens(lc.Line)
	if !present || len(tokens) == 0 {
		return nil
	}
	if tokens[0] != "presentation" && tokens[0] != "none" {
		return nil
	}
	if !interactiveTag(lc.Line) && !hasAttr(lc.Line, "onclick") {
		return nil
	}
	return one(issue(lc, model.FamilyRoles, "role-presentation-interactive", model.SeverityHigh,
		fmt.Sprintf("The role %q strips semantics from an interactive element; its behavior becomes unreachable for assistive technology.", tokens[0])))
}

func checkRoleApplication(lc LineContext) []model.Issue {
	tokens, present := roleTokens(lc.Line)
	if !present || len(tokens) == 0 || tokens[0] != "application" {
		return nil
	}
	return one(issue(lc, model.FamilyRoles, "role-application", model.SeverityMedium,
		`The role "application" disables normal screen reader navigation; use it only for genuinely desktop-like widgets.`))
}

func checkRoleMenuNoItems(lc LineContext) []model.Issue {
	tokens, present := roleTokens(lc.Line)
	if !present || len(tokens) == 0 {
		return nil
	}
	if tokens[0] != "menu" && tokens[0] != "menubar" {
		return nil
	}
	if strings.Contains(lc.Doc.FullText, "menuitem") {
		return nil
	}
	return one(issue(lc, model.FamilyRoles, "role-menu-no-items", model.SeverityMedium,
		fmt.Sprintf("Element with role %q has no menuitem descendants anywhere in the document; the menu pattern is incomplete.", tokens[0])))
}

func checkRoleMultiple(lc LineContext) []model.Issue {
	tokens, present := roleTokens(lc.Line)
	if !present || len(tokens) < 2 {
		return nil
	}
	return one(issue(lc, model.FamilyRoles, "role-multiple", model.SeverityLow,
		fmt.Sprintf("The role attribute lists %d tokens; only the first supported role is applied, the rest are fallbacks.", len(tokens))))
}
