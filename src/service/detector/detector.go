package detector

import (
	"strings"

	"a11y-lint/src/model"
)

// LineContext is the immutable snapshot handed to every rule: one physical
// line, its zero-based index, and the full document for cross-line lookups
// (id references, single-h1, and similar whole-document checks).
type LineContext struct {
	Raw   string          // raw physical line, used for span widths
	Line  string          // trimmed line text that rules match against
	Index int             // zero-based line index
	Doc   *model.Document // read-only document snapshot
}

// NewLineContext builds the context for one line of a document.
func NewLineContext(doc *model.Document, idx int) LineContext {
	raw := doc.Line(idx)
	return LineContext{
		Raw:   raw,
		Line:  strings.TrimSpace(raw),
		Index: idx,
		Doc:   doc,
	}
}

// CheckFunc is the calling convention every rule conforms to. A rule is a
// pure function over the line context: no I/O, no mutation, no memory of
// previously seen lines. It returns zero or more issues and must be total
// over all string inputs; a rule that cannot classify a line confidently
// returns nothing rather than failing.
type CheckFunc func(lc LineContext) []model.Issue

// Rule pairs a check with a stable name used in issue output.
type Rule struct {
	Name  string
	Check CheckFunc
}

// Family is an ordered collection of rules addressing one accessibility
// concern. Order within a family is deterministic (declaration order) but
// carries no semantic weight.
type Family struct {
	Name  model.Family
	Rules []Rule
}

// Registry holds every rule family in fixed declaration order. It is built
// once by NewRegistry and never mutated afterwards; tests may build a fresh
// registry instead of relying on a shared one.
type Registry struct {
	families []Family
}

// NewRegistry builds the full rule registry.
func NewRegistry() *Registry {
	return &Registry{
		families: []Family{
			{Name: model.FamilyImages, Rules: imageRules()},
			{Name: model.FamilyForms, Rules: formRules()},
			{Name: model.FamilyARIA, Rules: ariaRules()},
			{Name: model.FamilyRoles, Rules: roleRules()},
			{Name: model.FamilyTabindex, Rules: tabindexRules()},
			{Name: model.FamilyKeyboard, Rules: keyboardRules()},
			{Name: model.FamilyFocus, Rules: focusRules()},
			{Name: model.FamilySemantic, Rules: semanticRules()},
			{Name: model.FamilyAutocomplete, Rules: autocompleteRules()},
			{Name: model.FamilyLabelName, Rules: labelNameRules()},
			{Name: model.FamilyColor, Rules: colorRules()},
		},
	}
}

// Families returns the registered families in declaration order.
func (r *Registry) Families() []Family {
	return r.families
}

// Family returns a family by name, or nil if not registered.
func (r *Registry) Family(name model.Family) *Family {
	for i := range r.families {
		if r.families[i].Name == name {
			return &r.families[i]
		}
	}
	return nil
}

// RuleCount returns the total number of registered rules.
func (r *Registry) RuleCount() int {
	n := 0
	for _, f := range r.families {
		n += len(f.Rules)
	}
	return n
}

// issue builds a single whole-line issue for the given context.
func issue(lc LineContext, fam model.Family, rule string, sev model.Severity, msg string) model.Issue {
	return model.Issue{
		Family:   fam,
		Rule:     rule,
		Severity: sev,
		Line:     lc.Index + 1,
		Message:  msg,
		Span:     model.WholeLineSpan(lc.Index, lc.Raw),
	}
}

// one wraps a single issue in the slice form every check returns.
func one(i model.Issue) []model.Issue {
	return []model.Issue{i}
}
