package detector

import (
	"fmt"
	"regexp"
	"strings"

	"a11y-lint/src/model"
)

var langValueRe = regexp.MustCompile(`^[a-zA-Z]{2,3}(-[a-zA-Z0-9]+)*$`)

func semanticRules() []Rule {
	return []Rule{
		{Name: "html-no-lang", Check: checkHTMLNoLang},
		{Name: "lang-invalid", Check: checkLangInvalid},
		{Name: "multiple-h1", Check: checkMultipleH1},
		{Name: "heading-hierarchy", Check: checkHeadingHierarchy},
		{Name: "generic-link-text", Check: checkGenericLinkText},
		{Name: "link-no-text", Check: checkLinkNoText},
		{Name: "iframe-no-title", Check: checkIframeNoTitle},
		{Name: "distracting-element", Check: checkDistractingElement},
		{Name: "meta-refresh", Check: checkMetaRefresh},
		{Name: "viewport-no-zoom", Check: checkViewportNoZoom},
		{Name: "presentational-tag", Check: checkPresentationalTag},
		{Name: "style-only-emphasis", Check: checkStyleOnlyEmphasis},
		{Name: "table-no-headers", Check: checkTableNoHeaders},
	}
}

func checkHTMLNoLang(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "html")
	if !ok || hasAttr(seg, "lang") {
		return nil
	}
	return one(issue(lc, model.FamilySemantic, "html-no-lang", model.SeverityHigh,
		"The html element has no lang attribute; screen readers cannot choose the right pronunciation rules."))
}

func checkLangInvalid(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "html")
	if !ok {
		return nil
	}
	v, present := attrValue(seg, "lang")
	if !present {
		return nil
	}
	if !isBlank(v) && langValueRe.MatchString(strings.TrimSpace(v)) {
		return nil
	}
	return one(issue(lc, model.FamilySemantic, "lang-invalid", model.SeverityMedium,
		fmt.Sprintf("The lang value %q is not a valid language tag such as \"en\" or \"pt-BR\".", v)))
}

func checkMultipleH1(lc LineContext) []model.Issue {
	if !tagOpen(lc.Line, "h1") {
		return nil
	}
	if countOccurrences(lc.Doc.FullText, "<h1") < 2 {
		return nil
	}
	return one(issue(lc, model.FamilySemantic, "multiple-h1", model.SeverityHigh,
		"Document contains more than one h1; a page should have a single top-level heading."))
}

// checkHeadingHierarchy inspects each heading line in isolation; no heading
// stack is kept across the document, so it cannot truly detect skipped
// levels. It flags every heading above level 1 for manual review.
func checkHeadingHierarchy(lc LineContext) []model.Issue {
	for level := 2; level <= 6; level++ {
		tag := fmt.Sprintf("h%d", level)
		if !tagOpen(lc.Line, tag) {
			continue
		}
		return one(issue(lc, model.FamilySemantic, "heading-hierarchy", model.SeverityLow,
			fmt.Sprintf("Heading level %d found; verify the heading sequence does not skip levels on the way down from h1.", level)))
	}
	return nil
}

func checkGenericLinkText(lc LineContext) []model.Issue {
	if !tagOpen(lc.Line, "a") {
		return nil
	}
	text := strings.ToLower(strings.TrimRight(innerText(lc.Line), ".!"))
	if text == "" || !genericLinkPhrases[text] {
		return nil
	}
	return one(issue(lc, model.FamilySemantic, "generic-link-text", model.SeverityMedium,
		fmt.Sprintf("Link text %q carries no destination information when read out of context; name the link's target.", innerText(lc.Line))))
}

func checkLinkNoText(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "a")
	if !ok || !hasAttr(seg, "href") {
		return nil
	}
	if !strings.Contains(lc.Line, "</a>") || hasAccessibleName(lc.Line) {
		return nil
	}
	// An image link is named by its alt text.
	if img, okImg := tagSegment(lc.Line, "img"); okImg {
		if v, present := attrValue(img, "alt"); present && !isBlank(v) {
			return nil
		}
	}
	return one(issue(lc, model.FamilySemantic, "link-no-text", model.SeverityHigh,
		"Link has no accessible text; screen readers announce only the raw URL or nothing at all."))
}

func checkIframeNoTitle(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "iframe")
	if !ok || hasAttr(seg, "title") {
		return nil
	}
	return one(issue(lc, model.FamilySemantic, "iframe-no-title", model.SeverityHigh,
		"Iframe has no title attribute; users cannot tell what the embedded content is before entering it."))
}

func checkDistractingElement(lc LineContext) []model.Issue {
	var tag string
	switch {
	case tagOpen(lc.Line, "marquee"):
		tag = "marquee"
	case tagOpen(lc.Line, "blink"):
		tag = "blink"
	default:
		return nil
	}
	return one(issue(lc, model.FamilySemantic, "distracting-element", model.SeverityHigh,
		fmt.Sprintf("The <%s> element produces uncontrollable movement; it is obsolete and inaccessible.", tag)))
}

func checkMetaRefresh(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "meta")
	if !ok || !attrEquals(seg, "http-equiv", "refresh") {
		return nil
	}
	return one(issue(lc, model.FamilySemantic, "meta-refresh", model.SeverityHigh,
		"Meta refresh reloads or redirects the page on a timer; users who read slowly lose their place or their input."))
}

func checkViewportNoZoom(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "meta")
	if !ok || !attrEquals(seg, "name", "viewport") {
		return nil
	}
	content, present := attrValue(seg, "content")
	if !present {
		return nil
	}
	lower := strings.ToLower(content)
	if !strings.Contains(lower, "user-scalable=no") &&
		!strings.Contains(lower, "maximum-scale=1.0") && !strings.HasSuffix(lower, "maximum-scale=1") &&
		!strings.Contains(lower, "maximum-scale=1,") && !strings.Contains(lower, "maximum-scale=1 ") {
		return nil
	}
	return one(issue(lc, model.FamilySemantic, "viewport-no-zoom", model.SeverityHigh,
		"Viewport meta tag disables pinch zoom; low-vision users depend on zooming to read the page."))
}

func checkPresentationalTag(lc LineContext) []model.Issue {
	var tag string
	switch {
	case tagOpen(lc.Line, "font"):
		tag = "font"
	case tagOpen(lc.Line, "center"):
		tag = "center"
	default:
		return nil
	}
	return one(issue(lc, model.FamilySemantic, "presentational-tag", model.SeverityMedium,
		fmt.Sprintf("The <%s> element is obsolete presentational markup; use CSS instead.", tag)))
}

func checkStyleOnlyEmphasis(lc LineContext) []model.Issue {
	var tag, better string
	switch {
	case tagOpen(lc.Line, "b"):
		tag, better = "b", "strong"
	case tagOpen(lc.Line, "i"):
		tag, better = "i", "em"
	default:
		return nil
	}
	return one(issue(lc, model.FamilySemantic, "style-only-emphasis", model.SeverityLow,
		fmt.Sprintf("The <%s> element conveys emphasis visually only; use <%s> so the emphasis is announced.", tag, better)))
}

func checkTableNoHeaders(lc LineContext) []model.Issue {
	if !tagOpen(lc.Line, "table") {
		return nil
	}
	if strings.Contains(lc.Doc.FullText, "<th") {
		return nil
	}
	return one(issue(lc, model.FamilySemantic, "table-no-headers", model.SeverityMedium,
		"Table has no header cells anywhere in the document; data cells cannot be related to their column or row."))
}
