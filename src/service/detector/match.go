package detector

import (
	"regexp"
	"strings"
)

// Attribute scanning is deliberately line-oriented: rules match raw text,
// not a parsed tree, trading precision on multi-line tags for simplicity
// and per-keystroke responsiveness.
var attrValueRe = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9-]*)\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)

// attrValue returns the value of the named attribute on the line and
// whether the attribute appears with a value at all. Quotes are stripped;
// malformed quoting yields whatever the scan recovers, never an error.
func attrValue(line, name string) (string, bool) {
	for _, m := range attrValueRe.FindAllStringSubmatch(line, -1) {
		if m[1] == name {
			return unquote(m[2]), true
		}
	}
	return "", false
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// hasAttr reports whether the named attribute appears on the line, with or
// without a value. Boundaries are checked so "alt" does not match inside
// "halt" or "alternate".
func hasAttr(line, name string) bool {
	for from := 0; ; {
		i := strings.Index(line[from:], name)
		if i < 0 {
			return false
		}
		i += from
		before := byte(' ')
		if i > 0 {
			before = line[i-1]
		}
		afterIdx := i + len(name)
		after := byte(' ')
		if afterIdx < len(line) {
			after = line[afterIdx]
		}
		if isAttrBoundaryBefore(before) && isAttrBoundaryAfter(after) {
			return true
		}
		from = i + len(name)
	}
}

func isAttrBoundaryBefore(c byte) bool {
	return c == ' ' || c == '\t' || c == '"' || c == '\''
}

func isAttrBoundaryAfter(c byte) bool {
	return c == ' ' || c == '\t' || c == '=' || c == '>' || c == '/' || c == '"' || c == '\''
}

// attrEquals reports whether the attribute is present and its value equals
// want, compared case-insensitively.
func attrEquals(line, name, want string) bool {
	v, ok := attrValue(line, name)
	return ok && strings.EqualFold(strings.TrimSpace(v), want)
}

// tagOpen reports whether the line opens the given tag.
func tagOpen(line, tag string) bool {
	for from := 0; ; {
		i := strings.Index(line[from:], "<"+tag)
		if i < 0 {
			return false
		}
		i += from
		next := i + 1 + len(tag)
		if next >= len(line) {
			return true
		}
		switch line[next] {
		case ' ', '\t', '>', '/':
			return true
		}
		from = next
	}
}

// tagSegment returns the text of the first opening tag for the given
// element on the line, from "<tag" up to and including its closing '>'.
// When the tag never closes on this line, the rest of the line is
// returned; rules stay total over unterminated input.
func tagSegment(line, tag string) (string, bool) {
	for from := 0; ; {
		i := strings.Index(line[from:], "<"+tag)
		if i < 0 {
			return "", false
		}
		i += from
		next := i + 1 + len(tag)
		if next < len(line) {
			switch line[next] {
			case ' ', '\t', '>', '/':
			default:
				from = next
				continue
			}
		}
		if end := strings.Index(line[i:], ">"); end >= 0 {
			return line[i : i+end+1], true
		}
		return line[i:], true
	}
}

// innerText returns the trimmed text between the first '>' on the line and
// the next '<' after it: a cheap approximation of an element's visible
// text that works on single-line markup.
func innerText(line string) string {
	open := strings.Index(line, ">")
	if open < 0 {
		return ""
	}
	rest := line[open+1:]
	if close := strings.Index(rest, "<"); close >= 0 {
		rest = rest[:close]
	}
	return strings.TrimSpace(rest)
}

// hasAccessibleName reports whether the line carries any source of an
// accessible name: a non-blank aria-label, an aria-labelledby reference,
// a non-blank title, or visible inner text.
func hasAccessibleName(line string) bool {
	if v, ok := attrValue(line, "aria-label"); ok && strings.TrimSpace(v) != "" {
		return true
	}
	if v, ok := attrValue(line, "aria-labelledby"); ok && strings.TrimSpace(v) != "" {
		return true
	}
	if v, ok := attrValue(line, "title"); ok && strings.TrimSpace(v) != "" {
		return true
	}
	return innerText(line) != ""
}

// idExists reports whether an element with the given id is declared
// anywhere in the document text.
func idExists(fullText, id string) bool {
	if id == "" {
		return false
	}
	return strings.Contains(fullText, `id="`+id+`"`) || strings.Contains(fullText, `id='`+id+`'`)
}

// isBlank reports whether a string is empty or whitespace-only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// countOccurrences counts non-overlapping occurrences of sub in text.
func countOccurrences(text, sub string) int {
	return strings.Count(text, sub)
}

// naturallyFocusable reports whether the line opens an element that is
// focusable without any tabindex: links with href, buttons, form controls,
// summary and audio/video with controls.
func naturallyFocusable(line string) bool {
	if tagOpen(line, "a") && hasAttr(line, "href") {
		return true
	}
	for _, tag := range []string{"button", "input", "select", "textarea", "summary"} {
		if tagOpen(line, tag) {
			return true
		}
	}
	if (tagOpen(line, "audio") || tagOpen(line, "video")) && hasAttr(line, "controls") {
		return true
	}
	return false
}

// interactiveTag reports whether the line opens one of the interactive
// HTML elements that require an accessible name.
func interactiveTag(line string) bool {
	for _, tag := range []string{"button", "a", "input", "select", "textarea", "area", "summary"} {
		if tagOpen(line, tag) {
			return true
		}
	}
	return false
}

// textEntryType reports whether an input type expects typed user data, as
// opposed to buttons, checkboxes and other non-text controls.
func textEntryType(typ string) bool {
	switch typ {
	case "", "text", "email", "password", "tel", "url", "search", "number", "date", "month", "week", "datetime-local":
		return true
	}
	return false
}
