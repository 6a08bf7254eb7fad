package detector

import (
	"fmt"
	"strings"

	"a11y-lint/src/model"
)

// altTextMaxLen is the point past which alt text stops being a concise
// description and should move into surrounding copy.
const altTextMaxLen = 125

var imageFileExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".bmp", ".ico"}

func imageRules() []Rule {
	return []Rule{
		{Name: "img-missing-alt", Check: checkImgMissingAlt},
		{Name: "img-empty-alt", Check: checkImgEmptyAlt},
		{Name: "img-filename-alt", Check: checkImgFilenameAlt},
		{Name: "img-long-alt", Check: checkImgLongAlt},
		{Name: "area-missing-alt", Check: checkAreaMissingAlt},
		{Name: "input-image-missing-alt", Check: checkInputImageMissingAlt},
		{Name: "role-img-no-name", Check: checkRoleImgNoName},
		{Name: "svg-not-labelled", Check: checkSVGNotLabelled},
	}
}

func checkImgMissingAlt(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "img")
	if !ok || hasAttr(seg, "alt") {
		return nil
	}
	return one(issue(lc, model.FamilyImages, "img-missing-alt", model.SeverityHigh,
		"Image element is missing an alt attribute; screen readers cannot describe this image."))
}

func checkImgEmptyAlt(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "img")
	if !ok {
		return nil
	}
	v, present := attrValue(seg, "alt")
	if !present || !isBlank(v) {
		return nil
	}
	return one(issue(lc, model.FamilyImages, "img-empty-alt", model.SeverityMedium,
		"Image has an empty alt attribute; provide descriptive alt text, or confirm the image is purely decorative."))
}

func checkImgFilenameAlt(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "img")
	if !ok {
		return nil
	}
	v, present := attrValue(seg, "alt")
	if !present || isBlank(v) {
		return nil
	}
	lower := strings.ToLower(strings.TrimSpace(v))
	for _, ext := range imageFileExtensions {
		if strings.HasSuffix(lower, ext) {
			return one(issue(lc, model.FamilyImages, "img-filename-alt", model.SeverityMedium,
				fmt.Sprintf("Alt text %q looks like a file name; describe what the image shows instead.", v)))
		}
	}
	return nil
}

func checkImgLongAlt(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "img")
	if !ok {
		return nil
	}
	v, present := attrValue(seg, "alt")
	if !present || len(v) <= altTextMaxLen {
		return nil
	}
	return one(issue(lc, model.FamilyImages, "img-long-alt", model.SeverityLow,
		fmt.Sprintf("Alt text is %d characters long; keep alt text under %d characters and move detail into surrounding copy.", len(v), altTextMaxLen)))
}

func checkAreaMissingAlt(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "area")
	if !ok || hasAttr(seg, "alt") {
		return nil
	}
	return one(issue(lc, model.FamilyImages, "area-missing-alt", model.SeverityHigh,
		"Image map area is missing an alt attribute; each clickable region needs a text alternative."))
}

func checkInputImageMissingAlt(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "input")
	if !ok || !attrEquals(seg, "type", "image") || hasAttr(seg, "alt") {
		return nil
	}
	return one(issue(lc, model.FamilyImages, "input-image-missing-alt", model.SeverityHigh,
		"Image input is missing an alt attribute; the button's purpose is invisible to assistive technology."))
}

func checkRoleImgNoName(lc LineContext) []model.Issue {
	if !attrEquals(lc.Line, "role", "img") || hasAccessibleName(lc.Line) {
		return nil
	}
	return one(issue(lc, model.FamilyImages, "role-img-no-name", model.SeverityHigh,
		`Element with role="img" has no accessible name; add an aria-label describing the image.`))
}

func checkSVGNotLabelled(lc LineContext) []model.Issue {
	seg, ok := tagSegment(lc.Line, "svg")
	if !ok {
		return nil
	}
	if hasAttr(seg, "role") || hasAttr(seg, "aria-label") || hasAttr(seg, "aria-labelledby") || attrEquals(seg, "aria-hidden", "true") {
		return nil
	}
	return one(issue(lc, model.FamilyImages, "svg-not-labelled", model.SeverityMedium,
		`Inline SVG has no role or label; add role="img" with an aria-label, or aria-hidden="true" if decorative.`))
}
