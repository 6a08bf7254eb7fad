package repair

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"a11y-lint/src/config"
	"a11y-lint/src/model"
	"a11y-lint/src/service/genai"
	"a11y-lint/src/util"
)

// contextWindow is how many lines around the target are sent to the
// generator as context.
const contextWindow = 3

// systemPrompt instructs the generator per the alt-text conventions: a
// concise description, or the literal word "decorative" for ornamental
// images.
const systemPrompt = "You write alt text for HTML images. Produce concise, descriptive alt text " +
	"under 125 characters for the image described by the user. If the image is purely " +
	"ornamental, answer with the single word: decorative. Answer with the alt text only, " +
	"no quotes and no explanation."

var (
	// ErrNoImage is returned when the target line contains no <img tag.
	ErrNoImage = errors.New("target line contains no image element")
	// ErrAltPresent is returned when the image already declares alt.
	ErrAltPresent = errors.New("image already has an alt attribute")
	// ErrNoInsertionPoint is returned when the image tag never closes on
	// the target line, so no safe single-line edit exists.
	ErrNoInsertionPoint = errors.New("image tag does not close on this line")
)

// Context is the extracted material sent to the external generator: the
// image source, the raw target line and a window of surrounding lines.
type Context struct {
	Src       string
	Line      string
	LineIndex int
	Window    []string
}

// Edit is a minimal single-line text replacement. It is handed to the
// caller for atomic application; the workflow itself never mutates
// document text.
type Edit struct {
	LineIndex int    // zero-based line to replace
	NewText   string // full replacement line
}

// ExtractContext locates the image on the target line and gathers the
// surrounding lines the generator needs. It refuses lines without an
// image and lines whose image already has alt text.
func ExtractContext(doc *model.Document, lineIdx int) (*Context, error) {
	raw := doc.Line(lineIdx)
	imgStart := strings.Index(raw, "<img")
	if imgStart < 0 {
		return nil, ErrNoImage
	}
	tag := raw[imgStart:]
	if end := strings.Index(tag, ">"); end >= 0 {
		tag = tag[:end+1]
	}
	if strings.Contains(tag, "alt=") {
		return nil, ErrAltPresent
	}

	src := extractAttr(tag, "src")

	start := lineIdx - contextWindow
	if start < 0 {
		start = 0
	}
	end := lineIdx + contextWindow
	if end >= doc.LineCount() {
		end = doc.LineCount() - 1
	}
	window := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		window = append(window, doc.Line(i))
	}

	return &Context{
		Src:       src,
		Line:      raw,
		LineIndex: lineIdx,
		Window:    window,
	}, nil
}

func extractAttr(tag, name string) string {
	for _, quote := range []string{`"`, `'`} {
		marker := name + "=" + quote
		if i := strings.Index(tag, marker); i >= 0 {
			rest := tag[i+len(marker):]
			if j := strings.Index(rest, quote); j >= 0 {
				return rest[:j]
			}
		}
	}
	return ""
}

// ComputeEdit builds the replacement line that inserts alt text
// immediately before the image tag's closing bracket. An empty altText
// produces alt="" (a declared-decorative image). Quotes in the alt text
// are escaped so the edit can never break out of the attribute.
func ComputeEdit(rawLine string, lineIdx int, altText string) (Edit, error) {
	imgStart := strings.Index(rawLine, "<img")
	if imgStart < 0 {
		return Edit{}, ErrNoImage
	}
	tagEnd := strings.Index(rawLine[imgStart:], ">")
	if tagEnd < 0 {
		return Edit{}, ErrNoInsertionPoint
	}
	tagEnd += imgStart
	if strings.Contains(rawLine[imgStart:tagEnd], "alt=") {
		return Edit{}, ErrAltPresent
	}

	insertAt := tagEnd
	if rawLine[tagEnd-1] == '/' {
		insertAt = tagEnd - 1
	}
	// Trim trailing space before the bracket so the insertion stays tidy.
	for insertAt > imgStart && rawLine[insertAt-1] == ' ' {
		insertAt--
	}

	escaped := strings.ReplaceAll(altText, `"`, "&quot;")
	attr := fmt.Sprintf(` alt=%q`, escaped)
	newLine := rawLine[:insertAt] + attr + rawLine[insertAt:]
	return Edit{LineIndex: lineIdx, NewText: newLine}, nil
}

// Generator is the narrow interface the workflow needs from the external
// text-generation service.
type Generator interface {
	Suggest(ctx context.Context, system, user string) (string, error)
}

// Workflow drives the assisted-repair flow: extract context, ask the
// generator for alt text, compute the single-line edit. Any failure
// leaves the document untouched and surfaces as an error.
type Workflow struct {
	generator Generator
}

// NewWorkflow creates a workflow backed by the configured service.
func NewWorkflow(cfg config.GenAIConfig) *Workflow {
	return &Workflow{generator: genai.NewClient(cfg)}
}

// NewWorkflowWithGenerator creates a workflow with an explicit generator;
// tests use this to substitute a fake service.
func NewWorkflowWithGenerator(g Generator) *Workflow {
	return &Workflow{generator: g}
}

// SuggestAlt runs the full flow for one line of a document.
func (w *Workflow) SuggestAlt(ctx context.Context, doc *model.Document, lineIdx int) (Edit, error) {
	rc, err := ExtractContext(doc, lineIdx)
	if err != nil {
		return Edit{}, err
	}

	util.Info("Requesting alt text for image %q (line %d)", rc.Src, lineIdx+1)

	user := fmt.Sprintf("Image source: %s\n\nSurrounding markup:\n%s", rc.Src, strings.Join(rc.Window, "\n"))
	suggestion, err := w.generator.Suggest(ctx, systemPrompt, user)
	if err != nil {
		return Edit{}, fmt.Errorf("generating alt text: %w", err)
	}

	alt := strings.Trim(strings.TrimSpace(suggestion), `"`)
	if strings.EqualFold(alt, "decorative") {
		alt = ""
	}

	edit, err := ComputeEdit(rc.Line, rc.LineIndex, alt)
	if err != nil {
		return Edit{}, err
	}

	util.Debug("Computed edit for line %d", lineIdx+1)
	return edit, nil
}
