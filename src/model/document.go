package model

import "strings"

// Document is an immutable snapshot of one document's text, taken once per
// analysis pass. Lines are split on \n with any trailing \r stripped, so
// CRLF input does not leave carriage returns at line ends to break
// suffix matches.
type Document struct {
	FullText string
	Lines    []string
}

// NewDocument builds a snapshot from raw document text.
func NewDocument(text string) *Document {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &Document{FullText: text, Lines: lines}
}

// Line returns the raw line at the given zero-based index, or an empty
// string when the index is out of range.
func (d *Document) Line(idx int) string {
	if idx < 0 || idx >= len(d.Lines) {
		return ""
	}
	return d.Lines[idx]
}

// LineCount returns the number of physical lines in the snapshot.
func (d *Document) LineCount() int {
	return len(d.Lines)
}
