package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentSplitsLines(t *testing.T) {
	doc := NewDocument("one\ntwo\nthree")
	assert.Equal(t, 3, doc.LineCount())
	assert.Equal(t, "two", doc.Line(1))
}

func TestNewDocumentStripsCarriageReturns(t *testing.T) {
	doc := NewDocument("one\r\ntwo\r\n")
	assert.Equal(t, "one", doc.Line(0))
	assert.Equal(t, "two", doc.Line(1))
	assert.Equal(t, "", doc.Line(2))
}

func TestLineOutOfRange(t *testing.T) {
	doc := NewDocument("only")
	assert.Equal(t, "", doc.Line(-1))
	assert.Equal(t, "", doc.Line(1))
}

func TestEmptyTextIsOneEmptyLine(t *testing.T) {
	doc := NewDocument("")
	assert.Equal(t, 1, doc.LineCount())
	assert.Equal(t, "", doc.Line(0))
}
