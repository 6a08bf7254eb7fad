package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttrValue(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		attr    string
		want    string
		present bool
	}{
		{"double quoted", `<img src="a.png" alt="A dog">`, "alt", "A dog", true},
		{"single quoted", `<img src='a.png' alt='A dog'>`, "alt", "A dog", true},
		{"unquoted", `<input type=text>`, "type", "text", true},
		{"empty value", `<img alt="">`, "alt", "", true},
		{"absent", `<img src="a.png">`, "alt", "", false},
		{"bare attribute has no value", `<input required>`, "required", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, present := attrValue(tt.line, tt.attr)
			assert.Equal(t, tt.present, present)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasAttr(t *testing.T) {
	assert.True(t, hasAttr(`<img src="a.png" alt="x">`, "alt"))
	assert.True(t, hasAttr(`<input required>`, "required"))
	// Boundary check: no match inside other attribute names or values.
	assert.False(t, hasAttr(`<link rel="alternate" href="/feed">`, "alt"))
	assert.False(t, hasAttr(`<div data-alt="x">`, "alt"))
}

func TestTagOpenAndSegment(t *testing.T) {
	assert.True(t, tagOpen(`<input type="text">`, "input"))
	assert.False(t, tagOpen(`<inputgroup>`, "input"))
	assert.False(t, tagOpen(`</input>`, "input"))

	seg, ok := tagSegment(`before <img src="a.png" alt="x"> after`, "img")
	assert.True(t, ok)
	assert.Equal(t, `<img src="a.png" alt="x">`, seg)

	// An unterminated tag yields the rest of the line.
	seg, ok = tagSegment(`<img src="a.png"`, "img")
	assert.True(t, ok)
	assert.Equal(t, `<img src="a.png"`, seg)

	_, ok = tagSegment(`<div>no image here</div>`, "img")
	assert.False(t, ok)
}

func TestInnerText(t *testing.T) {
	assert.Equal(t, "Save", innerText(`<button type="button">Save</button>`))
	assert.Equal(t, "", innerText(`<button type="button"><svg/></button>`))
	assert.Equal(t, "", innerText(`no markup at all`))
}

func TestHasAccessibleName(t *testing.T) {
	assert.True(t, hasAccessibleName(`<button aria-label="Close"></button>`))
	assert.True(t, hasAccessibleName(`<button>Save</button>`))
	assert.True(t, hasAccessibleName(`<button title="Save"></button>`))
	assert.False(t, hasAccessibleName(`<button aria-label=""></button>`))
	assert.False(t, hasAccessibleName(`<button></button>`))
}

func TestIDExists(t *testing.T) {
	doc := `<h2 id="billing">Billing</h2>`
	assert.True(t, idExists(doc, "billing"))
	assert.False(t, idExists(doc, "shipping"))
	assert.False(t, idExists(doc, ""))
}

func TestNaturallyFocusable(t *testing.T) {
	assert.True(t, naturallyFocusable(`<a href="/x">link</a>`))
	assert.False(t, naturallyFocusable(`<a name="anchor">old-style anchor</a>`))
	assert.True(t, naturallyFocusable(`<button>Go</button>`))
	assert.True(t, naturallyFocusable(`<video src="v.mp4" controls>`))
	assert.False(t, naturallyFocusable(`<video src="v.mp4">`))
	assert.False(t, naturallyFocusable(`<div>text</div>`))
}

func TestTextEntryType(t *testing.T) {
	assert.True(t, textEntryType(""))
	assert.True(t, textEntryType("email"))
	assert.False(t, textEntryType("checkbox"))
	assert.False(t, textEntryType("submit"))
}
