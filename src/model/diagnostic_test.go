package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForSeverity(t *testing.T) {
	tests := []struct {
		sev  Severity
		want Level
	}{
		{SeverityHigh, LevelError},
		{SeverityMedium, LevelWarning},
		{SeverityLow, LevelInfo},
		{Severity("bogus"), LevelInfo},
		{Severity(""), LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForSeverity(tt.sev), "severity %q", tt.sev)
	}
}

func TestToDiagnostic(t *testing.T) {
	i := Issue{
		Family:   FamilyImages,
		Rule:     "img-missing-alt",
		Severity: SeverityHigh,
		Line:     4,
		Message:  "Image has no alt attribute",
		Span:     WholeLineSpan(3, `<img src="a.png">`),
	}

	d := ToDiagnostic(i)
	assert.Equal(t, SourceTag, d.Source)
	assert.Equal(t, LevelError, d.Level)
	assert.Equal(t, i.Message, d.Message)
	assert.Equal(t, i.Span, d.Range)
}

func TestWholeLineSpan(t *testing.T) {
	s := WholeLineSpan(7, "  <img>")
	assert.Equal(t, 7, s.StartLine)
	assert.Equal(t, 7, s.EndLine)
	assert.Equal(t, 0, s.StartCol)
	assert.Equal(t, 7, s.EndCol)
}
