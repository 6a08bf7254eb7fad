package model

// SourceTag identifies diagnostics produced by this tool
const SourceTag = "a11y-lint"

// Level represents the host-facing severity scale of a diagnostic
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Diagnostic is the host-facing representation of an issue
type Diagnostic struct {
	Range   Span   `json:"range"`
	Message string `json:"message"`
	Level   Level  `json:"level"`
	Source  string `json:"source"`
}

// LevelForSeverity maps an issue severity to a diagnostic level.
// Total over all inputs: anything outside the three known severities
// falls back to info rather than failing.
func LevelForSeverity(s Severity) Level {
	switch s {
	case SeverityHigh:
		return LevelError
	case SeverityMedium:
		return LevelWarning
	case SeverityLow:
		return LevelInfo
	default:
		return LevelInfo
	}
}

// ToDiagnostic converts an issue into its host-facing form.
func ToDiagnostic(issue Issue) Diagnostic {
	return Diagnostic{
		Range:   issue.Span,
		Message: issue.Message,
		Level:   LevelForSeverity(issue.Severity),
		Source:  SourceTag,
	}
}
