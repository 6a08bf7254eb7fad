package model

import "time"

// Severity represents the severity level of an accessibility issue
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Family represents the rule family that produced an issue
type Family string

const (
	FamilyImages       Family = "images"
	FamilyForms        Family = "forms"
	FamilyARIA         Family = "aria"
	FamilyRoles        Family = "roles"
	FamilyTabindex     Family = "tabindex"
	FamilyKeyboard     Family = "keyboard"
	FamilyFocus        Family = "focus"
	FamilySemantic     Family = "semantic"
	FamilyAutocomplete Family = "autocomplete"
	FamilyLabelName    Family = "labelname"
	FamilyColor        Family = "color"
)

// Span marks the region of source text an issue applies to. Rules work on
// whole physical lines, so StartLine always equals EndLine, StartCol is 0
// and EndCol is the raw line length.
type Span struct {
	StartLine int `json:"start_line"`
	StartCol  int `json:"start_col"`
	EndLine   int `json:"end_line"`
	EndCol    int `json:"end_col"`
}

// Issue represents a single detected accessibility issue.
// Issues are immutable once created and live only for one analysis pass.
// The same defect may be reported by rules in different families; that
// overlap is expected and is not deduplicated.
type Issue struct {
	Family   Family   `json:"family"`
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Line     int      `json:"line"` // 1-based, for display
	Message  string   `json:"message"`
	Span     Span     `json:"span"`
}

// WholeLineSpan builds the span covering one full raw line.
func WholeLineSpan(lineIdx int, rawLine string) Span {
	return Span{StartLine: lineIdx, StartCol: 0, EndLine: lineIdx, EndCol: len(rawLine)}
}

// AnalysisReport represents the complete analysis output for one document
type AnalysisReport struct {
	FilePath    string        `json:"file_path"`
	GeneratedAt time.Time     `json:"generated_at"`
	Summary     ReportSummary `json:"summary"`
	Issues      []Issue       `json:"issues"`
}

// ReportSummary contains aggregated statistics
type ReportSummary struct {
	TotalIssues int              `json:"total_issues"`
	ByFamily    map[Family]int   `json:"by_family"`
	BySeverity  map[Severity]int `json:"by_severity"`
	Score       float64          `json:"score"`
}
