package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"a11y-lint/src/config"
	"a11y-lint/src/model"
	"a11y-lint/src/util"
)

// displayFamilies fixes the rendering order of family sections.
var displayFamilies = []model.Family{
	model.FamilyImages, model.FamilyForms, model.FamilyARIA, model.FamilyRoles,
	model.FamilyTabindex, model.FamilyKeyboard, model.FamilyFocus,
	model.FamilySemantic, model.FamilyAutocomplete, model.FamilyLabelName,
	model.FamilyColor,
}

var displaySeverities = []model.Severity{
	model.SeverityHigh, model.SeverityMedium, model.SeverityLow,
}

// Generator generates reports in various formats
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate generates a report in the specified format
func (g *Generator) Generate(report *model.AnalysisReport, format string) (string, error) {
	util.Debug("Generating report in %s format (%d issues)", format, len(report.Issues))
	switch format {
	case "json":
		return g.generateJSON(report)
	case "markdown", "md":
		return g.generateMarkdown(report)
	case "text", "":
		return g.generateText(report)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(report *model.AnalysisReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(report *model.AnalysisReport) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Accessibility Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("**File:** %s\n", report.FilePath))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total Issues:** %d\n", report.Summary.TotalIssues))
	sb.WriteString(fmt.Sprintf("- **Accessibility Score:** %.1f/100\n\n", report.Summary.Score))

	sb.WriteString("### Issues by Severity\n\n")
	sb.WriteString("| Severity | Count |\n")
	sb.WriteString("|----------|-------|\n")
	for _, sev := range displaySeverities {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", sev, report.Summary.BySeverity[sev]))
	}
	sb.WriteString("\n")

	sb.WriteString("### Issues by Family\n\n")
	sb.WriteString("| Family | Count |\n")
	sb.WriteString("|--------|-------|\n")
	for _, fam := range displayFamilies {
		if count := report.Summary.ByFamily[fam]; count > 0 {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", fam, count))
		}
	}
	sb.WriteString("\n")

	if len(report.Issues) > 0 {
		sb.WriteString("## Issues\n\n")
		sb.WriteString("| Line | Severity | Family | Message |\n")
		sb.WriteString("|------|----------|--------|--------|\n")
		for _, is := range report.Issues {
			msg := strings.ReplaceAll(is.Message, "|", "\\|")
			sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n", is.Line, is.Severity, is.Family, msg))
		}
	}

	return sb.String(), nil
}

func (g *Generator) generateText(report *model.AnalysisReport) (string, error) {
	var sb strings.Builder

	highlight := color.New(color.Bold).SprintFunc()
	if !g.cfg.Color {
		color.NoColor = true
	}

	sb.WriteString(fmt.Sprintf("%s: %d issue(s), score %.1f/100\n\n",
		highlight(report.FilePath), report.Summary.TotalIssues, report.Summary.Score))

	if len(report.Issues) == 0 {
		sb.WriteString("No accessibility issues found.\n")
		return sb.String(), nil
	}

	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Line", "Severity", "Family", "Message"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetColumnSeparator(" ")
	for _, is := range report.Issues {
		table.Append([]string{
			fmt.Sprintf("%d", is.Line),
			g.colorSeverity(is.Severity),
			string(is.Family),
			is.Message,
		})
	}
	table.Render()

	sb.WriteString("\nBy severity: ")
	parts := make([]string, 0, len(displaySeverities))
	for _, sev := range displaySeverities {
		parts = append(parts, fmt.Sprintf("%s=%d", sev, report.Summary.BySeverity[sev]))
	}
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString("\n")

	return sb.String(), nil
}

func (g *Generator) colorSeverity(sev model.Severity) string {
	switch sev {
	case model.SeverityHigh:
		return color.RedString(string(sev))
	case model.SeverityMedium:
		return color.YellowString(string(sev))
	case model.SeverityLow:
		return color.CyanString(string(sev))
	default:
		return string(sev)
	}
}
