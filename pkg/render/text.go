package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
)

// TextRenderer writes the terminal summary shown at the end of an analyze run.
type TextRenderer struct{}

// Render writes the summary tables.
func (r *TextRenderer) Render(report *attribution.Report, w io.Writer) error {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(w, "AI Attribution Report: %s\n", report.ProjectName)
	fmt.Fprintf(w, "Branch: %s | %s\n\n", report.Branch, report.AnalyzedRange)

	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetStyle(table.StyleLight)
	summary.AppendHeader(table.Row{"Metric", "Value"})
	summary.AppendRows([]table.Row{
		{"Total Commits", report.TotalCommits},
		{"AI-Assisted Commits", report.AIAssistedCommits},
		{"AI Percentage", fmt.Sprintf("%.1f%%", report.AIAssistedPercentage)},
		{"Files Changed (Total)", report.TotalFilesChanged},
		{"Files Changed (AI)", report.AIAssistedFilesChanged},
	})
	summary.Render()

	if report.AIAssistedCommits > 0 {
		fmt.Fprintln(w)

		tools := table.NewWriter()
		tools.SetOutputMirror(w)
		tools.SetStyle(table.StyleLight)
		tools.AppendHeader(table.Row{"AI Tool", "Commits"})

		for _, tool := range report.Tools() {
			tools.AppendRow(table.Row{tool.DisplayName(), report.CommitsByTool[tool]})
		}

		tools.Render()
	}

	if report.AIAssistedCommits == 0 {
		fmt.Fprintln(w)
		color.New(color.FgYellow).Fprintln(w, "No AI-assisted commits found. Are commit trailers present?")
	}

	return nil
}

// Extension returns "txt".
func (r *TextRenderer) Extension() string {
	return "txt"
}
