package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
)

// MarkdownRenderer writes a PR-comment style summary: badges, tables and
// collapsible detail sections, ready for `gh pr comment --body-file`.
type MarkdownRenderer struct{}

const (
	messageMaxLen  = 50
	moduleMaxLen   = 40
	toolBarLen     = 10
	moduleBarLen   = 8
	badgePctHigh   = 50
	badgePctMedium = 20
)

// Render writes the markdown comment.
func (r *MarkdownRenderer) Render(report *attribution.Report, w io.Writer) error {
	var b strings.Builder

	b.WriteString("## 🤖 AI Attribution Summary\n\n")
	writeBadges(&b, report)
	b.WriteString("\n")
	writeSummaryTable(&b, report)

	if report.AIAssistedCommits > 0 {
		writeToolBreakdown(&b, report)
		writeCommitsList(&b, report)
	}

	if len(report.ModuleBreakdown) > 0 {
		writeModuleBreakdown(&b, report)
	}

	writeFooter(&b, report)

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}

	return nil
}

// Extension returns "md".
func (r *MarkdownRenderer) Extension() string {
	return "md"
}

// writeBadges emits shields.io-style badges understood by GitHub.
func writeBadges(b *strings.Builder, report *attribution.Report) {
	pct := report.AIAssistedPercentage

	badgeColor := "lightgrey"
	if pct > badgePctHigh {
		badgeColor = "blue"
	} else if pct > badgePctMedium {
		badgeColor = "green"
	}

	fmt.Fprintf(b, "![Commits](https://img.shields.io/badge/commits-%d-blue) ", report.TotalCommits)
	fmt.Fprintf(b, "![AI Assisted](https://img.shields.io/badge/AI%%20assisted-%d%%20(%.0f%%25)-%s) ",
		report.AIAssistedCommits, pct, badgeColor)
	fmt.Fprintf(b, "![Files](https://img.shields.io/badge/files%%20changed-%d-lightgrey)\n", report.TotalFilesChanged)
}

func writeSummaryTable(b *strings.Builder, report *attribution.Report) {
	b.WriteString("### 📊 Summary\n\n")

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRow(table.Row{"Total Commits", report.TotalCommits})
	tw.AppendRow(table.Row{"AI-Assisted Commits", report.AIAssistedCommits})
	tw.AppendRow(table.Row{"Human-Only Commits", report.TotalCommits - report.AIAssistedCommits})
	tw.AppendRow(table.Row{"AI Percentage", fmt.Sprintf("**%.1f%%**", report.AIAssistedPercentage)})
	tw.AppendRow(table.Row{"Files Changed (Total)", report.TotalFilesChanged})
	tw.AppendRow(table.Row{"Files Changed (AI)", report.AIAssistedFilesChanged})

	b.WriteString(tw.RenderMarkdown())
	b.WriteString("\n\n")
}

func writeToolBreakdown(b *strings.Builder, report *attribution.Report) {
	b.WriteString("### 🤖 AI Tools Used\n\n")

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Tool", "Commits", "Percentage"})

	for _, tool := range report.Tools() {
		count := report.CommitsByTool[tool]
		pct := float64(count) * 100 / float64(report.AIAssistedCommits)
		tw.AppendRow(table.Row{
			tool.DisplayName(),
			count,
			fmt.Sprintf("%s %.0f%%", progressBar(pct, toolBarLen), pct),
		})
	}

	b.WriteString(tw.RenderMarkdown())
	b.WriteString("\n\n")
}

func writeCommitsList(b *strings.Builder, report *attribution.Report) {
	assisted := report.AIAssistedCommitsList()

	b.WriteString("### ✅ AI-Assisted Commits\n\n")
	b.WriteString("<details>\n")
	fmt.Fprintf(b, "<summary>Click to expand (%d commits)</summary>\n\n", len(assisted))

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Commit", "Message", "Tool", "Files"})

	// RenderMarkdown escapes pipes in cell content, so subjects go in as is.
	for _, commit := range assisted {
		tw.AppendRow(table.Row{
			fmt.Sprintf("`%s`", commit.ShortHash),
			truncate(commit.Message, messageMaxLen),
			commit.AITool.DisplayName(),
			commit.FileCount(),
		})
	}

	b.WriteString(tw.RenderMarkdown())
	b.WriteString("\n\n</details>\n\n")
}

func writeModuleBreakdown(b *strings.Builder, report *attribution.Report) {
	b.WriteString("### 📁 Module Breakdown\n\n")
	b.WriteString("<details>\n")
	fmt.Fprintf(b, "<summary>Click to expand (%d modules)</summary>\n\n", len(report.ModuleBreakdown))

	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Module", "Total Files", "AI-Assisted", "Percentage"})

	// Modules() already sorts by AI percentage descending.
	for _, name := range report.Modules() {
		stats := report.ModuleBreakdown[name]
		tw.AppendRow(table.Row{
			fmt.Sprintf("`%s`", truncate(name, moduleMaxLen)),
			stats.TotalFiles,
			stats.AIAssistedFiles,
			fmt.Sprintf("%s %.0f%%", progressBar(stats.AIAssistedPercentage, moduleBarLen), stats.AIAssistedPercentage),
		})
	}

	b.WriteString(tw.RenderMarkdown())
	b.WriteString("\n\n</details>\n\n")
}

func writeFooter(b *strings.Builder, report *attribution.Report) {
	b.WriteString("---\n")
	fmt.Fprintf(b, "*Generated by gitattrib %s | Branch: `%s` | Analyzed: %s*\n",
		humanize.Time(report.GeneratedAt), report.Branch, report.AnalyzedRange)
}

// progressBar renders a fixed-width unicode block bar for a percentage.
func progressBar(percentage float64, length int) string {
	filled := int(percentage/100*float64(length) + 0.5)
	if filled < 0 {
		filled = 0
	}

	if filled > length {
		filled = length
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}

	return text[:maxLen-3] + "..."
}
