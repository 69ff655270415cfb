package render_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
	"github.com/Sumatoshi-tech/gitattrib/pkg/render"
)

// sampleReport builds a small report exercising every renderer code path:
// mixed tools, an unassisted commit and several modules.
func sampleReport(t *testing.T) *attribution.Report {
	t.Helper()

	when := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)

	commits := []attribution.CommitAttribution{
		attribution.NewCommitAttribution(attribution.CommitSpec{
			Hash:        "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			Author:      "Alice",
			AuthorEmail: "alice@example.com",
			When:        when,
			Message:     "Add payment validation | with pipe",
			Assisted:    true,
			Tool:        attribution.ToolClaude,
			Confidence:  "high",
			Files: []string{
				"src/main/java/com/bank/payments/Service.java",
				"src/main/java/com/bank/payments/Client.java",
			},
		}),
		attribution.NewCommitAttribution(attribution.CommitSpec{
			Hash:        "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
			Author:      "Bob",
			AuthorEmail: "bob@example.com",
			When:        when.Add(-time.Hour),
			Message:     "Update ledger docs",
			Files:       []string{"docs/ledger.md"},
		}),
		attribution.NewCommitAttribution(attribution.CommitSpec{
			Hash:        "cccccccccccccccccccccccccccccccccccccccc",
			Author:      "Alice",
			AuthorEmail: "alice@example.com",
			When:        when.Add(-2 * time.Hour),
			Message:     "Generate ledger entries",
			Assisted:    true,
			Tool:        attribution.ToolGitHubCopilot,
			Confidence:  "medium",
			Files:       []string{"src/main/java/com/bank/ledger/Entry.java"},
		}),
	}

	return attribution.BuildReport(attribution.ReportContext{
		ProjectName:    "bank-core",
		ProjectVersion: "2.1.0",
		Branch:         "main",
		HeadCommit:     "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		AnalyzedRange:  "last 100 commits up to HEAD",
	}, commits)
}

func TestForKnownFormats(t *testing.T) {
	for _, format := range []string{"json", "yaml", "html", "markdown", "pr-comment", "text", "JSON"} {
		renderer, err := render.For(format)
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, renderer)
	}
}

func TestForUnknownFormat(t *testing.T) {
	renderer, err := render.For("xml")

	assert.Nil(t, renderer)
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestWriteAll(t *testing.T) {
	report := sampleReport(t)
	dir := filepath.Join(t.TempDir(), "reports")

	err := render.WriteAll(report, []string{"json", "markdown", "yaml"}, dir, zerolog.Nop())
	require.NoError(t, err)

	for _, name := range []string{
		"ai-attribution-report.json",
		"ai-attribution-report.md",
		"ai-attribution-report.yaml",
	} {
		info, statErr := os.Stat(filepath.Join(dir, name))
		require.NoError(t, statErr, "file %s", name)
		assert.Positive(t, info.Size())
	}
}

func TestWriteAllSkipsUnknownFormats(t *testing.T) {
	report := sampleReport(t)
	dir := t.TempDir()

	err := render.WriteAll(report, []string{"xml", "json"}, dir, zerolog.Nop())
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "ai-attribution-report.json"))
	assert.NoError(t, statErr)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}
