package render_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
	"github.com/Sumatoshi-tech/gitattrib/pkg/render"
)

func TestTextSummary(t *testing.T) {
	var buf bytes.Buffer

	renderer := &render.TextRenderer{}
	require.NoError(t, renderer.Render(sampleReport(t), &buf))

	output := buf.String()

	assert.Contains(t, output, "AI Attribution Report: bank-core")
	assert.Contains(t, output, "Branch: main")
	assert.Contains(t, output, "Total Commits")
	assert.Contains(t, output, "66.7%")
	assert.Contains(t, output, "Claude")
	assert.Contains(t, output, "GitHub Copilot")
}

func TestTextNoAssistedCommitsHint(t *testing.T) {
	report := attribution.BuildReport(attribution.ReportContext{ProjectName: "p", Branch: "main"},
		[]attribution.CommitAttribution{
			attribution.NewCommitAttribution(attribution.CommitSpec{
				Hash:    "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
				When:    time.Now(),
				Message: "plain",
			}),
		})

	var buf bytes.Buffer

	renderer := &render.TextRenderer{}
	require.NoError(t, renderer.Render(report, &buf))

	assert.Contains(t, buf.String(), "No AI-assisted commits found")
}

func TestTextExtension(t *testing.T) {
	renderer := &render.TextRenderer{}

	assert.Equal(t, "txt", renderer.Extension())
}
