package attribution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
)

func TestExtractTrailers(t *testing.T) {
	message := "Add payment validation\n\n" +
		"Implements the new validation flow.\n\n" +
		"AI-Assisted: true\nAI-Tool: claude\nAI-Confidence: high\n"

	trailers := attribution.ExtractTrailers(message)

	assert.Equal(t, "true", trailers["AI-Assisted"])
	assert.Equal(t, "claude", trailers["AI-Tool"])
	assert.Equal(t, "high", trailers["AI-Confidence"])
}

func TestExtractTrailersLastParagraphOnly(t *testing.T) {
	// Trailer-shaped lines in earlier paragraphs are not trailers.
	message := "Fix bug\n\nAI-Tool: claude\n\nReviewed-by: alice\n"

	trailers := attribution.ExtractTrailers(message)

	assert.NotContains(t, trailers, "AI-Tool")
	assert.Equal(t, "alice", trailers["Reviewed-by"])
}

func TestExtractTrailersSubjectOnly(t *testing.T) {
	// A one-line message is its own last paragraph; the subject line does
	// not match the trailer pattern unless it happens to look like one.
	trailers := attribution.ExtractTrailers("Fix the flaky integration test")

	assert.Empty(t, trailers)
}

func TestExtractTrailersRepeatedKeyLastWins(t *testing.T) {
	message := "Subject\n\nAI-Tool: copilot\nAI-Tool: claude\n"

	trailers := attribution.ExtractTrailers(message)

	assert.Equal(t, "claude", trailers["AI-Tool"])
}

func TestExtractTrailersMalformed(t *testing.T) {
	assert.Empty(t, attribution.ExtractTrailers(""))
	assert.Empty(t, attribution.ExtractTrailers("\n\n\n"))
	assert.Empty(t, attribution.ExtractTrailers("Subject\n\nnot a trailer line"))
}

func TestLookupTrailerCaseInsensitive(t *testing.T) {
	trailers := map[string]string{"ai-tool": "claude"}

	value, ok := attribution.LookupTrailer(trailers, attribution.TrailerAITool)
	assert.True(t, ok)
	assert.Equal(t, "claude", value)

	_, ok = attribution.LookupTrailer(trailers, attribution.TrailerAIConfidence)
	assert.False(t, ok)
}

func TestIsAssistedExplicitFlag(t *testing.T) {
	assert.True(t, attribution.IsAssisted(map[string]string{"AI-Assisted": "true"}))
	assert.True(t, attribution.IsAssisted(map[string]string{"AI-Assisted": "Yes"}))
	assert.True(t, attribution.IsAssisted(map[string]string{"AI-Assisted": "1"}))
	assert.False(t, attribution.IsAssisted(map[string]string{"AI-Assisted": "false"}))
	assert.False(t, attribution.IsAssisted(map[string]string{"AI-Assisted": "maybe"}))
}

func TestIsAssistedFlagWinsOverTool(t *testing.T) {
	// An explicit AI-Assisted: false overrides a present AI-Tool.
	trailers := map[string]string{"AI-Assisted": "false", "AI-Tool": "claude"}

	assert.False(t, attribution.IsAssisted(trailers))
}

func TestIsAssistedImpliedByTool(t *testing.T) {
	assert.True(t, attribution.IsAssisted(map[string]string{"AI-Tool": "claude"}))
	assert.False(t, attribution.IsAssisted(map[string]string{"AI-Tool": "none"}))
	assert.False(t, attribution.IsAssisted(map[string]string{"AI-Tool": "false"}))
	assert.False(t, attribution.IsAssisted(map[string]string{}))
}

func TestClassifyTool(t *testing.T) {
	assert.Equal(t, attribution.ToolClaude, attribution.ClassifyTool(map[string]string{"AI-Tool": "claude"}))
	assert.Equal(t, attribution.ToolNone, attribution.ClassifyTool(map[string]string{}))
	assert.Equal(t, attribution.ToolOther, attribution.ClassifyTool(map[string]string{"AI-Tool": "tabnine"}))
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, "high", attribution.Confidence(map[string]string{"AI-Confidence": "high"}))
	assert.Equal(t, "high", attribution.Confidence(map[string]string{"ai-confidence": "high"}))
	assert.Empty(t, attribution.Confidence(map[string]string{}))
}
