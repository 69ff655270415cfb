package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/gitattrib/pkg/render"
)

func TestYAMLDocument(t *testing.T) {
	var buf bytes.Buffer

	renderer := &render.YAMLRenderer{}
	require.NoError(t, renderer.Render(sampleReport(t), &buf))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	for _, key := range []string{"metadata", "summary", "toolBreakdown", "moduleBreakdown", "commits"} {
		assert.Contains(t, doc, key)
	}

	summary, ok := doc["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 3, summary["totalCommits"])
}

func TestYAMLExtension(t *testing.T) {
	renderer := &render.YAMLRenderer{}

	assert.Equal(t, "yaml", renderer.Extension())
}
