package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gitattrib/pkg/render"
)

func TestHTMLDashboard(t *testing.T) {
	var buf bytes.Buffer

	renderer := &render.HTMLRenderer{}
	require.NoError(t, renderer.Render(sampleReport(t), &buf))

	output := buf.String()

	assert.Contains(t, output, "<html")
	assert.Contains(t, output, "echarts")
	assert.Contains(t, output, "Commits by AI Tool")
	assert.Contains(t, output, "AI-Assisted Changes by Module")
}

func TestHTMLExtension(t *testing.T) {
	renderer := &render.HTMLRenderer{}

	assert.Equal(t, "html", renderer.Extension())
}
