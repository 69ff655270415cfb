package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
)

// YAMLRenderer writes the same document as the JSON renderer in YAML form.
type YAMLRenderer struct{}

// Render writes the YAML document.
func (r *YAMLRenderer) Render(report *attribution.Report, w io.Writer) error {
	data, err := yaml.Marshal(buildReportDoc(report))
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("yaml write: %w", err)
	}

	return nil
}

// Extension returns "yaml".
func (r *YAMLRenderer) Extension() string {
	return FormatYAML
}
