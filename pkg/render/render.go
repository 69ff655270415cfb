// Package render turns an attribution report into its output artifacts.
// Renderers only read the report; they own their formats entirely.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
)

// Supported output formats.
const (
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatText     = "text"

	// FormatPRComment is an alias for markdown, named after its main use.
	FormatPRComment = "pr-comment"
)

// reportFileStem is the base name of files written by WriteAll.
const reportFileStem = "ai-attribution-report"

// ErrUnknownFormat is returned for formats no renderer handles.
var ErrUnknownFormat = errors.New("unknown report format")

// Renderer writes one output format of an attribution report.
type Renderer interface {
	// Render writes the report to w.
	Render(report *attribution.Report, w io.Writer) error
	// Extension returns the file extension for this format, without dot.
	Extension() string
}

// For returns the renderer for a format name.
func For(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		return &JSONRenderer{}, nil
	case FormatYAML:
		return &YAMLRenderer{}, nil
	case FormatHTML:
		return &HTMLRenderer{}, nil
	case FormatMarkdown, FormatPRComment:
		return &MarkdownRenderer{}, nil
	case FormatText:
		return &TextRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// WriteAll renders the report in every requested format into dir, one file
// per format named ai-attribution-report.<ext>. Unknown formats are skipped
// with a warning; write failures are fatal.
func WriteAll(report *attribution.Report, formats []string, dir string, log zerolog.Logger) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, format := range formats {
		renderer, forErr := For(format)
		if forErr != nil {
			log.Warn().Str("format", format).Msg("unknown report format, skipping")

			continue
		}

		path := filepath.Join(dir, reportFileStem+"."+renderer.Extension())

		writeErr := writeReport(renderer, report, path)
		if writeErr != nil {
			return writeErr
		}

		log.Info().Str("format", format).Str("path", path).Msg("report written")
	}

	return nil
}

func writeReport(renderer Renderer, report *attribution.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	renderErr := renderer.Render(report, file)

	closeErr := file.Close()
	if renderErr != nil {
		return fmt.Errorf("render %s report: %w", renderer.Extension(), renderErr)
	}

	if closeErr != nil {
		return fmt.Errorf("close report file: %w", closeErr)
	}

	return nil
}
