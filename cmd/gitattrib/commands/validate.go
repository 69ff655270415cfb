package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gitattrib/pkg/render"
)

// ErrReportInvalid is returned when a report document violates the schema.
var ErrReportInvalid = errors.New("report does not match schema")

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <report.json|->",
		Short: "Validate a JSON report against the report schema",
		Long: `Validate checks a JSON attribution report against the canonical
report schema.

Examples:
  gitattrib validate reports/ai-attribution-report.json
  gitattrib validate - < report.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], nocolor)
		},
	}

	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(inputPath string, nocolor bool) error {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	document, label, err := loadDocument(inputPath)
	if err != nil {
		return err
	}

	issues, err := render.ValidateReportJSON(document)
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		color.New(color.FgGreen).Fprintf(os.Stdout, "Report is valid (%s)\n", label)

		return nil
	}

	color.New(color.FgRed).Fprintf(os.Stdout, "Report is invalid (%s): %d issue(s)\n", label, len(issues))

	for _, issue := range issues {
		fmt.Fprintf(os.Stdout, "  - %s\n", issue)
	}

	return fmt.Errorf("%w: %s", ErrReportInvalid, label)
}

func loadDocument(inputPath string) ([]byte, string, error) {
	if inputPath == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}

		return data, "stdin", nil
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, "", fmt.Errorf("read report: %w", err)
	}

	return data, inputPath, nil
}
