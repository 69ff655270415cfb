package render

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed report-schema.json
var reportSchema []byte

// ValidationIssue is one schema violation found in a report document.
type ValidationIssue struct {
	Field       string
	Description string
}

func (v ValidationIssue) String() string {
	return v.Field + ": " + v.Description
}

// ValidateReportJSON checks a serialized JSON report against the report
// schema. It returns the list of violations; an empty list means the document
// is valid. The error covers schema machinery failures only.
func ValidateReportJSON(document []byte) ([]ValidationIssue, error) {
	schemaLoader := gojsonschema.NewBytesLoader(reportSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	issues := make([]ValidationIssue, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		issues = append(issues, ValidationIssue{
			Field:       resultErr.Field(),
			Description: resultErr.Description(),
		})
	}

	return issues, nil
}
