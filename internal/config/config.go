// Package config holds the analyze settings resolved from config file,
// environment and defaults. Flags are applied on top by the command layer.
package config

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/gitattrib/pkg/render"
	"github.com/Sumatoshi-tech/gitattrib/pkg/walker"
)

// Defaults applied before any config source is read.
const (
	DefaultMaxCommits = walker.DefaultMaxCommits
	DefaultUntil      = "HEAD"
	DefaultSourceRoot = "src/main/java/"
	DefaultOutputDir  = "reports"
)

// Enforcement bounds for min_ai_percentage.
const maxPercentage = 100

// Validation errors.
var (
	ErrInvalidMaxCommits      = errors.New("max_commits must be positive")
	ErrInvalidMinAIPercentage = errors.New("min_ai_percentage must be between 0 and 100")
	ErrNoFormats              = errors.New("at least one output format is required")
	ErrUnknownFormat          = errors.New("unknown output format")
)

// Config is the full analyze configuration.
type Config struct {
	// MaxCommits caps the history walk.
	MaxCommits int `mapstructure:"max_commits"`
	// Since is the exclusive start revision of the analyzed range.
	Since string `mapstructure:"since"`
	// Until is the inclusive end revision of the analyzed range.
	Until string `mapstructure:"until"`
	// FirstParent restricts the walk to first-parent history.
	FirstParent bool `mapstructure:"first_parent"`
	// SourceRoot is the path marker that starts module derivation.
	SourceRoot string `mapstructure:"source_root"`
	// Formats lists the report formats to write.
	Formats []string `mapstructure:"formats"`
	// OutputDir receives one report file per format.
	OutputDir string `mapstructure:"output_dir"`
	// MinAIPercentage is the enforcement threshold, in percent.
	MinAIPercentage float64 `mapstructure:"min_ai_percentage"`
	// Enforce fails the run when the AI percentage is below the threshold.
	Enforce bool `mapstructure:"enforce"`
	// ProjectName overrides the repository directory name in reports.
	ProjectName string `mapstructure:"project_name"`
	// ProjectVersion is recorded in report metadata.
	ProjectVersion string `mapstructure:"project_version"`
}

// Validate checks value ranges and format names.
func (c *Config) Validate() error {
	if c.MaxCommits <= 0 {
		return ErrInvalidMaxCommits
	}

	if c.MinAIPercentage < 0 || c.MinAIPercentage > maxPercentage {
		return ErrInvalidMinAIPercentage
	}

	if len(c.Formats) == 0 {
		return ErrNoFormats
	}

	for _, format := range c.Formats {
		_, err := render.For(format)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
		}
	}

	return nil
}
