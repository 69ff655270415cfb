// Package commands implements CLI command handlers for gitattrib.
package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gitattrib/internal/config"
	"github.com/Sumatoshi-tech/gitattrib/internal/logging"
	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
	"github.com/Sumatoshi-tech/gitattrib/pkg/render"
	"github.com/Sumatoshi-tech/gitattrib/pkg/walker"
)

// ErrBelowThreshold is returned when enforcement is on and the AI-assisted
// percentage is under the configured minimum.
var ErrBelowThreshold = errors.New("ai-assisted percentage below threshold")

// AnalyzeCommand holds the configuration for the analyze command.
type AnalyzeCommand struct {
	configPath string
	maxCommits int
	since      string
	until      string
	formats    []string
	outputDir  string
	sourceRoot string
	minAIPct   float64
	enforce    bool

	firstParent    bool
	projectName    string
	projectVersion string

	verbose bool
	quiet   bool
	noColor bool
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	analyze := &AnalyzeCommand{}

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Walk history and generate AI attribution reports",
		Long: `Analyze walks the repository's recent history, reads AI-Assisted /
AI-Tool / AI-Confidence commit trailers and aggregates them into a report.

Examples:
  gitattrib analyze
  gitattrib analyze ~/src/myrepo --max-commits 500
  gitattrib analyze --since v1.2.0 --format markdown
  gitattrib analyze --format json,html,markdown --output-dir reports
  gitattrib analyze --enforce --min-ai-percentage 10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyze.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&analyze.configPath, "config", "", "config file path (default .gitattrib.yaml in CWD or $HOME)")
	flags.IntVarP(&analyze.maxCommits, "max-commits", "n", config.DefaultMaxCommits, "maximum number of commits to analyze")
	flags.StringVar(&analyze.since, "since", "", "exclusive start revision of the analyzed range")
	flags.StringVar(&analyze.until, "until", config.DefaultUntil, "inclusive end revision of the analyzed range")
	flags.StringSliceVarP(&analyze.formats, "format", "f", nil, "output formats: json, yaml, html, markdown, text")
	flags.StringVarP(&analyze.outputDir, "output-dir", "o", "", "write one report file per format into this directory")
	flags.StringVar(&analyze.sourceRoot, "source-root", config.DefaultSourceRoot, "path marker that starts module derivation")
	flags.Float64Var(&analyze.minAIPct, "min-ai-percentage", 0, "minimum AI-assisted percentage for --enforce")
	flags.BoolVar(&analyze.enforce, "enforce", false, "fail when the AI-assisted percentage is below the minimum")
	flags.BoolVar(&analyze.firstParent, "first-parent", false, "follow only first-parent history")
	flags.StringVar(&analyze.projectName, "project-name", "", "project name in report metadata (default repository directory)")
	flags.StringVar(&analyze.projectVersion, "project-version", "", "project version in report metadata")
	flags.BoolVarP(&analyze.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&analyze.quiet, "quiet", "q", false, "errors only")
	flags.BoolVar(&analyze.noColor, "no-color", false, "disable colored output")

	return cmd
}

func (a *AnalyzeCommand) run(cmd *cobra.Command, args []string) error {
	log := logging.New(logging.Options{Verbose: a.verbose, Quiet: a.quiet, NoColor: a.noColor})

	cfg, err := a.resolveConfig(cmd)
	if err != nil {
		return err
	}

	repoPath, err := resolveRepoPath(args)
	if err != nil {
		return err
	}

	report, err := a.analyzeRepository(repoPath, cfg, log)
	if err != nil {
		return err
	}

	if report.AIAssistedCommits == 0 {
		log.Warn().Msg("no AI-assisted commits found; check that commit trailers are present")
	}

	err = a.writeReports(report, cfg, log)
	if err != nil {
		return err
	}

	return a.checkThreshold(report, cfg)
}

// resolveConfig loads file/env configuration and applies explicitly set flags
// on top of it.
func (a *AnalyzeCommand) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("max-commits") {
		cfg.MaxCommits = a.maxCommits
	}

	if flags.Changed("since") {
		cfg.Since = a.since
	}

	if flags.Changed("until") {
		cfg.Until = a.until
	}

	if flags.Changed("format") {
		cfg.Formats = a.formats
	}

	if flags.Changed("output-dir") {
		cfg.OutputDir = a.outputDir
	}

	if flags.Changed("source-root") {
		cfg.SourceRoot = a.sourceRoot
	}

	if flags.Changed("min-ai-percentage") {
		cfg.MinAIPercentage = a.minAIPct
	}

	if flags.Changed("enforce") {
		cfg.Enforce = a.enforce
	}

	if flags.Changed("first-parent") {
		cfg.FirstParent = a.firstParent
	}

	if flags.Changed("project-name") {
		cfg.ProjectName = a.projectName
	}

	if flags.Changed("project-version") {
		cfg.ProjectVersion = a.projectVersion
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// analyzeRepository opens the repository, walks the configured range and
// aggregates the commits into a report.
func (a *AnalyzeCommand) analyzeRepository(repoPath string, cfg *config.Config, log zerolog.Logger) (*attribution.Report, error) {
	walk, err := walker.Open(repoPath, walker.Options{
		MaxCommits:  cfg.MaxCommits,
		Since:       cfg.Since,
		Until:       cfg.Until,
		FirstParent: cfg.FirstParent,
	}, log)
	if err != nil {
		return nil, err
	}
	defer walk.Close()

	commits, err := walk.Walk()
	if err != nil {
		return nil, err
	}

	branch, branchErr := walk.Branch()
	if branchErr != nil {
		log.Debug().Err(branchErr).Msg("branch name unavailable")

		branch = "unknown"
	}

	head, ok := walk.Head()
	if !ok {
		head = "unknown"
	}

	projectName := cfg.ProjectName
	if projectName == "" {
		abs, absErr := filepath.Abs(repoPath)
		if absErr == nil {
			projectName = filepath.Base(abs)
		} else {
			projectName = filepath.Base(repoPath)
		}
	}

	return attribution.BuildReport(attribution.ReportContext{
		ProjectName:    projectName,
		ProjectVersion: cfg.ProjectVersion,
		Branch:         branch,
		HeadCommit:     head,
		AnalyzedRange:  walk.AnalyzedRange(),
		SourceRoot:     cfg.SourceRoot,
	}, commits), nil
}

// writeReports fans out to the output directory when one is configured,
// followed by the console summary, and otherwise renders the first format to
// stdout.
func (a *AnalyzeCommand) writeReports(report *attribution.Report, cfg *config.Config, log zerolog.Logger) error {
	if cfg.OutputDir != "" {
		err := render.WriteAll(report, cfg.Formats, cfg.OutputDir, log)
		if err != nil {
			return err
		}

		if a.quiet {
			return nil
		}

		summary := &render.TextRenderer{}

		return summary.Render(report, os.Stdout)
	}

	renderer, err := render.For(cfg.Formats[0])
	if err != nil {
		return err
	}

	return renderer.Render(report, os.Stdout)
}

func (a *AnalyzeCommand) checkThreshold(report *attribution.Report, cfg *config.Config) error {
	if !cfg.Enforce || report.AIAssistedPercentage >= cfg.MinAIPercentage {
		return nil
	}

	return fmt.Errorf("%w: %.2f%% < %.2f%%",
		ErrBelowThreshold, report.AIAssistedPercentage, cfg.MinAIPercentage)
}

// resolveRepoPath resolves the repository path from command args.
func resolveRepoPath(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	// Expand ~ to home directory.
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = strings.Replace(path, "~", home, 1)
	}

	return path, nil
}
