// Package main provides the entry point for the gitattrib CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gitattrib/cmd/gitattrib/commands"
	"github.com/Sumatoshi-tech/gitattrib/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gitattrib",
		Short: "AI attribution analysis for git history",
		Long: `Gitattrib analyzes commit history for AI-assistance trailers and
reports how much of the recent work was AI-assisted, per tool and per module.

Commands:
  analyze   Walk history and generate attribution reports
  validate  Check a JSON report against the report schema`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "gitattrib %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
