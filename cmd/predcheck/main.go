// Package main provides the entry point for the predcheck CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidewatch-labs/predcheck/cmd/predcheck/commands"
	"github.com/tidewatch-labs/predcheck/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "predcheck",
		Short: "Predcheck - posterior predictive diagnostics for regression models",
		Long: `Predcheck post-processes sample draws from a fitted Bayesian
regression model: it extracts prediction summaries, rescales them to
physical units, scores them per location, and renders diagnostic plots.

Commands:
  score     Print per-location R² and RMSE score tables
  report    Render an annotated HTML diagnostics report`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewScoreCommand())
	rootCmd.AddCommand(commands.NewReportCommand())
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
			fmt.Fprintf(os.Stdout, "predcheck %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
