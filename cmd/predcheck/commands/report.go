package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tidewatch-labs/predcheck/internal/report"
)

const (
	reportArgCount = 1
	reportDirPerm  = 0o750
	reportFileName = "report.html"
)

// ErrNoOutputDir is returned when the --output flag is not set.
var ErrNoOutputDir = errors.New("output directory is required (use --output)")

// NewReportCommand creates the report subcommand: extraction, scoring, and
// an annotated HTML diagnostics page.
func NewReportCommand() *cobra.Command {
	var (
		flags     runFlags
		outputDir string
		title     string
	)

	cmd := &cobra.Command{
		Use:   "report <draws-file>",
		Short: "Render prediction diagnostics as an annotated HTML report",
		Args:  cobra.ExactArgs(reportArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			if outputDir == "" {
				return ErrNoOutputDir
			}

			return runReport(flags, args[0], outputDir, title)
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for the HTML report")
	cmd.Flags().StringVar(&title, "title", "", "report page title")

	return cmd
}

func runReport(flags runFlags, drawsPath, outputDir, title string) error {
	result, err := run(flags, drawsPath)
	if err != nil {
		return err
	}

	printScores(result.scores)

	mkErr := os.MkdirAll(outputDir, reportDirPerm)
	if mkErr != nil {
		return fmt.Errorf("create output dir: %w", mkErr)
	}

	page, err := report.Build(result.summary, result.scores, report.Options{
		Target: result.cfg.Target,
		Title:  title,
		Theme:  report.Theme(result.cfg.Theme),
		TopN:   result.cfg.TopN,
	})
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	path := filepath.Join(outputDir, reportFileName)

	written, err := report.WriteFile(page, path)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(os.Stdout, "Wrote %s (%s)\n",
		path, humanize.Bytes(uint64(written)))

	return nil
}
