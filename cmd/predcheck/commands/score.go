package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tidewatch-labs/predcheck/internal/score"
)

const scoreArgCount = 1

// NewScoreCommand creates the score subcommand: extraction plus terminal
// score tables, no report file.
func NewScoreCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "score <draws-file>",
		Short: "Score model predictions per location (R² and RMSE)",
		Args:  cobra.ExactArgs(scoreArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			return runScore(flags, args[0])
		},
	}

	addRunFlags(cmd, &flags)

	return cmd
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file path")
	cmd.Flags().StringVarP(&flags.observations, "observations", "d", "", "observations CSV file")
	cmd.Flags().StringVarP(&flags.scales, "scales", "s", "", "scale bounds YAML file")
	cmd.Flags().BoolVar(&flags.prior, "prior", false, "use prior draws instead of posterior")
}

func runScore(flags runFlags, drawsPath string) error {
	result, err := run(flags, drawsPath)
	if err != nil {
		return err
	}

	printScores(result.scores)

	return nil
}

func printScores(scored *score.Set) {
	color.New(color.FgCyan, color.Bold).Fprintln(os.Stdout, "Goodness of fit per location")
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, score.Render(scored))
}
