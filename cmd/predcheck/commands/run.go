// Package commands implements the predcheck subcommands.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/tidewatch-labs/predcheck/internal/config"
	"github.com/tidewatch-labs/predcheck/internal/dataset"
	"github.com/tidewatch-labs/predcheck/internal/draws"
	"github.com/tidewatch-labs/predcheck/internal/predict"
	"github.com/tidewatch-labs/predcheck/internal/score"
)

// ErrNoObservations is returned when the --observations flag is not set.
var ErrNoObservations = errors.New("observations file is required (use --observations)")

// ErrNoScales is returned when the --scales flag is not set.
var ErrNoScales = errors.New("scales file is required (use --scales)")

// runFlags holds the flags shared by the score and report commands.
type runFlags struct {
	configPath   string
	observations string
	scales       string
	prior        bool
}

// runResult carries the outputs of one extraction and scoring pass.
type runResult struct {
	cfg     *config.Config
	summary *dataset.Frame
	scores  *score.Set
}

func logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// run loads every input, extracts the prediction summary, and scores it.
func run(flags runFlags, drawsPath string) (*runResult, error) {
	if flags.observations == "" {
		return nil, ErrNoObservations
	}

	if flags.scales == "" {
		return nil, ErrNoScales
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	log := logger()

	observations, err := dataset.LoadCSV(flags.observations)
	if err != nil {
		return nil, fmt.Errorf("load observations: %w", err)
	}

	log.Info("loaded observations", "rows", observations.Len(), "groups", len(observations.GroupKeys()))

	scales, err := loadBounds(flags.scales, cfg.Target)
	if err != nil {
		return nil, err
	}

	set, err := draws.Load(drawsPath)
	if err != nil {
		return nil, fmt.Errorf("load draws: %w", err)
	}

	source := predict.SourcePosterior
	if flags.prior {
		source = predict.SourcePrior
	}

	summary, err := predict.Extract(set, observations, scales, predict.Options{
		Source:  source,
		Target:  cfg.Target,
		Latent:  cfg.Latent,
		HDIProb: cfg.HDIProb,
	})
	if err != nil {
		return nil, fmt.Errorf("extract predictions: %w", err)
	}

	log.Info("extracted predictions", "source", source.String(), "cases", summary.Len())

	variants := presentVariants(summary, cfg, log)

	scored, err := score.Calculate(summary, cfg.Target, variants)
	if err != nil {
		return nil, fmt.Errorf("score predictions: %w", err)
	}

	return &runResult{cfg: cfg, summary: summary, scores: scored}, nil
}

// presentVariants drops configured variants whose columns are absent from
// the summary, e.g. "_paper" when the observations carry no reference
// prediction.
func presentVariants(summary *dataset.Frame, cfg *config.Config, log *slog.Logger) []string {
	var variants []string

	for _, variant := range cfg.Variants {
		if !summary.HasColumn(cfg.Target + variant) {
			log.Warn("skipping variant without summary column", "variant", variant)

			continue
		}

		variants = append(variants, variant)
	}

	return variants
}
