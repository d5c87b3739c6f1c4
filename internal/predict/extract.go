package predict

import (
	"errors"
	"fmt"

	"github.com/tidewatch-labs/predcheck/internal/dataset"
	"github.com/tidewatch-labs/predcheck/internal/draws"
	"github.com/tidewatch-labs/predcheck/internal/scale"
	"github.com/tidewatch-labs/predcheck/pkg/alg/stats"
)

// DefaultHDIProb is the credible-interval probability mass used when none
// is configured.
const DefaultHDIProb = 0.89

// DefaultLatent is the conventional name of the latent mean variable.
const DefaultLatent = "mu"

// Summary column suffixes appended to the target base name.
const (
	SuffixMean       = "_pred_mean"
	SuffixPredLower  = "_pred_hdi_lower"
	SuffixPredHigher = "_pred_hdi_higher"
	SuffixObsLower   = "_obs_hdi_lower"
	SuffixObsHigher  = "_obs_hdi_higher"
	SuffixPaper      = "_paper"
	SuffixReference  = "_pred"
)

// ErrCaseCountMismatch is returned when the draws and the observation table
// disagree on the number of cases.
var ErrCaseCountMismatch = errors.New("case count mismatch between draws and observations")

// Options configures an extraction.
type Options struct {
	// Source selects prior or posterior draws. Zero value is posterior.
	Source Source

	// Target is the observed variable's base name. Defaults to "dW".
	Target string

	// Latent is the latent mean variable's name. Defaults to "mu".
	Latent string

	// HDIProb is the credible-interval probability mass. Defaults to 0.89.
	HDIProb float64
}

func (o Options) withDefaults() Options {
	if o.Target == "" {
		o.Target = "dW"
	}

	if o.Latent == "" {
		o.Latent = DefaultLatent
	}

	if o.HDIProb == 0 {
		o.HDIProb = DefaultHDIProb
	}

	return o
}

// Extract builds the prediction summary table for the configured source:
// observed target, per-case mean prediction, HDI bounds of the latent mean
// and of the observed-scale predictive draws, the group key, and the
// reference prediction when the observations carry one. All value columns
// are rescaled back to physical units with the given bounds.
func Extract(set *draws.SampleSet, observations *dataset.Frame, bounds scale.Bounds, opts Options) (*dataset.Frame, error) {
	opts = opts.withDefaults()

	latentGroup, predictiveGroup := opts.Source.Groups()

	latent, err := set.Variable(latentGroup, opts.Latent)
	if err != nil {
		return nil, fmt.Errorf("%s draws: %w", opts.Source, err)
	}

	predictive, err := set.Variable(predictiveGroup, opts.Target)
	if err != nil {
		return nil, fmt.Errorf("%s predictive draws: %w", opts.Source, err)
	}

	cases := observations.Len()
	if latent.Cases() != cases {
		return nil, fmt.Errorf("%w: %d latent cases, %d observations",
			ErrCaseCountMismatch, latent.Cases(), cases)
	}

	if predictive.Cases() != cases {
		return nil, fmt.Errorf("%w: %d predictive cases, %d observations",
			ErrCaseCountMismatch, predictive.Cases(), cases)
	}

	observed, err := observations.Column(opts.Target)
	if err != nil {
		return nil, fmt.Errorf("observed target: %w", err)
	}

	means := make([]float64, cases)
	predLower := make([]float64, cases)
	predHigher := make([]float64, cases)
	obsLower := make([]float64, cases)
	obsHigher := make([]float64, cases)

	for i := 0; i < cases; i++ {
		latentDraws := latent.CaseDraws(i)
		means[i] = stats.Mean(latentDraws)

		predLower[i], predHigher[i], err = stats.HDI(latentDraws, opts.HDIProb)
		if err != nil {
			return nil, fmt.Errorf("latent hdi for case %d: %w", i, err)
		}

		obsLower[i], obsHigher[i], err = stats.HDI(predictive.CaseDraws(i), opts.HDIProb)
		if err != nil {
			return nil, fmt.Errorf("predictive hdi for case %d: %w", i, err)
		}
	}

	summary := dataset.New(observations.Groups())
	suffixes := []string{"", SuffixMean, SuffixPredLower, SuffixPredHigher, SuffixObsLower, SuffixObsHigher}

	columns := map[string][]float64{
		opts.Target:                    observed,
		opts.Target + SuffixMean:       means,
		opts.Target + SuffixPredLower:  predLower,
		opts.Target + SuffixPredHigher: predHigher,
		opts.Target + SuffixObsLower:   obsLower,
		opts.Target + SuffixObsHigher:  obsHigher,
	}

	for _, suffix := range suffixes {
		name := opts.Target + suffix

		addErr := summary.AddColumn(name, columns[name])
		if addErr != nil {
			return nil, fmt.Errorf("assemble summary: %w", addErr)
		}
	}

	// Observation tables may omit the reference prediction; the paper
	// column and its rescaling are skipped when they do.
	if reference, refErr := observations.Column(opts.Target + SuffixReference); refErr == nil {
		addErr := summary.AddColumn(opts.Target+SuffixPaper, reference)
		if addErr != nil {
			return nil, fmt.Errorf("assemble summary: %w", addErr)
		}

		suffixes = append(suffixes, SuffixPaper)
	}

	rescaled, err := scale.Rescale(summary, bounds, opts.Target, suffixes)
	if err != nil {
		return nil, fmt.Errorf("rescale summary: %w", err)
	}

	return rescaled, nil
}
