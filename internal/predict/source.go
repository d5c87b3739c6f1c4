// Package predict extracts prediction summaries from sampled model draws:
// per-case means and highest-density intervals for the latent mean and the
// observed-scale predictive distribution, joined with the observation table
// and rescaled to physical units.
package predict

import (
	"github.com/tidewatch-labs/predcheck/internal/draws"
)

// Source selects which side of the model the summaries come from.
type Source int

// Draw sources.
const (
	SourcePosterior Source = iota
	SourcePrior
)

// Groups returns the draws group carrying the latent parameters and the
// predictive group carrying observed-scale draws for this source.
func (s Source) Groups() (latent, predictive draws.GroupName) {
	if s == SourcePrior {
		return draws.GroupPrior, draws.GroupPriorPredictive
	}

	return draws.GroupPosterior, draws.GroupPosteriorPredictive
}

// String implements fmt.Stringer.
func (s Source) String() string {
	if s == SourcePrior {
		return "prior"
	}

	return "posterior"
}
