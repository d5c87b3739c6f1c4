package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewatch-labs/predcheck/internal/dataset"
	"github.com/tidewatch-labs/predcheck/internal/draws"
	"github.com/tidewatch-labs/predcheck/internal/scale"
)

// identityBounds leaves values untouched so tests can reason about the raw
// summary arithmetic.
func identityBounds(groups ...string) scale.Bounds {
	bounds := scale.Bounds{
		Min: make(map[string]float64),
		Max: make(map[string]float64),
	}

	for _, g := range groups {
		bounds.Min[g] = 0
		bounds.Max[g] = 1
	}

	return bounds
}

func testObservations(t *testing.T) *dataset.Frame {
	t.Helper()

	frame := dataset.New([]string{"north", "south"})
	require.NoError(t, frame.AddColumn("dW", []float64{0.4, 0.6}))
	require.NoError(t, frame.AddColumn("dW_pred", []float64{0.42, 0.58}))

	return frame
}

// testSampleSet builds 2 chains x 3 draws x 2 cases for both the latent
// mean and the predictive draws, in the named groups.
func testSampleSet(t *testing.T, latentGroup, predictiveGroup draws.GroupName) *draws.SampleSet {
	t.Helper()

	mu, err := draws.NewArray([][][]float64{
		{{0.1, 0.5}, {0.2, 0.6}, {0.3, 0.7}},
		{{0.4, 0.8}, {0.5, 0.9}, {0.6, 1.0}},
	})
	require.NoError(t, err)

	predictive, err := draws.NewArray([][][]float64{
		{{0.0, 0.4}, {0.1, 0.5}, {0.2, 0.6}},
		{{0.3, 0.7}, {0.4, 0.8}, {0.5, 0.9}},
	})
	require.NoError(t, err)

	set := draws.NewSampleSet()
	set.Add(latentGroup, "mu", mu)
	set.Add(predictiveGroup, "dW", predictive)

	return set
}

func TestExtract_MeanOverAllChainsAndDraws(t *testing.T) {
	t.Parallel()

	set := testSampleSet(t, draws.GroupPosterior, draws.GroupPosteriorPredictive)

	summary, err := Extract(set, testObservations(t), identityBounds("north", "south"), Options{})

	require.NoError(t, err)

	means, err := summary.Column("dW_pred_mean")
	require.NoError(t, err)

	// Case 0 draws: 0.1..0.6 over 6 values => 0.35. Case 1: 0.5..1.0 => 0.75.
	assert.InDelta(t, 0.35, means[0], 1e-12)
	assert.InDelta(t, 0.75, means[1], 1e-12)
}

func TestExtract_HDIBoundsBracketMean(t *testing.T) {
	t.Parallel()

	set := testSampleSet(t, draws.GroupPosterior, draws.GroupPosteriorPredictive)

	summary, err := Extract(set, testObservations(t), identityBounds("north", "south"), Options{})

	require.NoError(t, err)

	means, err := summary.Column("dW_pred_mean")
	require.NoError(t, err)
	lower, err := summary.Column("dW_pred_hdi_lower")
	require.NoError(t, err)
	higher, err := summary.Column("dW_pred_hdi_higher")
	require.NoError(t, err)

	for i := range means {
		assert.LessOrEqual(t, lower[i], means[i], "case %d", i)
		assert.GreaterOrEqual(t, higher[i], means[i], "case %d", i)
	}
}

func TestExtract_SummaryColumns(t *testing.T) {
	t.Parallel()

	set := testSampleSet(t, draws.GroupPosterior, draws.GroupPosteriorPredictive)

	summary, err := Extract(set, testObservations(t), identityBounds("north", "south"), Options{})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"dW",
		"dW_pred_mean",
		"dW_pred_hdi_lower",
		"dW_pred_hdi_higher",
		"dW_obs_hdi_lower",
		"dW_obs_hdi_higher",
		"dW_paper",
	}, summary.Columns())
	assert.Equal(t, []string{"north", "south"}, summary.Groups())
}

func TestExtract_PaperColumnCopied(t *testing.T) {
	t.Parallel()

	set := testSampleSet(t, draws.GroupPosterior, draws.GroupPosteriorPredictive)

	summary, err := Extract(set, testObservations(t), identityBounds("north", "south"), Options{})

	require.NoError(t, err)

	paper, err := summary.Column("dW_paper")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.42, 0.58}, paper, 1e-12)
}

func TestExtract_NoReferencePrediction(t *testing.T) {
	t.Parallel()

	observations := dataset.New([]string{"north", "south"})
	require.NoError(t, observations.AddColumn("dW", []float64{0.4, 0.6}))

	set := testSampleSet(t, draws.GroupPosterior, draws.GroupPosteriorPredictive)

	summary, err := Extract(set, observations, identityBounds("north", "south"), Options{})

	require.NoError(t, err)
	assert.False(t, summary.HasColumn("dW_paper"))
}

func TestExtract_PriorSource(t *testing.T) {
	t.Parallel()

	set := testSampleSet(t, draws.GroupPrior, draws.GroupPriorPredictive)

	summary, err := Extract(set, testObservations(t), identityBounds("north", "south"),
		Options{Source: SourcePrior})

	require.NoError(t, err)
	assert.True(t, summary.HasColumn("dW_pred_mean"))
}

func TestExtract_PriorRequestedButAbsent(t *testing.T) {
	t.Parallel()

	// Only posterior draws available.
	set := testSampleSet(t, draws.GroupPosterior, draws.GroupPosteriorPredictive)

	_, err := Extract(set, testObservations(t), identityBounds("north", "south"),
		Options{Source: SourcePrior})

	assert.ErrorIs(t, err, draws.ErrGroupNotFound)
}

func TestExtract_CaseCountMismatch(t *testing.T) {
	t.Parallel()

	set := testSampleSet(t, draws.GroupPosterior, draws.GroupPosteriorPredictive)

	observations := dataset.New([]string{"north", "south", "north"})
	require.NoError(t, observations.AddColumn("dW", []float64{0.4, 0.6, 0.5}))

	_, err := Extract(set, observations, identityBounds("north", "south"), Options{})

	assert.ErrorIs(t, err, ErrCaseCountMismatch)
}

func TestExtract_RescalesToPhysicalUnits(t *testing.T) {
	t.Parallel()

	bounds := scale.Bounds{
		Min: map[string]float64{"north": 100, "south": 0},
		Max: map[string]float64{"north": 200, "south": 10},
	}

	set := testSampleSet(t, draws.GroupPosterior, draws.GroupPosteriorPredictive)

	summary, err := Extract(set, testObservations(t), bounds, Options{})

	require.NoError(t, err)

	observed, err := summary.Column("dW")
	require.NoError(t, err)
	// north: 0.4*100+100 = 140; south: 0.6*10+0 = 6.
	assert.InDeltaSlice(t, []float64{140, 6}, observed, 1e-12)

	means, err := summary.Column("dW_pred_mean")
	require.NoError(t, err)
	// Raw means 0.35 and 0.75 rescaled per group.
	assert.InDeltaSlice(t, []float64{135, 7.5}, means, 1e-12)
}

func TestExtract_MissingBoundFailsLoudly(t *testing.T) {
	t.Parallel()

	set := testSampleSet(t, draws.GroupPosterior, draws.GroupPosteriorPredictive)

	_, err := Extract(set, testObservations(t), identityBounds("north"), Options{})

	assert.ErrorIs(t, err, scale.ErrMissingGroupBound)
}

func TestSource_Groups(t *testing.T) {
	t.Parallel()

	latent, predictive := SourcePosterior.Groups()
	assert.Equal(t, draws.GroupPosterior, latent)
	assert.Equal(t, draws.GroupPosteriorPredictive, predictive)

	latent, predictive = SourcePrior.Groups()
	assert.Equal(t, draws.GroupPrior, latent)
	assert.Equal(t, draws.GroupPriorPredictive, predictive)
}

func TestSource_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "posterior", SourcePosterior.String())
	assert.Equal(t, "prior", SourcePrior.String())
}
