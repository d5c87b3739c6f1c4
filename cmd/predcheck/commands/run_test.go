package commands

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureObservations = `location,dW
north,0.2
north,0.4
south,0.6
south,0.8
`

const fixtureScales = `dW:
  min:
    north: 0.0
    south: 0.0
  max:
    north: 1.0
    south: 1.0
`

const fixtureDraws = `{
	"posterior": {
		"mu": [
			[[0.2, 0.4, 0.6, 0.8], [0.21, 0.41, 0.61, 0.81], [0.19, 0.39, 0.59, 0.79]],
			[[0.2, 0.4, 0.6, 0.8], [0.21, 0.41, 0.61, 0.81], [0.19, 0.39, 0.59, 0.79]]
		]
	},
	"posterior_predictive": {
		"dW": [
			[[0.2, 0.4, 0.6, 0.8], [0.25, 0.45, 0.65, 0.85], [0.15, 0.35, 0.55, 0.75]],
			[[0.2, 0.4, 0.6, 0.8], [0.25, 0.45, 0.65, 0.85], [0.15, 0.35, 0.55, 0.75]]
		]
	}
}`

// writeFixtures lays out an observations CSV, a scales YAML, and a draws
// JSON document in a temp dir and returns their paths.
func writeFixtures(t *testing.T) (observations, scales, drawsPath string) {
	t.Helper()

	dir := t.TempDir()

	observations = filepath.Join(dir, "observations.csv")
	require.NoError(t, os.WriteFile(observations, []byte(fixtureObservations), 0o600))

	scales = filepath.Join(dir, "scales.yaml")
	require.NoError(t, os.WriteFile(scales, []byte(fixtureScales), 0o600))

	drawsPath = filepath.Join(dir, "draws.json")
	require.NoError(t, os.WriteFile(drawsPath, []byte(fixtureDraws), 0o600))

	return observations, scales, drawsPath
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	observations, scales, drawsPath := writeFixtures(t)

	result, err := run(runFlags{observations: observations, scales: scales}, drawsPath)
	require.NoError(t, err)

	require.Equal(t, 4, result.summary.Len())
	assert.True(t, result.summary.HasColumn("dW_pred_mean"))
	assert.True(t, result.summary.HasColumn("dW_pred_hdi_lower"))
	assert.True(t, result.summary.HasColumn("dW_obs_hdi_higher"))

	// Latent draws center on the observations, so the mean prediction
	// reproduces them and the fit is perfect.
	keys := result.scores.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, "r2_pred_mean", keys[0].String())
	assert.Equal(t, "rmse_pred_mean", keys[1].String())

	r2, ok := result.scores.Table(keys[0])
	require.True(t, ok)

	for _, group := range []string{"north", "south"} {
		value, ok := r2.Value(group)
		require.True(t, ok)
		assert.InDelta(t, 1.0, value, 1e-9)
	}
}

func TestRun_SkipsAbsentPaperVariant(t *testing.T) {
	t.Parallel()

	observations, scales, drawsPath := writeFixtures(t)

	result, err := run(runFlags{observations: observations, scales: scales}, drawsPath)
	require.NoError(t, err)

	// The fixture observations carry no reference prediction, so the
	// configured paper variant drops out of the score set.
	for _, key := range result.scores.Keys() {
		assert.NotEqual(t, "r2_paper", key.String())
		assert.NotEqual(t, "rmse_paper", key.String())
	}
}

func TestRun_PriorSourceMissingFromDraws(t *testing.T) {
	t.Parallel()

	observations, scales, drawsPath := writeFixtures(t)

	_, err := run(runFlags{observations: observations, scales: scales, prior: true}, drawsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prior")
}

func TestRun_MissingFlags(t *testing.T) {
	t.Parallel()

	_, err := run(runFlags{}, "draws.json")
	require.ErrorIs(t, err, ErrNoObservations)

	_, err = run(runFlags{observations: "obs.csv"}, "draws.json")
	require.ErrorIs(t, err, ErrNoScales)
}

func TestRun_RescalesToPhysicalUnits(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	observations := filepath.Join(dir, "observations.csv")
	require.NoError(t, os.WriteFile(observations, []byte(fixtureObservations), 0o600))

	// Non-identity bounds: north spans [100, 200], south spans [0, 10].
	scales := filepath.Join(dir, "scales.yaml")
	require.NoError(t, os.WriteFile(scales, []byte(`dW:
  min:
    north: 100.0
    south: 0.0
  max:
    north: 200.0
    south: 10.0
`), 0o600))

	drawsPath := filepath.Join(dir, "draws.json")
	require.NoError(t, os.WriteFile(drawsPath, []byte(fixtureDraws), 0o600))

	result, err := run(runFlags{observations: observations, scales: scales}, drawsPath)
	require.NoError(t, err)

	observed, err := result.summary.Column("dW")
	require.NoError(t, err)

	// north rows 0.2, 0.4 map to 120, 140; south rows 0.6, 0.8 to 6, 8.
	assert.InDelta(t, 120.0, observed[0], 1e-9)
	assert.InDelta(t, 140.0, observed[1], 1e-9)
	assert.InDelta(t, 6.0, observed[2], 1e-9)
	assert.InDelta(t, 8.0, observed[3], 1e-9)

	for _, value := range observed {
		assert.False(t, math.IsNaN(value))
	}
}
