package commands

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReport_WritesHTML(t *testing.T) {
	t.Parallel()

	observations, scales, drawsPath := writeFixtures(t)
	outputDir := filepath.Join(t.TempDir(), "out")

	flags := runFlags{observations: observations, scales: scales}
	err := runReport(flags, drawsPath, outputDir, "Test report")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "report.html"))
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "Test report")
	assert.Contains(t, html, "Model predictions")
	assert.Contains(t, html, "Prediction uncertainty")
	assert.Contains(t, html, "echarts")
}

func TestNewReportCommand_RequiresOutput(t *testing.T) {
	t.Parallel()

	observations, scales, drawsPath := writeFixtures(t)

	cmd := NewReportCommand()
	cmd.SetArgs([]string{drawsPath, "--observations", observations, "--scales", scales})

	err := cmd.Execute()
	require.ErrorIs(t, err, ErrNoOutputDir)
}

func TestNewScoreCommand_Execute(t *testing.T) {
	t.Parallel()

	observations, scales, drawsPath := writeFixtures(t)

	cmd := NewScoreCommand()
	cmd.SetArgs([]string{drawsPath, "--observations", observations, "--scales", scales})

	require.NoError(t, cmd.Execute())
}

func TestNewScoreCommand_RejectsMissingDrawsArg(t *testing.T) {
	t.Parallel()

	cmd := NewScoreCommand()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "arg"))
}
