package report

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/tidewatch-labs/predcheck/internal/dataset"
	"github.com/tidewatch-labs/predcheck/internal/predict"
	"github.com/tidewatch-labs/predcheck/internal/score"
)

// DefaultTopN is how many top cases each uncertainty facet shows.
const DefaultTopN = 10

// Options configures report assembly.
type Options struct {
	// Target is the observed variable's base name. Defaults to "dW".
	Target string

	// Title heads the report page. Defaults to "Prediction diagnostics".
	Title string

	// Theme selects the color scheme. Zero value is light.
	Theme Theme

	// TopN limits each uncertainty facet to the highest observed cases.
	// Defaults to 10.
	TopN int
}

func (o Options) withDefaults() Options {
	if o.Target == "" {
		o.Target = "dW"
	}

	if o.Title == "" {
		o.Title = "Prediction diagnostics"
	}

	if o.TopN == 0 {
		o.TopN = DefaultTopN
	}

	return o
}

// Build assembles the diagnostic page from a prediction summary and its
// score set: a scatter section per prediction variant, each facet
// annotated with that group's R² and RMSE, plus an uncertainty section
// showing HDI bands for the top observed cases.
func Build(summary *dataset.Frame, scores *score.Set, opts Options) (*Page, error) {
	opts = opts.withDefaults()

	page := NewPage(opts.Title, "Posterior predictive diagnostics per location.", opts.Theme)

	co := NewChartOpts(opts.Theme)
	palette := ChartPalette(opts.Theme)

	observed, err := summary.Column(opts.Target)
	if err != nil {
		return nil, fmt.Errorf("observed target: %w", err)
	}

	axisMin, axisMax := valueRange(observed)

	meanSection, err := scatterSection(summary, scores, opts, predict.SuffixMean,
		"Model predictions", "Posterior mean prediction against the observed target.",
		axisMin, axisMax, palette.Points, co, palette)
	if err != nil {
		return nil, err
	}

	page.Add(meanSection)

	if summary.HasColumn(opts.Target + predict.SuffixPaper) {
		paperSection, sectionErr := scatterSection(summary, scores, opts, predict.SuffixPaper,
			"Reference predictions", "Published reference prediction against the observed target.",
			axisMin, axisMax, palette.Reference, co, palette)
		if sectionErr != nil {
			return nil, sectionErr
		}

		page.Add(paperSection)
	}

	uncertainty, err := uncertaintySection(summary, opts, axisMin, axisMax, co, palette)
	if err != nil {
		return nil, err
	}

	page.Add(uncertainty)

	return page, nil
}

// WriteFile renders the page to a file and returns the bytes written.
func WriteFile(page *Page, path string) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create report: %w", err)
	}

	counter := &countingWriter{w: file}

	renderErr := page.Render(counter)

	closeErr := file.Close()

	if renderErr != nil {
		return counter.n, fmt.Errorf("render report: %w", renderErr)
	}

	if closeErr != nil {
		return counter.n, fmt.Errorf("close report: %w", closeErr)
	}

	return counter.n, nil
}

func scatterSection(summary *dataset.Frame, scores *score.Set, opts Options,
	variant, title, subtitle string, axisMin, axisMax float64,
	pointColor string, co *ChartOpts, palette Palette,
) (Section, error) {
	observed, err := summary.Column(opts.Target)
	if err != nil {
		return Section{}, fmt.Errorf("observed target: %w", err)
	}

	predicted, err := summary.Column(opts.Target + variant)
	if err != nil {
		return Section{}, fmt.Errorf("variant %q: %w", variant, err)
	}

	section := Section{Title: title, Subtitle: subtitle}

	for _, group := range summary.GroupKeys() {
		rows := summary.GroupRows(group)

		chart := newScatterFacet(
			selectRows(observed, rows), selectRows(predicted, rows),
			axisMin, axisMax,
			"Observed "+opts.Target, "Predicted "+opts.Target,
			pointColor, co, palette,
		)

		section.Facets = append(section.Facets, Facet{
			Title: group,
			Stats: facetStats(scores, variant, group),
			Chart: chart,
		})
	}

	return section, nil
}

func uncertaintySection(summary *dataset.Frame, opts Options,
	axisMin, axisMax float64, co *ChartOpts, palette Palette,
) (Section, error) {
	columns := []string{
		opts.Target,
		opts.Target + predict.SuffixMean,
		opts.Target + predict.SuffixPredLower,
		opts.Target + predict.SuffixPredHigher,
		opts.Target + predict.SuffixObsLower,
		opts.Target + predict.SuffixObsHigher,
	}

	values := make([][]float64, len(columns))

	for i, name := range columns {
		column, err := summary.Column(name)
		if err != nil {
			return Section{}, fmt.Errorf("uncertainty column: %w", err)
		}

		values[i] = column
	}

	section := Section{
		Title: "Prediction uncertainty",
		Subtitle: fmt.Sprintf("Latent-mean and predictive HDI bands for the top %d observed cases per location.",
			opts.TopN),
	}

	for _, group := range summary.GroupKeys() {
		rows := topRows(values[0], summary.GroupRows(group), opts.TopN)

		series := uncertaintySeries{
			Observed:   selectRows(values[0], rows),
			Predicted:  selectRows(values[1], rows),
			PredLower:  selectRows(values[2], rows),
			PredHigher: selectRows(values[3], rows),
			ObsLower:   selectRows(values[4], rows),
			ObsHigher:  selectRows(values[5], rows),
		}

		chart := newUncertaintyFacet(series, axisMin, axisMax,
			"Observed "+opts.Target, "Predicted "+opts.Target, co, palette)

		section.Facets = append(section.Facets, Facet{Title: group, Chart: chart})
	}

	return section, nil
}

// facetStats collects the group's formatted metric values for a variant.
// Missing tables simply yield no stat; annotation is best-effort.
func facetStats(scores *score.Set, variant, group string) []Stat {
	if scores == nil {
		return nil
	}

	var out []Stat

	if table, ok := scores.Table(score.Key{Metric: score.MetricR2, Variant: variant}); ok {
		if value, found := table.Value(group); found {
			out = append(out, Stat{Label: "R²", Value: fmt.Sprintf("%.2f", value)})
		}
	}

	if table, ok := scores.Table(score.Key{Metric: score.MetricRMSE, Variant: variant}); ok {
		if value, found := table.Value(group); found {
			out = append(out, Stat{Label: "RMSE", Value: fmt.Sprintf("%.2f", value)})
		}
	}

	return out
}

// topRows returns the indices of the n largest observed values among rows,
// reordered ascending for line series.
func topRows(observed []float64, rows []int, n int) []int {
	sorted := make([]int, len(rows))
	copy(sorted, rows)

	sort.Slice(sorted, func(i, j int) bool {
		return observed[sorted[i]] < observed[sorted[j]]
	})

	if len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}

	return sorted
}

func selectRows(values []float64, rows []int) []float64 {
	out := make([]float64, len(rows))

	for i, row := range rows {
		out[i] = values[row]
	}

	return out
}

func valueRange(values []float64) (low, high float64) {
	low = math.Inf(1)
	high = math.Inf(-1)

	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}

		low = math.Min(low, v)
		high = math.Max(high, v)
	}

	if math.IsInf(low, 1) {
		return 0, 0
	}

	return low, high
}
