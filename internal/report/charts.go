package report

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	pointSymbolSize = 9
	bandLineWidth   = 1
	meanBandWidth   = 2
	identityOpacity = 0.5
)

// newScatterFacet builds one group's predicted-vs-observed scatter with a
// dashed 1:1 reference line spanning the shared observed range.
func newScatterFacet(observed, predicted []float64, axisMin, axisMax float64,
	xName, yName, pointColor string, co *ChartOpts, palette Palette,
) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init()),
		charts.WithTooltipOpts(co.Tooltip()),
		charts.WithXAxisOpts(co.ValueXAxis(xName)),
		charts.WithYAxisOpts(co.ValueYAxis(yName)),
		charts.WithGridOpts(co.Grid()),
	)

	points := make([]opts.ScatterData, len(observed))
	for i, obs := range observed {
		points[i] = opts.ScatterData{
			Value:      []any{obs, predicted[i]},
			SymbolSize: pointSymbolSize,
		}
	}

	scatter.AddSeries("Predicted", points,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: pointColor}),
	)

	scatter.Overlap(identityLine(axisMin, axisMax, palette))

	return scatter
}

// newUncertaintyFacet builds one group's uncertainty panel: point
// predictions bracketed by the wide observed-scale HDI band and the narrow
// latent-mean HDI band, plus the 1:1 line. Inputs must be sorted by
// observed value.
func newUncertaintyFacet(series uncertaintySeries, axisMin, axisMax float64,
	xName, yName string, co *ChartOpts, palette Palette,
) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init()),
		charts.WithTooltipOpts(co.Tooltip()),
		charts.WithXAxisOpts(co.ValueXAxis(xName)),
		charts.WithYAxisOpts(co.ValueYAxis(yName)),
		charts.WithGridOpts(co.Grid()),
	)

	points := make([]opts.ScatterData, len(series.Observed))
	for i, obs := range series.Observed {
		points[i] = opts.ScatterData{
			Value:      []any{obs, series.Predicted[i]},
			SymbolSize: pointSymbolSize,
		}
	}

	scatter.AddSeries("Predicted", points,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: palette.Points}),
	)

	scatter.Overlap(
		bandLine("Predictive HDI low", series.ObsLower, series.Observed, palette.PredictiveBand, bandLineWidth),
		bandLine("Predictive HDI high", series.ObsHigher, series.Observed, palette.PredictiveBand, bandLineWidth),
		bandLine("Mean HDI low", series.PredLower, series.Observed, palette.MeanBand, meanBandWidth),
		bandLine("Mean HDI high", series.PredHigher, series.Observed, palette.MeanBand, meanBandWidth),
		identityLine(axisMin, axisMax, palette),
	)

	return scatter
}

// uncertaintySeries carries per-case summary columns for one group, sorted
// by observed value.
type uncertaintySeries struct {
	Observed   []float64
	Predicted  []float64
	PredLower  []float64
	PredHigher []float64
	ObsLower   []float64
	ObsHigher  []float64
}

func bandLine(name string, values, observed []float64, color string, width float32) *charts.Line {
	line := charts.NewLine()

	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: []any{observed[i], v}, Symbol: "none"}
	}

	line.AddSeries(name, data,
		charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: width}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
	)

	return line
}

func identityLine(axisMin, axisMax float64, palette Palette) *charts.Line {
	line := charts.NewLine()

	data := []opts.LineData{
		{Value: []any{axisMin, axisMin}, Symbol: "none"},
		{Value: []any{axisMax, axisMax}, Symbol: "none"},
	}

	line.AddSeries("1:1", data,
		charts.WithLineStyleOpts(opts.LineStyle{
			Color:   palette.Identity,
			Type:    "dashed",
			Opacity: opts.Float(identityOpacity),
		}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: palette.Identity}),
	)

	return line
}
