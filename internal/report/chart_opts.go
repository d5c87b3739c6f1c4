package report

import (
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Facet chart dimensions.
const (
	facetWidth  = "420px"
	facetHeight = "320px"
)

// ChartOpts provides themed chart options.
type ChartOpts struct {
	theme ThemeConfig
}

// NewChartOpts creates chart options for the given theme.
func NewChartOpts(theme Theme) *ChartOpts {
	return &ChartOpts{theme: Config(theme)}
}

// Init returns initialization options with the themed background.
func (c *ChartOpts) Init() opts.Initialization {
	return opts.Initialization{
		Width:           facetWidth,
		Height:          facetHeight,
		BackgroundColor: c.theme.ChartBackground,
	}
}

// Tooltip returns item-triggered tooltip options.
func (c *ChartOpts) Tooltip() opts.Tooltip {
	return opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}
}

// ValueXAxis returns a numeric x axis with themed colors.
func (c *ChartOpts) ValueXAxis(name string) opts.XAxis {
	return opts.XAxis{
		Name:      name,
		Type:      "value",
		Scale:     opts.Bool(true),
		AxisLabel: &opts.AxisLabel{Color: c.theme.TextMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
		SplitLine: &opts.SplitLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartGrid}},
	}
}

// ValueYAxis returns a numeric y axis with themed colors.
func (c *ChartOpts) ValueYAxis(name string) opts.YAxis {
	return opts.YAxis{
		Name:      name,
		Type:      "value",
		Scale:     opts.Bool(true),
		AxisLabel: &opts.AxisLabel{Color: c.theme.TextMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(true),
			LineStyle: &opts.LineStyle{Color: c.theme.ChartGrid},
		},
	}
}

// Grid returns grid options with compact margins for facet charts.
func (c *ChartOpts) Grid() opts.Grid {
	return opts.Grid{
		Top:          "12%",
		Bottom:       "12%",
		Left:         "8%",
		Right:        "5%",
		ContainLabel: opts.Bool(true),
	}
}
