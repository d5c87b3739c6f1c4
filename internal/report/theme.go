package report

// Theme selects the report color scheme.
type Theme string

// Available themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeConfig holds the styling values the page and charts draw from.
type ThemeConfig struct {
	Background    string
	Surface       string
	Border        string
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	ChartBackground string
	ChartGrid       string
	ChartAxis       string
	ChartText       string
}

// Palette assigns colors to the diagnostic chart series.
type Palette struct {
	// Points is the prediction scatter color.
	Points string
	// Identity is the 1:1 reference line color.
	Identity string
	// PredictiveBand colors the wide observed-scale HDI band.
	PredictiveBand string
	// MeanBand colors the narrow latent-mean HDI band.
	MeanBand string
	// Reference colors the paper-prediction series.
	Reference string
}

// Config returns the style values for a theme.
func Config(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

// ChartPalette returns the series colors for a theme.
func ChartPalette(theme Theme) Palette {
	if theme == ThemeDark {
		return darkPalette
	}

	return lightPalette
}

var lightTheme = ThemeConfig{
	Background:    "#fafaf9", // stone-50.
	Surface:       "#ffffff",
	Border:        "#e7e5e4", // stone-200.
	TextPrimary:   "#1c1917", // stone-900.
	TextSecondary: "#44403c", // stone-700.
	TextMuted:     "#78716c", // stone-500.

	ChartBackground: "transparent",
	ChartGrid:       "#e7e5e4", // stone-200.
	ChartAxis:       "#a8a29e", // stone-400.
	ChartText:       "#44403c", // stone-700.
}

var darkTheme = ThemeConfig{
	Background:    "#0c0a09", // stone-950.
	Surface:       "#1c1917", // stone-900.
	Border:        "#44403c", // stone-700.
	TextPrimary:   "#fafaf9", // stone-50.
	TextSecondary: "#d6d3d1", // stone-300.
	TextMuted:     "#a8a29e", // stone-400.

	ChartBackground: "transparent",
	ChartGrid:       "#44403c", // stone-700.
	ChartAxis:       "#57534e", // stone-600.
	ChartText:       "#d6d3d1", // stone-300.
}

var lightPalette = Palette{
	Points:         "#0369a1", // sky-700.
	Identity:       "#dc2626", // red-600.
	PredictiveBand: "#fdba74", // orange-300.
	MeanBand:       "#0284c7", // sky-600.
	Reference:      "#4d7c0f", // lime-700.
}

var darkPalette = Palette{
	Points:         "#38bdf8", // sky-400.
	Identity:       "#f87171", // red-400.
	PredictiveBand: "#fb923c", // orange-400.
	MeanBand:       "#0ea5e9", // sky-500.
	Reference:      "#a3e635", // lime-400.
}
