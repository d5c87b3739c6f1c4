// Package report renders the diagnostic report: faceted prediction charts
// annotated with per-group fit statistics, written as a standalone HTML
// page.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Renderable is the interface chart objects implement (go-echarts charts
// satisfy it).
type Renderable interface {
	Render(w io.Writer) error
}

// Stat is a small label/value annotation shown above a facet, e.g. "R²"
// and its formatted value.
type Stat struct {
	Label string
	Value string
}

// Facet is one group's panel within a section: a chart plus its stat
// annotations.
type Facet struct {
	Title string
	Stats []Stat
	Chart Renderable
}

// Section is a titled row of facets.
type Section struct {
	Title    string
	Subtitle string
	Facets   []Facet
}

// Page is a complete report page.
type Page struct {
	Title       string
	Description string
	Theme       Theme
	Sections    []Section
}

// NewPage creates a report page with the given heading.
func NewPage(title, description string, theme Theme) *Page {
	return &Page{
		Title:       title,
		Description: description,
		Theme:       theme,
	}
}

// Add appends sections to the page.
func (p *Page) Add(sections ...Section) {
	p.Sections = append(p.Sections, sections...)
}

// Render writes the page as HTML.
func (p *Page) Render(w io.Writer) error {
	sections := make([]sectionData, len(p.Sections))

	for i, section := range p.Sections {
		facets := make([]facetData, len(section.Facets))

		for j, facet := range section.Facets {
			chart, err := renderChart(facet.Chart)
			if err != nil {
				return fmt.Errorf("render facet %q: %w", facet.Title, err)
			}

			facets[j] = facetData{
				Title: facet.Title,
				Stats: facet.Stats,
				Chart: chart,
			}
		}

		sections[i] = sectionData{
			Title:    section.Title,
			Subtitle: section.Subtitle,
			Facets:   facets,
		}
	}

	data := pageData{
		Title:       p.Title,
		Description: p.Description,
		Theme:       Config(p.Theme),
		Sections:    sections,
	}

	err := pageTemplate().Execute(w, data)
	if err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}

	return nil
}

// renderChart renders an echarts chart and extracts the embeddable div and
// script from its full-page output.
func renderChart(chart Renderable) (template.HTML, error) {
	if chart == nil {
		return "", nil
	}

	var buf bytes.Buffer

	err := chart.Render(&buf)
	if err != nil {
		return "", fmt.Errorf("rendering chart: %w", err)
	}

	return template.HTML(extractChartContent(buf.String())), nil
}

// extractChartContent pulls the chart container and its script out of a
// full echarts HTML page. Non-page fragments pass through unchanged.
func extractChartContent(html string) string {
	trimmed := strings.TrimSpace(html)
	if !strings.HasPrefix(trimmed, "<!DOCTYPE") && !strings.HasPrefix(trimmed, "<html") {
		return html
	}

	start := strings.Index(html, `<div class="container">`)
	if start == -1 {
		return html
	}

	end := strings.Index(html, `</body>`)
	if end == -1 {
		return html
	}

	content := html[start:end]
	content = strings.ReplaceAll(content, `class="container"`, `class="echart-box"`)

	return content
}
