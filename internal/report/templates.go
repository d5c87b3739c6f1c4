package report

import (
	"embed"
	"html/template"
	"sync"
)

//go:embed templates/page.html
var templateFS embed.FS

var (
	pageTmpl     *template.Template
	pageTmplOnce sync.Once
)

// pageTemplate returns the parsed page template, loading it once.
// Parsing an embedded template cannot fail at runtime, so errors panic.
func pageTemplate() *template.Template {
	pageTmplOnce.Do(func() {
		pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))
	})

	return pageTmpl
}

// pageData holds data for the page template.
type pageData struct {
	Title       string
	Description string
	Theme       ThemeConfig
	Sections    []sectionData
}

// sectionData holds data for one section.
type sectionData struct {
	Title    string
	Subtitle string
	Facets   []facetData
}

// facetData holds data for one facet panel.
type facetData struct {
	Title string
	Stats []Stat
	Chart template.HTML
}
