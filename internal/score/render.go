package score

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render formats the score set's tables for terminal display, one compact
// table per key, in key order.
func Render(set *Set) string {
	var parts []string

	for _, key := range set.Keys() {
		scores, ok := set.Table(key)
		if !ok {
			continue
		}

		parts = append(parts, renderTable(key, scores))
	}

	return strings.Join(parts, "\n\n")
}

func renderTable(key Key, scores GroupTable) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false

	tbl.AppendHeader(table.Row{"location", string(key.Metric)})

	for _, entry := range scores {
		tbl.AppendRow(table.Row{entry.Group, fmt.Sprintf("%.4f", entry.Value)})
	}

	return fmt.Sprintf("%s:\n%s", key, tbl.Render())
}
