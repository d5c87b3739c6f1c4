// Package score computes per-group goodness-of-fit statistics (R² and
// RMSE) between the observed target and each prediction variant in a
// prediction summary table.
package score

import (
	"fmt"

	"github.com/tidewatch-labs/predcheck/internal/dataset"
	"github.com/tidewatch-labs/predcheck/pkg/alg/stats"
)

// Metric names a goodness-of-fit statistic.
type Metric string

// Supported metrics.
const (
	MetricR2   Metric = "r2"
	MetricRMSE Metric = "rmse"
)

// Key identifies one score table: a metric computed for one prediction
// variant. Prefer matching on the struct fields; String only exists for
// display and legacy "r2_pred" style naming.
type Key struct {
	Metric  Metric
	Variant string
}

// String returns the flattened key name, e.g. "rmse_paper".
func (k Key) String() string {
	return string(k.Metric) + k.Variant
}

// Entry is one row of a score table.
type Entry struct {
	Group string
	Value float64
}

// GroupTable holds a metric's value per group, in first-seen group order.
type GroupTable []Entry

// Value returns the metric value for a group.
func (t GroupTable) Value(group string) (float64, bool) {
	for _, entry := range t {
		if entry.Group == group {
			return entry.Value, true
		}
	}

	return 0, false
}

// Set is an ordered collection of score tables.
type Set struct {
	keys   []Key
	tables map[Key]GroupTable
}

// Keys returns the table keys in computation order: every variant's R²
// tables first, then every variant's RMSE tables.
func (s *Set) Keys() []Key {
	return s.keys
}

// Table returns the score table for a key.
func (s *Set) Table(key Key) (GroupTable, bool) {
	table, ok := s.tables[key]

	return table, ok
}

func (s *Set) add(key Key, table GroupTable) {
	if s.tables == nil {
		s.tables = make(map[Key]GroupTable)
	}

	s.keys = append(s.keys, key)
	s.tables[key] = table
}

// Calculate computes R² and RMSE between the observed target column and
// every target+variant column, restricted to each group's rows. Degenerate
// groups are not masked: a group with no observed variance (including a
// single row) carries a NaN R², while its RMSE stays well-defined.
func Calculate(frame *dataset.Frame, target string, variants []string) (*Set, error) {
	observed, err := frame.Column(target)
	if err != nil {
		return nil, fmt.Errorf("observed target: %w", err)
	}

	predictions := make(map[string][]float64, len(variants))

	for _, variant := range variants {
		values, colErr := frame.Column(target + variant)
		if colErr != nil {
			return nil, fmt.Errorf("variant %q: %w", variant, colErr)
		}

		predictions[variant] = values
	}

	groups := frame.GroupKeys()
	set := &Set{}

	for _, metric := range []Metric{MetricR2, MetricRMSE} {
		for _, variant := range variants {
			table := make(GroupTable, 0, len(groups))

			for _, group := range groups {
				rows := frame.GroupRows(group)

				obs := gather(observed, rows)
				pred := gather(predictions[variant], rows)

				var value float64
				if metric == MetricR2 {
					value = stats.RSquared(obs, pred)
				} else {
					value = stats.RMSE(obs, pred)
				}

				table = append(table, Entry{Group: group, Value: value})
			}

			set.add(Key{Metric: metric, Variant: variant}, table)
		}
	}

	return set, nil
}

func gather(values []float64, rows []int) []float64 {
	out := make([]float64, len(rows))

	for i, row := range rows {
		out[i] = values[row]
	}

	return out
}
