// Package dataset provides the in-memory observation table consumed by the
// prediction extractor and scorer: float64 value columns plus a single
// string group column keying each row to its location.
package dataset

import (
	"errors"
	"fmt"
)

// GroupColumn is the name of the group-key column in observation data.
const GroupColumn = "location"

// ErrColumnNotFound is returned when a requested value column is absent.
var ErrColumnNotFound = errors.New("column not found")

// ErrColumnExists is returned when adding a column that is already present.
var ErrColumnExists = errors.New("column already exists")

// ErrLengthMismatch is returned when a column's length disagrees with the
// frame's row count.
var ErrLengthMismatch = errors.New("column length does not match row count")

// Frame is a column-ordered table of float64 values with one group key per
// row. Value columns all share the frame's row count.
type Frame struct {
	groups  []string
	order   []string
	columns map[string][]float64
}

// New creates a frame with the given per-row group keys and no value
// columns.
func New(groups []string) *Frame {
	owned := make([]string, len(groups))
	copy(owned, groups)

	return &Frame{
		groups:  owned,
		columns: make(map[string][]float64),
	}
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.groups)
}

// Groups returns the group key of every row, in row order.
// The returned slice must not be modified.
func (f *Frame) Groups() []string {
	return f.groups
}

// Group returns the group key of row i.
func (f *Frame) Group(i int) string {
	return f.groups[i]
}

// GroupKeys returns the distinct group keys in first-seen row order.
func (f *Frame) GroupKeys() []string {
	seen := make(map[string]bool, len(f.groups))

	var keys []string

	for _, g := range f.groups {
		if seen[g] {
			continue
		}

		seen[g] = true
		keys = append(keys, g)
	}

	return keys
}

// GroupRows returns the indices of the rows belonging to the given group
// key, in row order.
func (f *Frame) GroupRows(key string) []int {
	var rows []int

	for i, g := range f.groups {
		if g == key {
			rows = append(rows, i)
		}
	}

	return rows
}

// Columns returns the value column names in insertion order.
// The returned slice must not be modified.
func (f *Frame) Columns() []string {
	return f.order
}

// HasColumn reports whether a value column with the given name exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.columns[name]

	return ok
}

// Column returns the values of the named column, in row order.
// The returned slice must not be modified.
func (f *Frame) Column(name string) ([]float64, error) {
	values, ok := f.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	return values, nil
}

// AddColumn appends a value column. The column takes ownership of a copy of
// values.
func (f *Frame) AddColumn(name string, values []float64) error {
	if _, exists := f.columns[name]; exists {
		return fmt.Errorf("%w: %q", ErrColumnExists, name)
	}

	if len(values) != f.Len() {
		return fmt.Errorf("%w: column %q has %d values, frame has %d rows",
			ErrLengthMismatch, name, len(values), f.Len())
	}

	owned := make([]float64, len(values))
	copy(owned, values)

	f.order = append(f.order, name)
	f.columns[name] = owned

	return nil
}

// SetColumn replaces the values of an existing column.
func (f *Frame) SetColumn(name string, values []float64) error {
	if _, exists := f.columns[name]; !exists {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	if len(values) != f.Len() {
		return fmt.Errorf("%w: column %q has %d values, frame has %d rows",
			ErrLengthMismatch, name, len(values), f.Len())
	}

	owned := make([]float64, len(values))
	copy(owned, values)

	f.columns[name] = owned

	return nil
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	clone := New(f.groups)

	for _, name := range f.order {
		// AddColumn cannot fail here: names are unique and lengths match.
		_ = clone.AddColumn(name, f.columns[name])
	}

	return clone
}
