package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// ErrNoGroupColumn is returned when the CSV header lacks the group column.
var ErrNoGroupColumn = errors.New("missing group column in header")

// ErrEmptyInput is returned when the CSV input has no header row.
var ErrEmptyInput = errors.New("empty csv input")

// FromCSV reads an observation table. The first record is the header; a
// "location" column is required and every other column is parsed as
// float64. Empty cells (absent reference predictions) become NaN.
func FromCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := records[0]
	groupIdx := -1

	for i, name := range header {
		if name == GroupColumn {
			groupIdx = i

			break
		}
	}

	if groupIdx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrNoGroupColumn, GroupColumn)
	}

	rows := records[1:]
	groups := make([]string, len(rows))

	for i, row := range rows {
		groups[i] = row[groupIdx]
	}

	frame := New(groups)

	for col, name := range header {
		if col == groupIdx {
			continue
		}

		values := make([]float64, len(rows))

		for i, row := range rows {
			cell := row[col]
			if cell == "" {
				values[i] = math.NaN()

				continue
			}

			parsed, parseErr := strconv.ParseFloat(cell, 64)
			if parseErr != nil {
				return nil, fmt.Errorf("parse column %q row %d: %w", name, i+1, parseErr)
			}

			values[i] = parsed
		}

		addErr := frame.AddColumn(name, values)
		if addErr != nil {
			return nil, fmt.Errorf("add column %q: %w", name, addErr)
		}
	}

	return frame, nil
}

// LoadCSV reads an observation table from a file path.
func LoadCSV(path string) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open observations: %w", err)
	}

	defer file.Close()

	return FromCSV(file)
}
