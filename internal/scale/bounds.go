// Package scale inverts the min-max normalization applied to target
// variables before model fitting, using per-group bounds recorded at
// preprocessing time.
package scale

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrVariableBounds is returned when a scales file carries no bounds for a
// requested base variable.
var ErrVariableBounds = errors.New("no scale bounds for variable")

// ErrIncompleteBounds is returned when a variable's bounds lack a min or
// max mapping.
var ErrIncompleteBounds = errors.New("scale bounds missing min or max mapping")

// Bounds holds the per-group min and max of one base variable.
type Bounds struct {
	Min map[string]float64 `yaml:"min"`
	Max map[string]float64 `yaml:"max"`
}

// Set maps base variable names to their per-group bounds.
type Set map[string]Bounds

// Variable returns the bounds for a base variable.
func (s Set) Variable(base string) (Bounds, error) {
	bounds, ok := s[base]
	if !ok {
		return Bounds{}, fmt.Errorf("%w: %q", ErrVariableBounds, base)
	}

	if bounds.Min == nil || bounds.Max == nil {
		return Bounds{}, fmt.Errorf("%w: %q", ErrIncompleteBounds, base)
	}

	return bounds, nil
}

// LoadSet reads a scales file: a YAML mapping of base variable name to
// {min: {group: value}, max: {group: value}}.
func LoadSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scales: %w", err)
	}

	var set Set

	err = yaml.Unmarshal(data, &set)
	if err != nil {
		return nil, fmt.Errorf("parse scales: %w", err)
	}

	return set, nil
}
