// Package draws holds sampled model draws grouped the way probabilistic
// programming backends emit them: named groups (prior, posterior and their
// predictive counterparts), each mapping variable names to a
// (chain, draw, case) array.
package draws

import (
	"errors"
	"fmt"
)

// GroupName identifies a draws group within a sample set.
type GroupName string

// Standard draws groups.
const (
	GroupPrior               GroupName = "prior"
	GroupPosterior           GroupName = "posterior"
	GroupPriorPredictive     GroupName = "prior_predictive"
	GroupPosteriorPredictive GroupName = "posterior_predictive"
)

// ErrGroupNotFound is returned when a draws group is absent from the set.
var ErrGroupNotFound = errors.New("draws group not found")

// ErrVariableNotFound is returned when a variable is absent from a group.
var ErrVariableNotFound = errors.New("variable not found in draws group")

// ErrRaggedArray is returned when chains or draws have inconsistent shapes.
var ErrRaggedArray = errors.New("ragged draws array")

// ErrEmptyArray is returned when a variable carries no draws.
var ErrEmptyArray = errors.New("empty draws array")

// Array is a dense (chain, draw, case) block of sampled values.
type Array struct {
	chains int
	draws  int
	cases  int
	data   []float64
}

// NewArray builds an Array from nested chain-major values, rejecting ragged
// or empty input.
func NewArray(values [][][]float64) (*Array, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyArray
	}

	chains := len(values)
	drawCount := len(values[0])
	cases := len(values[0][0])

	if cases == 0 {
		return nil, ErrEmptyArray
	}

	arr := &Array{
		chains: chains,
		draws:  drawCount,
		cases:  cases,
		data:   make([]float64, 0, chains*drawCount*cases),
	}

	for c, chain := range values {
		if len(chain) != drawCount {
			return nil, fmt.Errorf("%w: chain %d has %d draws, expected %d",
				ErrRaggedArray, c, len(chain), drawCount)
		}

		for d, draw := range chain {
			if len(draw) != cases {
				return nil, fmt.Errorf("%w: chain %d draw %d has %d cases, expected %d",
					ErrRaggedArray, c, d, len(draw), cases)
			}

			arr.data = append(arr.data, draw...)
		}
	}

	return arr, nil
}

// Dims returns the (chains, draws, cases) shape.
func (a *Array) Dims() (chains, draws, cases int) {
	return a.chains, a.draws, a.cases
}

// Cases returns the number of cases (the trailing dimension).
func (a *Array) Cases() int {
	return a.cases
}

// CaseDraws returns every sampled value for case i across all chains and
// draws, flattened into a fresh slice.
func (a *Array) CaseDraws(i int) []float64 {
	out := make([]float64, 0, a.chains*a.draws)

	for offset := i; offset < len(a.data); offset += a.cases {
		out = append(out, a.data[offset])
	}

	return out
}

// SampleSet is a collection of named draws groups.
type SampleSet struct {
	groups map[GroupName]map[string]*Array
}

// NewSampleSet creates an empty sample set.
func NewSampleSet() *SampleSet {
	return &SampleSet{groups: make(map[GroupName]map[string]*Array)}
}

// Add registers a variable's draws under the given group.
func (s *SampleSet) Add(group GroupName, variable string, arr *Array) {
	vars, ok := s.groups[group]
	if !ok {
		vars = make(map[string]*Array)
		s.groups[group] = vars
	}

	vars[variable] = arr
}

// HasGroup reports whether the set contains the named group.
func (s *SampleSet) HasGroup(group GroupName) bool {
	_, ok := s.groups[group]

	return ok
}

// Variable returns the draws array of a variable within a group.
func (s *SampleSet) Variable(group GroupName, variable string) (*Array, error) {
	vars, ok := s.groups[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupNotFound, group)
	}

	arr, ok := vars[variable]
	if !ok {
		return nil, fmt.Errorf("%w: %q in group %q", ErrVariableNotFound, variable, group)
	}

	return arr, nil
}
