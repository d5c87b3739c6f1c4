package stats

import (
	"errors"
	"math"
	"slices"
)

// ErrNoSamples is returned when an HDI is requested over zero samples.
var ErrNoSamples = errors.New("hdi requires at least one sample")

// ErrInvalidProb is returned when the probability mass is outside (0, 1].
var ErrInvalidProb = errors.New("hdi probability must be in (0, 1]")

// HDI returns the bounds of the highest-density interval containing the
// given probability mass of the samples: the narrowest contiguous window
// over the sorted draws holding ceil(prob*n) of them. prob = 1 yields the
// full sample range. The input slice is not modified.
func HDI(values []float64, prob float64) (lower, upper float64, err error) {
	count := len(values)
	if count == 0 {
		return 0, 0, ErrNoSamples
	}

	if prob <= 0 || prob > 1 {
		return 0, 0, ErrInvalidProb
	}

	sorted := make([]float64, count)
	copy(sorted, values)
	slices.Sort(sorted)

	window := int(math.Ceil(prob * float64(count)))
	if window >= count {
		return sorted[0], sorted[count-1], nil
	}

	bestStart := 0
	bestWidth := math.Inf(1)

	for start := 0; start+window <= count; start++ {
		width := sorted[start+window-1] - sorted[start]
		if width < bestWidth {
			bestWidth = width
			bestStart = start
		}
	}

	return sorted[bestStart], sorted[bestStart+window-1], nil
}
