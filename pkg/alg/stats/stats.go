// Package stats provides the numeric kernel for prediction diagnostics:
// means over sample draws, highest-density intervals, and the R²/RMSE
// goodness-of-fit metrics.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of values.
// Returns 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	return stat.Mean(values, nil)
}

// MeanStdDev returns the arithmetic mean and population standard deviation
// (÷n, not ÷(n−1)). Returns (0, 0) for an empty slice.
func MeanStdDev(values []float64) (mean, stddev float64) {
	count := len(values)
	if count == 0 {
		return 0, 0
	}

	mean = stat.Mean(values, nil)

	var sumSq float64

	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}

	return mean, math.Sqrt(sumSq / float64(count))
}

// MinMax returns the smallest and largest of values.
// Returns (0, 0) for an empty slice.
func MinMax(values []float64) (minVal, maxVal float64) {
	if len(values) == 0 {
		return 0, 0
	}

	return floats.Min(values), floats.Max(values)
}

// RMSE returns the root mean squared error between observed and predicted
// values. Well-defined for any n >= 1. Panics if the slice lengths differ.
func RMSE(observed, predicted []float64) float64 {
	if len(observed) != len(predicted) {
		panic("stats: slice length mismatch")
	}

	count := len(observed)
	if count == 0 {
		return math.NaN()
	}

	var sumSq float64

	for i, obs := range observed {
		diff := obs - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(count))
}

// RSquared returns the coefficient of determination 1 - SSres/SStot between
// observed and predicted values. When the observed values carry no variance
// (including the single-sample case) the statistic is undefined and NaN is
// returned. Panics if the slice lengths differ.
func RSquared(observed, predicted []float64) float64 {
	if len(observed) != len(predicted) {
		panic("stats: slice length mismatch")
	}

	if len(observed) == 0 {
		return math.NaN()
	}

	mean := stat.Mean(observed, nil)

	var residual, total float64

	for i, obs := range observed {
		diff := obs - predicted[i]
		residual += diff * diff

		dev := obs - mean
		total += dev * dev
	}

	if total == 0 {
		return math.NaN()
	}

	return 1 - residual/total
}
