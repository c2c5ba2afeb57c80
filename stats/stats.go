// Package stats computes the descriptive statistics reported per matrix
// size: mean, median and population standard deviation.
package stats

import (
	"errors"
	"math"
	"slices"

	"github.com/samber/lo"
)

// ErrEmpty is returned when summarizing an empty sample series.
var ErrEmpty = errors.New("stats: empty sample series")

// Summary holds the statistics of one sample series.
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
}

// Summarize computes mean, median and population standard deviation.
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrEmpty
	}

	mean := Mean(xs)

	return Summary{
		Mean:   mean,
		Median: Median(xs),
		StdDev: StdDev(xs, mean),
	}, nil
}

// Mean returns the arithmetic average of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return lo.Sum(xs) / float64(len(xs))
}

// Median returns the middle value of the sorted samples, averaging the two
// central values for even lengths. xs is not modified.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}

	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return sorted[n/2]
}

// StdDev returns the population standard deviation of xs around mean,
// dividing by N rather than N-1.
func StdDev(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(xs)))
}
