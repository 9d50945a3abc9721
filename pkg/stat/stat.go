// Package stat holds the sample statistics used to judge whether generated values have the
// distribution they claim to have.
package stat

import "math"

// Mean returns the sample mean, or 0 for an empty sample
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	s := 0.0
	for _, v := range values {
		s = s + v
	}
	return s / float64(len(values))
}

// Variance returns the unbiased sample variance about mean.  Samples with fewer than two
// values have zero variance.
func Variance(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0.0
	}
	s := 0.0
	for _, v := range values {
		s = s + (v-mean)*(v-mean)
	}
	return s / float64(len(values)-1)
}

// StdDev returns the sample standard deviation
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values, Mean(values)))
}
