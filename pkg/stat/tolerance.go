package stat

import (
	"fmt"
	"math"
)

// ProportionTolerance is the half width of a z-sigma band around a proportion p observed in
// n trials
func ProportionTolerance(p float64, n int, z float64) float64 {
	if n <= 0 {
		return math.Inf(1)
	}
	return z * math.Sqrt(p*(1-p)/float64(n))
}

// MeanTolerance is the half width of a z-sigma band around the mean of n samples drawn from a
// distribution with standard deviation stdev
func MeanTolerance(stdev float64, n int, z float64) float64 {
	if n <= 0 {
		return math.Inf(1)
	}
	return z * stdev / math.Sqrt(float64(n))
}

// StdDevTolerance is the half width of a z-sigma band around the sample standard deviation of
// n normal samples
func StdDevTolerance(stdev float64, n int, z float64) float64 {
	if n <= 1 {
		return math.Inf(1)
	}
	return z * stdev / math.Sqrt(2*float64(n-1))
}

// ErrorRate is the probability that a correct generator fails a two sided z-sigma check.  It
// lets callers trade sensitivity against false failures instead of choosing z directly.
type ErrorRate float64

// Z returns the band width in standard deviations that gives this error rate
func (e ErrorRate) Z() (float64, error) {
	if !(e > 0 && e < 1) {
		return 0, fmt.Errorf("can not calculate z for error rate: %f", float64(e))
	}
	return math.Sqrt2 * math.Erfinv(1-float64(e)), nil
}

// Rate returns the two sided error rate of a z-sigma band
func Rate(z float64) ErrorRate {
	return ErrorRate(math.Erfc(math.Abs(z) / math.Sqrt2))
}
