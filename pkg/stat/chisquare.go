package stat

import "math"

// ChiSquare returns Pearson's statistic for observed bucket counts against a uniform
// expected count per bucket
func ChiSquare(observed []int, expected float64) float64 {
	if expected <= 0 {
		return math.Inf(1)
	}
	s := 0.0
	for _, o := range observed {
		d := float64(o) - expected
		s += d * d / expected
	}
	return s
}

// ChiSquareCritical approximates the value the chi-square statistic with df degrees of freedom
// exceeds with the upper tail probability of a standard normal at z.  It uses the
// Wilson-Hilferty cube approximation, which is within a few percent for df >= 1.
func ChiSquareCritical(df int, z float64) float64 {
	if df < 1 {
		return 0
	}
	k := float64(df)
	h := 2.0 / (9.0 * k)
	return k * math.Pow(1-h+z*math.Sqrt(h), 3)
}
