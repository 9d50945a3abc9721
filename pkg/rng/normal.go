package rng

import "math"

// Normal returns a standard normal sample (mean 0, standard deviation 1) using the basic
// Box-Muller transform.  The first uniform is taken as 1-u so it lies in (0,1] and the
// logarithm never sees zero.  The second output of the transform is discarded, so there
// is no cached state to invalidate on reseed.
func Normal(s Source) float64 {
	u1 := 1 - s.Float64()
	u2 := s.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// NormalWith returns mean + deviation*Normal(s)
func NormalWith(s Source, mean, deviation float64) float64 {
	return mean + deviation*Normal(s)
}

// Normal32 is Normal narrowed to single precision
func Normal32(s Source) float32 {
	return float32(Normal(s))
}

// Normal32With is NormalWith at single precision
func Normal32With(s Source, mean, deviation float32) float32 {
	return mean + deviation*Normal32(s)
}
