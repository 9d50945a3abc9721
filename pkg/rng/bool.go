package rng

import "math"

// DefaultProbability is the probability used by Bool and by a Generator without
// WithProbability
const DefaultProbability = 0.5

// Bool returns true with probability DefaultProbability
func Bool(s Source) bool {
	return BoolP(s, DefaultProbability)
}

// BoolP returns true with probability p.  p >= 1 is always true and p <= 0 is always false,
// and neither consumes a draw.
func BoolP(s Source, p float64) bool {
	switch {
	case p >= 1:
		return true
	case p <= 0:
		return false
	default:
		return s.Float64() < p
	}
}

// Sign returns -1 or +1 with equal probability
func Sign(s Source) int {
	if BoolP(s, 0.5) {
		return 1
	}
	return -1
}

// Discretise rounds v to floor(v) or floor(v)+1 so that the expected result is v: the
// upper value is returned with probability v-floor(v).  Integral values are returned as is
// without consuming a draw.
func Discretise(s Source, v float64) int64 {
	f := math.Floor(v)
	if frac := v - f; frac > 0 && BoolP(s, frac) {
		return int64(f) + 1
	}
	return int64(f)
}

// Discretise32 is Discretise for single precision values
func Discretise32(s Source, v float32) int32 {
	return int32(Discretise(s, float64(v)))
}
