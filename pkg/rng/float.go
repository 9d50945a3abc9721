package rng

import "math"

// Float64 returns a value in [0,1) straight from the source
func Float64(s Source) float64 {
	return s.Float64()
}

// Float64N returns a value in [0,max) by linear scaling of a [0,1) draw.  The scaling is
// only uniform up to the precision of the draw.  If rounding lands on max the largest
// value below max is returned instead.
func Float64N(s Source, max float64) float64 {
	v := s.Float64() * max
	if v >= max && max > 0 {
		return math.Nextafter(max, 0)
	}
	return v
}

// Float64Range returns min + u*(max-min) for a [0,1) draw u.  max < min, NaN and infinite
// bounds are the caller's responsibility and give whatever IEEE-754 arithmetic gives.
func Float64Range(s Source, min, max float64) float64 {
	v := min + s.Float64()*(max-min)
	if v >= max && min < max {
		return math.Nextafter(max, min)
	}
	return v
}

// Float32 returns a value in [0,1) at single precision.  A double that rounds up to 1 is
// redrawn.
func Float32(s Source) float32 {
	for {
		if f := float32(s.Float64()); f < 1 {
			return f
		}
	}
}

// Float32N is Float64N at single precision
func Float32N(s Source, max float32) float32 {
	v := Float32(s) * max
	if v >= max && max > 0 {
		return math.Nextafter32(max, 0)
	}
	return v
}

// Float32Range is Float64Range at single precision
func Float32Range(s Source, min, max float32) float32 {
	v := min + Float32(s)*(max-min)
	if v >= max && min < max {
		return math.Nextafter32(max, min)
	}
	return v
}
