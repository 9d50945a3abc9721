package rng

// IntN returns a value in [0,bound).  It passes straight through to the source, so a
// non-positive bound panics with the source's own error.
func IntN(s Source, bound int32) int32 {
	return s.Int31n(bound)
}

// IntRange returns a value in [lo,hi).  Behavior for hi <= lo is whatever the source
// defines; the bundled sources panic.
func IntRange(s Source, lo, hi int32) int32 {
	return s.Int31Range(lo, hi)
}

// Int64 returns a full-width signed 64-bit value made of two 32-bit draws, the first one
// supplying the high word.
func Int64(s Source) int64 {
	hi := uint64(s.Uint32())
	lo := uint64(s.Uint32())
	return int64(hi<<32 | lo)
}

// Int64N returns a value in [0,max).  See Int64Range for the bias and the behavior for
// non-positive max.
func Int64N(s Source, max int64) int64 {
	return Int64Range(s, 0, max)
}

// Int64Range returns a value in [min,max).
//
// The span is computed as an unsigned 64-bit quantity and a full 64-bit draw is reduced
// modulo the span.  Values below 2^64 mod span come up once more often than the rest, a
// relative bias of at most span/2^64, which is accepted in exchange for a single draw and
// no rejection loop.  A zero span panics with the runtime's divide error and max < min
// gives an unspecified value; neither is guarded.
func Int64Range(s Source, min, max int64) int64 {
	span := uint64(max - min)
	return min + int64(uint64(Int64(s))%span)
}
