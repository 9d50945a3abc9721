// Package rng synthesizes ranged integers, 64-bit integers, floats, normal samples and
// stochastic rounding from a minimal base generator that only knows how to produce
// 32-bit integers and doubles in [0,1).
//
// None of the functions or types in this package are safe for concurrent use on the same
// Source.  Give each goroutine its own generator, see package holder.
package rng

import "fmt"

// Source is the base generator every distribution in this package is built on.  Any
// generator that satisfies it can be plugged in.
type Source interface {
	// Uint32 returns 32 uniformly distributed bits.
	Uint32() uint32
	// Int31n returns a value in [0,n).  It panics if n <= 0.
	Int31n(n int32) int32
	// Int31Range returns a value in [lo,hi).  It panics if hi <= lo.
	Int31Range(lo, hi int32) int32
	// Float64 returns a value in [0,1).
	Float64() float64
}

// Factory creates a new Source from a seed.  It is used to replace a generator's source
// when it is reseeded.
type Factory func(seed int64) Source

// FactoryFor returns the Factory for a named base generator ("pcg32" or "math")
func FactoryFor(name string) (Factory, error) {
	switch name {
	case "pcg32", "":
		return PCG32Factory, nil
	case "math":
		return MathRandFactory, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, name)
	}
}

// RNG is a random number generator for a single distribution
type RNG interface {
	Rand() float64
}
