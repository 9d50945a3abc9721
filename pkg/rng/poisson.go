package rng

import "math"

var _ RNG = &PoissonRNG{}

// PoissonRNG generates Poisson distributed numbers using Knuth's algorithm.  The number of
// draws grows linearly with lambda, so it is meant for small lambda.
type PoissonRNG struct {
	lambda float64
	g      *Generator
}

func (r *PoissonRNG) Rand() float64 {
	// Knuth's algorithm
	L := math.Exp(-r.lambda)
	var k int64
	p := 1.0

	for p > L {
		k++
		p = p * r.g.Float64()
	}
	return float64(k - 1)
}

func NewPoissonRNG(g *Generator, lambda float64) *PoissonRNG {
	return &PoissonRNG{
		lambda: lambda,
		g:      g,
	}
}
