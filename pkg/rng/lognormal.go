package rng

import "math"

var _ RNG = &LogNormalRNG{}
var _ RNG = &NormalRNG{}
var _ RNG = &UniformRNG{}

// LogNormalRNG generates Log Normal random numbers
type LogNormalRNG struct {
	mean  float64
	stdev float64
	g     *Generator
}

func (r *LogNormalRNG) Rand() float64 {
	return math.Exp(r.g.NormalWith(r.mean, r.stdev))
}

// NewLogNormalRNG returns log normal numbers whose log has the given mean and standard
// deviation
func NewLogNormalRNG(g *Generator, mean float64, stdev float64) *LogNormalRNG {
	return &LogNormalRNG{
		mean:  mean,
		stdev: stdev,
		g:     g,
	}
}

// NormalRNG generates normally distributed numbers
type NormalRNG struct {
	mean  float64
	stdev float64
	g     *Generator
}

func (r *NormalRNG) Rand() float64 {
	return r.g.NormalWith(r.mean, r.stdev)
}

func NewNormalRNG(g *Generator, mean float64, stdev float64) *NormalRNG {
	return &NormalRNG{
		mean:  mean,
		stdev: stdev,
		g:     g,
	}
}

// UniformRNG generates numbers uniformly in [min,max)
type UniformRNG struct {
	min float64
	max float64
	g   *Generator
}

func (r *UniformRNG) Rand() float64 {
	return r.g.Float64Range(r.min, r.max)
}

func NewUniformRNG(g *Generator, min float64, max float64) *UniformRNG {
	return &UniformRNG{
		min: min,
		max: max,
		g:   g,
	}
}
