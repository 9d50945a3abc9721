package rng

import "fmt"

// Generator binds a Source to the distribution functions of this package.  A Generator is
// owned by a single goroutine; it holds no locks.
type Generator struct {
	src         Source
	factory     Factory
	seed        int64
	probability float64
}

// Option configures a Generator
type Option func(g *Generator) error

// New returns a generator seeded with seed.  Without options the base generator is PCG32
// and Bool uses DefaultProbability.
func New(seed int64, opts ...Option) (*Generator, error) {
	g := &Generator{
		factory:     PCG32Factory,
		seed:        seed,
		probability: DefaultProbability,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("failed to create generator: %w", err)
		}
	}
	if g.src == nil {
		g.src = g.factory(seed)
	}
	return g, nil
}

// WithFactory sets the factory used to create the source, now and on every Reseed
func WithFactory(f Factory) Option {
	return func(g *Generator) error {
		if f == nil {
			return fmt.Errorf("factory must not be nil")
		}
		g.factory = f
		return nil
	}
}

// WithSource uses an existing source instead of creating one from the seed.  Reseed still
// replaces it with a source from the factory.
func WithSource(s Source) Option {
	return func(g *Generator) error {
		if s == nil {
			return fmt.Errorf("source must not be nil")
		}
		g.src = s
		return nil
	}
}

// WithProbability sets the probability used by Bool
func WithProbability(p float64) Option {
	return func(g *Generator) error {
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%w: %v", ErrInvalidProbability, p)
		}
		g.probability = p
		return nil
	}
}

// Reseed replaces the source with a fresh one from the factory.  A generator reseeded with
// the same seed replays the same sequence for the same calls.
func (g *Generator) Reseed(seed int64) {
	g.seed = seed
	g.src = g.factory(seed)
}

// Seed returns the seed of the current source
func (g *Generator) Seed() int64 {
	return g.seed
}

// Source returns the current source
func (g *Generator) Source() Source {
	return g.src
}

// Probability returns the probability used by Bool
func (g *Generator) Probability() float64 {
	return g.probability
}

func (g *Generator) IntN(bound int32) int32 {
	return IntN(g.src, bound)
}

func (g *Generator) IntRange(lo, hi int32) int32 {
	return IntRange(g.src, lo, hi)
}

func (g *Generator) Int64() int64 {
	return Int64(g.src)
}

func (g *Generator) Int64N(max int64) int64 {
	return Int64N(g.src, max)
}

func (g *Generator) Int64Range(min, max int64) int64 {
	return Int64Range(g.src, min, max)
}

func (g *Generator) Float64() float64 {
	return Float64(g.src)
}

func (g *Generator) Float64N(max float64) float64 {
	return Float64N(g.src, max)
}

func (g *Generator) Float64Range(min, max float64) float64 {
	return Float64Range(g.src, min, max)
}

func (g *Generator) Float32() float32 {
	return Float32(g.src)
}

func (g *Generator) Float32N(max float32) float32 {
	return Float32N(g.src, max)
}

func (g *Generator) Float32Range(min, max float32) float32 {
	return Float32Range(g.src, min, max)
}

func (g *Generator) Normal() float64 {
	return Normal(g.src)
}

func (g *Generator) NormalWith(mean, deviation float64) float64 {
	return NormalWith(g.src, mean, deviation)
}

func (g *Generator) Normal32() float32 {
	return Normal32(g.src)
}

func (g *Generator) Normal32With(mean, deviation float32) float32 {
	return Normal32With(g.src, mean, deviation)
}

func (g *Generator) Sign() int {
	return Sign(g.src)
}

// Bool returns true with the generator's configured probability
func (g *Generator) Bool() bool {
	return BoolP(g.src, g.probability)
}

func (g *Generator) BoolP(p float64) bool {
	return BoolP(g.src, p)
}

func (g *Generator) Discretise(v float64) int64 {
	return Discretise(g.src, v)
}

func (g *Generator) Discretise32(v float32) int32 {
	return Discretise32(g.src, v)
}
