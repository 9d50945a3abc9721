package rng

import "math/rand"

var _ Source = &MathRand{}

// MathRand adapts a *math/rand.Rand to Source
type MathRand struct {
	r *rand.Rand
}

// NewMathRand returns a MathRand backed by the math/rand source for seed
func NewMathRand(seed int64) *MathRand {
	return &MathRand{r: rand.New(rand.NewSource(seed))}
}

// MathRandFactory creates MathRand sources
func MathRandFactory(seed int64) Source {
	return NewMathRand(seed)
}

// Seed resets the underlying math/rand source
func (m *MathRand) Seed(seed int64) {
	m.r.Seed(seed)
}

func (m *MathRand) Uint32() uint32 {
	return m.r.Uint32()
}

// Int31n panics if n <= 0, as math/rand does
func (m *MathRand) Int31n(n int32) int32 {
	return m.r.Int31n(n)
}

// Int31Range panics if hi <= lo.  The span may exceed math.MaxInt32 so it is drawn at
// 64-bit width.
func (m *MathRand) Int31Range(lo, hi int32) int32 {
	if hi <= lo {
		panic("rng: invalid argument to Int31Range")
	}
	return int32(int64(lo) + m.r.Int63n(int64(hi)-int64(lo)))
}

func (m *MathRand) Float64() float64 {
	return m.r.Float64()
}
