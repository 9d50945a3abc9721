package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Uint32() uint32 {
	args := m.Called()
	return args.Get(0).(uint32)
}

func (m *mockSource) Int31n(n int32) int32 {
	args := m.Called(n)
	return args.Get(0).(int32)
}

func (m *mockSource) Int31Range(lo, hi int32) int32 {
	args := m.Called(lo, hi)
	return args.Get(0).(int32)
}

func (m *mockSource) Float64() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

// words scripts successive Uint32 results
func words(m *mockSource, w ...uint32) {
	for _, v := range w {
		m.On("Uint32").Return(v).Once()
	}
}

func TestIntPassThrough(t *testing.T) {
	m := new(mockSource)
	m.On("Int31n", int32(10)).Return(int32(7))
	m.On("Int31Range", int32(-5), int32(5)).Return(int32(-3))

	assert.Equal(t, int32(7), IntN(m, 10))
	assert.Equal(t, int32(-3), IntRange(m, -5, 5))
	m.AssertExpectations(t)
}

func TestBasePanicPropagates(t *testing.T) {
	m := new(mockSource)
	m.On("Int31n", int32(0)).Run(func(mock.Arguments) { panic("invalid bound") }).Return(int32(0))

	assert.PanicsWithValue(t, "invalid bound", func() { IntN(m, 0) })
}

func TestInt64WordOrder(t *testing.T) {
	tt := []struct {
		name string
		hi   uint32
		lo   uint32
		exp  int64
	}{
		{name: "zero", hi: 0, lo: 0, exp: 0},
		{name: "low word only", hi: 0, lo: 0xFFFFFFFF, exp: 0xFFFFFFFF},
		{name: "high word only", hi: 1, lo: 0, exp: 1 << 32},
		{name: "sign bit from high word", hi: 0x80000000, lo: 1, exp: math.MinInt64 + 1},
		{name: "all ones", hi: 0xFFFFFFFF, lo: 0xFFFFFFFF, exp: -1},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			m := new(mockSource)
			words(m, tc.hi, tc.lo)
			assert.Equal(t, tc.exp, Int64(m))
			m.AssertExpectations(t)
		})
	}
}

func TestInt64RangeReduction(t *testing.T) {
	tt := []struct {
		name  string
		words []uint32
		min   int64
		max   int64
		exp   int64
	}{
		{name: "small draw", words: []uint32{0, 25}, min: -10, max: 10, exp: -5},
		{name: "negative draw reduced unsigned", words: []uint32{0xFFFFFFFF, 0xFFFFFFFF}, min: -10, max: 10, exp: 5},
		{name: "bounded", words: []uint32{0, 7}, min: 0, max: 5, exp: 2},
		{name: "full width span", words: []uint32{0, 0}, min: math.MinInt64, max: math.MaxInt64, exp: math.MinInt64},
		{name: "full width span top", words: []uint32{0xFFFFFFFF, 0xFFFFFFFE}, min: math.MinInt64, max: math.MaxInt64, exp: math.MaxInt64 - 1},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			m := new(mockSource)
			words(m, tc.words...)
			assert.Equal(t, tc.exp, Int64Range(m, tc.min, tc.max))
		})
	}
}

func TestInt64RangeZeroSpanPanics(t *testing.T) {
	m := new(mockSource)
	words(m, 0, 1)
	assert.Panics(t, func() { Int64Range(m, 3, 3) })
}

func TestFloatRangeExclusiveOnRounding(t *testing.T) {
	m := new(mockSource)
	// 1 + (1-2^-53) is a tie that rounds to 2
	m.On("Float64").Return(1 - math.Pow(2, -53))

	v := Float64Range(m, 1, 2)
	assert.True(t, v < 2)
	assert.Equal(t, math.Nextafter(2, 1), v)
}

func TestFloat32RangeExclusiveOnRounding(t *testing.T) {
	m := new(mockSource)
	m.On("Float64").Return(1 - math.Pow(2, -24))

	v := Float32Range(m, 1, 2)
	assert.True(t, v < 2)
	assert.Equal(t, math.Nextafter32(2, 1), v)
}

func TestFloat32RedrawsOne(t *testing.T) {
	m := new(mockSource)
	m.On("Float64").Return(1 - math.Pow(2, -60)).Once()
	m.On("Float64").Return(0.25).Once()

	assert.Equal(t, float32(0.25), Float32(m))
	m.AssertExpectations(t)
}

func TestNormalZeroDraw(t *testing.T) {
	m := new(mockSource)
	m.On("Float64").Return(0.0)

	v := Normal(m)
	assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	assert.Equal(t, 0.0, v)
}

func TestNormalWithScales(t *testing.T) {
	m := new(mockSource)
	// u1 = 1 - (1 - e^-2) = e^-2, so sqrt(-2 ln u1) = 2; u2 = 0 so cos = 1
	m.On("Float64").Return(1 - math.Exp(-2)).Once()
	m.On("Float64").Return(0.0).Once()

	assert.InDelta(t, 10.0+3.0*2.0, NormalWith(m, 10, 3), 1e-9)
}

func TestBoolPClampsWithoutDraw(t *testing.T) {
	m := new(mockSource)
	for _, p := range []float64{0, -1, math.Inf(-1)} {
		assert.False(t, BoolP(m, p))
	}
	for _, p := range []float64{1, 1.5, math.Inf(1)} {
		assert.True(t, BoolP(m, p))
	}
	m.AssertNotCalled(t, "Float64")
}

func TestDiscretiseScripted(t *testing.T) {
	tt := []struct {
		name string
		draw float64
		v    float64
		exp  int64
	}{
		{name: "round up", draw: 0.29, v: 2.3, exp: 3},
		{name: "round down", draw: 0.31, v: 2.3, exp: 2},
		{name: "negative round up", draw: 0.5, v: -1.25, exp: -1},
		{name: "negative round down", draw: 0.8, v: -1.25, exp: -2},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			m := new(mockSource)
			m.On("Float64").Return(tc.draw)
			assert.Equal(t, tc.exp, Discretise(m, tc.v))
		})
	}
}

func TestDiscretiseIntegralWithoutDraw(t *testing.T) {
	m := new(mockSource)
	assert.Equal(t, int64(4), Discretise(m, 4))
	assert.Equal(t, int64(-7), Discretise(m, -7))
	m.AssertNotCalled(t, "Float64")
}

func TestSignFromBool(t *testing.T) {
	m := new(mockSource)
	m.On("Float64").Return(0.1).Once()
	m.On("Float64").Return(0.9).Once()

	assert.Equal(t, 1, Sign(m))
	assert.Equal(t, -1, Sign(m))
}
