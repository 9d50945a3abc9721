package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestGenerator(t *testing.T, seed int64) *Generator {
	g, err := New(seed)
	if err != nil {
		t.Fatalf("unexpected error creating generator: %s", err)
	}
	return g
}

func TestLogNormalRNG(t *testing.T) {
	r := NewLogNormalRNG(newTestGenerator(t, 10), 5.0, 1.0)
	val := make([]float64, 10000)
	for i := 0; i < 10000; i++ {
		val[i] = r.Rand()
	}

	sum := 0.0
	for _, v := range val {
		sum += math.Log(v)
	}
	mean := sum / float64(10000)
	assert.InDelta(t, 5.0, mean, 0.05)

	variance := 0.0
	for _, v := range val {
		variance += math.Pow(math.Log(v)-mean, 2.0)
	}
	variance = variance / float64(10000-1)
	assert.InDelta(t, 1.0, math.Sqrt(variance), 0.05)
}

func TestNormalRNG(t *testing.T) {
	r := NewNormalRNG(newTestGenerator(t, 11), -2.0, 3.0)
	sum := 0.0
	for i := 0; i < 10000; i++ {
		sum += r.Rand()
	}
	assert.InDelta(t, -2.0, sum/10000, 0.15)
}

func TestUniformRNG(t *testing.T) {
	r := NewUniformRNG(newTestGenerator(t, 12), 3.0, 4.0)
	sum := 0.0
	for i := 0; i < 10000; i++ {
		v := r.Rand()
		if v < 3 || v >= 4 {
			t.Fatalf("uniform value out of range: %v", v)
		}
		sum += v
	}
	assert.InDelta(t, 3.5, sum/10000, 0.02)
}

func TestPoissonRNG(t *testing.T) {
	tt := []struct {
		name   string
		lambda float64
	}{
		{name: "small", lambda: 0.5},
		{name: "moderate", lambda: 4},
		{name: "large", lambda: 20},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			r := NewPoissonRNG(newTestGenerator(t, 13), tc.lambda)
			n := 10000
			sum := 0.0
			for i := 0; i < n; i++ {
				v := r.Rand()
				if v < 0 || v != math.Floor(v) {
					t.Fatalf("poisson value is not a count: %v", v)
				}
				sum += v
			}
			// the mean and variance of a poisson variable are both lambda
			assert.InDelta(t, tc.lambda, sum/float64(n), 5*math.Sqrt(tc.lambda/float64(n)))
		})
	}
}
