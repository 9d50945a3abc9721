package monte

import (
	"errors"
	"testing"

	"github.com/BTBurke/monte/pkg/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	c, errs := NewConfig()
	require.Len(t, errs, 0)
	assert.Equal(t, CheckNames(), c.Checks)
	assert.Equal(t, "pcg32", c.Source)
	assert.Equal(t, 100000, c.Samples)
	assert.Equal(t, 5.0, c.Z)
	assert.True(t, c.seedSet == false)
	assert.True(t, c.Workers > 0)
}

func TestConfigRandomSeed(t *testing.T) {
	a, errs := NewConfig()
	require.Len(t, errs, 0)
	b, errs := NewConfig()
	require.Len(t, errs, 0)
	assert.NotEqual(t, a.Seed, b.Seed)

	fixed, errs := NewConfig(Seed("0"))
	require.Len(t, errs, 0)
	assert.Equal(t, int64(0), fixed.Seed)
}

func TestConfigOptions(t *testing.T) {
	tt := []struct {
		name   string
		opts   []ConfigOption
		check  func(t *testing.T, c Config)
		errors int
	}{
		{name: "seed", opts: []ConfigOption{Seed("-42")}, check: func(t *testing.T, c Config) { assert.Equal(t, int64(-42), c.Seed) }},
		{name: "samples", opts: []ConfigOption{Samples("50")}, check: func(t *testing.T, c Config) { assert.Equal(t, 50, c.Samples) }},
		{name: "z", opts: []ConfigOption{Z("3.5")}, check: func(t *testing.T, c Config) { assert.Equal(t, 3.5, c.Z) }},
		{name: "error rate", opts: []ConfigOption{ErrorRate("0.05")}, check: func(t *testing.T, c Config) { assert.InDelta(t, 1.95996, c.Z, 1e-4) }},
		{name: "source", opts: []ConfigOption{Source("math")}, check: func(t *testing.T, c Config) { assert.Equal(t, "math", c.Source) }},
		{name: "checks", opts: []ConfigOption{Check("long_sign"), Check("int_uniform")}, check: func(t *testing.T, c Config) {
			assert.Equal(t, []string{"long_sign", "int_uniform"}, c.Checks)
		}},
		{name: "bound", opts: []ConfigOption{Bound("37")}, check: func(t *testing.T, c Config) { assert.Equal(t, int32(37), c.Bound) }},
		{name: "probability", opts: []ConfigOption{Probability("1")}, check: func(t *testing.T, c Config) { assert.Equal(t, 1.0, c.Probability) }},
		{name: "value", opts: []ConfigOption{Value("-3.75")}, check: func(t *testing.T, c Config) { assert.Equal(t, -3.75, c.Value) }},
		{name: "range", opts: []ConfigOption{Range("-10:-9.5")}, check: func(t *testing.T, c Config) {
			assert.Equal(t, -10.0, c.Min)
			assert.Equal(t, -9.5, c.Max)
		}},
		{name: "format", opts: []ConfigOption{Format("json")}, check: func(t *testing.T, c Config) { assert.Equal(t, "json", c.Format) }},
		{name: "log level", opts: []ConfigOption{LogLevel("debug")}, check: func(t *testing.T, c Config) { assert.Equal(t, "debug", c.LogLevel) }},
		{name: "runs and workers", opts: []ConfigOption{Runs("7"), Workers("3")}, check: func(t *testing.T, c Config) {
			assert.Equal(t, 7, c.Runs)
			assert.Equal(t, 3, c.Workers)
		}},
		{name: "rollbar", opts: []ConfigOption{RollbarToken("abc")}, check: func(t *testing.T, c Config) { assert.Equal(t, "abc", c.RollbarToken) }},
		{name: "bad seed", opts: []ConfigOption{Seed("x")}, errors: 1},
		{name: "bad samples", opts: []ConfigOption{Samples("0")}, errors: 1},
		{name: "bad error rate", opts: []ConfigOption{ErrorRate("1.5")}, errors: 1},
		{name: "unknown source", opts: []ConfigOption{Source("mt19937")}, errors: 1},
		{name: "unknown check", opts: []ConfigOption{Check("dieharder")}, errors: 1},
		{name: "bound too small", opts: []ConfigOption{Bound("1")}, errors: 1},
		{name: "bound overflow", opts: []ConfigOption{Bound("4294967296")}, errors: 1},
		{name: "bound too large", opts: []ConfigOption{Bound("2147483647")}, errors: 1},
		{name: "too few samples per bucket", opts: []ConfigOption{Samples("100000"), Bound("100000")}, errors: 1},
		{name: "five samples per bucket", opts: []ConfigOption{Samples("50"), Bound("10")}, check: func(t *testing.T, c Config) {
			assert.Equal(t, 50, c.Samples)
			assert.Equal(t, int32(10), c.Bound)
		}},
		{name: "probability out of range", opts: []ConfigOption{Probability("1.01")}, errors: 1},
		{name: "empty range", opts: []ConfigOption{Range("1:1")}, errors: 1},
		{name: "bad range", opts: []ConfigOption{Range("1")}, errors: 1},
		{name: "bad format", opts: []ConfigOption{Format("xml")}, errors: 1},
		{name: "bad log level", opts: []ConfigOption{LogLevel("loud")}, errors: 1},
		{name: "every error collected", opts: []ConfigOption{Seed("x"), Source("x"), Format("x")}, errors: 3},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			c, errs := NewConfig(tc.opts...)
			assert.Len(t, errs, tc.errors)
			if tc.errors > 0 {
				assert.Equal(t, Config{}, c)
				return
			}
			tc.check(t, c)
		})
	}
}

func TestConfigSentinelErrors(t *testing.T) {
	_, errs := NewConfig(Check("dieharder"), Probability("-1"), Source("x"))
	require.Len(t, errs, 3)
	assert.True(t, errors.Is(errs[0], ErrUnknownCheck))
	assert.True(t, errors.Is(errs[1], rng.ErrInvalidProbability))
	assert.True(t, errors.Is(errs[2], rng.ErrUnknownSource))
}
