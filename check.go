// Package monte runs a battery of statistical checks against the generators in pkg/rng and
// reports which properties hold for a given seed and base generator.
package monte

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/BTBurke/monte/pkg/metric"
	"github.com/BTBurke/monte/pkg/rng"
	"github.com/BTBurke/monte/pkg/stat"
)

// Result is the outcome of one check.  Value is the statistic the check computed and Limit
// the largest value a passing generator may produce.
type Result struct {
	Name   metric.Name `json:"name"`
	Value  float64     `json:"value"`
	Limit  float64     `json:"limit"`
	Pass   bool        `json:"pass"`
	Detail string      `json:"detail,omitempty"`
}

// checkFunc draws from g and judges the draws.  Checks own g for their whole run and return
// a failed result early once ctx is done.
type checkFunc func(ctx context.Context, g *rng.Generator, c Config) Result

var checks = map[string]checkFunc{
	"int_uniform":        intUniform,
	"float_range":        floatRange,
	"long_sign":          longSign,
	"bool_fraction":      boolFraction,
	"discretise":         discretise,
	"normal_moments":     normalMoments,
	"sign_balance":       signBalance,
	"reseed_determinism": reseedDeterminism,
}

// CheckNames returns the name of every check in sorted order
func CheckNames() []string {
	names := make([]string, 0, len(checks))
	for n := range checks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func within(value, limit float64) bool {
	return value <= limit
}

// pollEvery is how many draws a check makes between looks at its context
const pollEvery = 1 << 12

func stopped(ctx context.Context, i int) bool {
	return i%pollEvery == 0 && ctx.Err() != nil
}

func cancelled(ctx context.Context) Result {
	return Result{Value: math.NaN(), Detail: ctx.Err().Error()}
}

func intUniform(ctx context.Context, g *rng.Generator, c Config) Result {
	h, err := metric.NewHistogram(int(c.Bound))
	if err != nil {
		return Result{Detail: err.Error()}
	}
	for i := 0; i < c.Samples; i++ {
		if stopped(ctx, i) {
			return cancelled(ctx)
		}
		if err := h.Add(int(g.IntN(c.Bound))); err != nil {
			return Result{Value: math.Inf(1), Detail: err.Error()}
		}
	}
	chi := stat.ChiSquare(h.Counts(), float64(c.Samples)/float64(c.Bound))
	limit := stat.ChiSquareCritical(int(c.Bound)-1, c.Z)
	return Result{
		Value:  chi,
		Limit:  limit,
		Pass:   within(chi, limit),
		Detail: fmt.Sprintf("chi-square over %d buckets", c.Bound),
	}
}

func floatRange(ctx context.Context, g *rng.Generator, c Config) Result {
	out := 0
	min32, max32 := float32(c.Min), float32(c.Max)
	for i := 0; i < c.Samples; i++ {
		if stopped(ctx, i) {
			return cancelled(ctx)
		}
		if v := g.Float64Range(c.Min, c.Max); v < c.Min || v >= c.Max {
			out++
		}
		if min32 < max32 {
			if v := g.Float32Range(min32, max32); v < min32 || v >= max32 {
				out++
			}
		}
	}
	return Result{
		Value:  float64(out),
		Pass:   out == 0,
		Detail: fmt.Sprintf("values outside [%v,%v)", c.Min, c.Max),
	}
}

func longSign(ctx context.Context, g *rng.Generator, c Config) Result {
	neg := 0
	for i := 0; i < c.Samples; i++ {
		if stopped(ctx, i) {
			return cancelled(ctx)
		}
		if g.Int64() < 0 {
			neg++
		}
	}
	frac := float64(neg) / float64(c.Samples)
	dev := math.Abs(frac - 0.5)
	limit := stat.ProportionTolerance(0.5, c.Samples, c.Z)
	return Result{
		Value:  dev,
		Limit:  limit,
		Pass:   within(dev, limit),
		Detail: fmt.Sprintf("negative fraction %.5f", frac),
	}
}

func boolFraction(ctx context.Context, g *rng.Generator, c Config) Result {
	wrong := 0
	for i := 0; i < c.Samples; i++ {
		if stopped(ctx, i) {
			return cancelled(ctx)
		}
		if g.BoolP(0) || !g.BoolP(1) {
			wrong++
		}
	}
	if wrong > 0 {
		return Result{
			Value:  math.Inf(1),
			Detail: fmt.Sprintf("%d draws ignored a probability of 0 or 1", wrong),
		}
	}

	hits := 0
	for i := 0; i < c.Samples; i++ {
		if stopped(ctx, i) {
			return cancelled(ctx)
		}
		if g.Bool() {
			hits++
		}
	}
	p := g.Probability()
	frac := float64(hits) / float64(c.Samples)
	dev := math.Abs(frac - p)
	limit := stat.ProportionTolerance(p, c.Samples, c.Z)
	return Result{
		Value:  dev,
		Limit:  limit,
		Pass:   within(dev, limit),
		Detail: fmt.Sprintf("true fraction %.5f for p=%v", frac, p),
	}
}

func discretise(ctx context.Context, g *rng.Generator, c Config) Result {
	lo, hi := math.Floor(c.Value), math.Ceil(c.Value)
	frac := c.Value - lo
	ups := 0
	sum := 0.0
	for i := 0; i < c.Samples; i++ {
		if stopped(ctx, i) {
			return cancelled(ctx)
		}
		d := float64(g.Discretise(c.Value))
		switch d {
		case hi:
			if hi != lo {
				ups++
			}
		case lo:
		default:
			return Result{
				Value:  math.Inf(1),
				Detail: fmt.Sprintf("discretise(%v) returned %v", c.Value, d),
			}
		}
		sum += d
	}
	upFrac := float64(ups) / float64(c.Samples)
	dev := math.Abs(upFrac - frac)
	limit := stat.ProportionTolerance(frac, c.Samples, c.Z)
	return Result{
		Value:  dev,
		Limit:  limit,
		Pass:   within(dev, limit),
		Detail: fmt.Sprintf("rounded up %.5f of draws, mean %.5f", upFrac, sum/float64(c.Samples)),
	}
}

// normalMoments reports the larger of the mean and standard deviation errors in units of
// their standard errors, so the limit is z
func normalMoments(ctx context.Context, g *rng.Generator, c Config) Result {
	vals := make([]float64, c.Samples)
	for i := range vals {
		if stopped(ctx, i) {
			return cancelled(ctx)
		}
		vals[i] = g.Normal()
	}
	mean, sd := stat.Mean(vals), stat.StdDev(vals)
	meanErr := math.Abs(mean) / stat.MeanTolerance(1, c.Samples, 1)
	sdErr := math.Abs(sd-1) / stat.StdDevTolerance(1, c.Samples, 1)
	if math.IsNaN(meanErr) || math.IsNaN(sdErr) {
		return Result{Value: math.NaN(), Limit: c.Z, Detail: "normal produced NaN"}
	}
	dev := math.Max(meanErr, sdErr)
	return Result{
		Value:  dev,
		Limit:  c.Z,
		Pass:   within(dev, c.Z),
		Detail: fmt.Sprintf("mean %.5f stdev %.5f", mean, sd),
	}
}

func signBalance(ctx context.Context, g *rng.Generator, c Config) Result {
	pos := 0
	for i := 0; i < c.Samples; i++ {
		if stopped(ctx, i) {
			return cancelled(ctx)
		}
		switch g.Sign() {
		case 1:
			pos++
		case -1:
		default:
			return Result{Value: math.Inf(1), Detail: "sign returned a value other than -1 or 1"}
		}
	}
	half := float64(c.Samples) / 2
	dev := math.Abs(float64(pos) - half)
	limit := float64(c.Samples) * stat.ProportionTolerance(0.5, c.Samples, c.Z)
	return Result{
		Value:  dev,
		Limit:  limit,
		Pass:   within(dev, limit),
		Detail: fmt.Sprintf("%d positive of %d", pos, c.Samples),
	}
}

// draws runs a fixed mix of operations so replays can be compared call for call
func draws(ctx context.Context, g *rng.Generator, n int) []float64 {
	out := make([]float64, 0, n*6)
	for i := 0; i < n; i++ {
		if stopped(ctx, i) {
			return out
		}
		out = append(out,
			float64(g.IntN(1000)),
			float64(g.Int64Range(-1<<40, 1<<40)),
			g.Float64Range(-3, 3),
			g.Normal(),
			float64(g.Sign()),
			float64(g.Discretise(0.5)),
		)
	}
	return out
}

func reseedDeterminism(ctx context.Context, g *rng.Generator, c Config) Result {
	seed := g.Int64()
	n := c.Samples / 6
	if n < 1 {
		n = 1
	}
	g.Reseed(seed)
	first := draws(ctx, g, n)
	g.Reseed(seed)
	second := draws(ctx, g, n)
	if ctx.Err() != nil {
		return cancelled(ctx)
	}

	mismatch := 0
	for i := range first {
		// NaN never equals itself, so compare bits
		if math.Float64bits(first[i]) != math.Float64bits(second[i]) {
			mismatch++
		}
	}
	return Result{
		Value:  float64(mismatch),
		Pass:   mismatch == 0,
		Detail: fmt.Sprintf("replayed %d draws from seed %d", len(first), seed),
	}
}
