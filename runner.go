package monte

import (
	"context"
	"fmt"
	"runtime/debug"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/BTBurke/monte/pkg/holder"
	"github.com/BTBurke/monte/pkg/metric"
	"github.com/BTBurke/monte/pkg/rng"
	"github.com/rs/zerolog"
)

// Runner runs a battery of checks, each on its own generator in its own goroutine
type Runner struct {
	cfg     Config
	factory rng.Factory
	log     zerolog.Logger
	errors  ErrorReporter
	checks  map[string]checkFunc
}

type RunnerOption func(r *Runner) error

// WithLogger logs check progress to l.  By default nothing is logged.
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(r *Runner) error {
		r.log = l
		return nil
	}
}

// WithErrorReporter sends checks that panic to e
func WithErrorReporter(e ErrorReporter) RunnerOption {
	return func(r *Runner) error {
		if e == nil {
			return fmt.Errorf("error reporter must not be nil")
		}
		r.errors = e
		return nil
	}
}

// withCheck adds a check to this runner's table only
func withCheck(name string, f checkFunc) RunnerOption {
	return func(r *Runner) error {
		if _, ok := checks[name]; ok {
			return fmt.Errorf("check %s already exists", name)
		}
		table := make(map[string]checkFunc, len(r.checks)+1)
		for n, c := range r.checks {
			table[n] = c
		}
		table[name] = f
		r.checks = table
		return nil
	}
}

// NewRunner returns a runner for the checks in cfg
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if len(cfg.Checks) == 0 {
		return nil, ErrNoChecks
	}
	f, err := rng.FactoryFor(cfg.Source)
	if err != nil {
		return nil, err
	}
	r := &Runner{
		cfg:     cfg,
		factory: f,
		log:     zerolog.Nop(),
		errors:  noopReporter{},
		checks:  checks,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to create runner: %w", err)
		}
	}
	for _, name := range cfg.Checks {
		if _, ok := r.checks[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCheck, name)
		}
	}
	return r, nil
}

// streams numbers every check in the runner's table.  Built in checks take their position in
// CheckNames and any others follow in sorted order, so adding a check never moves the
// stream of a built in one.
func (r *Runner) streams() map[string]int {
	names := CheckNames()
	var extra []string
	for n := range r.checks {
		if _, ok := checks[n]; !ok {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	stream := make(map[string]int, len(names))
	for i, n := range names {
		stream[n] = i
	}
	return stream
}

// Run runs every configured check and returns the results in the configured order.  Each
// check gets the generator derived from the base seed and the check's position in
// CheckNames, so a check's draws do not depend on which other checks run.
//
// Checks stop early when ctx is cancelled.  Run always waits for every check goroutine to
// return, then reports the context error instead of partial results.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	stream := r.streams()
	gens, err := holder.Split(r.cfg.Seed, len(stream), rng.WithFactory(r.factory), rng.WithProbability(r.cfg.Probability))
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(r.cfg.Checks))
	var wg sync.WaitGroup
	for i, name := range r.cfg.Checks {
		// a check repeated in the config gets a fresh generator so no two goroutines share one
		g := gens[stream[name]]
		gens[stream[name]] = nil
		if g == nil {
			if g, err = rng.New(repeatSeed(r.cfg.Seed, stream[name], i), rng.WithFactory(r.factory), rng.WithProbability(r.cfg.Probability)); err != nil {
				wg.Wait()
				return nil, err
			}
		}
		wg.Add(1)
		go func(i int, name string, g *rng.Generator) {
			defer wg.Done()
			results[i] = r.runCheck(ctx, name, g)
		}(i, name, g)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled before checks finished: %w", err)
	}
	return results, nil
}

func repeatSeed(base int64, stream int, position int) int64 {
	return rng.DeriveSeed(rng.DeriveSeed(base, stream), position)
}

func (r *Runner) runCheck(ctx context.Context, name string, g *rng.Generator) (res Result) {
	n := metric.NewName(name, map[string]string{
		"seed":   strconv.FormatInt(r.cfg.Seed, 10),
		"source": r.cfg.Source,
	})
	start := time.Now()
	log := r.log.With().Str("check", name).Int64("seed", g.Seed()).Logger()
	log.Debug().Int("samples", r.cfg.Samples).Msg("check started")

	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("check %s panicked: %v", name, rec)
			log.Error().Err(err).Str("stack", string(debug.Stack())).Msg("check failed unexpectedly")
			r.errors.ReportError(err)
			n.AddAnnotation("panic")
			res = Result{Name: n, Value: 0, Limit: 0, Pass: false, Detail: err.Error()}
		}
	}()

	res = r.checks[name](ctx, g, r.cfg)
	res.Name = n
	event := log.Info()
	if !res.Pass {
		event = log.Warn()
	}
	event.
		Bool("pass", res.Pass).
		Float64("value", res.Value).
		Float64("limit", res.Limit).
		Dur("elapsed", time.Since(start)).
		Msg(res.Detail)
	return res
}
