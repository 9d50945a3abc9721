package monte

import (
	"context"
	"fmt"
	"sync"

	"github.com/BTBurke/monte/pkg/holder"
	"github.com/BTBurke/monte/pkg/metric"
	"github.com/BTBurke/monte/pkg/rng"
	"github.com/BTBurke/monte/pkg/stat"
	"github.com/rs/zerolog"
)

// Calibration is the observed failure rate of each check over many batteries with different
// seeds.  For a correct generator a statistical check fails at a rate near Expected, and the
// exact checks never fail.
type Calibration struct {
	Runs     int
	Expected float64
	Checks   []CheckRate
}

// CheckRate is the failure rate of the check at one position in the battery
type CheckRate struct {
	Check    string
	Failures int
	Rate     float64
}

// Calibrate runs the battery in cfg cfg.Runs times on cfg.Workers goroutines.  Each run takes
// its seed from a generator in a pool seeded by cfg.Seed.  Checks holds one rate per entry in
// cfg.Checks, in the same order, so a repeated check is counted once per position.
func Calibrate(ctx context.Context, cfg Config, log zerolog.Logger, reporter ErrorReporter, opts ...RunnerOption) (Calibration, error) {
	if cfg.Runs <= 0 || cfg.Workers <= 0 {
		return Calibration{}, fmt.Errorf("runs and workers must be greater than zero")
	}
	if reporter == nil {
		reporter = noopReporter{}
	}
	// runner created once to validate the battery before any worker starts
	if _, err := NewRunner(cfg, opts...); err != nil {
		return Calibration{}, err
	}
	pool, err := holder.NewPoolWithSeed(cfg.Seed)
	if err != nil {
		return Calibration{}, err
	}

	failures := make([]*metric.Counter, len(cfg.Checks))
	for i := range failures {
		failures[i] = &metric.Counter{}
	}
	opts = append([]RunnerOption{WithErrorReporter(reporter)}, opts...)

	jobs := make(chan int)
	errs := make(chan error, cfg.Workers)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := pool.Get()
			defer pool.Put(g)
			for run := range jobs {
				if err := calibrateRun(ctx, cfg, g, failures, opts); err != nil {
					errs <- fmt.Errorf("run %d: %w", run, err)
					cancel()
					return
				}
				log.Debug().Int("run", run).Msg("battery finished")
			}
		}()
	}

	go func() {
		defer close(jobs)
		for run := 0; run < cfg.Runs; run++ {
			select {
			case jobs <- run:
			case <-ctx.Done():
				return
			}
		}
	}()
	wg.Wait()

	select {
	case err := <-errs:
		return Calibration{}, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return Calibration{}, err
	}

	c := Calibration{Runs: cfg.Runs, Expected: float64(stat.Rate(cfg.Z))}
	for i, f := range failures {
		c.Checks = append(c.Checks, CheckRate{
			Check:    cfg.Checks[i],
			Failures: f.Value(),
			Rate:     float64(f.Value()) / float64(cfg.Runs),
		})
	}
	return c, nil
}

func calibrateRun(ctx context.Context, cfg Config, g *rng.Generator, failures []*metric.Counter, opts []RunnerOption) error {
	cfg.Seed = g.Int64()
	r, err := NewRunner(cfg, opts...)
	if err != nil {
		return err
	}
	results, err := r.Run(ctx)
	if err != nil {
		return err
	}
	for i, res := range results {
		if !res.Pass {
			failures[i].Add(1)
		}
	}
	return nil
}
