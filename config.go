package monte

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/BTBurke/monte/pkg/rng"
	"github.com/BTBurke/monte/pkg/stat"
	"github.com/rs/zerolog"
)

// Config controls which checks run and how many samples each one draws
type Config struct {
	Seed         int64
	Samples      int
	Z            float64
	Source       string
	Checks       []string
	Bound        int32
	Probability  float64
	Value        float64
	Min          float64
	Max          float64
	Runs         int
	Workers      int
	Format       string
	LogLevel     string
	RollbarToken string

	seedSet bool
}

type ConfigOption func(c *Config) error

// minExpectedPerBucket is the smallest expected count per int_uniform bucket for which the
// chi-square approximation holds
const minExpectedPerBucket = 5

// NewConfig applies options over the defaults.  Every option error is returned, not just the
// first.  Without a seed option a random seed is chosen; without a check option every check runs.
func NewConfig(options ...ConfigOption) (Config, []error) {
	c := Config{
		Samples:     100000,
		Z:           5.0,
		Source:      "pcg32",
		Bound:       10,
		Probability: 0.3,
		Value:       2.3,
		Min:         -1,
		Max:         1,
		Runs:        100,
		Workers:     runtime.NumCPU(),
		Format:      "text",
		LogLevel:    "info",
	}

	var errors []error
	for _, option := range options {
		if err := option(&c); err != nil {
			errors = append(errors, err)
		}
	}
	if !c.seedSet {
		seed, err := rng.NewSeed()
		if err != nil {
			errors = append(errors, err)
		}
		c.Seed = seed
	}
	if len(c.Checks) == 0 {
		c.Checks = CheckNames()
	}
	if c.Samples <= 0 {
		errors = append(errors, fmt.Errorf("samples must be greater than zero"))
	}
	switch {
	case c.Bound < 2:
		errors = append(errors, fmt.Errorf("bound must be at least 2"))
	case c.Samples > 0 && float64(c.Samples)/float64(c.Bound) < minExpectedPerBucket:
		// also caps the int_uniform histogram at samples/5 buckets
		errors = append(errors, fmt.Errorf("bound %d leaves fewer than %d expected samples per bucket for %d samples", c.Bound, minExpectedPerBucket, c.Samples))
	}
	if !(c.Min < c.Max) {
		errors = append(errors, fmt.Errorf("range minimum %v must be less than maximum %v", c.Min, c.Max))
	}
	if c.Z <= 0 {
		errors = append(errors, fmt.Errorf("z must be greater than zero"))
	}
	if c.Runs <= 0 || c.Workers <= 0 {
		errors = append(errors, fmt.Errorf("runs and workers must be greater than zero"))
	}

	if len(errors) > 0 {
		return Config{}, errors
	}
	return c, nil
}

func Seed(seed string) ConfigOption {
	return func(c *Config) error {
		s, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("could not convert seed to integer")
		}
		c.Seed = s
		c.seedSet = true
		return nil
	}
}

func Samples(samples string) ConfigOption {
	return func(c *Config) error {
		n, err := strconv.Atoi(samples)
		if err != nil {
			return fmt.Errorf("could not convert samples to integer")
		}
		c.Samples = n
		return nil
	}
}

// Z sets how many standard deviations a statistic may stray before its check fails
func Z(z string) ConfigOption {
	return func(c *Config) error {
		v, err := strconv.ParseFloat(z, 64)
		if err != nil {
			return fmt.Errorf("could not convert z to a number")
		}
		c.Z = v
		return nil
	}
}

// ErrorRate sets Z from the acceptable chance that a correct generator fails a check
func ErrorRate(rate string) ConfigOption {
	return func(c *Config) error {
		v, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			return fmt.Errorf("could not convert error-rate to a number")
		}
		z, err := stat.ErrorRate(v).Z()
		if err != nil {
			return err
		}
		c.Z = z
		return nil
	}
}

// Source selects the base generator by name
func Source(name string) ConfigOption {
	return func(c *Config) error {
		if _, err := rng.FactoryFor(name); err != nil {
			return err
		}
		c.Source = name
		return nil
	}
}

// Check adds a check to run.  May be repeated.
func Check(name string) ConfigOption {
	return func(c *Config) error {
		if _, ok := checks[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCheck, name)
		}
		c.Checks = append(c.Checks, name)
		return nil
	}
}

// Bound sets the exclusive upper bound used by int_uniform
func Bound(bound string) ConfigOption {
	return func(c *Config) error {
		b, err := strconv.ParseInt(bound, 10, 32)
		if err != nil {
			return fmt.Errorf("could not convert bound to a 32-bit integer")
		}
		c.Bound = int32(b)
		return nil
	}
}

// Probability sets the probability used by bool_fraction
func Probability(p string) ConfigOption {
	return func(c *Config) error {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return fmt.Errorf("could not convert probability to a number")
		}
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%w: %v", rng.ErrInvalidProbability, v)
		}
		c.Probability = v
		return nil
	}
}

// Value sets the real value discretised by the discretise check
func Value(v string) ConfigOption {
	return func(c *Config) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("could not convert value to a number")
		}
		c.Value = f
		return nil
	}
}

// Range sets the float_range interval from min:max
func Range(r string) ConfigOption {
	return func(c *Config) error {
		parts := strings.SplitN(r, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format for range, should be min:max in %s", r)
		}
		min, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return fmt.Errorf("could not convert range minimum to a number")
		}
		max, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return fmt.Errorf("could not convert range maximum to a number")
		}
		c.Min, c.Max = min, max
		return nil
	}
}

// Runs sets how many batteries calibrate runs
func Runs(runs string) ConfigOption {
	return func(c *Config) error {
		n, err := strconv.Atoi(runs)
		if err != nil {
			return fmt.Errorf("could not convert runs to integer")
		}
		c.Runs = n
		return nil
	}
}

func Workers(workers string) ConfigOption {
	return func(c *Config) error {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("could not convert workers to integer")
		}
		c.Workers = n
		return nil
	}
}

// Format selects text or json output
func Format(format string) ConfigOption {
	return func(c *Config) error {
		switch format {
		case "text", "json":
			c.Format = format
			return nil
		default:
			return fmt.Errorf("unknown format %s, use text or json", format)
		}
	}
}

func LogLevel(level string) ConfigOption {
	return func(c *Config) error {
		if _, err := zerolog.ParseLevel(level); err != nil {
			return fmt.Errorf("unknown log level %s", level)
		}
		c.LogLevel = level
		return nil
	}
}

// RollbarToken enables reporting of unexpected check failures to Rollbar
func RollbarToken(token string) ConfigOption {
	return func(c *Config) error {
		c.RollbarToken = token
		return nil
	}
}
