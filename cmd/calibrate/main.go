package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/BTBurke/monte"
	"github.com/spf13/pflag"
)

func main() {
	opts, err := monte.ParseCommandLine("calibrate")
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("Could not parse configuration: %s\n\nUse calibrate --help for options\n", err)
		}
		os.Exit(1)
	}
	cfg, errs := monte.NewConfig(opts...)
	if len(errs) > 0 {
		fmt.Println("Error in config:")
		for _, e := range errs {
			fmt.Println(e)
		}
		os.Exit(1)
	}
	log, err := monte.NewLogger(cfg.Format, cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	reporter := monte.NewErrorReporter(cfg.RollbarToken, os.Getenv("environment"))
	defer reporter.Wait()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	log.Info().Int("runs", cfg.Runs).Int("workers", cfg.Workers).Int64("seed", cfg.Seed).Msg("calibration started")
	c, err := monte.Calibrate(ctx, cfg, log, reporter)
	if err != nil {
		log.Error().Err(err).Msg("calibration did not finish")
		os.Exit(1)
	}
	fmt.Printf("Time Elapsed: %v\n", time.Since(start))

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "CHECK\tFAILURES\tRATE\tEXPECTED\n")
	for _, r := range c.Checks {
		fmt.Fprintf(tw, "%s\t%d\t%1.5f\t%1.5f\n", r.Check, r.Failures, r.Rate, c.Expected)
	}
	tw.Flush()
}
