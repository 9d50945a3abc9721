package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/BTBurke/monte"
	"github.com/spf13/pflag"
)

func main() {
	opts, err := monte.ParseCommandLine("monte")
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Printf("Could not parse configuration: %s\n\nUse monte --help for options\n", err)
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

	runner, err := monte.NewRunner(cfg, monte.WithLogger(log), monte.WithErrorReporter(reporter))
	if err != nil {
		log.Error().Err(err).Msg("could not create runner")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := runner.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("battery did not finish")
		os.Exit(1)
	}
	if err := monte.WriteResults(os.Stdout, cfg.Format, results); err != nil {
		log.Error().Err(err).Msg("could not write results")
	}

	summary := monte.Summarize(results, time.Since(start))
	log.Info().
		Int64("seed", cfg.Seed).
		Int("passed", summary.Passed).
		Int("failed", summary.Failed).
		Dur("elapsed", summary.Elapsed).
		Msg("battery finished")
	if !summary.OK() {
		reporter.Wait()
		os.Exit(1)
	}
}
