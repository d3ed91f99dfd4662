// Command primecount reads integers from stdin and prints how many are prime.
//
// Usage:
//
//	seq 1 1000000 | go run ./cmd/primecount -workers 8
//	go run ./cmd/primecount -config primecount.yaml < numbers.txt
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/randomizedcoder/primecount/internal/cancel"
	"github.com/randomizedcoder/primecount/internal/config"
	"github.com/randomizedcoder/primecount/internal/counter"
	"github.com/randomizedcoder/primecount/internal/tick"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := config.BindFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	level, _ := cfg.Level()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	opts := []counter.Option{counter.WithLogger(logger)}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Info("reading integers from terminal, end input with Ctrl-D")
		if cfg.ProgressInterval == 0 {
			// Typed input never reaches a BatchTicker's Nth call
			t := tick.NewTicker(tick.DefaultInterval)
			logger.Debug("terminal progress enabled", "interval", t.Interval())
			opts = append(opts, counter.WithTicker(t))
		}
	}

	// The first Ctrl-C ends input once the pending read returns; a second
	// one terminates the process.
	interrupted, stop := cancel.NewSignal(os.Interrupt)
	defer stop()
	opts = append(opts, counter.WithCanceler(interrupted))

	logger.Debug("starting",
		"capacity", cfg.Capacity, "batch", cfg.BatchSize, "workers", cfg.Workers, "stats", cfg.Stats)

	res, err := counter.Run(os.Stdin, cfg, opts...)
	if err != nil {
		logger.Error("run failed", "err", err)
		return 1
	}

	if s := res.Stats; s != nil {
		logger.Info("drain statistics",
			"batches", s.Batches, "items", s.Items,
			"max_batch", s.MaxBatch, "mean_batch", fmt.Sprintf("%.1f", s.MeanBatch()))
		for id := 0; id < cfg.Workers; id++ {
			w := s.Workers[id]
			logger.Info("worker statistics", "worker", id,
				"batches", w.Batches, "items", w.Items, "primes", w.Primes)
		}
	}

	fmt.Printf("%d total primes.\n", res.Primes)
	return 0
}
