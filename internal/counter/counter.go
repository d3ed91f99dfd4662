// Package counter counts primes in an integer stream with one producer and
// a fixed pool of workers sharing a BoundedQueue.
//
// The only cross-goroutine contention points are the queue lock (producer
// and workers) and the Total lock, which each worker takes exactly once
// when it exits. Classification itself runs without locks.
package counter

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/primecount/internal/config"
	"github.com/randomizedcoder/primecount/internal/queue"
	"github.com/randomizedcoder/primecount/internal/stats"
	"github.com/randomizedcoder/primecount/internal/tick"
)

// Result is the outcome of a Run.
type Result struct {
	Primes   int
	Enqueued int
	Stopped  bool           // input ended early by the canceler
	Stats    *stats.Summary // nil unless cfg.Stats
	Elapsed  time.Duration
}

// Run reads integers from r and counts the primes among them.
//
// Workers are started first, then the producer runs on the calling
// goroutine. The total is read only after every worker has joined.
func Run(r io.Reader, cfg config.Config, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	o := newOptions(opts)
	start := time.Now()

	if o.ticker == nil && cfg.ProgressInterval > 0 {
		o.ticker = tick.NewBatch(cfg.ProgressInterval, cfg.ProgressEvery)
	}
	if o.ticker != nil {
		defer o.ticker.Stop()
	}

	var (
		collector *stats.Collector
		rec       = o.recorder
	)
	if cfg.Stats {
		c, err := stats.NewCollector(cfg.Workers, stats.DefaultPollInterval)
		if err != nil {
			return Result{}, fmt.Errorf("counter: %w", err)
		}
		c.Start()
		collector = c
		if rec != nil {
			rec = recorders{c, rec}
		} else {
			rec = c
		}
	}

	q := queue.NewBounded[int](cfg.Capacity)
	total := &Total{}

	var g errgroup.Group
	for id := 0; id < cfg.Workers; id++ {
		g.Go(newWorker(id, q, cfg.BatchSize, total, rec, o.logger).run)
	}

	enqueued, stopped, perr := Produce(r, q, WithLogger(o.logger), WithCanceler(o.canceler), WithTicker(o.ticker))

	// Produce has marked the queue complete on every path, so workers
	// drain what is left and exit.
	werr := g.Wait()

	res := Result{
		Primes:   total.Value(),
		Enqueued: enqueued,
		Stopped:  stopped,
		Elapsed:  time.Since(start),
	}
	if collector != nil {
		s := collector.Stop()
		res.Stats = &s
	}

	if perr != nil {
		return res, perr
	}
	if werr != nil {
		return res, werr
	}

	o.logger.Info("run complete",
		"primes", res.Primes, "enqueued", res.Enqueued,
		"workers", cfg.Workers, "elapsed", res.Elapsed)
	return res, nil
}

// recorders fans one event out to several recorders.
type recorders []stats.Recorder

func (rs recorders) RecordBatch(e stats.BatchEvent) {
	for _, r := range rs {
		r.RecordBatch(e)
	}
}
