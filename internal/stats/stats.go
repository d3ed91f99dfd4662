// Package stats collects per-batch drain statistics from workers.
//
// Workers are the producers here: each publishes one BatchEvent per
// processed batch into its own shard of a lock-free MPSC ring
// (github.com/randomizedcoder/go-lock-free-ring). A single collector
// goroutine drains the ring into a Summary. Events are never dropped: a
// worker whose shard is full yields until the collector catches up, which
// happens outside the queue lock.
package stats

import "errors"

// ErrNoWorkers is returned when a collector is built for zero workers.
var ErrNoWorkers = errors.New("stats: worker count must be positive")

// BatchEvent describes one batch a worker drained and classified.
type BatchEvent struct {
	Worker int
	Size   int
	Primes int
}

// Recorder receives batch events from workers.
//
// RecordBatch is called concurrently by every worker, each with its own
// Worker id, and must not take the queue lock.
type Recorder interface {
	RecordBatch(BatchEvent)
}

// WorkerSummary aggregates the batches of one worker.
type WorkerSummary struct {
	Batches uint64
	Items   uint64
	Primes  uint64
}

// Summary aggregates every event the collector received.
type Summary struct {
	Batches  uint64
	Items    uint64
	Primes   uint64
	MaxBatch int
	Workers  map[int]WorkerSummary
}

// MeanBatch returns the average batch size, or 0 with no batches.
func (s Summary) MeanBatch() float64 {
	if s.Batches == 0 {
		return 0
	}
	return float64(s.Items) / float64(s.Batches)
}

func (s *Summary) add(e BatchEvent) {
	s.Batches++
	s.Items += uint64(e.Size)
	s.Primes += uint64(e.Primes)
	if e.Size > s.MaxBatch {
		s.MaxBatch = e.Size
	}

	w := s.Workers[e.Worker]
	w.Batches++
	w.Items += uint64(e.Size)
	w.Primes += uint64(e.Primes)
	s.Workers[e.Worker] = w
}
