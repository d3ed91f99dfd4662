package counter

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/randomizedcoder/primecount/internal/primes"
	"github.com/randomizedcoder/primecount/internal/queue"
	"github.com/randomizedcoder/primecount/internal/stats"
)

// ErrWorkerPanic is returned by Run when a worker panicked. The other
// workers keep draining, but the panicked worker's count is lost.
var ErrWorkerPanic = errors.New("counter: worker panicked")

// worker drains batches and counts primes locally.
//
//	DRAINING   -> DrainInto; exhausted goes to DONE, otherwise PROCESSING
//	PROCESSING -> classify the batch without touching shared state
//	DONE       -> merge the local count into total once and exit
type worker struct {
	id     int
	q      queue.Queue[int]
	batch  []int
	total  *Total
	rec    stats.Recorder // nil when nobody records batches
	logger *slog.Logger
}

// newWorker sizes the batch buffer to at most the queue capacity, since a
// drain never returns more.
func newWorker(id int, q queue.Queue[int], batchSize int, total *Total, rec stats.Recorder, logger *slog.Logger) *worker {
	return &worker{
		id:     id,
		q:      q,
		batch:  make([]int, min(batchSize, q.Cap())),
		total:  total,
		rec:    rec,
		logger: logger,
	}
}

// run executes the state machine. A panic is recovered and returned as
// ErrWorkerPanic; the local count is not merged in that case.
func (w *worker) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("worker panicked", "worker", w.id, "panic", r)
			err = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, w.id, r)
		}
	}()

	local, batches := 0, 0
	for {
		n, exhausted := w.q.DrainInto(w.batch)
		if exhausted {
			break
		}

		found := primes.Count(w.batch[:n])
		local += found
		batches++

		if w.rec != nil {
			w.rec.RecordBatch(stats.BatchEvent{Worker: w.id, Size: n, Primes: found})
		}
	}

	w.total.Add(local)
	w.logger.Debug("worker done", "worker", w.id, "batches", batches, "primes", local)
	return nil
}
