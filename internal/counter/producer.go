package counter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/randomizedcoder/primecount/internal/queue"
)

// ErrReadInput wraps I/O failures of the input stream.
var ErrReadInput = errors.New("counter: read input")

// maxTokenSize bounds a single whitespace-separated token.
const maxTokenSize = 1 << 20

// Produce reads whitespace-separated integers from r and enqueues them.
//
// Reading stops at end of input, at the first token that is not an
// integer, or when the canceler reports done. q.MarkComplete is called on
// every return path, so workers always terminate.
func Produce(r io.Reader, q queue.Queue[int], opts ...Option) (enqueued int, stopped bool, err error) {
	o := newOptions(opts)
	defer q.MarkComplete()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(bufio.ScanWords)

	for {
		if o.canceler != nil && o.canceler.Done() {
			o.logger.Info("input stopped by request", "enqueued", enqueued)
			return enqueued, true, nil
		}
		if !sc.Scan() {
			break
		}

		v, perr := strconv.Atoi(sc.Text())
		if perr != nil {
			o.logger.Warn("stopping input at malformed token",
				"token", sc.Text(), "enqueued", enqueued)
			return enqueued, false, nil
		}

		q.Enqueue(v)
		enqueued++

		if o.ticker != nil && o.ticker.Tick() {
			o.logger.Debug("producer progress", "enqueued", enqueued, "queue_len", q.Len())
		}
	}

	if err := sc.Err(); err != nil {
		return enqueued, false, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return enqueued, false, nil
}
