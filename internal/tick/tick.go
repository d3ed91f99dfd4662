// Package tick decides when the producer should report progress.
//
// The producer calls Tick() after every enqueue, so the check has to be
// far cheaper than the enqueue itself:
//   - BatchTicker: looks at the clock only every N calls
//   - StdTicker: non-blocking select on a time.Ticker channel
package tick

import "time"

// Ticker signals when a progress interval has elapsed.
//
// Implementations are polled by a single goroutine (the producer) and are
// not required to be safe for concurrent Tick() calls.
type Ticker interface {
	// Tick returns true if the interval has elapsed since the last tick.
	// This is a non-blocking check.
	Tick() bool

	// Stop releases any resources held by the ticker.
	Stop()
}

// DefaultInterval is the progress interval the CLI uses for a terminal
// stdin when no progress interval is configured.
const DefaultInterval = 5 * time.Second

// DefaultEvery is how many enqueues a BatchTicker skips between clock reads.
const DefaultEvery = 4096
