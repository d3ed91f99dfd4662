package tick

import "time"

// BatchTicker checks the time only every N calls to Tick().
//
// With every=4096 and interval=5s the clock is read once per 4096
// enqueues, and a tick fires when 5s have passed since the last one. Run
// builds one from the progress settings of the config.
type BatchTicker struct {
	interval time.Duration
	every    uint64
	calls    uint64
	lastTick time.Time
}

// NewBatch creates a BatchTicker that reads the clock every N calls.
// every < 1 is treated as 1.
func NewBatch(interval time.Duration, every int) *BatchTicker {
	if every < 1 {
		every = 1
	}
	return &BatchTicker{
		interval: interval,
		every:    uint64(every),
		lastTick: time.Now(),
	}
}

// Tick returns true if the interval has elapsed.
//
// Only every Nth call looks at the clock; the others return false.
func (b *BatchTicker) Tick() bool {
	b.calls++
	if b.calls%b.every != 0 {
		return false
	}

	now := time.Now()
	if now.Sub(b.lastTick) >= b.interval {
		b.lastTick = now
		return true
	}
	return false
}

// Stop is a no-op for BatchTicker (no resources to release).
func (b *BatchTicker) Stop() {}
