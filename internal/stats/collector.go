package stats

import (
	"fmt"
	"runtime"
	"time"

	ring "github.com/randomizedcoder/go-lock-free-ring"
)

const (
	// DefaultShardCapacity is the number of events each worker shard holds.
	DefaultShardCapacity = 1024

	// DefaultPollInterval is how long the collector sleeps on an empty ring.
	DefaultPollInterval = time.Millisecond
)

// Collector drains BatchEvents from a sharded ring on one goroutine.
type Collector struct {
	ring *ring.ShardedRing
	poll time.Duration

	stop chan struct{}
	done chan struct{}

	summary Summary // owned by the collector goroutine until done is closed
}

// NewCollector creates a Collector with one ring shard per worker.
//
// The shard count is rounded up to a power of two.
func NewCollector(workers int, poll time.Duration) (*Collector, error) {
	if workers < 1 {
		return nil, ErrNoWorkers
	}
	if poll <= 0 {
		poll = DefaultPollInterval
	}

	shards := uint64(1)
	for shards < uint64(workers) {
		shards <<= 1
	}

	r, err := ring.NewShardedRing(shards*DefaultShardCapacity, shards)
	if err != nil {
		return nil, fmt.Errorf("stats: create ring: %w", err)
	}

	return &Collector{
		ring: r,
		poll: poll,
		stop: make(chan struct{}),
		done: make(chan struct{}),
		summary: Summary{
			Workers: make(map[int]WorkerSummary, workers),
		},
	}, nil
}

// RecordBatch publishes e to the worker's shard, yielding while the
// shard is full until the collector makes room.
func (c *Collector) RecordBatch(e BatchEvent) {
	for !c.ring.Write(uint64(e.Worker), e) {
		runtime.Gosched()
	}
}

// Start launches the collector goroutine.
func (c *Collector) Start() {
	go c.run()
}

// Stop signals the collector, waits for it to drain what is left in the
// ring, and returns the final Summary.
//
// Every RecordBatch call must have returned before Stop is called.
func (c *Collector) Stop() Summary {
	close(c.stop)
	<-c.done

	return c.summary
}

func (c *Collector) run() {
	defer close(c.done)

	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()

	for {
		if c.readAll() > 0 {
			continue
		}
		select {
		case <-c.stop:
			c.readAll()
			return
		case <-ticker.C:
		}
	}
}

// readAll consumes events until the ring is empty and returns how many it read.
func (c *Collector) readAll() int {
	n := 0
	for {
		v, ok := c.ring.TryRead()
		if !ok {
			return n
		}
		if e, ok := v.(BatchEvent); ok {
			c.summary.add(e)
		}
		n++
	}
}
