// Command drainbench compares queue implementations under the
// one-producer, N-worker drain pattern used by primecount.
//
// Usage:
//
//	go run ./cmd/drainbench -n 10000000 -capacity 10000 -workers 4
package main

import (
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/randomizedcoder/primecount/internal/queue"
)

type queueInfo struct {
	name   string
	create func(capacity int) queue.Queue[int]
}

func main() {
	items := flag.Int("n", 10_000_000, "number of items to push through")
	capacity := flag.Int("capacity", 10_000, "queue capacity")
	workers := flag.Int("workers", 4, "number of draining workers")
	flag.Parse()

	fmt.Printf("Benchmarking batch drain (%d items, capacity=%d, workers=%d)\n", *items, *capacity, *workers)
	fmt.Println("─────────────────────────────────────────────────────────────")

	queues := []queueInfo{
		{"BoundedQueue", func(c int) queue.Queue[int] { return queue.NewBounded[int](c) }},
		{"ChannelQueue", func(c int) queue.Queue[int] { return queue.NewChannel[int](c) }},
	}
	batches := []int{1, 16, 256, *capacity}

	fmt.Printf("\n  %-14s %8s %14s %10s %10s\n", "queue", "batch", "total", "ns/item", "M items/s")
	for _, info := range queues {
		for _, batch := range batches {
			dur, drained := pump(info.create(*capacity), *items, *workers, batch)
			if drained != *items {
				fmt.Printf("  %-14s %8d  LOST ITEMS: drained %d of %d\n", info.name, batch, drained, *items)
				continue
			}
			perItem := float64(dur.Nanoseconds()) / float64(*items)
			fmt.Printf("  %-14s %8d %14v %10.2f %10.2f\n", info.name, batch, dur, perItem, 1000/perItem)
		}
	}

	fmt.Printf("\nNote: larger batches amortize lock and wakeup cost across more items.\n")
}

// pump pushes n items through q and returns the elapsed time and the
// number of items the workers drained.
func pump(q queue.Queue[int], n, workers, batch int) (time.Duration, int) {
	var wg sync.WaitGroup
	counts := make([]int, workers)

	start := time.Now()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			buf := make([]int, batch)
			for {
				k, exhausted := q.DrainInto(buf)
				if exhausted {
					return
				}
				counts[w] += k
			}
		}(w)
	}

	for i := 0; i < n; i++ {
		q.Enqueue(i)
	}
	q.MarkComplete()
	wg.Wait()
	dur := time.Since(start)

	drained := 0
	for _, c := range counts {
		drained += c
	}
	return dur, drained
}
