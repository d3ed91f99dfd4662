package combined_test

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/randomizedcoder/primecount/internal/config"
	"github.com/randomizedcoder/primecount/internal/counter"
	"github.com/randomizedcoder/primecount/internal/primes"
	"github.com/randomizedcoder/primecount/internal/queue"
)

// Sink variables
var sinkInt int

const pipelineItems = 100_000

// ============================================================================
// Full pipeline (text input -> producer -> queue -> workers -> total)
// ============================================================================

var pipelineInput = func() string {
	var b strings.Builder
	for i := 0; i < pipelineItems; i++ {
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('\n')
	}
	return b.String()
}()

func BenchmarkRun_BatchSizes(b *testing.B) {
	for _, batch := range []int{1, 64, 1024, config.DefaultBatchSize} {
		b.Run(fmt.Sprintf("batch=%d", batch), func(b *testing.B) {
			cfg := config.Default()
			cfg.BatchSize = batch
			b.ReportAllocs()
			b.ResetTimer()

			var primesFound int
			for i := 0; i < b.N; i++ {
				res, err := counter.Run(strings.NewReader(pipelineInput), cfg)
				if err != nil {
					b.Fatal(err)
				}
				primesFound = res.Primes
			}
			sinkInt = primesFound
		})
	}
}

func BenchmarkRun_WithStats(b *testing.B) {
	cfg := config.Default()
	cfg.BatchSize = 64
	cfg.Stats = true
	b.ReportAllocs()
	b.ResetTimer()

	var primesFound int
	for i := 0; i < b.N; i++ {
		res, err := counter.Run(strings.NewReader(pipelineInput), cfg)
		if err != nil {
			b.Fatal(err)
		}
		primesFound = res.Primes
	}
	sinkInt = primesFound
}

// ============================================================================
// Queue only (no parsing): bounded vs channel under 4 workers
// ============================================================================

func benchmarkPipeline(b *testing.B, newQueue func() queue.Queue[int], workers, batch int) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q := newQueue()
		var wg sync.WaitGroup
		var mu sync.Mutex
		total := 0

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				buf := make([]int, batch)
				local := 0
				for {
					n, exhausted := q.DrainInto(buf)
					if exhausted {
						break
					}
					local += primes.Count(buf[:n])
				}
				mu.Lock()
				total += local
				mu.Unlock()
			}()
		}

		for v := 0; v < pipelineItems; v++ {
			q.Enqueue(v)
		}
		q.MarkComplete()
		wg.Wait()
		sinkInt = total
	}
}

func BenchmarkPipeline_Bounded_Batch64(b *testing.B) {
	benchmarkPipeline(b, func() queue.Queue[int] { return queue.NewBounded[int](1024) }, 4, 64)
}

func BenchmarkPipeline_Channel_Batch64(b *testing.B) {
	benchmarkPipeline(b, func() queue.Queue[int] { return queue.NewChannel[int](1024) }, 4, 64)
}

func BenchmarkPipeline_Bounded_Batch1(b *testing.B) {
	benchmarkPipeline(b, func() queue.Queue[int] { return queue.NewBounded[int](1024) }, 4, 1)
}

func BenchmarkPipeline_Channel_Batch1(b *testing.B) {
	benchmarkPipeline(b, func() queue.Queue[int] { return queue.NewChannel[int](1024) }, 4, 1)
}
