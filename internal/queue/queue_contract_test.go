package queue_test

import (
	"sync"
	"testing"
	"time"

	"github.com/randomizedcoder/primecount/internal/queue"
)

// TestBoundedQueue_EnqueueAfterComplete_Panics verifies that producing
// after MarkComplete is rejected instead of silently queuing.
func TestBoundedQueue_EnqueueAfterComplete_Panics(t *testing.T) {
	q := queue.NewBounded[int](4)
	q.MarkComplete()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on Enqueue after MarkComplete")
		}
	}()
	q.Enqueue(1)
}

// TestBoundedQueue_ZeroBatch_Panics verifies the batch size guard.
func TestBoundedQueue_ZeroBatch_Panics(t *testing.T) {
	testCases := []struct {
		name  string
		drain func(q queue.Queue[int])
	}{
		{"DrainBatch(0)", func(q queue.Queue[int]) { q.DrainBatch(0) }},
		{"DrainBatch(-1)", func(q queue.Queue[int]) { q.DrainBatch(-1) }},
		{"DrainInto(nil)", func(q queue.Queue[int]) { q.DrainInto(nil) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := queue.NewBounded[int](4)
			q.Enqueue(1)
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %s", tc.name)
				}
			}()
			tc.drain(q)
		})
	}
}

// TestBoundedQueue_Termination verifies that every consumer blocked on an
// empty queue wakes and reports exhausted once MarkComplete is called.
func TestBoundedQueue_Termination(t *testing.T) {
	for _, tc := range []struct {
		name string
		q    queue.Queue[int]
	}{
		{"Bounded", queue.NewBounded[int](16)},
		{"Channel", queue.NewChannel[int](16)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			const consumers = 8
			exhausted := make(chan bool, consumers)

			for i := 0; i < consumers; i++ {
				go func() {
					_, ex := tc.q.DrainBatch(4)
					exhausted <- ex
				}()
			}

			// Give consumers time to block
			time.Sleep(20 * time.Millisecond)
			tc.q.MarkComplete()

			for i := 0; i < consumers; i++ {
				select {
				case ex := <-exhausted:
					if !ex {
						t.Errorf("consumer %d: expected exhausted = true", i)
					}
				case <-time.After(time.Second):
					t.Fatalf("consumer %d never woke after MarkComplete", i)
				}
			}
		})
	}
}

// TestQueue_Conservation runs one producer against many consumers and checks
// that every item is delivered exactly once, and that each consumer sees
// items in increasing (FIFO) order.
func TestQueue_Conservation(t *testing.T) {
	const (
		items     = 50_000
		consumers = 8
	)

	for _, tc := range []struct {
		name  string
		q     queue.Queue[int]
		batch int
	}{
		{"Bounded/batch1", queue.NewBounded[int](64), 1},
		{"Bounded/batch16", queue.NewBounded[int](64), 16},
		{"Bounded/batch>cap", queue.NewBounded[int](64), 1000},
		{"Channel/batch16", queue.NewChannel[int](64), 16},
	} {
		t.Run(tc.name, func(t *testing.T) {
			seen := make([][]int, consumers)
			var wg sync.WaitGroup

			for c := 0; c < consumers; c++ {
				wg.Add(1)
				go func(c int) {
					defer wg.Done()
					buf := make([]int, tc.batch)
					for {
						n, exhausted := tc.q.DrainInto(buf)
						if exhausted {
							return
						}
						seen[c] = append(seen[c], buf[:n]...)
					}
				}(c)
			}

			// Producer (single goroutine - this test's main goroutine)
			for i := 0; i < items; i++ {
				tc.q.Enqueue(i)
			}
			tc.q.MarkComplete()
			wg.Wait()

			delivered := make([]int, items)
			total := 0
			for c, got := range seen {
				for i, v := range got {
					if i > 0 && v <= got[i-1] {
						t.Fatalf("consumer %d: FIFO violation: %d after %d", c, v, got[i-1])
					}
					delivered[v]++
				}
				total += len(got)
			}

			if total != items {
				t.Errorf("expected %d items delivered, got %d", items, total)
			}
			for v, n := range delivered {
				if n != 1 {
					t.Fatalf("item %d delivered %d times", v, n)
				}
			}
		})
	}
}
