package tick_test

import (
	"testing"
	"time"

	"github.com/randomizedcoder/primecount/internal/tick"
)

func TestStdTicker(t *testing.T) {
	interval := 50 * time.Millisecond
	ticker := tick.NewTicker(interval)
	defer ticker.Stop()

	// Should not tick immediately
	if ticker.Tick() {
		t.Error("expected Tick() = false immediately after creation")
	}

	// Wait for interval + buffer
	time.Sleep(interval + 20*time.Millisecond)

	if !ticker.Tick() {
		t.Error("expected Tick() = true after interval elapsed")
	}

	// Should not tick again immediately
	if ticker.Tick() {
		t.Error("expected Tick() = false immediately after tick")
	}
}

func TestBatchTicker(t *testing.T) {
	interval := 50 * time.Millisecond
	every := 10
	ticker := tick.NewBatch(interval, every)
	defer ticker.Stop()

	// First 9 calls should not tick (regardless of time)
	for i := 0; i < every-1; i++ {
		if ticker.Tick() {
			t.Errorf("expected Tick() = false on call %d (before batch)", i+1)
		}
	}

	// 10th call checks time - but interval hasn't passed
	if ticker.Tick() {
		t.Error("expected Tick() = false before interval elapsed")
	}

	time.Sleep(interval + 20*time.Millisecond)

	for i := 0; i < every-1; i++ {
		ticker.Tick() // These don't check time
	}

	// The Nth call should tick
	if !ticker.Tick() {
		t.Error("expected Tick() = true after interval elapsed and batch complete")
	}
}

func TestBatchTicker_ZeroInterval(t *testing.T) {
	// Every Nth call ticks when the interval is zero
	ticker := tick.NewBatch(0, 3)

	var ticks []int
	for i := 1; i <= 9; i++ {
		if ticker.Tick() {
			ticks = append(ticks, i)
		}
	}

	want := []int{3, 6, 9}
	if len(ticks) != len(want) {
		t.Fatalf("expected ticks at %v, got %v", want, ticks)
	}
	for i := range want {
		if ticks[i] != want[i] {
			t.Errorf("expected ticks at %v, got %v", want, ticks)
		}
	}
}

func TestBatchTicker_EveryClamped(t *testing.T) {
	// every < 1 reads the clock on every call
	ticker := tick.NewBatch(0, 0)
	for i := 0; i < 3; i++ {
		if !ticker.Tick() {
			t.Errorf("expected Tick() = true on call %d", i+1)
		}
	}
}

func TestStdTicker_Interval(t *testing.T) {
	ticker := tick.NewTicker(tick.DefaultInterval)
	defer ticker.Stop()

	if ticker.Interval() != tick.DefaultInterval {
		t.Errorf("expected Interval() = %v, got %v", tick.DefaultInterval, ticker.Interval())
	}
}

// Test that all implementations satisfy the interface
func TestTickerInterface(t *testing.T) {
	interval := 50 * time.Millisecond

	testCases := []struct {
		name   string
		create func() tick.Ticker
	}{
		{"StdTicker", func() tick.Ticker { return tick.NewTicker(interval) }},
		{"BatchTicker", func() tick.Ticker { return tick.NewBatch(interval, 1) }}, // every=1 so it checks time on every call
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ticker := tc.create()
			defer ticker.Stop()

			if ticker.Tick() {
				t.Error("expected Tick() = false immediately")
			}

			time.Sleep(interval + 20*time.Millisecond)

			if !ticker.Tick() {
				t.Error("expected Tick() = true after interval")
			}
		})
	}
}
