package counter

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Total is the shared prime count.
//
// It has its own mutex, separate from the queue lock, and each worker
// writes it exactly once when it exits. Padding keeps the mutex off the
// cache lines of neighbouring allocations.
type Total struct {
	_  cpu.CacheLinePad
	mu sync.Mutex
	n  int
	_  cpu.CacheLinePad
}

// Add merges a worker's local count.
func (t *Total) Add(n int) {
	t.mu.Lock()
	t.n += n
	t.mu.Unlock()
}

// Value returns the current total. Only meaningful after all workers joined.
func (t *Total) Value() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.n
}
