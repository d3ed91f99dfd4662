// Package queue provides blocking work queues with batch-drain semantics.
//
// This package offers two implementations of the Queue interface:
//   - BoundedQueue: Fixed-capacity circular buffer guarded by a mutex and
//     two condition variables (not-full, not-empty)
//   - ChannelQueue: Standard library approach using a buffered channel
//
// # Protocol
//
// Exactly ONE goroutine produces: it calls Enqueue for every value and then
// MarkComplete once input is exhausted. Any number of goroutines drain.
//
// A drain blocks while the queue is empty and not complete. Items queued
// before MarkComplete are always delivered; a drain reports exhausted only
// when the queue is empty AND complete. Once a drain reports exhausted,
// every later drain does too.
//
// Misuse panics:
//   - Enqueue after MarkComplete
//   - Drain with a non-positive batch size
package queue

// Queue is a single-producer multi-consumer blocking queue.
type Queue[T any] interface {
	// Enqueue adds an item, blocking while the queue is full.
	Enqueue(T)

	// DrainInto removes up to len(dst) items in FIFO order into dst.
	// Blocks while the queue is empty and not complete.
	// Returns exhausted = true once the queue is empty and complete.
	DrainInto(dst []T) (n int, exhausted bool)

	// DrainBatch is DrainInto with a freshly allocated batch of up to max items.
	DrainBatch(max int) (items []T, exhausted bool)

	// MarkComplete signals that no more items will be enqueued and wakes
	// every blocked goroutine. Safe to call more than once.
	MarkComplete()

	// Len returns the current number of queued items.
	Len() int

	// Cap returns the capacity of the queue.
	Cap() int
}

// drainBatch allocates a batch and fills it through DrainInto.
func drainBatch[T any](q Queue[T], max int) ([]T, bool) {
	if max <= 0 {
		panic("queue: DrainBatch with non-positive batch size")
	}
	buf := make([]T, max)
	n, exhausted := q.DrainInto(buf)
	if exhausted {
		return nil, true
	}
	return buf[:n], false
}
