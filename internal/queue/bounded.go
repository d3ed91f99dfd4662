package queue

import "sync"

// BoundedQueue is a fixed-capacity FIFO ring guarded by one mutex.
//
// Producers wait on notFull while the ring is full; consumers wait on
// notEmpty while it is empty and not complete. Enqueue and drain each wake
// a single waiter because each changes exactly one of those conditions.
// MarkComplete broadcasts because it changes the exit condition of every
// waiting consumer at once.
//
// A drain removes up to a whole batch under one lock acquisition, so lock
// and wakeup costs are paid per batch instead of per item.
type BoundedQueue[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	buf   []T
	head  int // next slot to read
	tail  int // next slot to write
	count int // 0 <= count <= len(buf)

	complete bool // never reset once set
}

// NewBounded creates a BoundedQueue holding at most capacity items.
// Panics if capacity < 1.
func NewBounded[T any](capacity int) *BoundedQueue[T] {
	if capacity < 1 {
		panic("queue: BoundedQueue capacity must be positive")
	}
	q := &BoundedQueue[T]{
		buf: make([]T, capacity),
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// Enqueue adds v at the tail, blocking while the queue is full.
//
// Panics if called after MarkComplete.
func (q *BoundedQueue[T]) Enqueue(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == len(q.buf) && !q.complete {
		q.notFull.Wait()
	}
	if q.complete {
		panic("queue: Enqueue after MarkComplete")
	}

	q.buf[q.tail] = v
	q.tail = (q.tail + 1) % len(q.buf)
	q.count++

	q.notEmpty.Signal()
}

// DrainInto removes up to len(dst) items from the head into dst.
//
// Blocks while the queue is empty and not complete. The count is checked
// before the complete flag, so items enqueued before MarkComplete are still
// handed out; exhausted is reported only once nothing is left.
//
// Panics if len(dst) == 0.
func (q *BoundedQueue[T]) DrainInto(dst []T) (n int, exhausted bool) {
	if len(dst) == 0 {
		panic("queue: DrainInto with empty destination")
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for q.count == 0 && !q.complete {
		q.notEmpty.Wait()
	}
	if q.count == 0 {
		return 0, true
	}

	n = min(len(dst), q.count)

	// Copy in at most two runs: head..end of buf, then the wrapped prefix.
	first := min(n, len(q.buf)-q.head)
	copy(dst, q.buf[q.head:q.head+first])
	copy(dst[first:n], q.buf[:n-first])

	clear(q.buf[q.head : q.head+first])
	clear(q.buf[:n-first])

	q.head = (q.head + n) % len(q.buf)
	q.count -= n

	q.notFull.Signal()
	if q.count > 0 {
		// Leftovers exceed this batch; hand them to another sleeping consumer.
		q.notEmpty.Signal()
	}
	return n, false
}

// DrainBatch removes up to max items and returns them as a new slice.
//
// Panics if max <= 0.
func (q *BoundedQueue[T]) DrainBatch(max int) ([]T, bool) {
	return drainBatch[T](q, max)
}

// MarkComplete sets the complete flag and wakes every waiter.
//
// Safe to call multiple times; subsequent calls are no-ops apart from a
// redundant broadcast.
func (q *BoundedQueue[T]) MarkComplete() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.complete = true
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

// Completed reports whether MarkComplete has been called.
func (q *BoundedQueue[T]) Completed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.complete
}

// Len returns the current number of queued items.
func (q *BoundedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Cap returns the fixed capacity of the queue.
func (q *BoundedQueue[T]) Cap() int {
	return len(q.buf)
}
