package cancel

import "sync/atomic"

// AtomicCanceler is a stop flag backed by atomic.Bool.
//
// Done() is a single atomic load, cheap enough to poll per input token.
type AtomicCanceler struct {
	done atomic.Bool
}

// NewAtomic creates a new AtomicCanceler.
func NewAtomic() *AtomicCanceler {
	return &AtomicCanceler{}
}

// Done returns true if Cancel has been called.
func (a *AtomicCanceler) Done() bool {
	return a.done.Load()
}

// Cancel sets the flag. Once set it is never cleared.
func (a *AtomicCanceler) Cancel() {
	a.done.Store(true)
}
