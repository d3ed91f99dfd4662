// Package cancel provides the stop signal polled by the input producer.
//
// The producer checks Done() once per token, so the check must be cheap:
//   - AtomicCanceler: a single atomic load, set explicitly via Cancel
//   - ContextCanceler: follows a context.Context, or a signal via NewSignal
//
// Stopping the producer only ends input early. Workers are never
// interrupted; they finish whatever was already enqueued.
package cancel

// Canceler tells a producer to stop reading input.
//
// Implementations must be safe for concurrent use:
//   - Done() may be called from the producer while Cancel() runs elsewhere
//   - Cancel() may be called multiple times
type Canceler interface {
	// Done returns true once input should stop.
	Done() bool

	// Cancel requests a stop. Safe to call multiple times.
	Cancel()
}
