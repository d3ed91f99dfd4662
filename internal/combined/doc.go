// Package combined provides end-to-end benchmarks of the prime counting
// pipeline: producer, queue, workers and statistics together.
//
// These are more representative than the per-package micro-benchmarks,
// since they capture lock contention between the producer and the
// workers and the cost of batch size choices.
package combined
