package counter

import (
	"io"
	"log/slog"

	"github.com/randomizedcoder/primecount/internal/cancel"
	"github.com/randomizedcoder/primecount/internal/stats"
	"github.com/randomizedcoder/primecount/internal/tick"
)

type options struct {
	logger   *slog.Logger
	canceler cancel.Canceler
	ticker   tick.Ticker
	recorder stats.Recorder
}

// Option configures Run and Produce.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCanceler lets the producer stop reading input early.
func WithCanceler(c cancel.Canceler) Option {
	return func(o *options) { o.canceler = c }
}

// WithTicker sets the producer's progress ticker, overriding the one
// Run would build from the config.
func WithTicker(t tick.Ticker) Option {
	return func(o *options) { o.ticker = t }
}

// WithRecorder receives every batch event from every worker, alongside
// the collector when cfg.Stats is set. Run only.
func WithRecorder(r stats.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
