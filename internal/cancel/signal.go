package cancel

import (
	"context"
	"os"
	"os/signal"
)

// NewSignal returns a ContextCanceler that reports Done once any of sigs
// arrives.
//
// Only the first signal is caught. The handler is unregistered as soon as
// it fires, so a second signal gets the default behaviour, which for
// os.Interrupt terminates the process. This matters when the producer is
// blocked reading an idle stdin and cannot see Done until the read returns.
//
// The returned func unregisters the handler early and cancels the
// canceler; it is safe to call more than once.
func NewSignal(sigs ...os.Signal) (*ContextCanceler, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), sigs...)
	context.AfterFunc(ctx, stop)
	return NewContext(ctx), stop
}
