// Package signals turns process interrupts into context cancellation.
package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// InterruptedError is the cancellation cause when a signal stops the run.
type InterruptedError struct {
	Signal os.Signal
}

func (e *InterruptedError) Error() string {
	return "interrupted by " + e.Signal.String()
}

// InterruptContext returns a context canceled on the first SIGINT or SIGTERM.
// context.Cause reports an *InterruptedError in that case. The returned stop
// function releases the handler and must be called when the run ends.
func InterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			cancel(&InterruptedError{Signal: sig})
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, func() { cancel(nil) }
}
