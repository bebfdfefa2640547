// Package signals holds the process signal policy. cgrc sits at the end of
// a pipeline; when the user presses Ctrl-C the producer dies and cgrc must
// keep running until it has drained and written what is left on stdin.
package signals

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/cgrc/pkg/logging"
)

var interruptSignals = []os.Signal{os.Interrupt}

// IgnoreInterrupt makes the process immune to SIGINT for its lifetime
func IgnoreInterrupt() {
	signal.Ignore(interruptSignals...)
}

// Watch swallows sigs (SIGINT when none are given) until ctx is done,
// logging each one and passing it to onSignal when that is non-nil. The
// returned channel is closed once the watcher has stopped.
func Watch(ctx context.Context, onSignal func(os.Signal), sigs ...os.Signal) <-chan struct{} {
	if len(sigs) == 0 {
		sigs = interruptSignals
	}

	logger := logging.GetLogger("signals")
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	logger.Debug().Interface("signals", sigs).Msg("Watching signals")

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer signal.Stop(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-ch:
				logger.Debug().Str("signal", sig.String()).Msg("Signal ignored")
				if onSignal != nil {
					onSignal(sig)
				}
			}
		}
	}()

	return done
}

// WatchInterrupts reports SIGINT to onSignal while the returned stop function
// has not been called. stop puts the ignore disposition back before the
// watcher goes away, so SIGINT never reaches its default action.
func WatchInterrupts(ctx context.Context, onSignal func(os.Signal)) (stop func()) {
	watchCtx, cancel := context.WithCancel(ctx)
	done := Watch(watchCtx, onSignal, interruptSignals...)
	return func() {
		IgnoreInterrupt()
		cancel()
		<-done
	}
}
