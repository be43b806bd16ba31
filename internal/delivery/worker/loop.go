// Package worker hosts the background deliveries: the push dispatch loop and
// the Pub/Sub pull subscriber.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"pushclient/internal/domain/lifecycle"
	"pushclient/internal/errors"
)

// loop runs a blocking function until the Serve context is done or stop is called
type loop struct {
	name   string
	logger *slog.Logger
	run    func(ctx context.Context) error

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

func newLoop(name string, logger *slog.Logger, run func(ctx context.Context) error) *loop {
	return &loop{
		name:   name,
		logger: logger,
		run:    run,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (l *loop) Serve(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return errors.Errorf("%s is already running", l.name)
	}
	defer close(l.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-l.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	l.logger.Info("Starting "+l.name)

	return errors.WithStack(l.run(ctx))
}

func (l *loop) stop(ctx context.Context) error {
	l.stopOnce.Do(func() { close(l.stopCh) })
	if !l.started.Load() {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	l.logger.Info("Shutting down " + l.name)

	select {
	case <-l.done:
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrapf(shutdownCtx.Err(), "%s did not stop", l.name)
	}
}
