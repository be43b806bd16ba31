package worker

import (
	"context"
	"log/slog"

	"pushclient/internal/delivery"

	"go.uber.org/fx"
)

// Dispatcher drains the push host queue into the registered handlers
type Dispatcher interface {
	Run(ctx context.Context) error
}

// DispatcherParams holds dependencies for the dispatch delivery, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc         fx.Lifecycle
	Logger     *slog.Logger
	Dispatcher Dispatcher
}

// NewDispatcher runs the push host dispatch loop as a delivery
func NewDispatcher(params DispatcherParams) delivery.Delivery {
	l := newLoop("push dispatcher", params.Logger, params.Dispatcher.Run)

	params.Lc.Append(fx.Hook{
		OnStop: l.stop,
	})

	return l
}
