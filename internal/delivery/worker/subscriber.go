package worker

import (
	"context"
	"log/slog"

	"pushclient/config"
	"pushclient/internal/delivery"
	"pushclient/internal/domain/constants"
	"pushclient/internal/infra/pubsub"

	"go.uber.org/fx"
)

// SubscriberParams holds dependencies for the Pub/Sub pull delivery, injected by Fx
type SubscriberParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Sink   pubsub.MessageSink
}

// idle stands in when no inbound subscription is configured
type idle struct{}

func (idle) Serve(context.Context) error { return nil }

// NewSubscriber pulls remote pushes from the configured Google Pub/Sub
// subscription into the push host. Without one it is a no-op delivery and
// pushes only arrive through the HTTP endpoints.
func NewSubscriber(params SubscriberParams) (delivery.Delivery, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderGoogle || cfg.SubscriptionID == "" {
		params.Logger.Info("Inbound Pub/Sub subscription not configured, pull subscriber disabled")

		return idle{}, nil
	}

	sub, err := pubsub.NewGoogleSubscriber(params.Ctx, cfg.ProjectID, cfg.SubscriptionID, params.Logger)
	if err != nil {
		return nil, err
	}

	l := newLoop("Pub/Sub subscriber", params.Logger, func(ctx context.Context) error {
		return sub.Receive(ctx, params.Sink)
	})

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := l.stop(ctx); err != nil {
				params.Logger.Warn("Pub/Sub subscriber stop timed out", slog.Any("error", err))
			}

			return sub.Close()
		},
	})

	return l, nil
}
