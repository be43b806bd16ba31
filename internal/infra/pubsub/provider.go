package pubsub

import (
	"context"
	"log/slog"

	"pushclient/config"
	"pushclient/internal/domain/constants"
	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// logPublisher is the transport used when none is configured. Telemetry
// still reaches the debug log so a headless run can be followed.
type logPublisher struct {
	logger *slog.Logger
}

func (p *logPublisher) PublishTelemetryEvent(_ context.Context, event *entity.TelemetryEvent) error {
	p.logger.Debug("telemetry event",
		slog.String("event", event.Name),
		slog.Any("properties", event.Properties),
	)

	return nil
}

func (p *logPublisher) Close() error { return nil }

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the telemetry transport and closes it on stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newTransport(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, errors.Wrap(err, "telemetry transport")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("closing telemetry publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newTransport(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("pubsub not configured, telemetry goes to the debug log")

		return &logPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("publishing telemetry over local HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		switch {
		case cfg.ProjectID == "":
			return nil, errors.New("project ID is required for google provider")
		case cfg.TopicID == "":
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
