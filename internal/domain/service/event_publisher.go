package service

import (
	"context"

	"pushclient/internal/domain/entity"
)

// EventPublisher transports telemetry events to the analytics collector
type EventPublisher interface {
	// PublishTelemetryEvent publishes a single enriched event
	PublishTelemetryEvent(ctx context.Context, event *entity.TelemetryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
