// Package analytics turns telemetry calls into events on the configured
// event publisher.
package analytics

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"
	"pushclient/internal/errors"

	"github.com/google/uuid"
)

const (
	eventAppOpen    = "app_open"
	eventScreenView = "screen_view"
)

type publisherBackend struct {
	logger    *slog.Logger
	publisher service.EventPublisher
	now       func() time.Time

	mu             sync.RWMutex
	userProperties map[string]string
}

// NewPublisherBackend creates an AnalyticsBackend backed by an EventPublisher
func NewPublisherBackend(logger *slog.Logger, publisher service.EventPublisher) service.AnalyticsBackend {
	return &publisherBackend{
		logger:         logger,
		publisher:      publisher,
		now:            time.Now,
		userProperties: make(map[string]string),
	}
}

func (b *publisherBackend) LogEvent(ctx context.Context, name string, properties map[string]any) error {
	if name == "" {
		return errors.New("event name is required")
	}

	return b.publish(ctx, name, properties)
}

// SetUserProperty records a property attached to every later event
func (b *publisherBackend) SetUserProperty(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("user property key is required")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if value == "" {
		delete(b.userProperties, key)
	} else {
		b.userProperties[key] = value
	}
	b.logger.Debug("[Analytics] User property set", slog.String("key", key))

	return nil
}

func (b *publisherBackend) LogScreenView(ctx context.Context, view entity.ScreenView) error {
	return b.publish(ctx, eventScreenView, map[string]any{
		"screen_name":  view.ScreenName,
		"screen_class": view.ScreenClass,
	})
}

func (b *publisherBackend) LogAppOpen(ctx context.Context) error {
	return b.publish(ctx, eventAppOpen, nil)
}

func (b *publisherBackend) publish(ctx context.Context, name string, properties map[string]any) error {
	b.mu.RLock()
	userProps := maps.Clone(b.userProperties)
	b.mu.RUnlock()

	event := &entity.TelemetryEvent{
		ID:             uuid.NewString(),
		Name:           name,
		Properties:     properties,
		UserProperties: userProps,
		CapturedAt:     b.now().UTC(),
	}

	if err := b.publisher.PublishTelemetryEvent(ctx, event); err != nil {
		return errors.Wrapf(err, "publish %s", name)
	}

	return nil
}
