package service

import (
	"context"

	"pushclient/internal/domain/entity"
)

// AnalyticsBackend is the telemetry collaborator. No return contract is relied upon
// beyond the error used for local logging.
type AnalyticsBackend interface {
	LogEvent(ctx context.Context, name string, properties map[string]any) error
	SetUserProperty(ctx context.Context, key, value string) error
	LogScreenView(ctx context.Context, view entity.ScreenView) error
	LogAppOpen(ctx context.Context) error
}
