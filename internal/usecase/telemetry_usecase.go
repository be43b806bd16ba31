package usecase

import (
	"context"
)

// TelemetryUsecase emits best-effort analytics events
type TelemetryUsecase interface {
	// Emit enriches and transmits an event without blocking the caller.
	// Transport failures are logged and swallowed.
	Emit(ctx context.Context, name string, properties map[string]any)

	// LogAppOpen reports an application open
	LogAppOpen(ctx context.Context)

	// LogScreenView reports a screen transition
	LogScreenView(ctx context.Context, screenName string)

	// SetUserProperty attaches a property to every subsequent event on the backend
	SetUserProperty(ctx context.Context, key, value string)

	// Flush waits for in-flight emissions; used on shutdown only
	Flush(ctx context.Context) error
}
