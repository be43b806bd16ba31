package usecase

import (
	"context"

	"pushclient/internal/domain/entity"
)

// LifecycleUsecase dispatches inbound push events according to the lifecycle
// state the application was in when they arrived
type LifecycleUsecase interface {
	// Start registers every handler and consumes the launch notification, once
	Start(ctx context.Context)

	// HandleForeground processes a delivery while the UI is visible
	HandleForeground(ctx context.Context, msg *entity.InboundMessage)

	// HandleBackground processes a delivery while the app is not in the foreground
	HandleBackground(ctx context.Context, msg *entity.InboundMessage)

	// HandleOpenedFromBackground processes a notification tap that resumed the app
	HandleOpenedFromBackground(ctx context.Context, msg *entity.InboundMessage)

	// HandleInitialNotification queries the launch notification; only the first call has effect
	HandleInitialNotification(ctx context.Context)

	// Records returns a snapshot of foreground records in arrival order
	Records() []entity.NotificationRecord

	// Clear drops every record and returns how many were removed
	Clear(ctx context.Context) int

	// Unsubscribe stops foreground processing; safe to call more than once
	Unsubscribe()
}
