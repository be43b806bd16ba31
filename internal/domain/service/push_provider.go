package service

import (
	"context"

	"pushclient/internal/domain/entity"
)

// MessageHandler consumes one inbound push delivery.
type MessageHandler func(ctx context.Context, msg *entity.InboundMessage)

// OpenedHandler is invoked when the user opens the app from a delivered notification.
// The message may be nil.
type OpenedHandler func(ctx context.Context, msg *entity.InboundMessage)

// PushProvider is the push identity/permission collaborator.
type PushProvider interface {
	// RequestPermission asks the host platform for notification authorization
	RequestPermission(ctx context.Context, opts entity.PermissionOptions) (entity.AuthorizationStatus, error)

	// GetToken returns the delivery identity for this application instance
	GetToken(ctx context.Context) (string, error)

	// OnMessage subscribes to foreground deliveries; the returned func revokes the subscription
	OnMessage(handler MessageHandler) (unsubscribe func())

	// SetBackgroundMessageHandler registers the process-lifetime background handler
	SetBackgroundMessageHandler(handler MessageHandler)

	// OnNotificationOpenedApp registers the process-lifetime open-from-background handler
	OnNotificationOpenedApp(handler OpenedHandler)

	// GetInitialNotification reports the notification that launched the process, if any
	GetInitialNotification(ctx context.Context) (*entity.InboundMessage, error)
}
