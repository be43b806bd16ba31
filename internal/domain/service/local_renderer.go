package service

import (
	"context"

	"pushclient/internal/domain/entity"
)

// LocalRenderer is the local notification collaborator.
type LocalRenderer interface {
	// CreateChannel declares a channel; created is false when it already existed
	CreateChannel(ctx context.Context, channel entity.NotificationChannel) (created bool, err error)

	// LocalNotification queues a notification for display and returns
	LocalNotification(ctx context.Context, notification entity.LocalNotification) error

	// Configure installs the renderer callbacks
	Configure(handlers entity.RendererHandlers)
}
