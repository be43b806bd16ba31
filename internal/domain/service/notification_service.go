package service

import (
	"context"
)

// NotificationService sends remote pushes through the delivery service.
// It exists to exercise the inbound pipeline against a real device token.
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) (messageID string, err error)
}
