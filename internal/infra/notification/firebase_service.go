package notification

import (
	"context"
	"log/slog"

	"pushclient/config"
	domainerrors "pushclient/internal/domain/errors"
	"pushclient/internal/domain/service"
	"pushclient/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebaseService creates the FCM sender from the firebase config section.
// Without credentials it returns a sender that refuses every push.
func NewFirebaseService(ctx context.Context, logger *slog.Logger, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, test pushes are disabled")

		return disabledService{}, nil
	}

	var fbConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// SendSingleNotification sends a push notification to a single device token
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return "", domainerrors.ErrPushSendFailed.WithDetails("invalid or unregistered token")
		}

		return "", errors.Wrap(err, "failed to send notification")
	}

	s.logger.Info("[Firebase] Push sent", slog.String("message_id", messageID))

	return messageID, nil
}

type disabledService struct{}

func (disabledService) SendSingleNotification(context.Context, string, string, string, map[string]string) (string, error) {
	return "", domainerrors.ErrPushSenderNotConfigured
}
