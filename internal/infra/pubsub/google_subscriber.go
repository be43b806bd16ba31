package pubsub

import (
	"context"
	"log/slog"

	"pushclient/internal/domain/entity"
	"pushclient/internal/infra/push"

	"cloud.google.com/go/pubsub/v2"
	"github.com/pkg/errors"
)

// MessageSink accepts decoded push deliveries
type MessageSink interface {
	Deliver(ctx context.Context, msg *entity.InboundMessage) error
}

// GoogleSubscriber pulls push deliveries from a Pub/Sub subscription
type GoogleSubscriber struct {
	client     *pubsub.Client
	subscriber *pubsub.Subscriber
	logger     *slog.Logger
}

// NewGoogleSubscriber creates a pull subscriber for the inbound push subscription
func NewGoogleSubscriber(ctx context.Context, projectID, subscriptionID string, logger *slog.Logger) (*GoogleSubscriber, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	logger.Info("Google Pub/Sub push subscriber initialized",
		slog.String("project_id", projectID),
		slog.String("subscription_id", subscriptionID),
	)

	return &GoogleSubscriber{
		client:     client,
		subscriber: client.Subscriber(subscriptionID),
		logger:     logger,
	}, nil
}

// Receive blocks, handing every message to sink until ctx is done. Malformed
// payloads are acked so they are not redelivered; sink failures are nacked.
func (s *GoogleSubscriber) Receive(ctx context.Context, sink MessageSink) error {
	err := s.subscriber.Receive(ctx, func(ctx context.Context, m *pubsub.Message) {
		msg, err := push.DecodePayload(m.Data)
		if err != nil {
			s.logger.Error("[GooglePubSub] Dropping malformed push payload",
				slog.String("pubsub_message_id", m.ID),
				slog.Any("error", err),
			)
			m.Ack()

			return
		}
		if msg.MessageID == "" {
			msg.MessageID = m.ID
		}

		if err := sink.Deliver(ctx, msg); err != nil {
			s.logger.Warn("[GooglePubSub] Delivery rejected, message will be redelivered",
				slog.String("message_id", msg.MessageID),
				slog.Any("error", err),
			)
			m.Nack()

			return
		}

		m.Ack()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return errors.WithStack(err)
	}

	return nil
}

// Close releases the Pub/Sub client
func (s *GoogleSubscriber) Close() error {
	return errors.WithStack(s.client.Close())
}
