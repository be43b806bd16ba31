package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"pushclient/internal/domain/entity"
	"pushclient/internal/infra/pubsub"
	"pushclient/internal/infra/push"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/sendpush"

// runLocal wraps a push payload in a Pub/Sub push envelope and posts it
func runLocal(ctx context.Context, endpoint, title, body, requestID string, data map[string]string) error {
	envelope, err := buildLocalEnvelope(title, body, requestID, data)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(envelope))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to post push envelope")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("client answered %d", resp.StatusCode)
	}

	fmt.Printf("✅ Delivered (%d)\n", resp.StatusCode)

	return nil
}

func buildLocalEnvelope(title, body, requestID string, data map[string]string) ([]byte, error) {
	msg := &entity.InboundMessage{MessageID: uuid.New().String()}
	if title != "" {
		msg.Title = entity.Text(title)
	}
	if body != "" {
		msg.Body = entity.Text(body)
	}
	if len(data) > 0 {
		msg.Data = data
	}

	payload, err := json.Marshal(push.NewPayload(msg))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var attributes map[string]string
	if requestID != "" {
		attributes = map[string]string{"request_id": requestID}
	}

	envelope, err := json.Marshal(pubsub.NewPushEnvelope(localSubscription, msg.MessageID, payload, attributes))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return envelope, nil
}
