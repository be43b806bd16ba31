package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "pushclient/internal/delivery/context"
	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"

	"github.com/pkg/errors"
)

const localTelemetrySubscription = "projects/local/subscriptions/telemetry-sub"

// localHTTPPublisher implements EventPublisher by posting Pub/Sub push
// envelopes to a local collector endpoint
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushEnvelope is the body Google Pub/Sub sends to push endpoints
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushEnvelope wraps raw message data the way Pub/Sub push delivery does
func NewPushEnvelope(subscription, messageID string, data []byte, attributes map[string]string) *PushEnvelope {
	env := &PushEnvelope{Subscription: subscription}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.MessageID = messageID
	env.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	env.Message.Attributes = attributes

	return env
}

// NewLocalHTTPPublisher creates a publisher for local development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishTelemetryEvent posts the event to the local endpoint
func (p *localHTTPPublisher) PublishTelemetryEvent(ctx context.Context, event *entity.TelemetryEvent) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	body, err := json.Marshal(NewPushEnvelope(localTelemetrySubscription, event.ID, eventData, eventAttributes(ctx, event)))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("collector returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Telemetry event published",
		slog.String("endpoint", p.endpoint),
		slog.String("event", event.Name),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
