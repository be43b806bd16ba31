package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "pushclient/internal/delivery/context"
	"pushclient/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishTelemetryEvent(t *testing.T) {
	var envelope PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&envelope))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &entity.TelemetryEvent{
		ID:         "evt-1",
		Name:       "notification_received",
		Properties: map[string]any{"title": "Hello"},
		CapturedAt: time.Now(),
	}

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	require.NoError(t, publisher.PublishTelemetryEvent(ctx, event))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "evt-1", envelope.Message.MessageID)
	assert.Equal(t, "notification_received", envelope.Message.Attributes["event_name"])
	assert.Equal(t, "req-42", envelope.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	require.NoError(t, err)

	var decoded entity.TelemetryEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "notification_received", decoded.Name)
	assert.Equal(t, "Hello", decoded.Properties["title"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishTelemetryEvent(context.Background(), &entity.TelemetryEvent{ID: "1", Name: "evt"})
	assert.ErrorContains(t, err, "503")
}
