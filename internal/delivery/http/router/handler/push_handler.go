package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pushclient/config"
	deliverycontext "pushclient/internal/delivery/context"
	"pushclient/internal/errors"
	"pushclient/internal/infra/pubsub"
	"pushclient/internal/infra/push"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"google.golang.org/api/idtoken"
)

// requestIDAttribute is the Pub/Sub attribute carrying the publisher's request ID
const requestIDAttribute = "request_id"

// validateIDToken is replaced in tests
var validateIDToken = idtoken.Validate

// PushHandler accepts Pub/Sub push deliveries and feeds them to the push host
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	host           PushHost
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(cfg *config.Config, logger *slog.Logger, host PushHost) *PushHandler {
	return &PushHandler{
		verifyPushAuth: cfg.Push != nil && cfg.Push.VerifyPushAuth,
		logger:         logger,
		host:           host,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// Malformed messages are answered with 400 so Pub/Sub stops retrying them;
// a full queue answers 503 at once so Pub/Sub redelivers with backoff.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Push] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Push] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		h.logger.Error("[Push] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	msg, err := push.DecodePayload(data)
	if err != nil {
		h.logger.Error("[Push] Failed to parse push payload", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	if msg.MessageID == "" {
		msg.MessageID = envelope.Message.MessageID
	}

	requestID := extractRequestID(ctx, &envelope)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.host.Deliver(ctx, msg); err != nil {
		reqLogger.Warn("[Push] Delivery not queued, asking for redelivery",
			slog.String("message_id", msg.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Debug("[Push] Delivery queued",
		slog.String("message_id", msg.MessageID),
		slog.String("subscription", envelope.Subscription),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers the publisher's ID, then the request's, then a new one
func extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope) string {
	if requestID := envelope.Message.Attributes[requestIDAttribute]; requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := validateIDToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
