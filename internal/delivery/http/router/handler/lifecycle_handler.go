package handler

import (
	"log/slog"
	"net/http"

	"pushclient/internal/delivery/http/response"
	domainerrors "pushclient/internal/domain/errors"
	"pushclient/internal/domain/entity"
	"pushclient/internal/errors"
	"pushclient/internal/infra/push"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SetStateRequest moves the host to another lifecycle state
type SetStateRequest struct {
	State string `json:"state" validate:"required"`
}

// StateResponse reports the lifecycle state after a change
type StateResponse struct {
	State string `json:"state"`
}

// QueuedResponse acknowledges a queued delivery or tap
type QueuedResponse struct {
	MessageID string `json:"message_id"`
}

// LifecycleHandler drives the push host: lifecycle transitions, direct
// deliveries and notification taps
type LifecycleHandler struct {
	logger *slog.Logger
	host   PushHost
}

// NewLifecycleHandler is the constructor for LifecycleHandler
func NewLifecycleHandler(logger *slog.Logger, host PushHost) *LifecycleHandler {
	return &LifecycleHandler{
		logger: logger,
		host:   host,
	}
}

// SetState changes the lifecycle state of the host
func (h *LifecycleHandler) SetState(c echo.Context) error {
	var req SetStateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lifecycle input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	state, ok := entity.ParseLifecycleState(req.State)
	if !ok {
		return handleAppError(c, domainerrors.ErrInvalidLifecycleState.WithDetails(req.State))
	}

	h.host.SetState(state)

	return response.Success(c, http.StatusOK, StateResponse{State: state.String()}, "")
}

// DeliverMessage queues a remote delivery as if it came from the push service
func (h *LifecycleHandler) DeliverMessage(c echo.Context) error {
	msg, err := h.bindMessage(c)
	if err != nil || msg == nil {
		return err
	}

	if err := h.host.Deliver(c.Request().Context(), msg); err != nil {
		return h.notQueued(c, "Delivery", err)
	}

	return response.Accepted(c, QueuedResponse{MessageID: msg.MessageID}, "Delivery queued")
}

// TapNotification queues a user tap on a delivered notification
func (h *LifecycleHandler) TapNotification(c echo.Context) error {
	msg, err := h.bindMessage(c)
	if err != nil || msg == nil {
		return err
	}

	if err := h.host.Tap(c.Request().Context(), msg); err != nil {
		return h.notQueued(c, "Tap", err)
	}

	return response.Accepted(c, QueuedResponse{MessageID: msg.MessageID}, "Tap queued")
}

// notQueued answers 503; a full queue gets its own code so callers know to retry.
func (h *LifecycleHandler) notQueued(c echo.Context, what string, err error) error {
	h.logger.Warn("[Lifecycle] "+what+" not queued", slog.Any("error", err))

	if errors.Is(err, push.ErrQueueFull) {
		return response.ServiceUnavailable(c, "QUEUE_FULL", what+" queue is full, retry later")
	}

	return response.ServiceUnavailable(c, "QUEUE_UNAVAILABLE", what+" could not be queued")
}

// bindMessage returns a nil message when a response has already been written
func (h *LifecycleHandler) bindMessage(c echo.Context) (*entity.InboundMessage, error) {
	var payload push.Payload
	if err := c.Bind(&payload); err != nil {
		return nil, handleAppError(c, domainerrors.ErrInvalidMessage.WithDetails("body is not a push payload"))
	}

	msg := payload.Message()
	if msg.MessageID == "" {
		msg.MessageID = uuid.New().String()
	}

	return msg, nil
}
