package handler

import (
	"net/http"

	"pushclient/internal/delivery/http/response"
	"pushclient/internal/domain/entity"
	"pushclient/internal/usecase"

	"github.com/labstack/echo/v4"
)

// NotificationListResponse lists the foreground records of this session
type NotificationListResponse struct {
	Notifications []entity.NotificationRecord `json:"notifications"`
	Count         int                         `json:"count"`
}

// ClearResponse reports how many records were dropped
type ClearResponse struct {
	Cleared int `json:"cleared"`
}

// NotificationHandler exposes the in-session notification list
type NotificationHandler struct {
	lifecycle usecase.LifecycleUsecase
	renderer  usecase.RendererUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(lifecycle usecase.LifecycleUsecase, renderer usecase.RendererUsecase) *NotificationHandler {
	return &NotificationHandler{
		lifecycle: lifecycle,
		renderer:  renderer,
	}
}

// ListNotifications returns the records in arrival order
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	records := h.lifecycle.Records()
	if records == nil {
		records = []entity.NotificationRecord{}
	}

	return response.Success(c, http.StatusOK, NotificationListResponse{
		Notifications: records,
		Count:         len(records),
	}, "")
}

// ClearNotifications drops every record
func (h *NotificationHandler) ClearNotifications(c echo.Context) error {
	cleared := h.lifecycle.Clear(c.Request().Context())

	return response.Success(c, http.StatusOK, ClearResponse{Cleared: cleared}, "Notifications cleared")
}

// SendTestNotification renders the fixed self-test notification
func (h *NotificationHandler) SendTestNotification(c echo.Context) error {
	h.renderer.RenderTest(c.Request().Context())

	return response.Accepted(c, nil, "Test notification queued")
}
