// Package handler contains the echo handlers of the control surface.
package handler

import (
	"context"
	"net/http"

	"pushclient/internal/delivery/http/response"
	domainerrors "pushclient/internal/domain/errors"
	"pushclient/internal/domain/entity"
	"pushclient/internal/errors"

	"github.com/labstack/echo/v4"
)

// PushHost is the in-process push host driven by the control surface
type PushHost interface {
	SetState(state entity.LifecycleState)
	State() entity.LifecycleState
	Deliver(ctx context.Context, msg *entity.InboundMessage) error
	Tap(ctx context.Context, msg *entity.InboundMessage) error
}

// HealthCheck is a simple handler to check if the server is running.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleAppError writes application errors with their own status; anything
// else goes to the central error handler.
func handleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		return response.AppError(c, appErr)
	}

	return errors.WithStack(err)
}
