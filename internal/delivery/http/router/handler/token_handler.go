package handler

import (
	"log/slog"
	"net/http"

	"pushclient/internal/delivery/http/response"
	"pushclient/internal/domain/constants"
	domainerrors "pushclient/internal/domain/errors"
	"pushclient/internal/domain/service"
	"pushclient/internal/errors"
	"pushclient/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TokenResponse carries the current device token
type TokenResponse struct {
	Token  string `json:"token"`
	Length int    `json:"length"`
}

// TestPushRequest is the optional body of a test push
type TestPushRequest struct {
	Title string            `json:"title" validate:"max=200"`
	Body  string            `json:"body" validate:"max=1000"`
	Data  map[string]string `json:"data"`
}

// TestPushResponse carries the identifier assigned by the push service
type TestPushResponse struct {
	MessageID string `json:"message_id"`
}

// TokenHandler exposes the device token
type TokenHandler struct {
	logger   *slog.Logger
	token    usecase.TokenUsecase
	qrcode   service.QRCodeService
	notifier service.NotificationService
}

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx
type TokenHandlerParams struct {
	fx.In

	Logger   *slog.Logger
	Token    usecase.TokenUsecase
	QRCode   service.QRCodeService
	Notifier service.NotificationService
}

// NewTokenHandler is the constructor for TokenHandler
func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		logger:   params.Logger,
		token:    params.Token,
		qrcode:   params.QRCode,
		notifier: params.Notifier,
	}
}

// GetToken returns the current device token
func (h *TokenHandler) GetToken(c echo.Context) error {
	token, ok := h.token.Current()
	if !ok {
		return handleAppError(c, domainerrors.ErrTokenNotAvailable)
	}

	return response.Success(c, http.StatusOK, TokenResponse{Token: token.Value, Length: token.Len()}, "")
}

// GetTokenQR returns the device token as a PNG QR code
func (h *TokenHandler) GetTokenQR(c echo.Context) error {
	token, ok := h.token.Current()
	if !ok {
		return handleAppError(c, domainerrors.ErrTokenNotAvailable)
	}

	png, err := h.qrcode.GenerateTokenQR(token.Value)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CopyToken dumps the token to the log for manual copying
func (h *TokenHandler) CopyToken(c echo.Context) error {
	if !h.token.Copy(c.Request().Context()) {
		return handleAppError(c, domainerrors.ErrTokenNotAvailable)
	}

	return response.Success(c, http.StatusOK, nil, "Token copied to log")
}

// SendTestPush sends a remote push to this device through the push service
func (h *TokenHandler) SendTestPush(c echo.Context) error {
	token, ok := h.token.Current()
	if !ok {
		return handleAppError(c, domainerrors.ErrTokenNotAvailable)
	}

	var req TestPushRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid test push input")
		}
		if err := c.Validate(&req); err != nil {
			return err
		}
	}
	if req.Title == "" {
		req.Title = constants.TestNotificationTitle
	}
	if req.Body == "" {
		req.Body = constants.TestNotificationBody
	}

	messageID, err := h.notifier.SendSingleNotification(c.Request().Context(), token.Value, req.Title, req.Body, req.Data)
	if err != nil {
		return handleAppError(c, err)
	}

	h.logger.Info("[Token] Test push sent", slog.String("message_id", messageID))

	return response.Accepted(c, TestPushResponse{MessageID: messageID}, "Test push sent")
}
