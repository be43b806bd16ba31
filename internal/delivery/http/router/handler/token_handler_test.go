package handler

import (
	"net/http"
	"testing"

	"pushclient/internal/domain/constants"
	domainerrors "pushclient/internal/domain/errors"
	"pushclient/internal/domain/entity"
	mockSvc "pushclient/internal/mocks/service"
	mockUC "pushclient/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tokenFixtures struct {
	e        *echo.Echo
	token    *mockUC.MockTokenUsecase
	qrcode   *mockSvc.MockQRCodeService
	notifier *mockSvc.MockNotificationService
}

func createTestTokenHandler(t *testing.T) *tokenFixtures {
	fx := &tokenFixtures{
		e:        newTestEcho(),
		token:    mockUC.NewMockTokenUsecase(t),
		qrcode:   mockSvc.NewMockQRCodeService(t),
		notifier: mockSvc.NewMockNotificationService(t),
	}

	h := NewTokenHandler(TokenHandlerParams{
		Logger:   newTestLogger(),
		Token:    fx.token,
		QRCode:   fx.qrcode,
		Notifier: fx.notifier,
	})
	fx.e.GET("/token", h.GetToken)
	fx.e.GET("/token/qr", h.GetTokenQR)
	fx.e.POST("/token/copy", h.CopyToken)
	fx.e.POST("/token/test-push", h.SendTestPush)

	return fx
}

func TestTokenHandler_GetToken(t *testing.T) {
	t.Run("returns the current token", func(t *testing.T) {
		fx := createTestTokenHandler(t)
		fx.token.EXPECT().Current().Return(entity.NewDeviceToken("abc123"), true)

		rec := serve(fx.e, http.MethodGet, "/token", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var data TokenResponse
		decodeData(t, rec, &data)
		assert.Equal(t, TokenResponse{Token: "abc123", Length: 6}, data)
	})

	t.Run("not available yet", func(t *testing.T) {
		fx := createTestTokenHandler(t)
		fx.token.EXPECT().Current().Return(entity.DeviceToken{}, false)

		rec := serve(fx.e, http.MethodGet, "/token", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeResponse(t, rec)
		assert.False(t, body.Success)
		assert.Equal(t, "TOKEN_NOT_AVAILABLE", body.Error.Code)
	})
}

func TestTokenHandler_GetTokenQR(t *testing.T) {
	fx := createTestTokenHandler(t)
	png := []byte{0x89, 0x50, 0x4E, 0x47}
	fx.token.EXPECT().Current().Return(entity.NewDeviceToken("abc123"), true)
	fx.qrcode.EXPECT().GenerateTokenQR("abc123").Return(png, nil)

	rec := serve(fx.e, http.MethodGet, "/token/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestTokenHandler_CopyToken(t *testing.T) {
	tests := []struct {
		name     string
		copied   bool
		wantCode int
	}{
		{name: "copied", copied: true, wantCode: http.StatusOK},
		{name: "no token", copied: false, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTokenHandler(t)
			fx.token.EXPECT().Copy(mock.Anything).Return(tt.copied)

			rec := serve(fx.e, http.MethodPost, "/token/copy", "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestTokenHandler_SendTestPush(t *testing.T) {
	t.Run("defaults to the test notification copy", func(t *testing.T) {
		fx := createTestTokenHandler(t)
		fx.token.EXPECT().Current().Return(entity.NewDeviceToken("abc123"), true)
		fx.notifier.EXPECT().
			SendSingleNotification(mock.Anything, "abc123", constants.TestNotificationTitle, constants.TestNotificationBody, mock.Anything).
			Return("projects/demo/messages/1", nil)

		rec := serve(fx.e, http.MethodPost, "/token/test-push", "")

		require.Equal(t, http.StatusAccepted, rec.Code)
		var data TestPushResponse
		decodeData(t, rec, &data)
		assert.Equal(t, "projects/demo/messages/1", data.MessageID)
	})

	t.Run("uses the supplied copy and data", func(t *testing.T) {
		fx := createTestTokenHandler(t)
		fx.token.EXPECT().Current().Return(entity.NewDeviceToken("abc123"), true)
		fx.notifier.EXPECT().
			SendSingleNotification(mock.Anything, "abc123", "Hi", "There", map[string]string{"k": "v"}).
			Return("m-2", nil)

		rec := serve(fx.e, http.MethodPost, "/token/test-push", `{"title":"Hi","body":"There","data":{"k":"v"}}`)

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("sender not configured", func(t *testing.T) {
		fx := createTestTokenHandler(t)
		fx.token.EXPECT().Current().Return(entity.NewDeviceToken("abc123"), true)
		fx.notifier.EXPECT().
			SendSingleNotification(mock.Anything, "abc123", mock.Anything, mock.Anything, mock.Anything).
			Return("", domainerrors.ErrPushSenderNotConfigured)

		rec := serve(fx.e, http.MethodPost, "/token/test-push", "")

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "PUSH_SENDER_NOT_CONFIGURED", decodeResponse(t, rec).Error.Code)
	})

	t.Run("no token skips the send", func(t *testing.T) {
		fx := createTestTokenHandler(t)
		fx.token.EXPECT().Current().Return(entity.DeviceToken{}, false)

		rec := serve(fx.e, http.MethodPost, "/token/test-push", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		fx.notifier.AssertNotCalled(t, "SendSingleNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
