package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "pushclient/internal/domain/errors"
	"pushclient/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBiz  string
		wantMsg  string
	}{
		{
			name:     "app error",
			err:      domainerrors.ErrTokenNotAvailable.WrapMessage("get token"),
			wantCode: http.StatusNotFound,
			wantBiz:  "TOKEN_NOT_AVAILABLE",
			wantMsg:  "device token not yet available",
		},
		{
			name:     "echo error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantCode: http.StatusMethodNotAllowed,
			wantBiz:  "HTTP_ERROR",
			wantMsg:  "nope",
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBiz:  "INTERNAL_ERROR",
			wantMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/token", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantCode, rec.Code)

			var body domainerrors.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantBiz, body.Error.Code)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
