package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"pushclient/internal/delivery/http/middleware"
	"pushclient/internal/delivery/http/response"
	"pushclient/internal/delivery/http/validator"
	"pushclient/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho mirrors the server's error handling and validation
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newTestLogger()).HandleHTTPError

	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

// decodeData re-decodes the envelope's data field into out
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NoError(t, json.Unmarshal(body.Data, out))
}

type queued struct {
	ctx context.Context
	msg *entity.InboundMessage
}

type fakeHost struct {
	mu        sync.Mutex
	state     entity.LifecycleState
	delivered []queued
	tapped    []queued
	err       error
}

func (h *fakeHost) SetState(state entity.LifecycleState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = state
}

func (h *fakeHost) State() entity.LifecycleState {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.state
}

func (h *fakeHost) Deliver(ctx context.Context, msg *entity.InboundMessage) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return h.err
	}
	h.delivered = append(h.delivered, queued{ctx: ctx, msg: msg})

	return nil
}

func (h *fakeHost) Tap(ctx context.Context, msg *entity.InboundMessage) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err != nil {
		return h.err
	}
	h.tapped = append(h.tapped, queued{ctx: ctx, msg: msg})

	return nil
}

var _ PushHost = (*fakeHost)(nil)

func TestHealthCheck(t *testing.T) {
	e := newTestEcho()
	e.GET("/health", HealthCheck)

	rec := serve(e, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
