package handler

import (
	"net/http"

	"pushclient/config"
	"pushclient/internal/delivery/http/response"
	"pushclient/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// homeScreen is the screen name reported when the status page is viewed
const homeScreen = "home"

// StatusResponse summarizes the controller state shown on the home screen
type StatusResponse struct {
	Service           string `json:"service"`
	AppVersion        string `json:"app_version"`
	Permission        string `json:"permission"`
	Token             string `json:"token"`
	ChannelID         string `json:"channel_id"`
	ChannelRegistered bool   `json:"channel_registered"`
	LifecycleState    string `json:"lifecycle_state"`
	Notifications     int    `json:"notifications"`
}

// StatusHandler serves the home screen
type StatusHandler struct {
	cfg        *config.Config
	host       PushHost
	permission usecase.PermissionUsecase
	token      usecase.TokenUsecase
	channel    usecase.ChannelUsecase
	lifecycle  usecase.LifecycleUsecase
	telemetry  usecase.TelemetryUsecase
}

// StatusHandlerParams holds dependencies for StatusHandler, injected by Fx
type StatusHandlerParams struct {
	fx.In

	Config     *config.Config
	Host       PushHost
	Permission usecase.PermissionUsecase
	Token      usecase.TokenUsecase
	Channel    usecase.ChannelUsecase
	Lifecycle  usecase.LifecycleUsecase
	Telemetry  usecase.TelemetryUsecase
}

// NewStatusHandler is the constructor for StatusHandler
func NewStatusHandler(params StatusHandlerParams) *StatusHandler {
	return &StatusHandler{
		cfg:        params.Config,
		host:       params.Host,
		permission: params.Permission,
		token:      params.Token,
		channel:    params.Channel,
		lifecycle:  params.Lifecycle,
		telemetry:  params.Telemetry,
	}
}

// Home reports the controller state and logs a screen view
func (h *StatusHandler) Home(c echo.Context) error {
	h.telemetry.LogScreenView(c.Request().Context(), homeScreen)

	status := StatusResponse{
		Service:           h.cfg.Env.ServiceName,
		AppVersion:        h.cfg.Env.AppVersion,
		Permission:        h.permission.State().String(),
		Token:             h.token.Display(),
		ChannelID:         h.channel.Channel().ID,
		ChannelRegistered: h.channel.Registered(),
		LifecycleState:    h.host.State().String(),
		Notifications:     len(h.lifecycle.Records()),
	}

	return response.Success(c, http.StatusOK, status, "")
}
