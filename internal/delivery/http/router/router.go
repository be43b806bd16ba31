// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pushclient/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StatusHandler       *handler.StatusHandler
	TokenHandler        *handler.TokenHandler
	NotificationHandler *handler.NotificationHandler
	LifecycleHandler    *handler.LifecycleHandler
	PushHandler         *handler.PushHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	statusHandler       *handler.StatusHandler
	tokenHandler        *handler.TokenHandler
	notificationHandler *handler.NotificationHandler
	lifecycleHandler    *handler.LifecycleHandler
	pushHandler         *handler.PushHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		statusHandler:       params.StatusHandler,
		tokenHandler:        params.TokenHandler,
		notificationHandler: params.NotificationHandler,
		lifecycleHandler:    params.LifecycleHandler,
		pushHandler:         params.PushHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/", r.statusHandler.Home)

	tokenGroup := e.Group("/token")
	{
		tokenGroup.GET("", r.tokenHandler.GetToken)
		tokenGroup.GET("/qr", r.tokenHandler.GetTokenQR)
		tokenGroup.POST("/copy", r.tokenHandler.CopyToken)
		tokenGroup.POST("/test-push", r.tokenHandler.SendTestPush)
	}

	notificationGroup := e.Group("/notifications")
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.DELETE("", r.notificationHandler.ClearNotifications)
		notificationGroup.POST("/test", r.notificationHandler.SendTestNotification)
	}

	e.PUT("/lifecycle", r.lifecycleHandler.SetState)

	messageGroup := e.Group("/messages")
	{
		messageGroup.POST("", r.lifecycleHandler.DeliverMessage)
		messageGroup.POST("/tap", r.lifecycleHandler.TapNotification)
	}

	// Pub/Sub push endpoint
	e.POST("/push", r.pushHandler.HandlePush)
}
