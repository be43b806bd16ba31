// Package renderer displays local notifications on the process log, the way a
// device renderer would show them in the notification shade.
package renderer

import (
	"context"
	"log/slog"
	"sync"

	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"
	"pushclient/internal/errors"
)

type consoleRenderer struct {
	logger *slog.Logger

	mu        sync.RWMutex
	channels  map[string]entity.NotificationChannel
	handlers  entity.RendererHandlers
	displayed int
}

// NewConsoleRenderer creates a renderer that writes notifications to the logger
func NewConsoleRenderer(logger *slog.Logger) service.LocalRenderer {
	return &consoleRenderer{
		logger:   logger,
		channels: make(map[string]entity.NotificationChannel),
	}
}

// Configure installs the renderer callbacks
func (r *consoleRenderer) Configure(handlers entity.RendererHandlers) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = handlers
}

// CreateChannel declares a channel. Declaring an existing id is a no-op.
func (r *consoleRenderer) CreateChannel(ctx context.Context, channel entity.NotificationChannel) (bool, error) {
	if channel.ID == "" {
		err := errors.New("channel id is required")
		r.registrationError(err)

		return false, err
	}

	r.mu.Lock()
	_, exists := r.channels[channel.ID]
	if !exists {
		r.channels[channel.ID] = channel
	}
	r.mu.Unlock()

	if !exists {
		r.logger.Debug("[Renderer] Channel created",
			slog.String("channel_id", channel.ID),
			slog.String("name", channel.Name),
			slog.Int("importance", int(channel.Importance)),
		)
	}

	return !exists, nil
}

// LocalNotification shows a notification. Notifications on an undeclared
// channel are discarded without an error, matching the platform.
func (r *consoleRenderer) LocalNotification(ctx context.Context, notification entity.LocalNotification) error {
	r.mu.Lock()
	channel, ok := r.channels[notification.ChannelID]
	if ok {
		r.displayed++
	}
	onNotification := r.handlers.OnNotification
	r.mu.Unlock()

	if !ok {
		r.logger.Debug("[Renderer] Unknown channel, notification discarded",
			slog.String("channel_id", notification.ChannelID),
		)

		return nil
	}

	r.logger.Info("[Renderer] 🔔 "+notification.Title,
		slog.String("message", notification.Message),
		slog.String("channel", channel.Name),
		slog.Bool("sound", notification.PlaySound && channel.PlaySound),
		slog.Bool("vibrate", notification.Vibrate && channel.Vibrate),
		slog.Any("actions", notification.Actions),
	)

	if onNotification != nil {
		onNotification(notification)
	}

	return nil
}

// Displayed returns how many notifications have been shown
func (r *consoleRenderer) Displayed() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.displayed
}

func (r *consoleRenderer) registrationError(err error) {
	r.mu.RLock()
	onError := r.handlers.OnRegistrationError
	r.mu.RUnlock()

	if onError != nil {
		onError(err)
	}
}
