package impl

import (
	"context"
	"log/slog"
	"sync"

	"pushclient/config"
	"pushclient/internal/domain/constants"
	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"
	"pushclient/internal/usecase"
)

type channelService struct {
	logger    *slog.Logger
	renderer  service.LocalRenderer
	telemetry usecase.TelemetryUsecase
	channel   entity.NotificationChannel

	mu         sync.Mutex
	configured bool
	registered bool
}

// NewChannelService creates the default channel registrar
func NewChannelService(
	logger *slog.Logger,
	renderer service.LocalRenderer,
	telemetry usecase.TelemetryUsecase,
	cfg *config.Config,
) usecase.ChannelUsecase {
	return &channelService{
		logger:    logger,
		renderer:  renderer,
		telemetry: telemetry,
		channel:   DefaultChannel(cfg.Channel),
	}
}

// DefaultChannel builds the channel declaration: highest importance, sound,
// vibration and lights enabled.
func DefaultChannel(cfg *config.ChannelConfig) entity.NotificationChannel {
	channel := entity.NotificationChannel{
		ID:               constants.DefaultChannelID,
		Name:             constants.DefaultChannelName,
		Description:      constants.DefaultChannelDescription,
		Importance:       entity.ImportanceMax,
		PlaySound:        true,
		SoundName:        "default",
		Vibrate:          true,
		VibrationPattern: []int64{0, 1000, 500, 1000},
		EnableLights:     true,
	}

	if cfg != nil {
		if cfg.ID != "" {
			channel.ID = cfg.ID
		}
		if cfg.Name != "" {
			channel.Name = cfg.Name
		}
		if cfg.Description != "" {
			channel.Description = cfg.Description
		}
	}

	return channel
}

// RegisterDefaultChannel declares the channel once. A failed attempt leaves the
// channel unregistered so a later call can try again.
func (s *channelService) RegisterDefaultChannel(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.registered {
		return
	}

	if !s.configured {
		s.renderer.Configure(s.rendererHandlers())
		s.configured = true
	}

	created, err := s.renderer.CreateChannel(ctx, s.channel)
	if err != nil {
		s.logger.Error("[Channel] Failed to create notification channel",
			slog.String("channel_id", s.channel.ID),
			slog.Any("error", err),
		)
		s.telemetry.Emit(ctx, constants.EventChannelFailed, map[string]any{
			"channel_id": s.channel.ID,
			"error":      err.Error(),
		})

		return
	}

	s.registered = true
	s.logger.Info("[Channel] Notification channel ready",
		slog.String("channel_id", s.channel.ID),
		slog.Bool("created", created),
	)
	s.telemetry.Emit(ctx, constants.EventChannelRegistered, map[string]any{
		"channel_id": s.channel.ID,
		"created":    created,
	})
}

// Registered reports whether the channel has been declared
func (s *channelService) Registered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.registered
}

// Channel returns the default channel configuration
func (s *channelService) Channel() entity.NotificationChannel {
	return s.channel
}

func (s *channelService) rendererHandlers() entity.RendererHandlers {
	return entity.RendererHandlers{
		OnNotification: func(n entity.LocalNotification) {
			s.logger.Debug("[Channel] Local notification displayed",
				slog.String("channel_id", n.ChannelID),
				slog.String("title", n.Title),
			)
		},
		OnAction: func(n entity.LocalNotification, action string) {
			s.logger.Info("[Channel] Notification action", slog.String("action", action))
		},
		OnRegistrationError: func(err error) {
			s.logger.Error("[Channel] Renderer registration error", slog.Any("error", err))
		},
	}
}
