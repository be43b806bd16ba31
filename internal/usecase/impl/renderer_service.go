package impl

import (
	"context"
	"log/slog"
	"maps"
	"unicode/utf8"

	"pushclient/internal/domain/constants"
	"pushclient/internal/domain/entity"
	domainerrors "pushclient/internal/domain/errors"
	"pushclient/internal/domain/service"
	"pushclient/internal/errors"
	"pushclient/internal/usecase"
)

const (
	vibrationMs = 300
	viewAction  = "View"
)

type rendererService struct {
	logger    *slog.Logger
	renderer  service.LocalRenderer
	channels  usecase.ChannelUsecase
	telemetry usecase.TelemetryUsecase
}

// NewRendererService creates the notification renderer
func NewRendererService(
	logger *slog.Logger,
	renderer service.LocalRenderer,
	channels usecase.ChannelUsecase,
	telemetry usecase.TelemetryUsecase,
) usecase.RendererUsecase {
	return &rendererService{
		logger:    logger,
		renderer:  renderer,
		channels:  channels,
		telemetry: telemetry,
	}
}

// Render shows the message on the default channel, substituting the fixed
// defaults for a missing title or body. Failures are reported, never returned.
func (s *rendererService) Render(ctx context.Context, msg *entity.InboundMessage) {
	title := msg.TitleOr(constants.DefaultNotificationTitle)
	body := msg.BodyOr(constants.DefaultNotificationBody)

	userInfo := map[string]string{}
	if msg != nil {
		maps.Copy(userInfo, msg.Data)
	}

	notification := entity.LocalNotification{
		Title:       title,
		Message:     body,
		PlaySound:   true,
		SoundName:   "default",
		Importance:  entity.ImportanceMax,
		Priority:    entity.ImportanceMax,
		Vibrate:     true,
		VibrationMs: vibrationMs,
		Actions:     []string{viewAction},
		InvokeApp:   true,
		UserInfo:    userInfo,
	}

	if err := s.show(ctx, notification); err != nil {
		s.reportFailure(ctx, title, err)

		return
	}

	s.telemetry.Emit(ctx, constants.EventNotificationReceived, map[string]any{
		"title":       title,
		"body_length": utf8.RuneCountInString(body),
		"has_payload": msg.HasPayload(),
	})
}

// RenderTest shows the fixed self-test notification
func (s *rendererService) RenderTest(ctx context.Context) {
	notification := entity.LocalNotification{
		Title:      constants.TestNotificationTitle,
		Message:    constants.TestNotificationBody,
		PlaySound:  true,
		SoundName:  "default",
		Importance: entity.ImportanceMax,
		Priority:   entity.ImportanceMax,
	}

	if err := s.show(ctx, notification); err != nil {
		s.reportFailure(ctx, notification.Title, err)

		return
	}

	s.telemetry.Emit(ctx, constants.EventTestLocalNotification, nil)
}

// show makes sure the channel exists before handing the notification over.
// Rendering on an undeclared channel fails silently on the platform, so it is
// refused here instead.
func (s *rendererService) show(ctx context.Context, notification entity.LocalNotification) (err error) {
	s.channels.RegisterDefaultChannel(ctx)
	if !s.channels.Registered() {
		return domainerrors.ErrChannelNotRegistered
	}

	notification.ChannelID = s.channels.Channel().ID

	defer func() {
		if r := recover(); r != nil {
			err = domainerrors.ErrRenderFailed.WithDetails("renderer panic")
		}
	}()

	if err := s.renderer.LocalNotification(ctx, notification); err != nil {
		return errors.Wrap(err, "local notification")
	}

	return nil
}

func (s *rendererService) reportFailure(ctx context.Context, title string, err error) {
	s.logger.Error("[Renderer] Failed to render notification",
		slog.String("title", title),
		slog.Any("error", err),
	)
	s.telemetry.Emit(ctx, constants.EventNotificationRenderError, map[string]any{
		"title": title,
		"error": err.Error(),
	})
}
