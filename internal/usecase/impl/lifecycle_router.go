package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"pushclient/internal/domain/constants"
	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"
	"pushclient/internal/usecase"
)

const foregroundAlertTitle = "📱 Notification Received"

type lifecycleRouter struct {
	logger    *slog.Logger
	provider  service.PushProvider
	renderer  usecase.RendererUsecase
	telemetry usecase.TelemetryUsecase
	alerter   service.Alerter
	now       func() time.Time

	startOnce   sync.Once
	initialOnce sync.Once

	foregroundActive atomic.Bool
	unsubMu          sync.Mutex
	unsubscribe      func()

	mu      sync.Mutex
	records []entity.NotificationRecord
	lastID  int64
}

// NewLifecycleRouter creates the router that owns the foreground record list
func NewLifecycleRouter(
	logger *slog.Logger,
	provider service.PushProvider,
	renderer usecase.RendererUsecase,
	telemetry usecase.TelemetryUsecase,
	alerter service.Alerter,
) usecase.LifecycleUsecase {
	return &lifecycleRouter{
		logger:    logger,
		provider:  provider,
		renderer:  renderer,
		telemetry: telemetry,
		alerter:   alerter,
		now:       time.Now,
	}
}

// Start registers the background and opened handlers for the process lifetime,
// subscribes to foreground deliveries and consumes the launch notification.
func (r *lifecycleRouter) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		r.provider.SetBackgroundMessageHandler(r.HandleBackground)
		r.provider.OnNotificationOpenedApp(r.HandleOpenedFromBackground)

		r.foregroundActive.Store(true)
		unsubscribe := r.provider.OnMessage(r.HandleForeground)

		r.unsubMu.Lock()
		r.unsubscribe = unsubscribe
		r.unsubMu.Unlock()

		r.logger.Info("[Router] Push handlers registered")

		r.HandleInitialNotification(ctx)
	})
}

// HandleForeground records, renders, alerts and reports every delivery
func (r *lifecycleRouter) HandleForeground(ctx context.Context, msg *entity.InboundMessage) {
	if !r.foregroundActive.Load() {
		return
	}
	if msg == nil {
		msg = &entity.InboundMessage{}
	}

	record := r.appendRecord(msg)

	r.logger.Info("[Router] Foreground notification received",
		slog.Int64("record_id", record.ID),
		slog.String("message_id", msg.MessageID),
	)

	r.renderer.Render(ctx, msg)
	r.alerter.Alert(ctx, foregroundAlertTitle, fmt.Sprintf("%s: %s", record.Title, record.Body))
	r.telemetry.Emit(ctx, constants.EventForegroundReceived, map[string]any{
		"title":       record.Title,
		"record_id":   record.ID,
		"has_payload": msg.HasPayload(),
	})
}

// HandleBackground renders and reports without touching the record list
func (r *lifecycleRouter) HandleBackground(ctx context.Context, msg *entity.InboundMessage) {
	if msg == nil {
		msg = &entity.InboundMessage{}
	}

	r.logger.Info("[Router] Background notification received", slog.String("message_id", msg.MessageID))

	r.renderer.Render(ctx, msg)
	r.telemetry.Emit(ctx, constants.EventBackgroundReceived, map[string]any{
		"title":       msg.TitleOr(constants.DefaultNotificationTitle),
		"has_payload": msg.HasPayload(),
	})
}

// HandleOpenedFromBackground reports a tap that resumed the app. An open event
// without a message is ignored.
func (r *lifecycleRouter) HandleOpenedFromBackground(ctx context.Context, msg *entity.InboundMessage) {
	if msg == nil {
		r.logger.Debug("[Router] App opened without a notification")

		return
	}

	r.logger.Info("[Router] Background notification opened", slog.String("message_id", msg.MessageID))
	r.telemetry.Emit(ctx, constants.EventNotificationOpened, map[string]any{
		"from":  constants.OpenedFromBackground,
		"title": msg.TitleOr(""),
	})
}

// HandleInitialNotification pulls the launch notification. Only the first call
// queries the provider.
func (r *lifecycleRouter) HandleInitialNotification(ctx context.Context) {
	r.initialOnce.Do(func() {
		msg, err := r.provider.GetInitialNotification(ctx)
		if err != nil {
			r.logger.Warn("[Router] Failed to query initial notification", slog.Any("error", err))

			return
		}
		if msg == nil {
			return
		}

		r.logger.Info("[Router] Quit state notification opened", slog.String("message_id", msg.MessageID))
		r.telemetry.Emit(ctx, constants.EventNotificationOpened, map[string]any{
			"from":  constants.OpenedFromQuit,
			"title": msg.TitleOr(""),
		})
	})
}

// Records returns a snapshot in arrival order
func (r *lifecycleRouter) Records() []entity.NotificationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.records)
}

// Clear drops every record and reports how many there were
func (r *lifecycleRouter) Clear(ctx context.Context) int {
	r.mu.Lock()
	cleared := len(r.records)
	r.records = nil
	r.mu.Unlock()

	r.logger.Info("[Router] Notifications cleared", slog.Int("cleared_count", cleared))
	r.telemetry.Emit(ctx, constants.EventNotificationsCleared, map[string]any{
		"cleared_count": cleared,
	})

	return cleared
}

// Unsubscribe revokes the foreground subscription. Background and opened
// handlers stay registered for the process lifetime.
func (r *lifecycleRouter) Unsubscribe() {
	r.foregroundActive.Store(false)

	r.unsubMu.Lock()
	unsubscribe := r.unsubscribe
	r.unsubscribe = nil
	r.unsubMu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
		r.logger.Info("[Router] Foreground subscription revoked")
	}
}

// appendRecord assigns a time-based identifier that stays strictly increasing
// even when two deliveries land in the same millisecond.
func (r *lifecycleRouter) appendRecord(msg *entity.InboundMessage) entity.NotificationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	record := entity.NotificationRecord{
		ID:          id,
		Title:       msg.TitleOr(constants.DefaultNotificationTitle),
		Body:        msg.BodyOr(constants.DefaultNotificationBody),
		DisplayTime: now.Format(entity.DisplayTimeLayout),
		ReceivedAt:  now,
	}
	r.records = append(r.records, record)

	return record
}
