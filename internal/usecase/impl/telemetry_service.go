package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"pushclient/config"
	"pushclient/internal/domain/constants"
	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"
	"pushclient/internal/errors"
	"pushclient/internal/usecase"
)

type telemetryService struct {
	logger     *slog.Logger
	backend    service.AnalyticsBackend
	appVersion string
	timeout    time.Duration
	now        func() time.Time
	inflight   sync.WaitGroup
}

// NewTelemetryService creates a fire-and-forget telemetry emitter
func NewTelemetryService(logger *slog.Logger, backend service.AnalyticsBackend, cfg *config.Config) usecase.TelemetryUsecase {
	return &telemetryService{
		logger:     logger,
		backend:    backend,
		appVersion: cfg.Env.AppVersion,
		timeout:    cfg.Telemetry.Timeout,
		now:        time.Now,
	}
}

// Emit enriches the properties and hands them to the backend on a detached goroutine
func (s *telemetryService) Emit(ctx context.Context, name string, properties map[string]any) {
	props := s.enrich(properties)

	s.dispatch(ctx, name, func(ctx context.Context) error {
		return s.backend.LogEvent(ctx, name, props)
	})
}

// LogAppOpen reports an application open
func (s *telemetryService) LogAppOpen(ctx context.Context) {
	s.dispatch(ctx, "app_open", s.backend.LogAppOpen)
}

// LogScreenView reports a screen transition
func (s *telemetryService) LogScreenView(ctx context.Context, screenName string) {
	view := entity.ScreenView{ScreenName: screenName, ScreenClass: screenName}

	s.dispatch(ctx, "screen_view", func(ctx context.Context) error {
		return s.backend.LogScreenView(ctx, view)
	})
}

// SetUserProperty attaches a property to subsequent events on the backend
func (s *telemetryService) SetUserProperty(ctx context.Context, key, value string) {
	s.dispatch(ctx, "user_property", func(ctx context.Context) error {
		return s.backend.SetUserProperty(ctx, key, value)
	})
}

// Flush waits for in-flight emissions or until ctx is done
func (s *telemetryService) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "flush telemetry")
	}
}

// dispatch runs send without tying it to the caller's cancellation. Errors and
// panics from the transport are logged and dropped; there is no retry.
func (s *telemetryService) dispatch(ctx context.Context, name string, send func(ctx context.Context) error) {
	detached := context.WithoutCancel(ctx)

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		sendCtx, cancel := context.WithTimeout(detached, s.timeout)
		defer cancel()

		if err := safeSend(sendCtx, send); err != nil {
			s.logger.Warn("[Telemetry] Failed to log event",
				slog.String("event", name),
				slog.Any("error", err),
			)

			return
		}

		s.logger.Debug("[Telemetry] Logged event", slog.String("event", name))
	}()
}

func safeSend(ctx context.Context, send func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(errors.FromPanic(r), "telemetry transport")
		}
	}()

	return send(ctx)
}

// enrich copies the caller's map, flattens non-scalar values and stamps the
// capture time and version tag.
func (s *telemetryService) enrich(properties map[string]any) map[string]any {
	props := make(map[string]any, len(properties)+2)
	maps.Copy(props, properties)

	for key, value := range props {
		if !isScalar(value) {
			props[key] = fmt.Sprint(value)
		}
	}

	props[constants.PropTimestamp] = s.now().UTC().Format(time.RFC3339Nano)
	props[constants.PropAppVersion] = s.appVersion

	return props
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}
