package impl

import (
	"context"
	"log/slog"
	"sync"

	"pushclient/internal/domain/constants"
	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"
	"pushclient/internal/usecase"
)

type permissionService struct {
	logger    *slog.Logger
	provider  service.PushProvider
	tokens    usecase.TokenUsecase
	telemetry usecase.TelemetryUsecase

	once  sync.Once
	mu    sync.RWMutex
	state entity.PermissionState
}

// NewPermissionService creates the one-shot permission negotiator
func NewPermissionService(
	logger *slog.Logger,
	provider service.PushProvider,
	tokens usecase.TokenUsecase,
	telemetry usecase.TelemetryUsecase,
) usecase.PermissionUsecase {
	return &permissionService{
		logger:    logger,
		provider:  provider,
		tokens:    tokens,
		telemetry: telemetry,
		state:     entity.PermissionUndetermined,
	}
}

// RequestPermission negotiates on the first call; later calls return the stored state
func (s *permissionService) RequestPermission(ctx context.Context) entity.PermissionState {
	s.once.Do(func() {
		s.negotiate(ctx)
	})

	return s.State()
}

// State returns the negotiated state
func (s *permissionService) State() entity.PermissionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *permissionService) negotiate(ctx context.Context) {
	status, err := s.provider.RequestPermission(ctx, entity.PermissionOptions{
		Alert:        true,
		Badge:        true,
		Sound:        true,
		Announcement: true,
	})
	if err != nil {
		s.setState(entity.PermissionDenied)
		s.logger.Error("[Permission] Permission request failed", slog.Any("error", err))
		s.telemetry.Emit(ctx, constants.EventPermissionFailed, map[string]any{
			"error": err.Error(),
		})

		return
	}

	state := entity.PermissionStateFromStatus(status)
	s.setState(state)

	s.logger.Info("[Permission] Authorization status resolved",
		slog.Int("status", int(status)),
		slog.String("state", state.String()),
	)
	s.telemetry.Emit(ctx, constants.EventPermissionResolved, map[string]any{
		"state":   state.String(),
		"enabled": state.Enabled(),
	})

	if !state.Enabled() {
		s.logger.Warn("[Permission] Notifications disabled, skipping token acquisition")

		return
	}

	s.tokens.Acquire(ctx)
}

func (s *permissionService) setState(state entity.PermissionState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
}
