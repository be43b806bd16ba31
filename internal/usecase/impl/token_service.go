package impl

import (
	"context"
	"log/slog"
	"sync"

	"pushclient/internal/domain/constants"
	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"
	"pushclient/internal/errors"
	"pushclient/internal/usecase"
)

// ErrEmptyToken marks a provider response that carried no token
var ErrEmptyToken = errors.New("provider returned an empty token")

type tokenService struct {
	logger    *slog.Logger
	provider  service.PushProvider
	telemetry usecase.TelemetryUsecase

	mu      sync.RWMutex
	current entity.DeviceToken
}

// NewTokenService creates the device token holder
func NewTokenService(logger *slog.Logger, provider service.PushProvider, telemetry usecase.TelemetryUsecase) usecase.TokenUsecase {
	return &tokenService{
		logger:    logger,
		provider:  provider,
		telemetry: telemetry,
	}
}

// Acquire fetches a fresh token and makes it current; failures keep the previous one
func (s *tokenService) Acquire(ctx context.Context) entity.DeviceToken {
	raw, err := s.provider.GetToken(ctx)
	if err == nil && raw == "" {
		err = ErrEmptyToken
	}
	if err != nil {
		s.logger.Error("[Token] Error getting device token", slog.Any("error", err))
		s.telemetry.Emit(ctx, constants.EventTokenFailed, map[string]any{
			"error": err.Error(),
		})

		current, _ := s.Current()

		return current
	}

	token := entity.NewDeviceToken(raw)

	s.mu.Lock()
	s.current = token
	s.mu.Unlock()

	s.logger.Debug("[Token] Device token acquired", slog.String("token", token.Value))
	s.telemetry.Emit(ctx, constants.EventTokenReceived, map[string]any{
		"token_length": token.Len(),
	})

	return token
}

// Current returns the current token and whether one is set
func (s *tokenService) Current() (entity.DeviceToken, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current, !s.current.IsZero()
}

// Display returns the token or the waiting placeholder
func (s *tokenService) Display() string {
	token, ok := s.Current()
	if !ok {
		return constants.TokenPlaceholder
	}

	return token.Value
}

// Copy writes the token to the debug log between banners for manual copying
func (s *tokenService) Copy(ctx context.Context) bool {
	token, ok := s.Current()
	if !ok {
		return false
	}

	s.logger.Debug("=== COPY THIS TOKEN ===")
	s.logger.Debug(token.Value)
	s.logger.Debug("======================")
	s.telemetry.Emit(ctx, constants.EventTokenCopied, nil)

	return true
}
