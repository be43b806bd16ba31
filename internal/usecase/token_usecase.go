package usecase

import (
	"context"

	"pushclient/internal/domain/entity"
)

// TokenUsecase holds the current device delivery identity
type TokenUsecase interface {
	// Acquire fetches a token and makes it current. On failure the previous token is kept
	// and returned; the call never fails.
	Acquire(ctx context.Context) entity.DeviceToken

	// Current returns the current token and whether one is set
	Current() (entity.DeviceToken, bool)

	// Display returns the token or the placeholder shown while none is available
	Display() string

	// Copy dumps the token to the log for manual copying; false when no token
	Copy(ctx context.Context) bool
}
