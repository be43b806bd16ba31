package usecase

import (
	"context"
)

// AppUsecase runs process startup and shutdown
type AppUsecase interface {
	// Start runs the startup actions; repeated calls are no-ops
	Start(ctx context.Context) error

	// Stop revokes the foreground subscription and flushes telemetry
	Stop(ctx context.Context) error
}
