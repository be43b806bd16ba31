package usecase

import (
	"context"

	"pushclient/internal/domain/entity"
)

// PermissionUsecase negotiates delivery permission once per process
type PermissionUsecase interface {
	// RequestPermission runs the negotiation on first call and returns the stored state afterwards
	RequestPermission(ctx context.Context) entity.PermissionState

	// State returns the negotiated state, Undetermined before negotiation
	State() entity.PermissionState
}
