package usecase

import (
	"context"

	"pushclient/internal/domain/entity"
)

// ChannelUsecase registers the default local-rendering channel
type ChannelUsecase interface {
	// RegisterDefaultChannel is idempotent; repeated calls after success are no-ops
	RegisterDefaultChannel(ctx context.Context)

	// Registered reports whether the channel has been declared
	Registered() bool

	// Channel returns the default channel configuration
	Channel() entity.NotificationChannel
}
