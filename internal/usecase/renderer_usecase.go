package usecase

import (
	"context"

	"pushclient/internal/domain/entity"
)

// RendererUsecase turns inbound messages into visible local notifications
type RendererUsecase interface {
	// Render queues the message to the platform renderer and returns
	Render(ctx context.Context, msg *entity.InboundMessage)

	// RenderTest renders the fixed self-test notification
	RenderTest(ctx context.Context)
}
