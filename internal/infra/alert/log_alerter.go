// Package alert surfaces interactive alerts on the process log.
package alert

import (
	"context"
	"log/slog"

	"pushclient/internal/domain/service"
)

type logAlerter struct {
	logger *slog.Logger
}

// NewLogAlerter creates an alerter that writes alerts at warn level so they stand out
func NewLogAlerter(logger *slog.Logger) service.Alerter {
	return &logAlerter{logger: logger}
}

func (a *logAlerter) Alert(ctx context.Context, title, message string) {
	a.logger.WarnContext(ctx, "[Alert] "+title, slog.String("message", message))
}
