package impl

import (
	"io"
	"log/slog"
	"time"

	"pushclient/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.AppVersion = "9.9.9"
	cfg.Telemetry = &config.TelemetryConfig{Timeout: time.Second}
	cfg.ApplyDefaults()

	return cfg
}
