package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"pushclient/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenKey is the attribute carrying a raw device token
const tokenKey = "token"

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the process logger. Every record carries the service name and
// the app version reported with telemetry.
func New(params Params) (*slog.Logger, error) {
	env := params.Config.Env

	return newLogger(os.Stdout, env.Log,
		slog.String("service", env.ServiceName),
		slog.String("app_version", env.AppVersion),
	)
}

func newLogger(w io.Writer, cfg config.Log, attrs ...slog.Attr) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if level > slog.LevelDebug {
		opts.ReplaceAttr = redactToken
	}

	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler.WithAttrs(attrs)), nil
}

// redactToken keeps only the length of raw device tokens
func redactToken(_ []string, a slog.Attr) slog.Attr {
	if a.Key != tokenKey || a.Value.Kind() != slog.KindString {
		return a
	}

	return slog.String(tokenKey, fmt.Sprintf("[redacted %d chars]", len(a.Value.String())))
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
