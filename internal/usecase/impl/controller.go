package impl

import (
	"context"
	"log/slog"
	"sync"

	"pushclient/config"
	"pushclient/internal/errors"
	"pushclient/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type controller struct {
	logger         *slog.Logger
	telemetry      usecase.TelemetryUsecase
	permission     usecase.PermissionUsecase
	channels       usecase.ChannelUsecase
	router         usecase.LifecycleUsecase
	userProperties map[string]string

	once     sync.Once
	startErr error
}

// NewController creates the startup/shutdown coordinator
func NewController(
	logger *slog.Logger,
	telemetry usecase.TelemetryUsecase,
	permission usecase.PermissionUsecase,
	channels usecase.ChannelUsecase,
	router usecase.LifecycleUsecase,
	cfg *config.Config,
) usecase.AppUsecase {
	var props map[string]string
	if cfg.Telemetry != nil {
		props = cfg.Telemetry.UserProperties
	}

	return &controller{
		logger:         logger,
		telemetry:      telemetry,
		permission:     permission,
		channels:       channels,
		router:         router,
		userProperties: props,
	}
}

// Start runs the startup actions once. Permission negotiation (and the token
// fetch it triggers), channel registration and router start run concurrently;
// the renderer orders itself after channel registration.
func (c *controller) Start(ctx context.Context) error {
	c.once.Do(func() {
		c.startErr = c.start(ctx)
	})

	return c.startErr
}

func (c *controller) start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "start application")
	}

	c.telemetry.LogAppOpen(ctx)
	for key, value := range c.userProperties {
		c.telemetry.SetUserProperty(ctx, key, value)
	}

	var group errgroup.Group
	group.Go(func() error {
		c.channels.RegisterDefaultChannel(ctx)

		return nil
	})
	group.Go(func() error {
		state := c.permission.RequestPermission(ctx)
		c.logger.Info("[App] Permission negotiated", slog.String("state", state.String()))

		return nil
	})
	group.Go(func() error {
		c.router.Start(ctx)

		return nil
	})

	if err := group.Wait(); err != nil {
		return errors.Wrap(err, "start application")
	}

	c.logger.Info("[App] Startup complete")

	return nil
}

// Stop revokes the foreground subscription and waits for pending telemetry
func (c *controller) Stop(ctx context.Context) error {
	c.router.Unsubscribe()

	return c.telemetry.Flush(ctx)
}
