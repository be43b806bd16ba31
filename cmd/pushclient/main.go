package main

import (
	"context"
	"log/slog"
	"os"

	"pushclient/config"
	"pushclient/internal/delivery"
	"pushclient/internal/delivery/http"
	"pushclient/internal/delivery/http/router/handler"
	"pushclient/internal/delivery/worker"
	"pushclient/internal/domain/service"
	"pushclient/internal/infra/alert"
	"pushclient/internal/infra/analytics"
	logs "pushclient/internal/infra/log"
	"pushclient/internal/infra/notification"
	"pushclient/internal/infra/pubsub"
	"pushclient/internal/infra/push"
	"pushclient/internal/infra/qrcode"
	"pushclient/internal/infra/renderer"
	"pushclient/internal/usecase"
	"pushclient/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		pubsub.Module,
		fx.Invoke(
			startApp,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			push.NewHost,
			// The host is the push provider, the HTTP control target, the
			// dispatch loop and the Pub/Sub sink at once.
			func(h *push.Host) service.PushProvider { return h },
			func(h *push.Host) handler.PushHost { return h },
			func(h *push.Host) worker.Dispatcher { return h },
			func(h *push.Host) pubsub.MessageSink { return h },
			renderer.NewConsoleRenderer,
			alert.NewLogAlerter,
			analytics.NewPublisherBackend,
			notification.NewFirebaseService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTelemetryService,
			impl.NewTokenService,
			impl.NewPermissionService,
			impl.NewChannelService,
			impl.NewRendererService,
			impl.NewLifecycleRouter,
			impl.NewController,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewStatusHandler,
			handler.NewTokenHandler,
			handler.NewNotificationHandler,
			handler.NewLifecycleHandler,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewDispatcher,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSubscriber,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startApp runs the startup actions before any delivery is served, so the
// lifecycle handlers are registered when the first push is dispatched.
func startApp(ctx context.Context, lc fx.Lifecycle, app usecase.AppUsecase) error {
	if err := app.Start(ctx); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: app.Stop,
	})

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
