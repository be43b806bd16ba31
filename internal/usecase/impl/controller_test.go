package impl

import (
	"context"
	"testing"

	"pushclient/internal/domain/constants"
	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"
	mockSvc "pushclient/internal/mocks/service"
	mockUC "pushclient/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestController_Start_RunsOnce(t *testing.T) {
	telemetry := mockUC.NewMockTelemetryUsecase(t)
	permission := mockUC.NewMockPermissionUsecase(t)
	channels := mockUC.NewMockChannelUsecase(t)
	router := mockUC.NewMockLifecycleUsecase(t)

	cfg := newTestConfig()
	cfg.Telemetry.UserProperties = map[string]string{"platform": "android"}

	ctrl := NewController(newTestLogger(), telemetry, permission, channels, router, cfg)
	ctx := context.Background()

	telemetry.EXPECT().LogAppOpen(ctx).Once()
	telemetry.EXPECT().SetUserProperty(ctx, "platform", "android").Once()
	channels.EXPECT().RegisterDefaultChannel(ctx).Once()
	permission.EXPECT().RequestPermission(ctx).Return(entity.PermissionAuthorized).Once()
	router.EXPECT().Start(ctx).Once()

	require.NoError(t, ctrl.Start(ctx))
	require.NoError(t, ctrl.Start(ctx))
}

func TestController_Start_CancelledContext(t *testing.T) {
	ctrl := NewController(
		newTestLogger(),
		mockUC.NewMockTelemetryUsecase(t),
		mockUC.NewMockPermissionUsecase(t),
		mockUC.NewMockChannelUsecase(t),
		mockUC.NewMockLifecycleUsecase(t),
		newTestConfig(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ctrl.Start(ctx), context.Canceled)
}

func TestController_Stop(t *testing.T) {
	telemetry := mockUC.NewMockTelemetryUsecase(t)
	router := mockUC.NewMockLifecycleUsecase(t)
	ctrl := NewController(
		newTestLogger(),
		telemetry,
		mockUC.NewMockPermissionUsecase(t),
		mockUC.NewMockChannelUsecase(t),
		router,
		newTestConfig(),
	)
	ctx := context.Background()

	router.EXPECT().Unsubscribe().Once()
	telemetry.EXPECT().Flush(ctx).Return(nil).Once()

	require.NoError(t, ctrl.Stop(ctx))
}

// appFixtures wires the real services over mocked platform collaborators
type appFixtures struct {
	provider *mockSvc.MockPushProvider
	renderer *mockSvc.MockLocalRenderer
	backend  *mockSvc.MockAnalyticsBackend
	alerter  *mockSvc.MockAlerter

	tokens *tokenService
	router *lifecycleRouter
	app    *controller
}

func createTestApp(t *testing.T) appFixtures {
	provider := mockSvc.NewMockPushProvider(t)
	renderer := mockSvc.NewMockLocalRenderer(t)
	backend := mockSvc.NewMockAnalyticsBackend(t)
	alerter := mockSvc.NewMockAlerter(t)
	logger := newTestLogger()
	cfg := newTestConfig()

	backend.EXPECT().LogEvent(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	backend.EXPECT().LogAppOpen(mock.Anything).Return(nil).Maybe()

	telemetry := NewTelemetryService(logger, backend, cfg)
	tokens := NewTokenService(logger, provider, telemetry)
	permission := NewPermissionService(logger, provider, tokens, telemetry)
	channels := NewChannelService(logger, renderer, telemetry, cfg)
	rendering := NewRendererService(logger, renderer, channels, telemetry)
	router := NewLifecycleRouter(logger, provider, rendering, telemetry, alerter)
	app := NewController(logger, telemetry, permission, channels, router, cfg)

	t.Cleanup(func() {
		_ = telemetry.Flush(context.Background())
	})

	return appFixtures{
		provider: provider,
		renderer: renderer,
		backend:  backend,
		alerter:  alerter,
		tokens:   tokens.(*tokenService),
		router:   router.(*lifecycleRouter),
		app:      app.(*controller),
	}
}

func (f appFixtures) expectPlatform(status entity.AuthorizationStatus) *service.MessageHandler {
	var foreground service.MessageHandler

	f.renderer.EXPECT().Configure(mock.Anything).Once()
	f.renderer.EXPECT().CreateChannel(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.provider.EXPECT().RequestPermission(mock.Anything, mock.Anything).Return(status, nil).Once()
	f.provider.EXPECT().SetBackgroundMessageHandler(mock.Anything).Once()
	f.provider.EXPECT().OnNotificationOpenedApp(mock.Anything).Once()
	f.provider.EXPECT().OnMessage(mock.Anything).
		Run(func(handler service.MessageHandler) { foreground = handler }).
		Return(nil).
		Once()
	f.provider.EXPECT().GetInitialNotification(mock.Anything).Return(nil, nil).Once()

	return &foreground
}

func TestApp_PermissionDeniedSkipsToken(t *testing.T) {
	fx := createTestApp(t)
	fx.expectPlatform(entity.AuthorizationDenied)

	require.NoError(t, fx.app.Start(context.Background()))

	fx.provider.AssertNotCalled(t, "GetToken", mock.Anything)
	assert.Equal(t, "Getting token...", fx.tokens.Display())
}

func TestApp_ForegroundDeliveryIsRecordedAndRendered(t *testing.T) {
	fx := createTestApp(t)
	foreground := fx.expectPlatform(entity.AuthorizationAuthorized)
	fx.provider.EXPECT().GetToken(mock.Anything).Return("device-token", nil).Once()

	ctx := context.Background()
	require.NoError(t, fx.app.Start(ctx))
	require.NotNil(t, *foreground)
	assert.Equal(t, "device-token", fx.tokens.Display())

	fx.renderer.EXPECT().LocalNotification(ctx, mock.MatchedBy(func(n entity.LocalNotification) bool {
		return n.ChannelID == constants.DefaultChannelID && n.Title == "Hello"
	})).Return(nil).Once()
	fx.alerter.EXPECT().Alert(ctx, "📱 Notification Received", "Hello: You have a new message").Once()

	(*foreground)(ctx, &entity.InboundMessage{Title: entity.Text("Hello")})

	records := fx.router.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Hello", records[0].Title)

	require.NoError(t, fx.app.Stop(ctx))
	(*foreground)(ctx, &entity.InboundMessage{Title: entity.Text("ignored")})
	assert.Len(t, fx.router.Records(), 1)
}
