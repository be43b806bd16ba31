package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"pushclient/internal/domain/constants"
	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"
	mockSvc "pushclient/internal/mocks/service"
	mockUC "pushclient/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	router    *lifecycleRouter
	provider  *mockSvc.MockPushProvider
	renderer  *mockUC.MockRendererUsecase
	telemetry *mockUC.MockTelemetryUsecase
	alerter   *mockSvc.MockAlerter
}

func createTestLifecycleRouter(t *testing.T) routerFixtures {
	provider := mockSvc.NewMockPushProvider(t)
	renderer := mockUC.NewMockRendererUsecase(t)
	telemetry := mockUC.NewMockTelemetryUsecase(t)
	alerter := mockSvc.NewMockAlerter(t)

	router := NewLifecycleRouter(newTestLogger(), provider, renderer, telemetry, alerter).(*lifecycleRouter)

	return routerFixtures{
		router:    router,
		provider:  provider,
		renderer:  renderer,
		telemetry: telemetry,
		alerter:   alerter,
	}
}

// start activates the router with no launch notification pending
func (f routerFixtures) start(ctx context.Context, unsubscribe func()) {
	f.provider.EXPECT().SetBackgroundMessageHandler(mock.Anything).Once()
	f.provider.EXPECT().OnNotificationOpenedApp(mock.Anything).Once()
	f.provider.EXPECT().OnMessage(mock.Anything).Return(unsubscribe).Once()
	f.provider.EXPECT().GetInitialNotification(ctx).Return(nil, nil).Once()

	f.router.Start(ctx)
}

func TestLifecycleRouter_Start_RegistersHandlersOnce(t *testing.T) {
	fx := createTestLifecycleRouter(t)
	ctx := context.Background()

	fx.start(ctx, nil)
	fx.router.Start(ctx)

	fx.provider.AssertNumberOfCalls(t, "OnMessage", 1)
	fx.provider.AssertNumberOfCalls(t, "GetInitialNotification", 1)
}

func TestLifecycleRouter_Start_WiresProviderHandlers(t *testing.T) {
	fx := createTestLifecycleRouter(t)
	ctx := context.Background()

	var foreground, background service.MessageHandler
	var opened service.OpenedHandler
	fx.provider.EXPECT().SetBackgroundMessageHandler(mock.Anything).
		Run(func(handler service.MessageHandler) { background = handler }).Once()
	fx.provider.EXPECT().OnNotificationOpenedApp(mock.Anything).
		Run(func(handler service.OpenedHandler) { opened = handler }).Once()
	fx.provider.EXPECT().OnMessage(mock.Anything).
		Run(func(handler service.MessageHandler) { foreground = handler }).
		Return(nil).Once()
	fx.provider.EXPECT().GetInitialNotification(ctx).Return(nil, nil).Once()

	fx.router.Start(ctx)
	require.NotNil(t, foreground)
	require.NotNil(t, background)
	require.NotNil(t, opened)

	fx.renderer.EXPECT().Render(ctx, mock.Anything).Twice()
	fx.alerter.EXPECT().Alert(ctx, mock.Anything, mock.Anything).Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventForegroundReceived, mock.Anything).Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventBackgroundReceived, mock.Anything).Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventNotificationOpened, mock.Anything).Once()

	foreground(ctx, &entity.InboundMessage{Title: entity.Text("fg")})
	background(ctx, &entity.InboundMessage{Title: entity.Text("bg")})
	opened(ctx, &entity.InboundMessage{Title: entity.Text("tap")})

	records := fx.router.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "fg", records[0].Title)
}

func TestLifecycleRouter_HandleForeground_AppendsInArrivalOrder(t *testing.T) {
	fx := createTestLifecycleRouter(t)
	ctx := context.Background()
	fx.start(ctx, nil)

	fixed := time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC)
	fx.router.now = func() time.Time { return fixed }

	fx.renderer.EXPECT().Render(ctx, mock.Anything)
	fx.alerter.EXPECT().Alert(ctx, mock.Anything, mock.Anything)
	fx.telemetry.EXPECT().Emit(ctx, constants.EventForegroundReceived, mock.Anything)

	const n = 5
	for i := range n {
		fx.router.HandleForeground(ctx, &entity.InboundMessage{
			Title: entity.Text(fmt.Sprintf("title-%d", i)),
			Body:  entity.Text(fmt.Sprintf("body-%d", i)),
		})
	}

	records := fx.router.Records()
	require.Len(t, records, n)
	for i, record := range records {
		assert.Equal(t, fmt.Sprintf("title-%d", i), record.Title)
		assert.Equal(t, fmt.Sprintf("body-%d", i), record.Body)
		assert.Equal(t, "09:30:15", record.DisplayTime)
		if i > 0 {
			assert.Greater(t, record.ID, records[i-1].ID)
		}
	}
	assert.Equal(t, fixed.UnixMilli(), records[0].ID)
	fx.renderer.AssertNumberOfCalls(t, "Render", n)
}

func TestLifecycleRouter_HandleForeground_DefaultsAndAlert(t *testing.T) {
	fx := createTestLifecycleRouter(t)
	ctx := context.Background()
	fx.start(ctx, nil)

	fx.renderer.EXPECT().Render(ctx, mock.Anything).Once()
	fx.alerter.EXPECT().Alert(ctx, "📱 Notification Received", "New Notification: You have a new message").Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventForegroundReceived, mock.MatchedBy(func(props map[string]any) bool {
		return props["title"] == "New Notification" && props["has_payload"] == false
	})).Once()

	fx.router.HandleForeground(ctx, nil)

	records := fx.router.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "New Notification", records[0].Title)
	assert.Equal(t, "You have a new message", records[0].Body)
}

func TestLifecycleRouter_HandleBackground_NeverAppends(t *testing.T) {
	fx := createTestLifecycleRouter(t)
	ctx := context.Background()

	msg := &entity.InboundMessage{Title: entity.Text("later"), Data: map[string]string{"k": "v"}}
	fx.renderer.EXPECT().Render(ctx, msg).Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventBackgroundReceived, map[string]any{
		"title":       "later",
		"has_payload": true,
	}).Once()

	fx.router.HandleBackground(ctx, msg)

	assert.Empty(t, fx.router.Records())
}

func TestLifecycleRouter_HandleOpenedFromBackground(t *testing.T) {
	fx := createTestLifecycleRouter(t)
	ctx := context.Background()

	fx.telemetry.EXPECT().Emit(ctx, constants.EventNotificationOpened, map[string]any{
		"from":  "background",
		"title": "Sale",
	}).Once()

	fx.router.HandleOpenedFromBackground(ctx, nil)
	fx.router.HandleOpenedFromBackground(ctx, &entity.InboundMessage{Title: entity.Text("Sale")})

	assert.Empty(t, fx.router.Records())
	fx.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestLifecycleRouter_HandleInitialNotification_QueriesOnce(t *testing.T) {
	fx := createTestLifecycleRouter(t)
	ctx := context.Background()

	fx.provider.EXPECT().GetInitialNotification(ctx).
		Return(&entity.InboundMessage{Title: entity.Text("Launch")}, nil).
		Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventNotificationOpened, map[string]any{
		"from":  "quit",
		"title": "Launch",
	}).Once()

	fx.router.HandleInitialNotification(ctx)
	fx.router.HandleInitialNotification(ctx)

	assert.Empty(t, fx.router.Records())
}

func TestLifecycleRouter_HandleInitialNotification_ErrorIsLogged(t *testing.T) {
	fx := createTestLifecycleRouter(t)
	ctx := context.Background()

	fx.provider.EXPECT().GetInitialNotification(ctx).Return(nil, errors.New("not ready")).Once()

	assert.NotPanics(t, func() { fx.router.HandleInitialNotification(ctx) })
}

func TestLifecycleRouter_Clear(t *testing.T) {
	fx := createTestLifecycleRouter(t)
	ctx := context.Background()
	fx.start(ctx, nil)

	fx.renderer.EXPECT().Render(ctx, mock.Anything)
	fx.alerter.EXPECT().Alert(ctx, mock.Anything, mock.Anything)
	fx.telemetry.EXPECT().Emit(ctx, constants.EventForegroundReceived, mock.Anything)
	fx.telemetry.EXPECT().Emit(ctx, constants.EventNotificationsCleared, map[string]any{"cleared_count": 3}).Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventNotificationsCleared, map[string]any{"cleared_count": 0}).Once()

	for range 3 {
		fx.router.HandleForeground(ctx, nil)
	}

	assert.Equal(t, 3, fx.router.Clear(ctx))
	assert.Empty(t, fx.router.Records())
	assert.Equal(t, 0, fx.router.Clear(ctx))
}

func TestLifecycleRouter_Records_ReturnsSnapshot(t *testing.T) {
	fx := createTestLifecycleRouter(t)
	ctx := context.Background()
	fx.start(ctx, nil)

	fx.renderer.EXPECT().Render(ctx, mock.Anything)
	fx.alerter.EXPECT().Alert(ctx, mock.Anything, mock.Anything)
	fx.telemetry.EXPECT().Emit(ctx, constants.EventForegroundReceived, mock.Anything)

	fx.router.HandleForeground(ctx, &entity.InboundMessage{Title: entity.Text("original")})

	snapshot := fx.router.Records()
	snapshot[0].Title = "mutated"

	assert.Equal(t, "original", fx.router.Records()[0].Title)
}

func TestLifecycleRouter_Unsubscribe_StopsForegroundProcessing(t *testing.T) {
	fx := createTestLifecycleRouter(t)
	ctx := context.Background()

	unsubscribed := 0
	fx.start(ctx, func() { unsubscribed++ })

	fx.router.Unsubscribe()
	fx.router.Unsubscribe()
	fx.router.HandleForeground(ctx, &entity.InboundMessage{Title: entity.Text("late")})

	assert.Equal(t, 1, unsubscribed)
	assert.Empty(t, fx.router.Records())
	fx.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	fx.telemetry.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything)
}

func TestLifecycleRouter_HandleForeground_BeforeStartIsDropped(t *testing.T) {
	fx := createTestLifecycleRouter(t)

	fx.router.HandleForeground(context.Background(), &entity.InboundMessage{})

	assert.Empty(t, fx.router.Records())
}
