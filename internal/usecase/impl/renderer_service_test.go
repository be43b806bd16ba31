package impl

import (
	"context"
	"testing"

	"pushclient/internal/domain/constants"
	"pushclient/internal/domain/entity"
	mockSvc "pushclient/internal/mocks/service"
	mockUC "pushclient/internal/mocks/usecase"
	"pushclient/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type rendererServiceFixtures struct {
	service   usecase.RendererUsecase
	renderer  *mockSvc.MockLocalRenderer
	channels  *mockUC.MockChannelUsecase
	telemetry *mockUC.MockTelemetryUsecase
}

func createTestRendererService(t *testing.T) rendererServiceFixtures {
	renderer := mockSvc.NewMockLocalRenderer(t)
	channels := mockUC.NewMockChannelUsecase(t)
	telemetry := mockUC.NewMockTelemetryUsecase(t)

	return rendererServiceFixtures{
		service:   NewRendererService(newTestLogger(), renderer, channels, telemetry),
		renderer:  renderer,
		channels:  channels,
		telemetry: telemetry,
	}
}

func (f rendererServiceFixtures) expectChannelReady(ctx context.Context) {
	f.channels.EXPECT().RegisterDefaultChannel(ctx).Return()
	f.channels.EXPECT().Registered().Return(true)
	f.channels.EXPECT().Channel().Return(DefaultChannel(nil))
}

func TestRendererService_Render_AppliesDefaults(t *testing.T) {
	tests := []struct {
		name string
		msg  *entity.InboundMessage
	}{
		{"nil message", nil},
		{"empty message", &entity.InboundMessage{}},
		{"empty strings", &entity.InboundMessage{Title: entity.Text(""), Body: entity.Text("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRendererService(t)
			ctx := context.Background()
			fx.expectChannelReady(ctx)

			fx.renderer.EXPECT().LocalNotification(ctx, mock.MatchedBy(func(n entity.LocalNotification) bool {
				return n.Title == "New Notification" &&
					n.Message == "You have a new message" &&
					n.ChannelID == constants.DefaultChannelID
			})).Return(nil).Once()
			fx.telemetry.EXPECT().Emit(ctx, constants.EventNotificationReceived, map[string]any{
				"title":       "New Notification",
				"body_length": 22,
				"has_payload": false,
			}).Once()

			fx.service.Render(ctx, tt.msg)
		})
	}
}

func TestRendererService_Render_BuildsNotification(t *testing.T) {
	fx := createTestRendererService(t)
	ctx := context.Background()
	fx.expectChannelReady(ctx)

	msg := &entity.InboundMessage{
		MessageID: "m-1",
		Title:     entity.Text("Order shipped"),
		Body:      entity.Text("Arrives tomorrow"),
		Data:      map[string]string{"order_id": "42"},
	}

	var got entity.LocalNotification
	fx.renderer.EXPECT().LocalNotification(ctx, mock.Anything).
		Run(func(_ context.Context, notification entity.LocalNotification) {
			got = notification
		}).
		Return(nil).
		Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventNotificationReceived, map[string]any{
		"title":       "Order shipped",
		"body_length": 16,
		"has_payload": true,
	}).Once()

	fx.service.Render(ctx, msg)

	assert.Equal(t, "Order shipped", got.Title)
	assert.Equal(t, "Arrives tomorrow", got.Message)
	assert.Equal(t, entity.ImportanceMax, got.Importance)
	assert.Equal(t, entity.ImportanceMax, got.Priority)
	assert.True(t, got.PlaySound)
	assert.True(t, got.Vibrate)
	assert.Equal(t, 300, got.VibrationMs)
	assert.Equal(t, []string{"View"}, got.Actions)
	assert.Equal(t, map[string]string{"order_id": "42"}, got.UserInfo)

	got.UserInfo["order_id"] = "changed"
	assert.Equal(t, "42", msg.Data["order_id"])
}

func TestRendererService_Render_ChannelNotRegistered(t *testing.T) {
	fx := createTestRendererService(t)
	ctx := context.Background()

	fx.channels.EXPECT().RegisterDefaultChannel(ctx).Return().Once()
	fx.channels.EXPECT().Registered().Return(false).Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventNotificationRenderError, mock.MatchedBy(func(props map[string]any) bool {
		return props["title"] == "New Notification" && props["error"] != ""
	})).Once()

	assert.NotPanics(t, func() { fx.service.Render(ctx, nil) })
	fx.renderer.AssertNotCalled(t, "LocalNotification", mock.Anything, mock.Anything)
}

func TestRendererService_Render_RendererErrorIsSwallowed(t *testing.T) {
	fx := createTestRendererService(t)
	ctx := context.Background()
	fx.expectChannelReady(ctx)

	fx.renderer.EXPECT().LocalNotification(ctx, mock.Anything).Return(errors.New("display unavailable")).Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventNotificationRenderError, mock.Anything).Once()

	assert.NotPanics(t, func() { fx.service.Render(ctx, &entity.InboundMessage{Title: entity.Text("hi")}) })
	fx.telemetry.AssertNotCalled(t, "Emit", ctx, constants.EventNotificationReceived, mock.Anything)
}

func TestRendererService_Render_RendererPanicIsRecovered(t *testing.T) {
	fx := createTestRendererService(t)
	ctx := context.Background()
	fx.expectChannelReady(ctx)

	fx.renderer.EXPECT().LocalNotification(ctx, mock.Anything).
		Run(func(context.Context, entity.LocalNotification) { panic("native crash") }).
		Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventNotificationRenderError, mock.Anything).Once()

	assert.NotPanics(t, func() { fx.service.Render(ctx, nil) })
}

func TestRendererService_RenderTest(t *testing.T) {
	fx := createTestRendererService(t)
	ctx := context.Background()
	fx.expectChannelReady(ctx)

	fx.renderer.EXPECT().LocalNotification(ctx, mock.MatchedBy(func(n entity.LocalNotification) bool {
		return n.Title == constants.TestNotificationTitle && n.Message == constants.TestNotificationBody
	})).Return(nil).Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventTestLocalNotification, map[string]any(nil)).Once()

	fx.service.RenderTest(ctx)
}

func TestRendererService_RegistersChannelBeforeFirstRender(t *testing.T) {
	renderer := mockSvc.NewMockLocalRenderer(t)
	telemetry := mockUC.NewMockTelemetryUsecase(t)
	channels := NewChannelService(newTestLogger(), renderer, telemetry, newTestConfig())
	svc := NewRendererService(newTestLogger(), renderer, channels, telemetry)
	ctx := context.Background()

	var order []string
	renderer.EXPECT().Configure(mock.Anything).Once()
	renderer.EXPECT().CreateChannel(ctx, mock.Anything).
		Run(func(context.Context, entity.NotificationChannel) { order = append(order, "channel") }).
		Return(true, nil).
		Once()
	renderer.EXPECT().LocalNotification(ctx, mock.Anything).
		Run(func(context.Context, entity.LocalNotification) { order = append(order, "render") }).
		Return(nil).
		Twice()
	telemetry.EXPECT().Emit(ctx, mock.Anything, mock.Anything)

	svc.Render(ctx, nil)
	svc.Render(ctx, nil)

	assert.Equal(t, []string{"channel", "render", "render"}, order)
}
