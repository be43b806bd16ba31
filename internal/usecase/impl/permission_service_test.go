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

type permissionServiceFixtures struct {
	service   usecase.PermissionUsecase
	provider  *mockSvc.MockPushProvider
	tokens    *mockUC.MockTokenUsecase
	telemetry *mockUC.MockTelemetryUsecase
}

func createTestPermissionService(t *testing.T) permissionServiceFixtures {
	provider := mockSvc.NewMockPushProvider(t)
	tokens := mockUC.NewMockTokenUsecase(t)
	telemetry := mockUC.NewMockTelemetryUsecase(t)

	return permissionServiceFixtures{
		service:   NewPermissionService(newTestLogger(), provider, tokens, telemetry),
		provider:  provider,
		tokens:    tokens,
		telemetry: telemetry,
	}
}

var requestedPermissions = entity.PermissionOptions{Alert: true, Badge: true, Sound: true, Announcement: true}

func TestPermissionService_EnabledStatesAcquireToken(t *testing.T) {
	tests := []struct {
		name   string
		status entity.AuthorizationStatus
		want   entity.PermissionState
	}{
		{"authorized", entity.AuthorizationAuthorized, entity.PermissionAuthorized},
		{"provisional", entity.AuthorizationProvisional, entity.PermissionProvisional},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPermissionService(t)
			ctx := context.Background()

			fx.provider.EXPECT().RequestPermission(ctx, requestedPermissions).Return(tt.status, nil).Once()
			fx.telemetry.EXPECT().Emit(ctx, constants.EventPermissionResolved, mock.Anything).Once()
			fx.tokens.EXPECT().Acquire(ctx).Return(entity.NewDeviceToken("tok")).Once()

			assert.Equal(t, tt.want, fx.service.RequestPermission(ctx))
			assert.Equal(t, tt.want, fx.service.State())
		})
	}
}

func TestPermissionService_DeniedSkipsTokenFetch(t *testing.T) {
	fx := createTestPermissionService(t)
	ctx := context.Background()

	fx.provider.EXPECT().RequestPermission(ctx, requestedPermissions).Return(entity.AuthorizationDenied, nil).Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventPermissionResolved, map[string]any{
		"state":   "denied",
		"enabled": false,
	}).Once()

	assert.Equal(t, entity.PermissionDenied, fx.service.RequestPermission(ctx))
	fx.tokens.AssertNotCalled(t, "Acquire", mock.Anything)
}

func TestPermissionService_ErrorLeavesDenied(t *testing.T) {
	fx := createTestPermissionService(t)
	ctx := context.Background()

	fx.provider.EXPECT().RequestPermission(ctx, requestedPermissions).
		Return(entity.AuthorizationNotDetermined, errors.New("platform unavailable")).
		Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventPermissionFailed, map[string]any{
		"error": "platform unavailable",
	}).Once()

	assert.Equal(t, entity.PermissionDenied, fx.service.RequestPermission(ctx))
	assert.Equal(t, entity.PermissionDenied, fx.service.State())
}

func TestPermissionService_NegotiatesOnlyOnce(t *testing.T) {
	fx := createTestPermissionService(t)
	ctx := context.Background()

	fx.provider.EXPECT().RequestPermission(ctx, requestedPermissions).Return(entity.AuthorizationAuthorized, nil).Once()
	fx.telemetry.EXPECT().Emit(ctx, constants.EventPermissionResolved, mock.Anything).Once()
	fx.tokens.EXPECT().Acquire(ctx).Return(entity.NewDeviceToken("tok")).Once()

	fx.service.RequestPermission(ctx)
	fx.service.RequestPermission(ctx)

	fx.provider.AssertNumberOfCalls(t, "RequestPermission", 1)
}

func TestPermissionService_StateBeforeNegotiation(t *testing.T) {
	fx := createTestPermissionService(t)

	assert.Equal(t, entity.PermissionUndetermined, fx.service.State())
}
