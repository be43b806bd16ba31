package push

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"pushclient/config"
	"pushclient/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	seen []string
}

func (r *recorder) handler(kind string) func(context.Context, *entity.InboundMessage) {
	return func(_ context.Context, msg *entity.InboundMessage) {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.seen = append(r.seen, kind+":"+msg.MessageID)
	}
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.seen...)
}

func newTestHost(t *testing.T, pushCfg *config.PushConfig) *Host {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	host := NewHost(logger, &config.Config{Push: pushCfg})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = host.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return host
}

func TestHost_RoutesByLifecycleState(t *testing.T) {
	host := newTestHost(t, &config.PushConfig{})
	rec := &recorder{}

	host.OnMessage(rec.handler("fg"))
	host.SetBackgroundMessageHandler(rec.handler("bg"))

	ctx := context.Background()
	require.NoError(t, host.Deliver(ctx, &entity.InboundMessage{MessageID: "1"}))

	host.SetState(entity.StateBackground)
	require.NoError(t, host.Deliver(ctx, &entity.InboundMessage{MessageID: "2"}))

	host.SetState(entity.StateTerminated)
	require.NoError(t, host.Deliver(ctx, &entity.InboundMessage{MessageID: "3"}))

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"fg:1", "bg:2", "bg:3"}, rec.snapshot())
}

func TestHost_ForegroundWithoutSubscriptionDrops(t *testing.T) {
	host := newTestHost(t, &config.PushConfig{})
	rec := &recorder{}

	unsubscribe := host.OnMessage(rec.handler("fg"))
	host.SetBackgroundMessageHandler(rec.handler("bg"))
	unsubscribe()

	ctx := context.Background()
	require.NoError(t, host.Deliver(ctx, &entity.InboundMessage{MessageID: "dropped"}))
	host.SetState(entity.StateBackground)
	require.NoError(t, host.Deliver(ctx, &entity.InboundMessage{MessageID: "kept"}))

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"bg:kept"}, rec.snapshot())
}

func TestHost_StaleUnsubscribeKeepsNewSubscription(t *testing.T) {
	host := newTestHost(t, &config.PushConfig{})
	rec := &recorder{}

	stale := host.OnMessage(rec.handler("old"))
	host.OnMessage(rec.handler("new"))
	stale()

	require.NoError(t, host.Deliver(context.Background(), &entity.InboundMessage{MessageID: "1"}))

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"new:1"}, rec.snapshot())
}

func TestHost_PreservesArrivalOrder(t *testing.T) {
	host := newTestHost(t, &config.PushConfig{QueueSize: 4})
	rec := &recorder{}
	host.OnMessage(rec.handler("fg"))

	const n = 50
	want := make([]string, 0, n)
	for i := range n {
		id := string(rune('A' + i%26))
		want = append(want, "fg:"+id)
		msg := &entity.InboundMessage{MessageID: id}
		require.Eventually(t, func() bool {
			return host.Deliver(context.Background(), msg) == nil
		}, time.Second, time.Millisecond)
	}

	require.Eventually(t, func() bool { return len(rec.snapshot()) == n }, time.Second, 5*time.Millisecond)
	assert.Equal(t, want, rec.snapshot())
}

func TestHost_Tap(t *testing.T) {
	host := newTestHost(t, &config.PushConfig{InitialState: "background"})
	rec := &recorder{}
	host.OnNotificationOpenedApp(rec.handler("opened"))

	ctx := context.Background()
	require.NoError(t, host.Tap(ctx, &entity.InboundMessage{MessageID: "resume"}))
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, entity.StateForeground, host.State())

	host.SetState(entity.StateTerminated)
	require.NoError(t, host.Tap(ctx, &entity.InboundMessage{MessageID: "launch"}))
	require.Eventually(t, func() bool { return host.State() == entity.StateForeground }, time.Second, 5*time.Millisecond)

	initial, err := host.GetInitialNotification(ctx)
	require.NoError(t, err)
	require.NotNil(t, initial)
	assert.Equal(t, "launch", initial.MessageID)
	assert.Equal(t, []string{"opened:resume"}, rec.snapshot())
}

func TestHost_LaunchMessage(t *testing.T) {
	host := newTestHost(t, &config.PushConfig{
		LaunchMessage: &config.LaunchMessage{Title: "Welcome back", Data: map[string]string{"screen": "inbox"}},
	})

	initial, err := host.GetInitialNotification(context.Background())
	require.NoError(t, err)
	require.NotNil(t, initial)
	assert.Equal(t, "Welcome back", initial.TitleOr(""))
	assert.Nil(t, initial.Body)
	assert.Equal(t, "inbox", initial.Data["screen"])
}

func TestHost_RequestPermission(t *testing.T) {
	tests := []struct {
		permission string
		want       entity.AuthorizationStatus
		wantErr    bool
	}{
		{"", entity.AuthorizationAuthorized, false},
		{"authorized", entity.AuthorizationAuthorized, false},
		{"provisional", entity.AuthorizationProvisional, false},
		{"denied", entity.AuthorizationDenied, false},
		{"undetermined", entity.AuthorizationNotDetermined, false},
		{"error", entity.AuthorizationNotDetermined, true},
	}

	for _, tt := range tests {
		t.Run(tt.permission, func(t *testing.T) {
			host := NewHost(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{
				Push: &config.PushConfig{Permission: tt.permission},
			})

			status, err := host.RequestPermission(context.Background(), entity.PermissionOptions{Alert: true})
			assert.Equal(t, tt.want, status)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPermissionUnavailable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHost_GetToken(t *testing.T) {
	ctx := context.Background()

	static := NewHost(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{
		Push: &config.PushConfig{Token: "configured"},
	})
	token, err := static.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "configured", token)

	generated := NewHost(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{})
	first, err := generated.GetToken(ctx)
	require.NoError(t, err)
	second, err := generated.GetToken(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestHost_RoutesByStateAtArrival(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	host := NewHost(logger, &config.Config{Push: &config.PushConfig{}})
	rec := &recorder{}

	host.OnMessage(rec.handler("fg"))
	host.SetBackgroundMessageHandler(rec.handler("bg"))

	ctx := context.Background()
	require.NoError(t, host.Deliver(ctx, &entity.InboundMessage{MessageID: "1"}))
	host.SetState(entity.StateBackground)
	require.NoError(t, host.Deliver(ctx, &entity.InboundMessage{MessageID: "2"}))
	host.SetState(entity.StateForeground)

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = host.Run(runCtx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"fg:1", "bg:2"}, rec.snapshot())
}

func TestHost_TapChangesStateAtArrival(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	host := NewHost(logger, &config.Config{Push: &config.PushConfig{InitialState: "terminated"}})

	ctx := context.Background()
	require.NoError(t, host.Tap(ctx, &entity.InboundMessage{MessageID: "launch"}))

	assert.Equal(t, entity.StateForeground, host.State())
	initial, err := host.GetInitialNotification(ctx)
	require.NoError(t, err)
	require.NotNil(t, initial)
	assert.Equal(t, "launch", initial.MessageID)
}

func TestHost_FullQueueFailsFast(t *testing.T) {
	host := NewHost(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{
		Push: &config.PushConfig{QueueSize: 1, InitialState: "background"},
	})

	ctx := context.Background()
	require.NoError(t, host.Deliver(ctx, &entity.InboundMessage{MessageID: "1"}))

	errCh := make(chan error, 2)
	go func() {
		errCh <- host.Deliver(ctx, &entity.InboundMessage{MessageID: "2"})
		errCh <- host.Tap(ctx, &entity.InboundMessage{MessageID: "3"})
	}()

	for range 2 {
		select {
		case err := <-errCh:
			assert.ErrorIs(t, err, ErrQueueFull)
		case <-time.After(time.Second):
			t.Fatal("enqueue on a full queue blocked")
		}
	}

	// A tap that was not queued leaves the state alone.
	assert.Equal(t, entity.StateBackground, host.State())
}

func TestHost_CanceledContextIsRejected(t *testing.T) {
	host := NewHost(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, host.Deliver(ctx, &entity.InboundMessage{MessageID: "1"}), context.Canceled)
}

func TestDecodePayload(t *testing.T) {
	msg, err := DecodePayload([]byte(`{"messageId":"m1","notification":{"title":"Hi"},"data":{"k":"v"}}`))
	require.NoError(t, err)

	assert.Equal(t, "m1", msg.MessageID)
	assert.Equal(t, "Hi", msg.TitleOr(""))
	assert.Nil(t, msg.Body)
	assert.Equal(t, map[string]string{"k": "v"}, msg.Data)

	_, err = DecodePayload([]byte(`{`))
	assert.Error(t, err)
}
