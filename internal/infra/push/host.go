// Package push hosts the in-process push runtime: it owns the lifecycle
// state, routes each delivery to the handler registered for that state and
// answers the identity and permission queries of the push provider.
package push

import (
	"context"
	"log/slog"
	"sync"

	"pushclient/config"
	"pushclient/internal/domain/entity"
	"pushclient/internal/domain/service"
	"pushclient/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrPermissionUnavailable is returned when the host is configured to fail permission requests
	ErrPermissionUnavailable = errors.New("notification permission service unavailable")

	// ErrQueueFull is returned by Deliver and Tap when the dispatch queue has no room
	ErrQueueFull = errors.New("push queue full")
)

const (
	defaultQueueSize = 64
	permissionError  = "error"
)

type eventKind int

const (
	eventMessage eventKind = iota
	eventTap
)

// event carries the lifecycle state the app was in when it arrived.
type event struct {
	kind  eventKind
	state entity.LifecycleState
	ctx   context.Context
	msg   *entity.InboundMessage
}

// Host implements service.PushProvider. Deliveries and taps are queued and
// handled one at a time by Run, so handlers observe them in arrival order.
type Host struct {
	logger      *slog.Logger
	permission  string
	staticToken string
	queue       chan event

	mu         sync.Mutex
	state      entity.LifecycleState
	token      string
	foreground service.MessageHandler
	subID      uint64
	background service.MessageHandler
	opened     service.OpenedHandler
	initial    *entity.InboundMessage
}

var _ service.PushProvider = (*Host)(nil)

// NewHost creates the push host from the push configuration
func NewHost(logger *slog.Logger, cfg *config.Config) *Host {
	pushCfg := cfg.Push
	if pushCfg == nil {
		pushCfg = &config.PushConfig{}
	}

	queueSize := pushCfg.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	state, ok := entity.ParseLifecycleState(pushCfg.InitialState)
	if !ok {
		state = entity.StateForeground
	}

	host := &Host{
		logger:      logger,
		permission:  pushCfg.Permission,
		staticToken: pushCfg.Token,
		queue:       make(chan event, queueSize),
		state:       state,
	}

	if launch := pushCfg.LaunchMessage; launch != nil {
		host.initial = &entity.InboundMessage{
			MessageID: uuid.NewString(),
			Title:     optional(launch.Title),
			Body:      optional(launch.Body),
			Data:      launch.Data,
		}
	}

	return host
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// RequestPermission answers with the configured authorization status
func (h *Host) RequestPermission(ctx context.Context, opts entity.PermissionOptions) (entity.AuthorizationStatus, error) {
	h.logger.Debug("[PushHost] Permission requested",
		slog.Bool("alert", opts.Alert),
		slog.Bool("badge", opts.Badge),
		slog.Bool("sound", opts.Sound),
		slog.Bool("announcement", opts.Announcement),
	)

	switch h.permission {
	case "", "authorized":
		return entity.AuthorizationAuthorized, nil
	case "provisional":
		return entity.AuthorizationProvisional, nil
	case "denied":
		return entity.AuthorizationDenied, nil
	case "undetermined":
		return entity.AuthorizationNotDetermined, nil
	case permissionError:
		return entity.AuthorizationNotDetermined, ErrPermissionUnavailable
	default:
		return entity.AuthorizationDenied, nil
	}
}

// GetToken returns the configured token, or a generated one that stays
// stable for the life of the process.
func (h *Host) GetToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WithStack(err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.token == "" {
		h.token = h.staticToken
		if h.token == "" {
			h.token = "local:" + uuid.NewString()
		}
	}

	return h.token, nil
}

// OnMessage installs the foreground handler. A later call replaces the
// previous subscription; a stale unsubscribe func is a no-op.
func (h *Host) OnMessage(handler service.MessageHandler) func() {
	h.mu.Lock()
	h.subID++
	id := h.subID
	h.foreground = handler
	h.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()

			if h.subID == id {
				h.foreground = nil
			}
		})
	}
}

// SetBackgroundMessageHandler installs the background handler
func (h *Host) SetBackgroundMessageHandler(handler service.MessageHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.background = handler
}

// OnNotificationOpenedApp installs the opened-from-background handler
func (h *Host) OnNotificationOpenedApp(handler service.OpenedHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.opened = handler
}

// GetInitialNotification returns the notification that launched the process
func (h *Host) GetInitialNotification(ctx context.Context) (*entity.InboundMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.initial, nil
}

// SetState moves the host to another lifecycle state
func (h *Host) SetState(state entity.LifecycleState) {
	h.mu.Lock()
	prev := h.state
	h.state = state
	h.mu.Unlock()

	if prev != state {
		h.logger.Info("[PushHost] Lifecycle state changed",
			slog.String("from", prev.String()),
			slog.String("to", state.String()),
		)
	}
}

// State returns the current lifecycle state
func (h *Host) State() entity.LifecycleState {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.state
}

// Deliver queues a remote push delivery
func (h *Host) Deliver(ctx context.Context, msg *entity.InboundMessage) error {
	return h.enqueue(ctx, eventMessage, msg)
}

// Tap queues a user tap on a delivered notification
func (h *Host) Tap(ctx context.Context, msg *entity.InboundMessage) error {
	return h.enqueue(ctx, eventTap, msg)
}

// enqueue stamps the event with the current state and queues it without
// blocking. State capture and queueing happen under one lock, so queue order
// matches the order in which states were observed.
func (h *Host) enqueue(ctx context.Context, kind eventKind, msg *entity.InboundMessage) error {
	if msg == nil {
		return errors.New("push host: nil message")
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "enqueue push event")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	ev := event{kind: kind, state: h.state, ctx: context.WithoutCancel(ctx), msg: msg}

	select {
	case h.queue <- ev:
	default:
		return errors.Wrapf(ErrQueueFull, "enqueue message %s", msg.MessageID)
	}

	// A tap opens the app right away; later arrivals see it in the foreground.
	if kind == eventTap && ev.state != entity.StateForeground {
		if ev.state == entity.StateTerminated {
			h.initial = msg
		}
		h.state = entity.StateForeground
		h.logger.Info("[PushHost] Lifecycle state changed",
			slog.String("from", ev.state.String()),
			slog.String("to", entity.StateForeground.String()),
			slog.String("cause", "tap"),
		)
	}

	return nil
}

// Run dispatches queued events until ctx is done
func (h *Host) Run(ctx context.Context) error {
	h.logger.Info("[PushHost] Dispatch loop started", slog.String("state", h.State().String()))

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("[PushHost] Dispatch loop stopped")

			return nil
		case ev := <-h.queue:
			h.dispatch(ev)
		}
	}
}

func (h *Host) dispatch(ev event) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("[PushHost] Handler panicked",
				slog.String("message_id", ev.msg.MessageID),
				slog.Any("panic", r),
			)
		}
	}()

	switch ev.kind {
	case eventMessage:
		h.dispatchMessage(ev.ctx, ev.state, ev.msg)
	case eventTap:
		h.dispatchTap(ev.ctx, ev.state, ev.msg)
	}
}

func (h *Host) dispatchMessage(ctx context.Context, state entity.LifecycleState, msg *entity.InboundMessage) {
	h.mu.Lock()
	foreground := h.foreground
	background := h.background
	h.mu.Unlock()

	switch {
	case state == entity.StateForeground && foreground != nil:
		foreground(ctx, msg)
	case state == entity.StateForeground:
		h.logger.Debug("[PushHost] No foreground subscription, message dropped",
			slog.String("message_id", msg.MessageID),
		)
	case background != nil:
		background(ctx, msg)
	default:
		h.logger.Debug("[PushHost] No background handler, message dropped",
			slog.String("message_id", msg.MessageID),
			slog.String("state", state.String()),
		)
	}
}

// dispatchTap runs the opened handler for a tap that arrived in the
// background. A tap that arrived while terminated was already stored as the
// launch notification by enqueue; once startup has read it, it is only logged.
func (h *Host) dispatchTap(ctx context.Context, state entity.LifecycleState, msg *entity.InboundMessage) {
	h.mu.Lock()
	opened := h.opened
	h.mu.Unlock()

	switch state {
	case entity.StateBackground:
		if opened != nil {
			opened(ctx, msg)
		}
	case entity.StateTerminated:
		h.logger.Info("[PushHost] Launched from notification", slog.String("message_id", msg.MessageID))
	default:
		h.logger.Debug("[PushHost] Tap while in foreground ignored", slog.String("message_id", msg.MessageID))
	}
}
