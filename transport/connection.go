// Package transport owns the single persistent channel to the message
// broker: handshake, automatic reconnection, teardown, and the wiring of
// raw inbound frames into the event bus.
package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"consultation-lab/domain"
	"consultation-lab/domain/event"
	apperrors "consultation-lab/errors"
	"consultation-lab/eventbus"
	"consultation-lab/observability"
)

const welcomeTimeout = 10 * time.Second

// TokenFactory returns the current bearer token. It is re-read on every
// (re)connection attempt so a token refreshed in the meantime is picked up
// transparently instead of a stale capture.
type TokenFactory func() string

// Connection is the realtime channel to the broker. One instance exists
// per authenticated client lifetime; all callers share it through the
// messaging service and never reach into the socket directly.
type Connection struct {
	log     *slog.Logger
	bus     *eventbus.Bus
	stats   *observability.ConnectionStats
	url     string
	token   TokenFactory
	backoff BackoffPolicy
	dialer  *websocket.Dialer

	mu            sync.Mutex
	state         domain.ConnectionState
	conn          *websocket.Conn
	cancel        context.CancelFunc
	connectionID  string
	onReconnected func(connectionID string)
}

func NewConnection(
	log *slog.Logger,
	bus *eventbus.Bus,
	stats *observability.ConnectionStats,
	brokerURL string,
	token TokenFactory,
	backoff BackoffPolicy,
) *Connection {
	if backoff == nil {
		backoff = StepBackoff
	}
	return &Connection{
		log:     log,
		bus:     bus,
		stats:   stats,
		url:     brokerURL,
		token:   token,
		backoff: backoff,
		dialer:  websocket.DefaultDialer,
		state:   domain.Idle,
	}
}

// OnReconnected registers the hook invoked after the channel has been
// re-established, before the Reconnected event reaches the bus. The
// messaging service uses it to restore group membership so fan-out resumes
// for the session that was being viewed.
func (c *Connection) OnReconnected(hook func(connectionID string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onReconnected = hook
}

// Connect performs the handshake and starts the read loop. An empty token
// fails immediately without any network attempt. When the channel is
// already live, being established or being recovered, Connect is a no-op:
// a second socket under one Connection would duplicate fan-out delivery.
// A handshake failure leaves the state Disconnected and is returned to
// the caller; recovery of an established channel is never surfaced this
// way, only as bus events.
func (c *Connection) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.state == domain.Connected || c.state == domain.Connecting || c.state == domain.Reconnecting {
		c.mu.Unlock()
		return nil
	}
	if c.token() == "" {
		// Configuration error: no network attempt is made.
		c.state = domain.Disconnected
		c.mu.Unlock()
		return apperrors.ErrMissingToken
	}
	c.state = domain.Connecting
	c.mu.Unlock()

	ws, connID, err := c.dial(ctx)
	if err != nil {
		c.setState(domain.Disconnected)
		return fmt.Errorf("broker handshake: %w", err)
	}

	// The channel outlives the caller's ctx: navigation away from the
	// screen that connected must not tear it down.
	lifeCtx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	c.conn = ws
	c.cancel = cancel
	c.connectionID = connID
	c.state = domain.Connected
	c.mu.Unlock()

	c.log.Info("Realtime channel connected", "connectionId", connID)
	go c.run(lifeCtx, ws)
	return nil
}

// Disconnect tears the channel down unconditionally. Safe to call when not
// connected, and even while a join or a reconnect attempt is in flight.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.conn != nil {
		_ = c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = c.conn.Close()
		c.conn = nil
	}
	prev := c.state
	c.state = domain.Disconnected
	c.connectionID = ""
	c.mu.Unlock()

	if prev == domain.Connected || prev == domain.Reconnecting {
		c.log.Info("Realtime channel closed")
		c.bus.Emit(event.Disconnected{})
	}
}

func (c *Connection) State() domain.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Connection) IsConnected() bool {
	return c.State() == domain.Connected
}

// ConnectionID returns the broker-assigned id of the current connection,
// empty when the channel is down.
func (c *Connection) ConnectionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectionID
}

// InvokeJoin asks the broker to add this connection to the fan-out group
// of sessionID.
func (c *Connection) InvokeJoin(sessionID string) error {
	return c.invoke(targetJoinGroup, sessionID)
}

// InvokeLeave asks the broker to remove this connection from the fan-out
// group of sessionID.
func (c *Connection) InvokeLeave(sessionID string) error {
	return c.invoke(targetLeaveSession, sessionID)
}

func (c *Connection) invoke(target, sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != domain.Connected || c.conn == nil {
		return apperrors.ErrNotConnected
	}
	return c.conn.WriteJSON(frame{
		Type:         frameInvocation,
		InvocationID: uuid.NewString(),
		Target:       target,
		Arguments:    []string{sessionID},
	})
}

// dial performs the websocket handshake with the current bearer token and
// waits for the broker's welcome frame.
func (c *Connection) dial(ctx context.Context) (*websocket.Conn, string, error) {
	token := c.token()
	if token == "" {
		return nil, "", apperrors.ErrMissingToken
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	ws, _, err := c.dialer.DialContext(ctx, c.url, header)
	if err != nil {
		return nil, "", err
	}

	_ = ws.SetReadDeadline(time.Now().Add(welcomeTimeout))
	var f frame
	if err := ws.ReadJSON(&f); err != nil {
		_ = ws.Close()
		return nil, "", fmt.Errorf("waiting for welcome: %w", err)
	}
	_ = ws.SetReadDeadline(time.Time{})
	if f.Type != frameWelcome {
		_ = ws.Close()
		return nil, "", fmt.Errorf("expected welcome frame, got %q", f.Type)
	}
	return ws, f.ConnectionID, nil
}

// run owns the socket from connect to teardown: it reads frames until the
// channel drops, recovers it, and resumes reading on the new socket. A
// single flat loop keeps the stack bounded however many times the channel
// drops over the client's lifetime.
func (c *Connection) run(ctx context.Context, ws *websocket.Conn) {
	for {
		cause := c.readFrames(ws)
		if ctx.Err() != nil {
			// Deliberate teardown via Disconnect.
			return
		}
		next := c.recover(ctx, cause)
		if next == nil {
			return
		}
		ws = next
	}
}

func (c *Connection) readFrames(ws *websocket.Conn) error {
	for {
		var f frame
		if err := ws.ReadJSON(&f); err != nil {
			return err
		}
		c.handleFrame(f)
	}
}

func (c *Connection) handleFrame(f frame) {
	switch f.Type {
	case frameMessage:
		if f.Target != targetReceiveMessage || f.Message == nil {
			c.log.Warn("Dropping malformed broker frame",
				"target", f.Target, "error", apperrors.ErrInvalidPayload)
			return
		}
		c.stats.IncrMessagesReceived()
		c.bus.Emit(event.MessageReceived{Message: domain.Message{
			SessionID: f.Message.SessionID,
			SenderID:  f.Message.SenderID,
			Content:   f.Message.Content,
			SentAt:    f.Message.SentAt,
		}})
	case frameWelcome:
		c.log.Debug("Unexpected mid-stream welcome frame", "connectionId", f.ConnectionID)
	default:
		c.log.Debug("Ignoring unknown broker frame", "type", f.Type)
	}
}

// recover retries the handshake on the backoff schedule until it succeeds
// or Disconnect cancels the channel, and returns the new socket, or nil on
// cancellation. Attempt failures are never surfaced as errors, only logged;
// the caller keeps working over the request/response path in the meantime.
func (c *Connection) recover(ctx context.Context, cause error) *websocket.Conn {
	c.setState(domain.Reconnecting)
	c.log.Warn("Realtime channel lost, reconnecting", "error", cause)
	c.bus.Emit(event.Reconnecting{Cause: cause})

	for attempt := 0; ; attempt++ {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.backoff(attempt)):
		}

		ws, connID, err := c.dial(ctx)
		if err != nil {
			c.log.Debug("Reconnect attempt failed", "attempt", attempt, "error", err)
			continue
		}

		c.mu.Lock()
		if ctx.Err() != nil {
			// Disconnect raced the successful dial; its teardown has
			// already run, so the fresh socket must not be installed.
			c.mu.Unlock()
			_ = ws.Close()
			return nil
		}
		c.conn = ws
		c.connectionID = connID
		c.state = domain.Connected
		hook := c.onReconnected
		c.mu.Unlock()

		c.stats.IncrReconnects()
		c.log.Info("Realtime channel reconnected", "connectionId", connID, "attempts", attempt+1)
		if hook != nil {
			hook(connID)
		}
		c.bus.Emit(event.Reconnected{ConnectionID: connID})
		return ws
	}
}

func (c *Connection) setState(s domain.ConnectionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = s
}
