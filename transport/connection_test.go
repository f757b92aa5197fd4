package transport

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"consultation-lab/domain"
	"consultation-lab/domain/event"
	apperrors "consultation-lab/errors"
	"consultation-lab/eventbus"
	"consultation-lab/observability"
)

// testBroker is a minimal broker endpoint: it upgrades, sends a welcome
// frame and records every inbound invocation.
type testBroker struct {
	t        *testing.T
	upgrader websocket.Upgrader

	mu          sync.Mutex
	conns       []*websocket.Conn
	invocations chan frame
	handshakes  int
	lastToken   string
}

func newTestBroker(t *testing.T) *testBroker {
	return &testBroker{t: t, invocations: make(chan frame, 16)}
}

func (b *testBroker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.handshakes++
	connNumber := b.handshakes
	b.lastToken = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	b.mu.Unlock()

	ws, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	b.mu.Lock()
	b.conns = append(b.conns, ws)
	b.mu.Unlock()

	welcome := frame{Type: frameWelcome, ConnectionID: "conn-" + strconv.Itoa(connNumber)}
	if err := ws.WriteJSON(welcome); err != nil {
		return
	}

	for {
		var f frame
		if err := ws.ReadJSON(&f); err != nil {
			return
		}
		b.invocations <- f
	}
}

func (b *testBroker) send(f frame) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ws := b.conns[len(b.conns)-1]
	require.NoError(b.t, ws.WriteJSON(f))
}

func (b *testBroker) dropCurrent() {
	b.mu.Lock()
	defer b.mu.Unlock()
	_ = b.conns[len(b.conns)-1].Close()
}

func (b *testBroker) lastBearer() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastToken
}

func (b *testBroker) handshakeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handshakes
}

func newTestConnection(t *testing.T, broker *testBroker, token TokenFactory) (*Connection, *eventbus.Bus) {
	immediate := func(attempt int) time.Duration { return 0 }
	return newTestConnectionWithBackoff(t, broker, token, immediate)
}

func newTestConnectionWithBackoff(
	t *testing.T, broker *testBroker, token TokenFactory, backoff BackoffPolicy,
) (*Connection, *eventbus.Bus) {
	srv := httptest.NewServer(broker)
	t.Cleanup(srv.Close)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	bus := eventbus.New(log)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn := NewConnection(log, bus, observability.NewConnectionStats(), url, token, backoff)
	t.Cleanup(conn.Disconnect)
	return conn, bus
}

func staticToken(token string) TokenFactory {
	return func() string { return token }
}

func TestConnection_ConnectWithoutTokenFailsFast(t *testing.T) {
	broker := newTestBroker(t)
	conn, _ := newTestConnection(t, broker, staticToken(""))

	err := conn.Connect(context.Background())

	require.ErrorIs(t, err, apperrors.ErrMissingToken)
	require.Equal(t, domain.Disconnected, conn.State())
	// No network attempt was made.
	require.Equal(t, 0, broker.handshakeCount())
}

func TestConnection_ConnectAndReceiveMessage(t *testing.T) {
	broker := newTestBroker(t)
	conn, bus := newTestConnection(t, broker, staticToken("token-abc"))

	received := make(chan domain.Message, 1)
	bus.On(event.MessageReceivedName, func(e event.Event) {
		received <- e.(event.MessageReceived).Message
	})

	require.NoError(t, conn.Connect(context.Background()))
	require.Equal(t, domain.Connected, conn.State())
	require.Equal(t, "token-abc", broker.lastBearer())

	broker.send(frame{
		Type:   frameMessage,
		Target: targetReceiveMessage,
		Message: &messagePayload{
			SessionID: "session-1",
			SenderID:  "guardian-7",
			Content:   "hello",
		},
	})

	select {
	case msg := <-received:
		require.Equal(t, "session-1", msg.SessionID)
		require.Equal(t, "guardian-7", msg.SenderID)
		require.Equal(t, "hello", msg.Content)
	case <-time.After(3 * time.Second):
		t.Fatal("no message reached the bus")
	}
}

func TestConnection_ConnectTwiceIsNoop(t *testing.T) {
	broker := newTestBroker(t)
	conn, _ := newTestConnection(t, broker, staticToken("token-abc"))

	require.NoError(t, conn.Connect(context.Background()))
	require.NoError(t, conn.Connect(context.Background()))

	require.Equal(t, 1, broker.handshakeCount())
}

func TestConnection_InvokeJoinSendsInvocationFrame(t *testing.T) {
	broker := newTestBroker(t)
	conn, _ := newTestConnection(t, broker, staticToken("token-abc"))

	require.NoError(t, conn.Connect(context.Background()))
	require.NoError(t, conn.InvokeJoin("session-9"))

	select {
	case f := <-broker.invocations:
		require.Equal(t, frameInvocation, f.Type)
		require.Equal(t, targetJoinGroup, f.Target)
		require.Equal(t, []string{"session-9"}, f.Arguments)
		require.NotEmpty(t, f.InvocationID)
	case <-time.After(3 * time.Second):
		t.Fatal("broker never saw the invocation")
	}
}

func TestConnection_InvokeWhileDownReturnsNotConnected(t *testing.T) {
	broker := newTestBroker(t)
	conn, _ := newTestConnection(t, broker, staticToken("token-abc"))

	require.ErrorIs(t, conn.InvokeJoin("session-9"), apperrors.ErrNotConnected)
}

func TestConnection_DisconnectIsIdempotent(t *testing.T) {
	broker := newTestBroker(t)
	conn, _ := newTestConnection(t, broker, staticToken("token-abc"))

	require.NoError(t, conn.Connect(context.Background()))
	conn.Disconnect()
	conn.Disconnect()

	require.Equal(t, domain.Disconnected, conn.State())
	require.Empty(t, conn.ConnectionID())
}

func TestConnection_ReconnectsAfterDropAndRunsHook(t *testing.T) {
	broker := newTestBroker(t)
	conn, bus := newTestConnection(t, broker, staticToken("token-abc"))

	reconnecting := make(chan struct{}, 1)
	reconnected := make(chan string, 1)
	hooked := make(chan string, 1)
	bus.On(event.ReconnectingName, func(e event.Event) { reconnecting <- struct{}{} })
	bus.On(event.ReconnectedName, func(e event.Event) {
		reconnected <- e.(event.Reconnected).ConnectionID
	})
	conn.OnReconnected(func(connectionID string) { hooked <- connectionID })

	require.NoError(t, conn.Connect(context.Background()))
	broker.dropCurrent()

	select {
	case <-reconnecting:
	case <-time.After(3 * time.Second):
		t.Fatal("reconnecting event never fired")
	}

	var hookID string
	select {
	case hookID = <-hooked:
	case <-time.After(3 * time.Second):
		t.Fatal("reconnected hook never ran")
	}

	select {
	case busID := <-reconnected:
		// The rejoin hook runs before the bus event is published.
		require.Equal(t, hookID, busID)
	case <-time.After(3 * time.Second):
		t.Fatal("reconnected event never fired")
	}

	require.Equal(t, domain.Connected, conn.State())
	require.GreaterOrEqual(t, broker.handshakeCount(), 2)
}

func TestConnection_ConnectDuringRecoveryIsNoop(t *testing.T) {
	broker := newTestBroker(t)
	// A recovery attempt parked on a long backoff keeps the channel in the
	// Reconnecting state for the whole test.
	parked := func(attempt int) time.Duration { return time.Hour }
	conn, bus := newTestConnectionWithBackoff(t, broker, staticToken("token-abc"), parked)

	reconnecting := make(chan struct{}, 1)
	bus.On(event.ReconnectingName, func(e event.Event) { reconnecting <- struct{}{} })

	require.NoError(t, conn.Connect(context.Background()))
	broker.dropCurrent()

	select {
	case <-reconnecting:
	case <-time.After(3 * time.Second):
		t.Fatal("reconnecting event never fired")
	}

	// Recovery owns the channel now: a manual Connect must not open a
	// second socket alongside it.
	require.NoError(t, conn.Connect(context.Background()))

	require.Equal(t, domain.Reconnecting, conn.State())
	require.Equal(t, 1, broker.handshakeCount())
}

func TestConnection_DisconnectDuringRecoveryKeepsChannelDown(t *testing.T) {
	broker := newTestBroker(t)
	release := make(chan struct{})
	gated := func(attempt int) time.Duration {
		<-release
		return 0
	}
	conn, bus := newTestConnectionWithBackoff(t, broker, staticToken("token-abc"), gated)

	reconnecting := make(chan struct{}, 1)
	reconnected := make(chan string, 1)
	bus.On(event.ReconnectingName, func(e event.Event) { reconnecting <- struct{}{} })
	bus.On(event.ReconnectedName, func(e event.Event) {
		reconnected <- e.(event.Reconnected).ConnectionID
	})

	require.NoError(t, conn.Connect(context.Background()))
	broker.dropCurrent()

	select {
	case <-reconnecting:
	case <-time.After(3 * time.Second):
		t.Fatal("reconnecting event never fired")
	}

	// Teardown first, then let the recovery attempt proceed: whether it
	// gets as far as a fresh handshake or not, the channel must stay down.
	conn.Disconnect()
	close(release)

	select {
	case <-reconnected:
		t.Fatal("channel came back after deliberate teardown")
	case <-time.After(300 * time.Millisecond):
	}
	require.Equal(t, domain.Disconnected, conn.State())
	require.Empty(t, conn.ConnectionID())
}

func TestConnection_SurvivesRepeatedDropRecoverCycles(t *testing.T) {
	broker := newTestBroker(t)
	conn, bus := newTestConnection(t, broker, staticToken("token-abc"))

	reconnected := make(chan string, 4)
	received := make(chan domain.Message, 4)
	bus.On(event.ReconnectedName, func(e event.Event) {
		reconnected <- e.(event.Reconnected).ConnectionID
	})
	bus.On(event.MessageReceivedName, func(e event.Event) {
		received <- e.(event.MessageReceived).Message
	})

	require.NoError(t, conn.Connect(context.Background()))
	for cycle := 0; cycle < 3; cycle++ {
		broker.dropCurrent()
		select {
		case <-reconnected:
		case <-time.After(3 * time.Second):
			t.Fatalf("channel never recovered from drop %d", cycle+1)
		}
	}
	require.Equal(t, 4, broker.handshakeCount())

	// One logical channel survives the cycles: a broker fan-out reaches
	// the bus exactly once.
	broker.send(frame{
		Type:   frameMessage,
		Target: targetReceiveMessage,
		Message: &messagePayload{
			SessionID: "session-1",
			SenderID:  "guardian-7",
			Content:   "still here",
		},
	})

	select {
	case msg := <-received:
		require.Equal(t, "still here", msg.Content)
	case <-time.After(3 * time.Second):
		t.Fatal("no message reached the bus")
	}
	select {
	case <-received:
		t.Fatal("message delivered more than once")
	case <-time.After(300 * time.Millisecond):
	}
}
