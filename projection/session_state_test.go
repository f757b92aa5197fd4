package projection

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"consultation-lab/domain"
	"consultation-lab/domain/event"
	"consultation-lab/mocks"
)

func newStateFixture(t *testing.T) (*SessionState, *mocks.MockMessenger) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockMessenger(ctrl)
	svc.EXPECT().On(gomock.Any(), gomock.Any()).Times(5)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return NewSessionState(log, svc, time.Second), svc
}

func TestSessionState_MessageAppendedInArrivalOrder(t *testing.T) {
	state, _ := newStateFixture(t)
	state.SelectSession(domain.Session{ID: "session-1"})

	later := time.Now()
	earlier := later.Add(-time.Minute)
	state.onMessageReceived(event.MessageReceived{Message: domain.Message{
		SessionID: "session-1", Content: "second", SentAt: later,
	}})
	state.onMessageReceived(event.MessageReceived{Message: domain.Message{
		SessionID: "session-1", Content: "first", SentAt: earlier,
	}})

	snapshot := state.Snapshot()
	require.Len(t, snapshot.Messages, 2)
	// Arrival order wins over SentAt.
	require.Equal(t, "second", snapshot.Messages[0].Content)
	require.Equal(t, "first", snapshot.Messages[1].Content)
}

func TestSessionState_MessageForOtherSessionIsDropped(t *testing.T) {
	state, _ := newStateFixture(t)
	state.SelectSession(domain.Session{ID: "session-1"})

	state.onMessageReceived(event.MessageReceived{Message: domain.Message{
		SessionID: "session-2", Content: "stray",
	}})

	require.Empty(t, state.Snapshot().Messages)
}

func TestSessionState_SessionCreatedPrepends(t *testing.T) {
	state, svc := newStateFixture(t)
	svc.EXPECT().GetUserSessions(gomock.Any()).Return([]domain.Session{
		{ID: "session-1"}, {ID: "session-2"},
	}, nil)
	require.NoError(t, state.LoadSessions(context.Background()))

	state.onSessionCreated(event.SessionCreated{Session: domain.Session{ID: "session-3"}})

	snapshot := state.Snapshot()
	require.Equal(t, "session-3", snapshot.Sessions[0].ID)
	require.Equal(t, "session-1", snapshot.Sessions[1].ID)
	require.Equal(t, "session-2", snapshot.Sessions[2].ID)
}

func TestSessionState_SessionUpdatedReplacesInPlace(t *testing.T) {
	state, svc := newStateFixture(t)
	svc.EXPECT().GetUserSessions(gomock.Any()).Return([]domain.Session{
		{ID: "session-1", CounterpartName: "Old"}, {ID: "session-2"},
	}, nil)
	require.NoError(t, state.LoadSessions(context.Background()))

	state.onSessionUpdated(event.SessionUpdated{Session: domain.Session{
		ID: "session-1", CounterpartName: "New",
	}})

	snapshot := state.Snapshot()
	require.Equal(t, "New", snapshot.Sessions[0].CounterpartName)
	require.Equal(t, "session-2", snapshot.Sessions[1].ID)
}

func TestSessionState_ConnectionFlagsFollowLifecycleEvents(t *testing.T) {
	state, _ := newStateFixture(t)

	state.onDisconnected(event.Disconnected{})
	snapshot := state.Snapshot()
	require.False(t, snapshot.Connected)
	require.NotEmpty(t, snapshot.LastError)

	state.onReconnected(event.Reconnected{ConnectionID: "conn-2"})
	snapshot = state.Snapshot()
	require.True(t, snapshot.Connected)
	require.Empty(t, snapshot.LastError)
}

func TestSessionState_SelectSessionClearsMessagesImmediately(t *testing.T) {
	state, _ := newStateFixture(t)
	state.SelectSession(domain.Session{ID: "session-1"})
	state.onMessageReceived(event.MessageReceived{Message: domain.Message{
		SessionID: "session-1", Content: "hello",
	}})
	require.Len(t, state.Snapshot().Messages, 1)

	state.SelectSession(domain.Session{ID: "session-2"})

	snapshot := state.Snapshot()
	require.Empty(t, snapshot.Messages)
	require.Equal(t, "session-2", snapshot.Active.ID)
}

func TestSessionState_StaleLoadIsDiscardedAfterReselection(t *testing.T) {
	state, svc := newStateFixture(t)
	state.SelectSession(domain.Session{ID: "session-2"})

	// A refetch for session-1 resolving late must not repopulate the list.
	svc.EXPECT().GetUserSessionMessages(gomock.Any(), "session-1").Return([]domain.Message{
		{SessionID: "session-1", Content: "stale"},
	}, nil)
	messages, err := svc.GetUserSessionMessages(context.Background(), "session-1")
	require.NoError(t, err)
	state.replaceMessages("session-1", messages)

	require.Empty(t, state.Snapshot().Messages)
}

func TestSessionState_SendMessageSchedulesDelayedRefetch(t *testing.T) {
	state, svc := newStateFixture(t)
	state.SelectSession(domain.Session{ID: "session-1"})

	var scheduledDelay time.Duration
	var scheduledFn func()
	state.schedule = func(delay time.Duration, fn func()) {
		scheduledDelay = delay
		scheduledFn = fn
	}

	svc.EXPECT().SendMessage(gomock.Any(), "guardian-7", "session-1", "hello").Return(nil)
	require.NoError(t, state.SendMessage(context.Background(), "guardian-7", "session-1", "hello"))

	// The refetch is scheduled, not executed inline.
	require.Equal(t, time.Second, scheduledDelay)
	require.NotNil(t, scheduledFn)
	require.Empty(t, state.Snapshot().Messages)

	svc.EXPECT().GetUserSessionMessages(gomock.Any(), "session-1").Return([]domain.Message{
		{SessionID: "session-1", SenderID: "guardian-7", Content: "hello"},
	}, nil)
	scheduledFn()

	snapshot := state.Snapshot()
	require.Len(t, snapshot.Messages, 1)
	require.Equal(t, "hello", snapshot.Messages[0].Content)
}

func TestSessionState_SendMessageFailurePropagatesWithoutRefetch(t *testing.T) {
	state, svc := newStateFixture(t)

	scheduled := false
	state.schedule = func(delay time.Duration, fn func()) { scheduled = true }

	svc.EXPECT().SendMessage(gomock.Any(), "guardian-7", "session-1", "hello").
		Return(context.DeadlineExceeded)

	err := state.SendMessage(context.Background(), "guardian-7", "session-1", "hello")

	require.Error(t, err)
	require.False(t, scheduled)
}

func TestSessionState_CloseUnsubscribesReducers(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockMessenger(ctrl)
	svc.EXPECT().On(gomock.Any(), gomock.Any()).Times(5)
	svc.EXPECT().Off(gomock.Any(), gomock.Any()).Times(5)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	state := NewSessionState(log, svc, time.Second)
	state.Close()
}
