//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"consultation-lab/domain"
	"consultation-lab/eventbus"
)

// ConsultationAPI is the request/response client for the consultation
// endpoints. All session and message CRUD plus every send goes through it,
// regardless of channel health.
type ConsultationAPI interface {
	CreateSession(ctx context.Context, parentProfileID, centerProfileID string) (domain.Session, error)
	UserSessions(ctx context.Context) ([]domain.Session, error)
	SessionMessages(ctx context.Context, sessionID string) ([]domain.Message, error)
	SendMessage(ctx context.Context, sessionID, content string) error
	Session(ctx context.Context, sessionID string) (domain.Session, error)
}

// GroupInvoker is the slice of the transport the group manager drives.
// The manager never owns the channel, it only issues membership calls.
type GroupInvoker interface {
	InvokeJoin(sessionID string) error
	InvokeLeave(sessionID string) error
	IsConnected() bool
}

// RealtimeChannel is the transport lifecycle as the messaging service
// sees it.
type RealtimeChannel interface {
	Connect(ctx context.Context) error
	Disconnect()
	State() domain.ConnectionState
	OnReconnected(hook func(connectionID string))
}

// Messenger is the slice of the messaging service the state store drives:
// event subscription plus the request/response operations it compensates
// with.
type Messenger interface {
	On(name string, callback eventbus.Callback)
	Off(name string, callback eventbus.Callback)
	SendMessage(ctx context.Context, senderID, sessionID, content string) error
	GetUserSessions(ctx context.Context) ([]domain.Session, error)
	GetUserSessionMessages(ctx context.Context, sessionID string) ([]domain.Message, error)
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual naming
// in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
