// Package services exposes the public operations of the consultation
// messaging client: channel lifecycle, session CRUD and message sending.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"consultation-lab/auth"
	"consultation-lab/contract"
	"consultation-lab/domain"
	"consultation-lab/domain/event"
	apperrors "consultation-lab/errors"
	"consultation-lab/eventbus"
	"consultation-lab/observability"
)

var validate = validator.New()

// SendMessageCommand is validated before any network call. The server
// enforces the same limits; validating client-side keeps obviously broken
// input from burning a round trip.
type SendMessageCommand struct {
	SenderID  string `validate:"required"`
	SessionID string `validate:"required"`
	Content   string `validate:"required,max=2000"`
}

// MessagingService orchestrates the realtime channel, group membership and
// the request/response client. Construct exactly one instance per
// authenticated client session and inject it into the state layer.
type MessagingService struct {
	log     *slog.Logger
	bus     *eventbus.Bus
	channel contract.RealtimeChannel
	groups  *GroupManager
	api     contract.ConsultationAPI
	tokens  *auth.TokenProvider
	stats   *observability.ConnectionStats
}

func NewMessagingService(
	log *slog.Logger,
	bus *eventbus.Bus,
	channel contract.RealtimeChannel,
	groups *GroupManager,
	api contract.ConsultationAPI,
	tokens *auth.TokenProvider,
	stats *observability.ConnectionStats,
) *MessagingService {
	s := &MessagingService{
		log:     log,
		bus:     bus,
		channel: channel,
		groups:  groups,
		api:     api,
		tokens:  tokens,
		stats:   stats,
	}
	// Restore membership before the Reconnected event reaches the bus, so
	// subscribers observe a channel whose fan-out scope is already correct.
	channel.OnReconnected(func(connectionID string) {
		s.groups.Rejoin()
	})
	return s
}

// Connect stores the bearer token and starts the realtime channel. A
// missing token is a configuration error and is returned. A transport
// failure is not: it degrades to request/response mode, because listing
// sessions and sending messages must keep working regardless of channel
// health. The degradation is published as a Disconnected event.
func (s *MessagingService) Connect(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrMissingToken
	}
	s.tokens.Set(token)

	if err := s.channel.Connect(ctx); err != nil {
		if errors.Is(err, apperrors.ErrMissingToken) {
			return err
		}
		s.log.Warn("Realtime channel unavailable, degrading to request/response", "error", err)
		s.bus.Emit(event.Disconnected{Cause: err})
		return nil
	}
	return nil
}

// Disconnect tears down the channel and clears group bookkeeping. Safe to
// call when not connected.
func (s *MessagingService) Disconnect() {
	s.groups.Reset()
	s.channel.Disconnect()
}

// State reports the current channel state.
func (s *MessagingService) State() domain.ConnectionState {
	return s.channel.State()
}

// CreateSession opens a conversation between a guardian profile and a
// center profile over the request/response path and publishes a
// SessionCreated event. The channel is not touched.
func (s *MessagingService) CreateSession(ctx context.Context, parentProfileID, centerProfileID string) (domain.Session, error) {
	session, err := s.api.CreateSession(ctx, parentProfileID, centerProfileID)
	if err != nil {
		s.stats.IncrAPIErrors()
		return domain.Session{}, err
	}
	s.bus.Emit(event.SessionCreated{Session: session})
	return session, nil
}

// GetUserSessions lists the sessions of the authenticated party.
func (s *MessagingService) GetUserSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.api.UserSessions(ctx)
	if err != nil {
		s.stats.IncrAPIErrors()
		return nil, err
	}
	return sessions, nil
}

// GetUserSessionMessages returns the message history of one session.
func (s *MessagingService) GetUserSessionMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	messages, err := s.api.SessionMessages(ctx, sessionID)
	if err != nil {
		s.stats.IncrAPIErrors()
		return nil, err
	}
	return messages, nil
}

// RefreshSession fetches a single session and publishes a SessionUpdated
// event so list views replace the stale entry in place.
func (s *MessagingService) RefreshSession(ctx context.Context, sessionID string) (domain.Session, error) {
	session, err := s.api.Session(ctx, sessionID)
	if err != nil {
		s.stats.IncrAPIErrors()
		return domain.Session{}, err
	}
	s.bus.Emit(event.SessionUpdated{Session: session})
	return session, nil
}

// SendMessage always goes over the request/response path, never over the
// channel, even when connected. The channel is read-only fan-out for this
// system; correctness never depends on its availability for sending.
func (s *MessagingService) SendMessage(ctx context.Context, senderID, sessionID, content string) error {
	cmd := SendMessageCommand{SenderID: senderID, SessionID: sessionID, Content: content}
	if err := validate.Struct(cmd); err != nil {
		return err
	}
	if err := s.api.SendMessage(ctx, sessionID, content); err != nil {
		s.stats.IncrAPIErrors()
		return err
	}
	s.stats.IncrMessagesSent()
	return nil
}

// JoinSession subscribes the channel to a conversation's fan-out group.
// Best-effort; see GroupManager.
func (s *MessagingService) JoinSession(sessionID string) {
	s.groups.JoinSession(sessionID)
}

// LeaveSession unsubscribes from a conversation's fan-out group.
func (s *MessagingService) LeaveSession(sessionID string) {
	s.groups.LeaveSession(sessionID)
}

// On registers callback for one of the bus events. This is the sole way
// external code observes messageReceived, sessionCreated, sessionUpdated,
// reconnecting, reconnected and disconnected.
func (s *MessagingService) On(name string, callback eventbus.Callback) {
	s.bus.On(name, callback)
}

// Off removes a previously registered callback.
func (s *MessagingService) Off(name string, callback eventbus.Callback) {
	s.bus.Off(name, callback)
}
