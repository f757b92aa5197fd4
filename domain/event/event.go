package event

import (
	"consultation-lab/domain"
)

// Event is implemented by every broker or lifecycle event published on the
// bus. Name is the bus routing key; each variant carries its own payload
// shape so call sites never guess at an untyped map.
type Event interface {
	Name() string
}

// Bus event names observable through the messaging service.
const (
	MessageReceivedName = "messageReceived"
	SessionCreatedName  = "sessionCreated"
	SessionUpdatedName  = "sessionUpdated"
	ReconnectingName    = "reconnecting"
	ReconnectedName     = "reconnected"
	DisconnectedName    = "disconnected"
)

// MessageReceived is fired for every inbound broker message.
type MessageReceived struct {
	Message domain.Message
}

func (MessageReceived) Name() string { return MessageReceivedName }

// SessionCreated is fired after a session is created locally.
type SessionCreated struct {
	Session domain.Session
}

func (SessionCreated) Name() string { return SessionCreatedName }

// SessionUpdated is fired when a single session is refreshed from the server.
type SessionUpdated struct {
	Session domain.Session
}

func (SessionUpdated) Name() string { return SessionUpdatedName }

// Reconnecting is fired when the channel drops and automatic recovery starts.
type Reconnecting struct {
	Cause error
}

func (Reconnecting) Name() string { return ReconnectingName }

// Reconnected is fired once the channel is re-established, after group
// membership has been restored.
type Reconnected struct {
	ConnectionID string
}

func (Reconnected) Name() string { return ReconnectedName }

// Disconnected is fired when the channel is torn down or could not be
// established. Cause is nil for a deliberate disconnect.
type Disconnected struct {
	Cause error
}

func (Disconnected) Name() string { return DisconnectedName }
