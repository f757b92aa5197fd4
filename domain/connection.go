package domain

// ConnectionState describes the realtime channel lifecycle. Exactly one
// channel exists per authenticated client lifetime.
type ConnectionState int

const (
	Idle ConnectionState = iota
	Connecting
	Connected
	Reconnecting
	Disconnected
)

func (s ConnectionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Reconnecting:
		return "reconnecting"
	case Disconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}
