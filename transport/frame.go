package transport

import "time"

// Frame types exchanged with the broker.
const (
	frameWelcome    = "welcome"
	frameMessage    = "message"
	frameInvocation = "invocation"
)

// Invocation and fan-out targets of the broker contract.
const (
	targetJoinGroup      = "JoinGroup"
	targetLeaveSession   = "LeaveSession"
	targetReceiveMessage = "ReceiveMessage"
)

// frame is the JSON envelope for every broker exchange. The broker sends a
// welcome frame carrying the connection id right after the handshake, then
// message frames for the joined group. The client sends invocation frames.
type frame struct {
	Type         string          `json:"type"`
	ConnectionID string          `json:"connectionId,omitempty"`
	InvocationID string          `json:"invocationId,omitempty"`
	Target       string          `json:"target,omitempty"`
	Arguments    []string        `json:"arguments,omitempty"`
	Message      *messagePayload `json:"message,omitempty"`
}

type messagePayload struct {
	SessionID string    `json:"sessionId"`
	SenderID  string    `json:"senderId"`
	Content   string    `json:"content"`
	SentAt    time.Time `json:"sentAt"`
}
