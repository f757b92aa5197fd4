// Package domain contains core concepts of the consultation messaging client.
// Sessions and messages are immutable snapshots of server state.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// Session is one ongoing conversation thread between a guardian-side party
// and a center-side party. The ID is opaque and stable for the lifetime of
// the conversation.
type Session struct {
	ID                   string
	CounterpartName      string
	CounterpartOwnerName string
	CreatedAt            time.Time
}

// Message is a single chat turn within a session.
type Message struct {
	SessionID string
	SenderID  string
	Content   string
	SentAt    time.Time
}
