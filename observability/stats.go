// Package observability aggregates realtime-client counters for logging
// and diagnostics. Counters are atomic so every component can record
// without coordination.
package observability

import "sync/atomic"

// ConnectionStats is the counter sink injected into the transport, the
// group manager and the messaging service.
type ConnectionStats struct {
	messagesReceived uint64
	messagesSent     uint64
	reconnects       uint64
	groupJoins       uint64
	groupLeaves      uint64
	groupErrors      uint64
	apiErrors        uint64
}

func NewConnectionStats() *ConnectionStats {
	return &ConnectionStats{}
}

func (s *ConnectionStats) IncrMessagesReceived() { atomic.AddUint64(&s.messagesReceived, 1) }
func (s *ConnectionStats) IncrMessagesSent()     { atomic.AddUint64(&s.messagesSent, 1) }
func (s *ConnectionStats) IncrReconnects()       { atomic.AddUint64(&s.reconnects, 1) }
func (s *ConnectionStats) IncrGroupJoins()       { atomic.AddUint64(&s.groupJoins, 1) }
func (s *ConnectionStats) IncrGroupLeaves()      { atomic.AddUint64(&s.groupLeaves, 1) }
func (s *ConnectionStats) IncrGroupErrors()      { atomic.AddUint64(&s.groupErrors, 1) }
func (s *ConnectionStats) IncrAPIErrors()        { atomic.AddUint64(&s.apiErrors, 1) }

// Snapshot is a point-in-time copy of every counter.
type Snapshot struct {
	MessagesReceived uint64 `json:"messages_received"`
	MessagesSent     uint64 `json:"messages_sent"`
	Reconnects       uint64 `json:"reconnects"`
	GroupJoins       uint64 `json:"group_joins"`
	GroupLeaves      uint64 `json:"group_leaves"`
	GroupErrors      uint64 `json:"group_errors"`
	APIErrors        uint64 `json:"api_errors"`
}

func (s *ConnectionStats) GetLatest() Snapshot {
	return Snapshot{
		MessagesReceived: atomic.LoadUint64(&s.messagesReceived),
		MessagesSent:     atomic.LoadUint64(&s.messagesSent),
		Reconnects:       atomic.LoadUint64(&s.reconnects),
		GroupJoins:       atomic.LoadUint64(&s.groupJoins),
		GroupLeaves:      atomic.LoadUint64(&s.groupLeaves),
		GroupErrors:      atomic.LoadUint64(&s.groupErrors),
		APIErrors:        atomic.LoadUint64(&s.apiErrors),
	}
}
