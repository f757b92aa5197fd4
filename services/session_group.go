package services

import (
	"log/slog"
	"sync"

	"consultation-lab/contract"
	"consultation-lab/observability"
)

// GroupManager tracks which single session the channel is subscribed to
// server-side. Join and leave are serialized under one mutex so at most one
// membership is ever active: a join for session B while session A is active
// always issues leave(A) before join(B). Reversing that order would let the
// broker attribute fan-out for two conversations to one connection, and
// messages from a previously viewed conversation would keep appearing after
// the user navigates away.
type GroupManager struct {
	log     *slog.Logger
	invoker contract.GroupInvoker
	stats   *observability.ConnectionStats

	mu     sync.Mutex
	active string
}

func NewGroupManager(log *slog.Logger, invoker contract.GroupInvoker, stats *observability.ConnectionStats) *GroupManager {
	return &GroupManager{log: log, invoker: invoker, stats: stats}
}

// JoinSession subscribes the channel to sessionID, leaving the previous
// session first. Membership is best-effort: when the channel is down this
// is a logged no-op and the caller keeps working over the request/response
// path. Invoke errors are swallowed for the same reason; the UI must never
// block on transport health.
func (g *GroupManager) JoinSession(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.invoker.IsConnected() {
		g.log.Info("Channel down, skipping group join", "session", sessionID)
		return
	}
	if g.active != "" && g.active != sessionID {
		g.leave(g.active)
	}
	g.active = sessionID
	g.stats.IncrGroupJoins()
	if err := g.invoker.InvokeJoin(sessionID); err != nil {
		g.stats.IncrGroupErrors()
		g.log.Warn("Group join failed", "session", sessionID, "error", err)
	}
}

// LeaveSession unsubscribes from sessionID. A leave for a session that is
// not the active membership is a no-op. The recorded membership is always
// cleared when it matches, even if the server call fails.
func (g *GroupManager) LeaveSession(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active != sessionID {
		return
	}
	g.leave(sessionID)
}

// leave clears the membership and issues the server call. Callers hold g.mu.
func (g *GroupManager) leave(sessionID string) {
	g.active = ""
	if !g.invoker.IsConnected() {
		g.log.Info("Channel down, skipping group leave", "session", sessionID)
		return
	}
	g.stats.IncrGroupLeaves()
	if err := g.invoker.InvokeLeave(sessionID); err != nil {
		g.stats.IncrGroupErrors()
		g.log.Warn("Group leave failed", "session", sessionID, "error", err)
	}
}

// Rejoin re-issues the join for the last active session after the channel
// came back. No-op when nothing was active.
func (g *GroupManager) Rejoin() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active == "" {
		return
	}
	g.stats.IncrGroupJoins()
	if err := g.invoker.InvokeJoin(g.active); err != nil {
		g.stats.IncrGroupErrors()
		g.log.Warn("Group rejoin failed", "session", g.active, "error", err)
	}
}

// Reset drops the recorded membership without a server call. Used on
// disconnect, where the broker forgets the connection anyway.
func (g *GroupManager) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = ""
}

// Active returns the currently recorded session id, empty when none.
func (g *GroupManager) Active() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}
