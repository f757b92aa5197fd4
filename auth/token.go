// Package auth supplies the bearer token used for the channel handshake
// and the request/response calls.
package auth

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenProvider holds the current bearer token for one authenticated
// client session. Factory hands the transport a callback that always reads
// the latest value, so a token refreshed between reconnect attempts is
// picked up transparently instead of a stale capture.
type TokenProvider struct {
	mu    sync.RWMutex
	token string
}

func NewTokenProvider(token string) *TokenProvider {
	return &TokenProvider{token: token}
}

// Set replaces the held token, typically after a refresh.
func (p *TokenProvider) Set(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
}

// Token returns the currently held bearer token.
func (p *TokenProvider) Token() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token
}

// Factory returns the callback the transport re-reads on every
// (re)connection attempt.
func (p *TokenProvider) Factory() func() string {
	return p.Token
}

// ExpiresWithin reports whether the held token is a JWT whose exp claim
// falls inside d. The signature is not checked; the server stays the
// authority. Opaque tokens and JWTs without exp report false.
func (p *TokenProvider) ExpiresWithin(d time.Duration) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(p.Token(), &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Until(claims.ExpiresAt.Time) < d
}
