// Package session holds the process-lifetime mapping of bearer tokens to
// usernames. Sessions are never persisted: restarting the server invalidates
// every outstanding token.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"
)

const tokenBytes = 32

// Session is one issued token binding. IssuedAt is recorded so expiry or
// revocation policies can be added later without a data-model change, even
// though no TTL is enforced today.
type Session struct {
	Username string
	IssuedAt time.Time
}

// Registry maps opaque tokens to sessions. It is the only component allowed
// to resolve a bearer token to a username. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]Session)}
}

// Issue creates a new unguessable token for username and registers it.
func (r *Registry) Issue(username string) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	r.mu.Lock()
	r.sessions[token] = Session{Username: username, IssuedAt: time.Now()}
	r.mu.Unlock()

	return token, nil
}

// Resolve returns the username bound to token, if any.
func (r *Registry) Resolve(token string) (string, bool) {
	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()
	return s.Username, ok
}

// Revoke removes token from the registry. It reports whether the token was
// registered.
func (r *Registry) Revoke(token string) bool {
	r.mu.Lock()
	_, ok := r.sessions[token]
	delete(r.sessions, token)
	r.mu.Unlock()
	return ok
}
