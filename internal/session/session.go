// Package session holds login state keyed by opaque tokens. The store is an
// explicitly passed handle, not package state, and sessions live until
// logout: there is no expiry, matching the interaction model of a small
// single-admin deployment.
package session

import (
	"sync"

	"feetrack/internal/core"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session token.
const CookieName = "feetrack_session"

type Store struct {
	mu       sync.Mutex
	sessions map[string]core.Identity
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]core.Identity)}
}

// Create registers an identity and returns its opaque token.
func (s *Store) Create(id core.Identity) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = id
	return token
}

// Lookup resolves a token to its identity.
func (s *Store) Lookup(token string) (core.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.sessions[token]
	return id, ok
}

// Destroy ends a session. Unknown tokens are a no-op.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Count reports live sessions, for diagnostics.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
