package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionStore holds admin session tokens in process memory with a TTL.
// Bookings survive restarts; sessions do not need to.
type SessionStore struct {
	tokens *cache.Cache
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		tokens: cache.New(ttl, 10*time.Minute),
	}
}

// Create issues a new opaque session token.
func (s *SessionStore) Create() string {
	token := uuid.NewString()
	s.tokens.Set(token, struct{}{}, cache.DefaultExpiration)

	return token
}

// Valid reports whether token belongs to a live session.
func (s *SessionStore) Valid(token string) bool {
	_, found := s.tokens.Get(token)

	return found
}

// Revoke ends the session for token, if any.
func (s *SessionStore) Revoke(token string) {
	s.tokens.Delete(token)
}
