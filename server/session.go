package server

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Sessions tracks per-client tokens with an idle expiry. Tokens gate
// move submission so spectators cannot mutate a game they only view.
type Sessions struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{ttl: ttl, m: make(map[string]time.Time)}
}

// New mints a fresh token and records its expiry.
func (s *Sessions) New() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.m[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()
	return token
}

// Valid reports whether token is live, refreshing its expiry when it is.
func (s *Sessions) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	deadline, ok := s.m[token]
	if !ok {
		return false
	}
	if time.Now().After(deadline) {
		delete(s.m, token)
		return false
	}
	s.m[token] = time.Now().Add(s.ttl)
	return true
}

// Purge drops every expired token.
func (s *Sessions) Purge() {
	now := time.Now()
	s.mu.Lock()
	for token, deadline := range s.m {
		if now.After(deadline) {
			delete(s.m, token)
		}
	}
	s.mu.Unlock()
}
