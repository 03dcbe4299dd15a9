package service

import (
	"sync"

	"github.com/AlibekovAA/feedboard/backend/internal/user/domain"
)

// TokenStore maps opaque bearer tokens to the user they authenticate.
// Entries live for the whole process lifetime: there is no expiry, no
// eviction and no revocation, so the store grows by one entry per
// successful login. That unbounded growth is the documented policy of
// this service, not an oversight.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]domain.User
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: make(map[string]domain.User),
	}
}

func (s *TokenStore) Put(token string, user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = user
}

func (s *TokenStore) Resolve(token string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.tokens[token]
	return user, ok
}

func (s *TokenStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}
