package memory

import (
	"context"
	"sync"
	"time"

	"github.com/studyshare/campus-portal/internal/core/domain"
)

type sessionEntry struct {
	user      *domain.User
	expiresAt time.Time
}

// SessionStore keeps serialized session copies in process memory. Entries
// expire lazily on Load.
type SessionStore struct {
	mu     sync.RWMutex
	byUser map[string]sessionEntry
}

func NewSessionStore() *SessionStore {
	return &SessionStore{byUser: make(map[string]sessionEntry)}
}

func (s *SessionStore) Save(_ context.Context, user *domain.User, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byUser[user.ID] = sessionEntry{
		user:      cloneUser(user),
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *SessionStore) Load(_ context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	entry, ok := s.byUser[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.byUser, userID)
		s.mu.Unlock()
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(entry.user), nil
}

func (s *SessionStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byUser, userID)
	return nil
}
