package session

import (
	"sync"
	"time"

	"streamplan/internal/domain"
)

// Store keeps one live WizardSession per user.
type Store interface {
	Start(userID, chatID int64) *domain.WizardSession
	Get(userID int64) (*domain.WizardSession, error)
	Discard(userID int64)
}

type entry struct {
	sess     *domain.WizardSession
	lastSeen time.Time
}

// MemoryStore is an in-process Store with a soft inactivity timeout:
// a Get past the window deletes the entry and reports ErrSessionNotFound.
// Safe for concurrent use across distinct users; each session itself is
// only ever touched by its own user's events.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[int64]*entry
}

// NewMemoryStore creates a store whose sessions expire after ttl of
// inactivity.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[int64]*entry),
	}
}

// NewMemoryStoreWithClock creates a store with an injected clock for tests.
func NewMemoryStoreWithClock(ttl time.Duration, now func() time.Time) *MemoryStore {
	s := NewMemoryStore(ttl)
	s.now = now
	return s
}

// Start creates a fresh session for the user, replacing any prior one.
func (s *MemoryStore) Start(userID, chatID int64) *domain.WizardSession {
	sess := domain.NewWizardSession(userID, chatID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &entry{sess: sess, lastSeen: s.now()}
	return sess
}

// Get returns the user's live session and refreshes its activity window.
func (s *MemoryStore) Get(userID int64) (*domain.WizardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[userID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.sessions, userID)
		return nil, domain.ErrSessionNotFound
	}

	e.lastSeen = now
	return e.sess, nil
}

// Discard removes the user's session. Removing a missing session is a no-op.
func (s *MemoryStore) Discard(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Sweep drops all expired sessions and returns how many were removed.
// Expiry works without it; Sweep just keeps the map from accumulating
// abandoned wizards.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for userID, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, userID)
			removed++
		}
	}
	return removed
}
