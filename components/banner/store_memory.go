package banner

import (
	"context"
	"fmt"
	"sync"
)

// InMemorySessionStore keeps sessions in process memory.
type InMemorySessionStore struct {
	mu   sync.RWMutex
	data map[string]*Session
}

// NewInMemorySessionStore creates an empty store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		data: make(map[string]*Session),
	}
}

// Get returns a copy of the stored session.
func (s *InMemorySessionStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.data[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session.Clone(), nil
}

// Save stores a copy of the session.
func (s *InMemorySessionStore) Save(_ context.Context, session *Session) error {
	if session == nil || session.ID == "" {
		return errInvalidSessionID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.ID] = session.Clone()
	return nil
}

// Delete drops the session; unknown ids are not an error.
func (s *InMemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// Len reports the number of live sessions.
func (s *InMemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
