package storage

import (
	"sync"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
)

// SessionStorage provides in-memory storage for active study sessions by
// session ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]*entities.StudySession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[string]*entities.StudySession),
	}
}

// Store saves a session under its ID.
func (s *SessionStorage) Store(session *entities.StudySession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

// Get retrieves a session by ID, or nil if it does not exist.
func (s *SessionStorage) Get(id string) *entities.StudySession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Delete removes a session by ID.
func (s *SessionStorage) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
