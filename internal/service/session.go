package service

import (
	"errors"
	"time"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionService manages the lifecycle of interactive study sessions.
type SessionService struct {
	sessions SessionStore
}

// NewSessionService creates a SessionService over the given store.
func NewSessionService(sessions SessionStore) *SessionService {
	return &SessionService{sessions: sessions}
}

// Start opens a new active session covering cardsTotal cards.
func (s *SessionService) Start(userID int64, cardsTotal int, now time.Time) *entities.StudySession {
	session := entities.NewStudySession(userID, cardsTotal, now)
	s.sessions.Store(session)
	return session
}

// RecordAnswer counts one reviewed card toward the session. "Again" is the
// only outcome that counts as incorrect.
func (s *SessionService) RecordAnswer(id string, outcome entities.ReviewOutcome) (*entities.StudySession, error) {
	session := s.sessions.Get(id)
	if session == nil {
		return nil, ErrSessionNotFound
	}
	session.RecordAnswer(outcome != entities.OutcomeAgain)
	s.sessions.Store(session)
	return session, nil
}

// Complete marks a session finished and removes it from the active set.
func (s *SessionService) Complete(id string, now time.Time) (*entities.StudySession, error) {
	session := s.sessions.Get(id)
	if session == nil {
		return nil, ErrSessionNotFound
	}
	session.Complete(now)
	s.sessions.Delete(id)
	return session, nil
}

// Abandon marks a session dropped and removes it from the active set.
func (s *SessionService) Abandon(id string, now time.Time) (*entities.StudySession, error) {
	session := s.sessions.Get(id)
	if session == nil {
		return nil, ErrSessionNotFound
	}
	session.Abandon(now)
	s.sessions.Delete(id)
	return session, nil
}
