package entities

import (
	"time"

	"github.com/google/uuid"
)

// Session statuses.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionAbandoned = "abandoned"
)

// StudySession represents one bounded run of reviews for a learner.
// It tracks how far the learner is through the set and how accurate they
// have been so far.
type StudySession struct {
	ID             string     // unique session ID
	UserID         int64      // learner who started the session
	CardsTotal     int        // number of cards selected for the session
	CardsAnswered  int        // cards reviewed so far
	CorrectAnswers int        // reviews graded better than "again"
	Status         string     // "active", "completed", or "abandoned"
	StartedAt      time.Time  // when the session started
	CompletedAt    *time.Time // when the session finished (nullable)
}

// NewStudySession creates an active session over the given number of cards.
func NewStudySession(userID int64, cardsTotal int, now time.Time) *StudySession {
	return &StudySession{
		ID:         uuid.NewString(),
		UserID:     userID,
		CardsTotal: cardsTotal,
		Status:     SessionActive,
		StartedAt:  now,
	}
}

// RecordAnswer counts one reviewed card toward the session totals.
func (s *StudySession) RecordAnswer(correct bool) {
	s.CardsAnswered++
	if correct {
		s.CorrectAnswers++
	}
}

// Accuracy returns the share of correct answers among those given so far.
func (s *StudySession) Accuracy() float64 {
	if s.CardsAnswered == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.CardsAnswered)
}

// Complete marks the session as finished.
func (s *StudySession) Complete(now time.Time) {
	s.Status = SessionCompleted
	s.CompletedAt = &now
}

// Abandon marks the session as dropped before all cards were answered.
func (s *StudySession) Abandon(now time.Time) {
	s.Status = SessionAbandoned
	s.CompletedAt = &now
}
