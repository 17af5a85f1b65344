package service

import (
	"context"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
)

// ProgressRepository persists per-card learning state. The scheduling and
// selection engines never touch it; only services do, handing the engines
// plain data.
type ProgressRepository interface {
	Get(ctx context.Context, userID int64, cardID string) (*entities.CardProgress, error)
	GetAll(ctx context.Context, userID int64) ([]entities.CardProgress, error)
	Upsert(ctx context.Context, userID int64, progress *entities.CardProgress) error
	SaveAll(ctx context.Context, userID int64, records []entities.CardProgress) error
}

// DeckRepository supplies the candidate card pool.
type DeckRepository interface {
	GetAll() []entities.Card
	GetByID(id string) (*entities.Card, error)
	GetByDifficulty(difficulty string) []entities.Card
	Count() int
}

// SessionStore keeps active study sessions.
type SessionStore interface {
	Store(session *entities.StudySession)
	Get(id string) *entities.StudySession
	Delete(id string)
}
