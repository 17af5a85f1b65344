package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
	"github.com/prepdeck/prepdeck/internal/storage"
)

func TestSessionLifecycle(t *testing.T) {
	svc := NewSessionService(storage.NewSessionStorage())

	session := svc.Start(1, 3, t0)
	require.NotEmpty(t, session.ID)
	assert.Equal(t, entities.SessionActive, session.Status)

	_, err := svc.RecordAnswer(session.ID, entities.OutcomeGood)
	require.NoError(t, err)
	_, err = svc.RecordAnswer(session.ID, entities.OutcomeAgain)
	require.NoError(t, err)

	done, err := svc.Complete(session.ID, t0.Add(5*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, entities.SessionCompleted, done.Status)
	assert.Equal(t, 2, done.CardsAnswered)
	assert.Equal(t, 1, done.CorrectAnswers)
	assert.InDelta(t, 0.5, done.Accuracy(), 1e-9)
	require.NotNil(t, done.CompletedAt)

	// Completed sessions leave the active set.
	_, err = svc.RecordAnswer(session.ID, entities.OutcomeGood)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionAbandon(t *testing.T) {
	svc := NewSessionService(storage.NewSessionStorage())

	session := svc.Start(1, 5, t0)
	_, err := svc.RecordAnswer(session.ID, entities.OutcomeHard)
	require.NoError(t, err)

	dropped, err := svc.Abandon(session.ID, t0.Add(time.Minute))
	require.NoError(t, err)

	assert.Equal(t, entities.SessionAbandoned, dropped.Status)
	assert.Equal(t, 1, dropped.CardsAnswered)
}

func TestSessionUnknownID(t *testing.T) {
	svc := NewSessionService(storage.NewSessionStorage())

	_, err := svc.Complete("missing", t0)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
