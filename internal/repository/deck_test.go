package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDeck = `[
  {"id": "goroutines-01", "front": "What starts a goroutine?", "back": "The go statement.", "topic": "concurrency", "difficulty": "easy"},
  {"id": "channels-02", "front": "What does closing a channel do?", "back": "Further receives yield zero values; sends panic.", "topic": "concurrency", "difficulty": "medium"},
  {"id": "sched-03", "front": "What is the GMP model?", "back": "Goroutines, machines, processors.", "topic": "runtime", "difficulty": "hard"}
]`

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDeckRepositoryLoadsCards(t *testing.T) {
	repo, err := NewDeckRepository(writeDeck(t, sampleDeck))
	require.NoError(t, err)

	assert.Equal(t, 3, repo.Count())
	assert.Len(t, repo.GetAll(), 3)
}

func TestDeckRepositoryGetByID(t *testing.T) {
	repo, err := NewDeckRepository(writeDeck(t, sampleDeck))
	require.NoError(t, err)

	card, err := repo.GetByID("channels-02")
	require.NoError(t, err)
	assert.Equal(t, "concurrency", card.Topic)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestDeckRepositoryGetByDifficulty(t *testing.T) {
	repo, err := NewDeckRepository(writeDeck(t, sampleDeck))
	require.NoError(t, err)

	hard := repo.GetByDifficulty("hard")
	require.Len(t, hard, 1)
	assert.Equal(t, "sched-03", hard[0].ID)

	assert.Empty(t, repo.GetByDifficulty("impossible"))
}

func TestNewDeckRepositoryRejectsEmptyDeck(t *testing.T) {
	_, err := NewDeckRepository(writeDeck(t, `[]`))
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestNewDeckRepositoryRejectsMalformedFile(t *testing.T) {
	_, err := NewDeckRepository(writeDeck(t, `{not json`))
	assert.Error(t, err)
}

func TestNewDeckRepositoryMissingFile(t *testing.T) {
	_, err := NewDeckRepository(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
