package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
	"github.com/prepdeck/prepdeck/internal/repository"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func record(cardID string) *entities.CardProgress {
	next := t0.Add(24 * time.Hour)
	return &entities.CardProgress{
		CardID:         cardID,
		Status:         entities.StatusLearning,
		LastReviewed:   t0,
		NextReviewDate: &next,
		CorrectCount:   2,
		IncorrectCount: 1,
	}
}

func TestFileProgressRepositoryRoundTrip(t *testing.T) {
	repo, err := NewFileProgressRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, 1, record("goroutines-01")))
	require.NoError(t, repo.Upsert(ctx, 1, record("channels-02")))

	got, err := repo.Get(ctx, 1, "goroutines-01")
	require.NoError(t, err)
	assert.Equal(t, record("goroutines-01"), got)
	assert.True(t, got.LastReviewed.Equal(t0))

	all, err := repo.GetAll(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFileProgressRepositoryNotFound(t *testing.T) {
	repo, err := NewFileProgressRepository(t.TempDir())
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, repository.ErrProgressNotFound)
}

func TestFileProgressRepositoryUpsertReplaces(t *testing.T) {
	repo, err := NewFileProgressRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, 1, record("goroutines-01")))

	updated := record("goroutines-01")
	updated.CorrectCount = 5
	require.NoError(t, repo.Upsert(ctx, 1, updated))

	all, err := repo.GetAll(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 5, all[0].CorrectCount)
}

func TestFileProgressRepositorySurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileProgressRepository(dir)
	require.NoError(t, err)
	require.NoError(t, first.Upsert(ctx, 7, record("goroutines-01")))

	second, err := NewFileProgressRepository(dir)
	require.NoError(t, err)

	got, err := second.Get(ctx, 7, "goroutines-01")
	require.NoError(t, err)
	assert.Equal(t, record("goroutines-01"), got)
}

func TestFileProgressRepositoryIsolatesUsers(t *testing.T) {
	repo, err := NewFileProgressRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, 1, record("goroutines-01")))

	_, err = repo.Get(ctx, 2, "goroutines-01")
	assert.ErrorIs(t, err, repository.ErrProgressNotFound)
}

func TestFileProgressRepositorySaveAllReplaces(t *testing.T) {
	repo, err := NewFileProgressRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, 1, record("old")))
	require.NoError(t, repo.SaveAll(ctx, 1, []entities.CardProgress{*record("new")}))

	all, err := repo.GetAll(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].CardID)
}

// Persisted timestamps must be ISO-8601 so snapshots interchange with other
// consumers of the layout.
func TestFileProgressRepositoryWritesISO8601(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewFileProgressRepository(dir)
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(context.Background(), 1, record("goroutines-01")))

	data, err := os.ReadFile(filepath.Join(dir, "progress-1.json"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "2026-03-01T09:00:00Z"))
}
