package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
	"github.com/prepdeck/prepdeck/internal/repository"
)

// FileProgressRepository persists progress records as one JSON array per
// learner, with timestamps encoded as ISO-8601 strings. It is the backend
// used when no database is configured.
type FileProgressRepository struct {
	mu  sync.Mutex
	dir string
}

// NewFileProgressRepository creates the store, creating dir if needed.
func NewFileProgressRepository(dir string) (*FileProgressRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create progress dir: %w", err)
	}
	return &FileProgressRepository{dir: dir}, nil
}

// Get retrieves a single progress record for a learner and card.
func (r *FileProgressRepository) Get(_ context.Context, userID int64, cardID string) (*entities.CardProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(userID)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].CardID == cardID {
			return &records[i], nil
		}
	}
	return nil, repository.ErrProgressNotFound
}

// GetAll returns every progress record for a learner.
func (r *FileProgressRepository) GetAll(_ context.Context, userID int64) ([]entities.CardProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(userID)
}

// Upsert creates or replaces the record for the given card.
func (r *FileProgressRepository) Upsert(_ context.Context, userID int64, progress *entities.CardProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(userID)
	if err != nil {
		return err
	}

	replaced := false
	for i := range records {
		if records[i].CardID == progress.CardID {
			records[i] = *progress
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, *progress)
	}

	return r.save(userID, records)
}

// SaveAll replaces the learner's full progress set in one write.
func (r *FileProgressRepository) SaveAll(_ context.Context, userID int64, records []entities.CardProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(userID, records)
}

func (r *FileProgressRepository) path(userID int64) string {
	return filepath.Join(r.dir, fmt.Sprintf("progress-%d.json", userID))
}

func (r *FileProgressRepository) load(userID int64) ([]entities.CardProgress, error) {
	data, err := os.ReadFile(r.path(userID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read progress file: %w", err)
	}

	var records []entities.CardProgress
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse progress file: %w", err)
	}
	return records, nil
}

func (r *FileProgressRepository) save(userID int64, records []entities.CardProgress) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	// Write-then-rename keeps the file whole if the process dies mid-save.
	tmp := r.path(userID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write progress file: %w", err)
	}
	if err := os.Rename(tmp, r.path(userID)); err != nil {
		return fmt.Errorf("replace progress file: %w", err)
	}
	return nil
}
