package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
	"github.com/prepdeck/prepdeck/internal/infra/postgres"
	"github.com/prepdeck/prepdeck/internal/repository"
)

// ProgressRepository provides access to per-learner card progress in the
// database.
type ProgressRepository struct {
	db postgres.DBTX
	tx *postgres.Transactor // non-nil only when built over a pool
}

// NewProgressRepository creates a repository over a connection pool.
func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{
		db: pool,
		tx: postgres.NewTransactor(pool),
	}
}

// withTx returns a copy of the repository bound to a running transaction.
func (r *ProgressRepository) withTx(tx pgx.Tx) *ProgressRepository {
	return &ProgressRepository{db: tx}
}

// Upsert creates or updates the record for one card.
func (r *ProgressRepository) Upsert(ctx context.Context, userID int64, progress *entities.CardProgress) error {
	query := `
		INSERT INTO card_progress (
			user_id, card_id, status, last_reviewed, next_review_at,
			correct_count, incorrect_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, card_id) DO UPDATE SET
			status = EXCLUDED.status,
			last_reviewed = EXCLUDED.last_reviewed,
			next_review_at = EXCLUDED.next_review_at,
			correct_count = EXCLUDED.correct_count,
			incorrect_count = EXCLUDED.incorrect_count
	`

	_, err := r.db.Exec(
		ctx,
		query,
		userID,
		progress.CardID,
		string(progress.Status),
		progress.LastReviewed,
		progress.NextReviewDate,
		progress.CorrectCount,
		progress.IncorrectCount,
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}

	return nil
}

// Get retrieves the record for one card, or ErrProgressNotFound.
func (r *ProgressRepository) Get(ctx context.Context, userID int64, cardID string) (*entities.CardProgress, error) {
	query := `
		SELECT card_id, status, last_reviewed, next_review_at,
		       correct_count, incorrect_count
		FROM card_progress
		WHERE user_id = $1 AND card_id = $2
	`

	var progress entities.CardProgress
	var status string

	err := r.db.QueryRow(ctx, query, userID, cardID).Scan(
		&progress.CardID,
		&status,
		&progress.LastReviewed,
		&progress.NextReviewDate,
		&progress.CorrectCount,
		&progress.IncorrectCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrProgressNotFound
		}
		return nil, fmt.Errorf("get progress: %w", err)
	}

	progress.Status = entities.Status(status)
	return &progress, nil
}

// GetAll returns every progress record for a learner.
func (r *ProgressRepository) GetAll(ctx context.Context, userID int64) ([]entities.CardProgress, error) {
	query := `
		SELECT card_id, status, last_reviewed, next_review_at,
		       correct_count, incorrect_count
		FROM card_progress
		WHERE user_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	var out []entities.CardProgress
	for rows.Next() {
		var progress entities.CardProgress
		var status string
		if err := rows.Scan(
			&progress.CardID,
			&status,
			&progress.LastReviewed,
			&progress.NextReviewDate,
			&progress.CorrectCount,
			&progress.IncorrectCount,
		); err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		progress.Status = entities.Status(status)
		out = append(out, progress)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress: %w", err)
	}

	return out, nil
}

// SaveAll atomically replaces the learner's full progress set. This is the
// bulk path used when importing state persisted elsewhere.
func (r *ProgressRepository) SaveAll(ctx context.Context, userID int64, records []entities.CardProgress) error {
	if r.tx == nil {
		return errors.New("save all requires a pool-backed repository")
	}

	return r.tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM card_progress WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}

		txRepo := r.withTx(tx)
		for i := range records {
			if err := txRepo.Upsert(ctx, userID, &records[i]); err != nil {
				return err
			}
		}
		return nil
	})
}
