package service

import (
	"context"
	"errors"
	"time"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
	"github.com/prepdeck/prepdeck/internal/repository"
	"github.com/prepdeck/prepdeck/internal/srs"
)

// StudyService coordinates the scheduling and selection engines with the
// learner's persisted progress.
type StudyService struct {
	progressRepo ProgressRepository
	scheduling   srs.Config
	selection    srs.SelectionConfig
}

// NewStudyService creates a StudyService with the given engine parameters.
func NewStudyService(progressRepo ProgressRepository, scheduling srs.Config, selection srs.SelectionConfig) *StudyService {
	return &StudyService{
		progressRepo: progressRepo,
		scheduling:   scheduling,
		selection:    selection,
	}
}

// RecordReview applies one review outcome to a card, creating the progress
// record on first contact, and persists the result.
func (s *StudyService) RecordReview(ctx context.Context, userID int64, cardID string, outcome entities.ReviewOutcome, now time.Time) (*entities.CardProgress, error) {
	p, err := s.progressRepo.Get(ctx, userID, cardID)
	if err != nil && !errors.Is(err, repository.ErrProgressNotFound) {
		return nil, err
	}
	if p == nil {
		p = entities.NewCardProgress(cardID)
	}

	updated := srs.UpdateProgress(s.scheduling, *p, outcome, now)

	if err := s.progressRepo.Upsert(ctx, userID, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DueCards returns the learner's records eligible for review right now.
func (s *StudyService) DueCards(ctx context.Context, userID int64, now time.Time) ([]entities.CardProgress, error) {
	records, err := s.progressRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return srs.GetDueCards(records, now), nil
}

// PrioritizedQueue returns all of the learner's records ordered for study:
// most overdue first, then new before learning before review before
// mastered, then weakest first.
func (s *StudyService) PrioritizedQueue(ctx context.Context, userID int64, now time.Time) ([]entities.CardProgress, error) {
	records, err := s.progressRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return srs.SortCardsByPriority(records, now), nil
}

// BuildAdaptiveSession selects up to targetCount cards from the pool,
// balancing weak, unseen, and due-for-reinforcement material.
func (s *StudyService) BuildAdaptiveSession(ctx context.Context, userID int64, pool []entities.Card, targetCount int, now time.Time) ([]entities.Card, error) {
	records, err := s.progressRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	return srs.GenerateAdaptiveFlashcards(s.selection, pool, records, targetCount, now), nil
}

// ReadyToAdvance reports whether the learner should move to a harder
// difficulty tier.
func (s *StudyService) ReadyToAdvance(ctx context.Context, userID int64) (bool, error) {
	records, err := s.progressRepo.GetAll(ctx, userID)
	if err != nil {
		return false, err
	}
	return srs.ShouldProgressDifficulty(s.selection, records), nil
}

// ImportProgress replaces the learner's stored progress with records
// decoded from an external snapshot.
func (s *StudyService) ImportProgress(ctx context.Context, userID int64, records []entities.CardProgress) error {
	return s.progressRepo.SaveAll(ctx, userID, records)
}

// ProgressSummary aggregates a learner's standing across the whole deck.
type ProgressSummary struct {
	DeckSize   int
	NotStarted int
	New        int
	Learning   int
	Review     int
	Mastered   int
	DueNow     int
	Accuracy   float64
}

// Summary computes per-status counts, the current due count, and lifetime
// accuracy for a learner over a deck of the given size.
func (s *StudyService) Summary(ctx context.Context, userID int64, deckSize int, now time.Time) (*ProgressSummary, error) {
	records, err := s.progressRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &ProgressSummary{DeckSize: deckSize}

	var correct, total int
	for _, p := range records {
		switch p.Status {
		case entities.StatusNew:
			summary.New++
		case entities.StatusLearning:
			summary.Learning++
		case entities.StatusReview:
			summary.Review++
		case entities.StatusMastered:
			summary.Mastered++
		}
		if p.Due(now) {
			summary.DueNow++
		}
		correct += p.CorrectCount
		total += p.TotalReviews()
	}

	summary.NotStarted = deckSize - len(records)
	if summary.NotStarted < 0 {
		summary.NotStarted = 0
	}
	if total > 0 {
		summary.Accuracy = float64(correct) / float64(total)
	}

	return summary, nil
}
