package srs

import (
	"sort"
	"time"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
)

// SelectionConfig tunes the adaptive session builder and the difficulty
// progression gate. The defaults reproduce the long-standing 40/50/10 split
// and 30-day reinforcement cadence; they are knobs so callers can rebalance
// a session without forking the engine.
type SelectionConfig struct {
	StrugglingShare     float64 // share of a session reserved for weak cards
	NewShare            float64 // share reserved for unseen cards
	StrugglingThreshold float64 // success rate below which a card counts as weak
	MasteredReviewDays  int     // reinforcement cadence for mastered cards
	MinMasteredCount    int     // mastered cards required to advance a tier
	MinSuccessRate      float64 // aggregate accuracy required to advance
}

// DefaultSelectionConfig returns the default selection parameters.
func DefaultSelectionConfig() SelectionConfig {
	return SelectionConfig{
		StrugglingShare:     0.4,
		NewShare:            0.5,
		StrugglingThreshold: 0.6,
		MasteredReviewDays:  30,
		MinMasteredCount:    10,
		MinSuccessRate:      0.8,
	}
}

// GetDueCards returns the records eligible for review right now: anything
// whose next review date is unset or has passed.
func GetDueCards(progressList []entities.CardProgress, now time.Time) []entities.CardProgress {
	due := make([]entities.CardProgress, 0, len(progressList))
	for _, p := range progressList {
		if p.Due(now) {
			due = append(due, p)
		}
	}
	return due
}

// overdueBy measures how far past due a record is. Records with no due date
// are due immediately but carry zero overdue-ness, as do records not yet
// due; those fall through to the status tie-breaker.
func overdueBy(p entities.CardProgress, now time.Time) time.Duration {
	if p.NextReviewDate == nil || p.NextReviewDate.After(now) {
		return 0
	}
	return now.Sub(*p.NextReviewDate)
}

// SortCardsByPriority orders a copy of progressList for studying: most
// overdue first, then by status (new before learning before review before
// mastered), then weakest success rate first.
func SortCardsByPriority(progressList []entities.CardProgress, now time.Time) []entities.CardProgress {
	out := append([]entities.CardProgress(nil), progressList...)
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := overdueBy(out[i], now), overdueBy(out[j], now)
		if oi != oj {
			return oi > oj
		}
		ri, rj := out[i].Status.PriorityRank(), out[j].Status.PriorityRank()
		if ri != rj {
			return ri < rj
		}
		return out[i].SuccessRate() < out[j].SuccessRate()
	})
	return out
}

// GenerateAdaptiveFlashcards builds a study set of at most targetCount
// cards, mixing cards the learner struggles with, cards they have never
// seen, and mastered cards that are due for reinforcement.
//
// Slots are allocated by fixed shares (StrugglingShare, then NewShare, then
// the remainder to reinforcement), each capped by availability. An
// under-supplied bucket leaves its struggling/new slots unfilled rather
// than pulling extra cards from another bucket.
func GenerateAdaptiveFlashcards(cfg SelectionConfig, pool []entities.Card, progressList []entities.CardProgress, targetCount int, now time.Time) []entities.Card {
	if targetCount <= 0 || len(pool) == 0 {
		return nil
	}

	byID := make(map[string]entities.CardProgress, len(progressList))
	for _, p := range progressList {
		byID[p.CardID] = p
	}

	cadence := time.Duration(cfg.MasteredReviewDays) * 24 * time.Hour

	var struggling, unseen, reinforce []entities.Card
	for _, card := range pool {
		p, ok := byID[card.ID]
		switch {
		case !ok:
			unseen = append(unseen, card)
		case p.Status == entities.StatusMastered:
			if now.Sub(p.LastReviewed) >= cadence {
				reinforce = append(reinforce, card)
			}
		case p.SuccessRate() < cfg.StrugglingThreshold:
			struggling = append(struggling, card)
		}
	}

	selected := make([]entities.Card, 0, targetCount)
	selected = append(selected, takeFirst(struggling, int(float64(targetCount)*cfg.StrugglingShare))...)
	selected = append(selected, takeFirst(unseen, int(float64(targetCount)*cfg.NewShare))...)
	selected = append(selected, takeFirst(reinforce, targetCount-len(selected))...)

	if len(selected) > targetCount {
		selected = selected[:targetCount]
	}
	return selected
}

// ShouldProgressDifficulty reports whether the learner has banked enough
// mastered cards, at a high enough aggregate accuracy, to move up a
// difficulty tier. Accuracy is computed over the lifetime attempts on the
// mastered cards only.
func ShouldProgressDifficulty(cfg SelectionConfig, progressList []entities.CardProgress) bool {
	var mastered, correct, total int
	for _, p := range progressList {
		if p.Status != entities.StatusMastered {
			continue
		}
		mastered++
		correct += p.CorrectCount
		total += p.CorrectCount + p.IncorrectCount
	}

	if mastered < cfg.MinMasteredCount {
		return false
	}
	if total < 1 {
		total = 1
	}
	return float64(correct)/float64(total) >= cfg.MinSuccessRate
}

// takeFirst returns the first n cards, or the whole slice if it is shorter.
func takeFirst(cards []entities.Card, n int) []entities.Card {
	if n <= 0 {
		return nil
	}
	if len(cards) <= n {
		return cards
	}
	return cards[:n]
}
