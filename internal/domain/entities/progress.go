package entities

import "time"

// ReviewOutcome is the learner's self-assessed recall quality for one review.
type ReviewOutcome string

const (
	OutcomeAgain ReviewOutcome = "again" // forgot entirely
	OutcomeHard  ReviewOutcome = "hard"  // recalled with difficulty
	OutcomeGood  ReviewOutcome = "good"  // recalled correctly
	OutcomeEasy  ReviewOutcome = "easy"  // recalled effortlessly
)

// Status is a card's position in the learning progression.
type Status string

const (
	StatusNew      Status = "new"      // never answered correctly yet
	StatusLearning Status = "learning" // in the process of studying
	StatusReview   Status = "review"   // graduated, on a growing review cycle
	StatusMastered Status = "mastered" // fully learned, reinforced occasionally
)

// PriorityRank orders statuses for queue sorting: new cards come first,
// mastered cards last.
func (s Status) PriorityRank() int {
	switch s {
	case StatusNew:
		return 0
	case StatusLearning:
		return 1
	case StatusReview:
		return 2
	case StatusMastered:
		return 3
	default:
		return 4
	}
}

// CardProgress stores a learner's state for a single card.
//
// The JSON shape is the persisted layout: a serializable record whose
// timestamps round-trip as ISO-8601 strings. NextReviewDate is nil only
// before the first review.
type CardProgress struct {
	CardID         string     `json:"cardId"`
	Status         Status     `json:"status"`
	LastReviewed   time.Time  `json:"lastReviewed"`
	NextReviewDate *time.Time `json:"nextReviewDate,omitempty"`
	CorrectCount   int        `json:"correctCount"`
	IncorrectCount int        `json:"incorrectCount"`
}

// NewCardProgress creates the initial progress record for a card the learner
// is about to review for the first time.
func NewCardProgress(cardID string) *CardProgress {
	return &CardProgress{
		CardID: cardID,
		Status: StatusNew,
	}
}

// TotalReviews returns the number of review events ever recorded.
func (p *CardProgress) TotalReviews() int {
	return p.CorrectCount + p.IncorrectCount
}

// SuccessRate returns the lifetime share of correct reviews, with a minimum
// denominator of one so an unreviewed record rates 0 rather than NaN.
func (p *CardProgress) SuccessRate() float64 {
	total := p.CorrectCount + p.IncorrectCount
	if total < 1 {
		total = 1
	}
	return float64(p.CorrectCount) / float64(total)
}

// Due reports whether the card is eligible for review at the given time.
// A record with no next review date is due immediately.
func (p *CardProgress) Due(now time.Time) bool {
	return p.NextReviewDate == nil || !p.NextReviewDate.After(now)
}
