// Package srs implements the spaced-repetition core: a pure scheduling
// engine that moves a card through the new/learning/review/mastered
// progression, and the selection logic that builds study sets on top of it.
//
// Every entry point takes the clock as a parameter and touches no state
// beyond its arguments, so the same inputs always produce the same outputs.
package srs

import (
	"math"
	"time"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
)

// Config holds the tunable multipliers and interval bounds for the
// scheduler. All intervals are in days. It is a plain value: copy it,
// never share a mutable one.
type Config struct {
	InitialInterval    float64 // first interval for a card that is still being learned
	GraduatingInterval float64 // interval granted on a solid "good" answer
	EasyInterval       float64 // interval granted on an effortless answer

	AgainMultiplier float64 // shrinks the interval after a lapse
	HardMultiplier  float64 // modest growth for difficult recalls
	GoodMultiplier  float64 // standard growth
	EasyMultiplier  float64 // fastest growth

	MinInterval float64 // lower clamp, in days
	MaxInterval float64 // upper clamp, in days
}

// DefaultConfig returns the process-wide default scheduling parameters.
func DefaultConfig() Config {
	return Config{
		InitialInterval:    1,
		GraduatingInterval: 1,
		EasyInterval:       4,
		AgainMultiplier:    0.5,
		HardMultiplier:     1.2,
		GoodMultiplier:     2.0,
		EasyMultiplier:     2.5,
		MinInterval:        1,
		MaxInterval:        365,
	}
}

// ReviewResult is the scheduler's verdict for a single review.
type ReviewResult struct {
	NextReviewDate time.Time
	NewStatus      entities.Status
}

// rule is one cell of the state machine: how to derive the new interval
// from the state's base interval, and which status the card moves to.
type rule struct {
	interval func(cfg Config, base float64) float64
	next     func(p entities.CardProgress) entities.Status
}

// flat ignores the base and returns a fixed config interval.
func flat(pick func(Config) float64) func(Config, float64) float64 {
	return func(cfg Config, _ float64) float64 { return pick(cfg) }
}

// scaled multiplies the state's base interval by a config multiplier.
func scaled(pick func(Config) float64) func(Config, float64) float64 {
	return func(cfg Config, base float64) float64 { return base * pick(cfg) }
}

func to(s entities.Status) func(entities.CardProgress) entities.Status {
	return func(entities.CardProgress) entities.Status { return s }
}

// graduateOnGood moves a learning card to review once repeated success has
// been demonstrated: this review must bring the lifetime correct total to
// at least two. The threshold is long-standing behavior; keep it as is.
func graduateOnGood(p entities.CardProgress) entities.Status {
	if p.CorrectCount+1 >= 2 {
		return entities.StatusReview
	}
	return entities.StatusLearning
}

// transitions is the full state machine. Base intervals per state come from
// baseInterval; mastered demotes to learning on a lapse but never drops
// back to new.
var transitions = map[entities.Status]map[entities.ReviewOutcome]rule{
	entities.StatusNew: {
		entities.OutcomeAgain: {scaled(func(c Config) float64 { return c.AgainMultiplier }), to(entities.StatusNew)},
		entities.OutcomeHard:  {flat(func(c Config) float64 { return c.InitialInterval }), to(entities.StatusLearning)},
		entities.OutcomeGood:  {flat(func(c Config) float64 { return c.GraduatingInterval }), to(entities.StatusLearning)},
		entities.OutcomeEasy:  {flat(func(c Config) float64 { return c.EasyInterval }), to(entities.StatusLearning)},
	},
	entities.StatusLearning: {
		entities.OutcomeAgain: {scaled(func(c Config) float64 { return c.AgainMultiplier }), to(entities.StatusLearning)},
		entities.OutcomeHard:  {scaled(func(c Config) float64 { return c.HardMultiplier }), to(entities.StatusLearning)},
		entities.OutcomeGood:  {scaled(func(c Config) float64 { return c.GoodMultiplier }), graduateOnGood},
		entities.OutcomeEasy:  {flat(func(c Config) float64 { return c.EasyInterval }), to(entities.StatusReview)},
	},
	entities.StatusReview: {
		entities.OutcomeAgain: {flat(func(c Config) float64 { return c.InitialInterval }), to(entities.StatusLearning)},
		entities.OutcomeHard:  {scaled(func(c Config) float64 { return c.HardMultiplier }), to(entities.StatusReview)},
		entities.OutcomeGood:  {scaled(func(c Config) float64 { return c.GoodMultiplier }), to(entities.StatusReview)},
		entities.OutcomeEasy:  {scaled(func(c Config) float64 { return c.EasyMultiplier }), to(entities.StatusReview)},
	},
	entities.StatusMastered: {
		entities.OutcomeAgain: {flat(func(c Config) float64 { return c.InitialInterval }), to(entities.StatusLearning)},
		entities.OutcomeHard:  {scaled(func(c Config) float64 { return c.HardMultiplier }), to(entities.StatusMastered)},
		entities.OutcomeGood:  {scaled(func(c Config) float64 { return c.GoodMultiplier }), to(entities.StatusMastered)},
		entities.OutcomeEasy:  {scaled(func(c Config) float64 { return c.EasyMultiplier }), to(entities.StatusMastered)},
	},
}

// baseInterval returns the per-state base the multiplier rules scale from.
// New cards use the initial interval directly; every other state floors the
// elapsed time at a state-specific minimum so a quick re-review cannot
// shrink the schedule.
func baseInterval(cfg Config, p entities.CardProgress, now time.Time) float64 {
	switch p.Status {
	case entities.StatusLearning:
		return math.Max(daysSince(p.LastReviewed, now), cfg.InitialInterval)
	case entities.StatusReview:
		return math.Max(daysSince(p.LastReviewed, now), cfg.GraduatingInterval)
	case entities.StatusMastered:
		return math.Max(daysSince(p.LastReviewed, now), cfg.EasyInterval)
	default:
		return cfg.InitialInterval
	}
}

// daysSince counts elapsed wall-clock days, rounded up so that a same-day
// review never yields a zero-day base.
func daysSince(last, now time.Time) float64 {
	if last.IsZero() || !now.After(last) {
		return 0
	}
	return math.Ceil(now.Sub(last).Hours() / 24)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CalculateNextReview computes the next status and due date for a card
// given one review outcome. It is pure: the clock is injected and the input
// record is not modified. The function is total; a record with an unknown
// status is treated as new, an unknown outcome as "good".
func CalculateNextReview(cfg Config, p entities.CardProgress, outcome entities.ReviewOutcome, now time.Time) ReviewResult {
	rules, ok := transitions[p.Status]
	if !ok {
		rules = transitions[entities.StatusNew]
	}
	r, ok := rules[outcome]
	if !ok {
		r = rules[entities.OutcomeGood]
	}

	days := clamp(r.interval(cfg, baseInterval(cfg, p, now)), cfg.MinInterval, cfg.MaxInterval)

	return ReviewResult{
		NextReviewDate: now.Add(time.Duration(days * 24 * float64(time.Hour))),
		NewStatus:      r.next(p),
	}
}

// UpdateProgress applies one review to a progress record and returns the
// updated record. "Again" counts as incorrect; every other outcome counts
// as correct. Counters only ever grow.
func UpdateProgress(cfg Config, p entities.CardProgress, outcome entities.ReviewOutcome, now time.Time) entities.CardProgress {
	result := CalculateNextReview(cfg, p, outcome, now)

	updated := p
	updated.Status = result.NewStatus
	updated.LastReviewed = now
	next := result.NextReviewDate
	updated.NextReviewDate = &next

	if outcome == entities.OutcomeAgain {
		updated.IncorrectCount++
	} else {
		updated.CorrectCount++
	}

	return updated
}
