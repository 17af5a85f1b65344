package entities

// Difficulty tiers a deck can be split into.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Card is a single interview-prep flashcard. The scheduling and selection
// engines only ever look at the ID; everything else is presentation data
// owned by the deck.
type Card struct {
	ID         string `json:"id"`         // unique, stable across sessions
	Front      string `json:"front"`      // question side
	Back       string `json:"back"`       // answer side
	Topic      string `json:"topic"`      // e.g. "goroutines", "system design"
	Difficulty string `json:"difficulty"` // one of the Difficulty* constants
}
