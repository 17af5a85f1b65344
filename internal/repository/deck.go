package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/prepdeck/prepdeck/internal/domain/entities"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrEmptyDeck    = errors.New("deck contains no cards")
)

// DeckRepository provides access to the flashcard deck.
// This implementation loads the whole deck from a JSON file once at startup;
// the deck is read-only afterwards.
type DeckRepository struct {
	cards []entities.Card
	byID  map[string]entities.Card
}

// NewDeckRepository loads a deck from the JSON file at path.
func NewDeckRepository(path string) (*DeckRepository, error) {
	cards, err := loadDeck(path)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entities.Card, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}

	return &DeckRepository{
		cards: cards,
		byID:  byID,
	}, nil
}

// GetAll returns every card in the deck.
func (r *DeckRepository) GetAll() []entities.Card {
	return r.cards
}

// GetByID retrieves a single card by its ID.
func (r *DeckRepository) GetByID(id string) (*entities.Card, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, ErrCardNotFound
	}
	return &c, nil
}

// GetByDifficulty returns all cards in the given difficulty tier.
func (r *DeckRepository) GetByDifficulty(difficulty string) []entities.Card {
	out := make([]entities.Card, 0)
	for _, c := range r.cards {
		if c.Difficulty == difficulty {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the deck size.
func (r *DeckRepository) Count() int {
	return len(r.cards)
}

func loadDeck(path string) ([]entities.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}

	var cards []entities.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("parse deck file: %w", err)
	}

	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}

	return cards, nil
}
