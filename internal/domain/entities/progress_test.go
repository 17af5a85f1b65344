package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// Progress records must survive a JSON round trip with timestamps encoded
// as ISO-8601 strings, matching the persisted layout.
func TestCardProgressJSONRoundTrip(t *testing.T) {
	next := t0.Add(72 * time.Hour)
	original := CardProgress{
		CardID:         "goroutines-01",
		Status:         StatusReview,
		LastReviewed:   t0,
		NextReviewDate: &next,
		CorrectCount:   4,
		IncorrectCount: 1,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"lastReviewed":"2026-03-01T09:00:00Z"`)

	var decoded CardProgress
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original.CardID, decoded.CardID)
	assert.Equal(t, original.Status, decoded.Status)
	assert.True(t, decoded.LastReviewed.Equal(t0))
	require.NotNil(t, decoded.NextReviewDate)
	assert.True(t, decoded.NextReviewDate.Equal(next))
	assert.Equal(t, original.CorrectCount, decoded.CorrectCount)
	assert.Equal(t, original.IncorrectCount, decoded.IncorrectCount)
}

func TestCardProgressJSONOmitsUnsetNextReview(t *testing.T) {
	data, err := json.Marshal(NewCardProgress("goroutines-01"))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "nextReviewDate")

	var decoded CardProgress
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded.NextReviewDate)
}

func TestSuccessRate(t *testing.T) {
	p := NewCardProgress("x")
	assert.Zero(t, p.SuccessRate(), "no reviews yet must not divide by zero")

	p.CorrectCount = 3
	p.IncorrectCount = 1
	assert.InDelta(t, 0.75, p.SuccessRate(), 1e-9)
}

func TestDue(t *testing.T) {
	p := NewCardProgress("x")
	assert.True(t, p.Due(t0), "no due date means due immediately")

	past := t0.Add(-time.Minute)
	p.NextReviewDate = &past
	assert.True(t, p.Due(t0))

	future := t0.Add(time.Minute)
	p.NextReviewDate = &future
	assert.False(t, p.Due(t0))

	exact := t0
	p.NextReviewDate = &exact
	assert.True(t, p.Due(t0))
}

func TestStatusPriorityRank(t *testing.T) {
	assert.Less(t, StatusNew.PriorityRank(), StatusLearning.PriorityRank())
	assert.Less(t, StatusLearning.PriorityRank(), StatusReview.PriorityRank())
	assert.Less(t, StatusReview.PriorityRank(), StatusMastered.PriorityRank())
}
