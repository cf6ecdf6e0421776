package leitner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashj/flashj/internal/models"
)

func TestApplyReview(t *testing.T) {
	reviewedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		box     int
		outcome Outcome
		wantBox int
	}{
		{name: "known advances one box", box: 1, outcome: Known, wantBox: 2},
		{name: "known caps at top box", box: models.LeitnerBoxMax, outcome: Known, wantBox: models.LeitnerBoxMax},
		{name: "unknown resets to box zero", box: 3, outcome: Unknown, wantBox: 0},
		{name: "unknown keeps box zero", box: 0, outcome: Unknown, wantBox: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := models.Flashcard{ID: "c1", LeitnerBox: tt.box}
			updated := ApplyReview(card, tt.outcome, reviewedAt)

			assert.Equal(t, tt.wantBox, updated.LeitnerBox)
			require.NotNil(t, updated.LastReviewed)
			assert.Equal(t, reviewedAt, *updated.LastReviewed)
		})
	}
}

func TestApplyReviewDoesNotMutateInput(t *testing.T) {
	card := models.Flashcard{ID: "c1", LeitnerBox: 2}
	ApplyReview(card, Unknown, time.Now())
	assert.Equal(t, 2, card.LeitnerBox)
	assert.Nil(t, card.LastReviewed)
}

func TestPartition(t *testing.T) {
	cards := []models.Flashcard{
		{ID: "a", LeitnerBox: 0},
		{ID: "b", LeitnerBox: 0},
		{ID: "c", LeitnerBox: 4},
		{ID: "d", LeitnerBox: 9},  // clamped to top box
		{ID: "e", LeitnerBox: -1}, // clamped to bottom box
	}

	boxes := Partition(cards)
	assert.Equal(t, []string{"a", "b", "e"}, boxes[0])
	assert.Empty(t, boxes[1])
	assert.Empty(t, boxes[2])
	assert.Empty(t, boxes[3])
	assert.Equal(t, []string{"c", "d"}, boxes[4])
}

func TestDistribution(t *testing.T) {
	cards := []models.Flashcard{
		{ID: "a", LeitnerBox: 0},
		{ID: "b", LeitnerBox: 2},
		{ID: "c", LeitnerBox: 2},
	}

	counts := Distribution(cards)
	assert.Equal(t, [models.LeitnerBoxes]int{1, 0, 2, 0, 0}, counts)
}

func TestEveryCardInExactlyOneBox(t *testing.T) {
	cards := []models.Flashcard{
		{ID: "a", LeitnerBox: 0},
		{ID: "b", LeitnerBox: 1},
		{ID: "c", LeitnerBox: 3},
	}

	total := 0
	for _, ids := range Partition(cards) {
		total += len(ids)
	}
	assert.Equal(t, len(cards), total)
}
