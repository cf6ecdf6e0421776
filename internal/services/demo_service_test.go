package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/models"
	"github.com/flashj/flashj/internal/services"
	"github.com/flashj/flashj/internal/testutil"
)

func TestSeedDemoContent(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := services.NewDemoService(database)
	ctx := context.Background()

	cards, mcqs, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, cards)
	assert.Equal(t, 2, mcqs)

	stored, err := database.ListFlashcards(ctx, db.FlashcardFilter{})
	require.NoError(t, err)
	require.Len(t, stored, 3)
	for _, card := range stored {
		assert.Equal(t, models.LeitnerBoxMin, card.LeitnerBox)
		assert.Nil(t, card.LastReviewed)
		assert.False(t, card.CreatedAt.IsZero())
	}
}

func TestSeedDemoContentIdempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := services.NewDemoService(database)
	ctx := context.Background()

	_, _, err := svc.Seed(ctx)
	require.NoError(t, err)

	cards, mcqs, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, cards)
	assert.Zero(t, mcqs)

	stored, err := database.ListMCQs(ctx, db.MCQFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}
