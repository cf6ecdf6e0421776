package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashj/flashj/internal/db"
	apperrors "github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/models"
	"github.com/flashj/flashj/internal/services"
	"github.com/flashj/flashj/internal/testutil"
)

func TestFlashcardServiceList(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := services.NewFlashcardService(database)
	ctx := context.Background()

	cards, err := svc.List(ctx, db.FlashcardFilter{})
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)

	seedCards(t, database, 2)
	cards, err = svc.List(ctx, db.FlashcardFilter{Topic: "Learning"})
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestFlashcardServiceGetNotFound(t *testing.T) {
	svc := services.NewFlashcardService(testutil.NewTestDB(t))

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.Status)
}

func TestFlashcardServiceEdit(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := services.NewFlashcardService(database)
	ctx := context.Background()

	reviewed := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	card := models.Flashcard{
		ID:           "edit-1",
		Topic:        "Biology",
		Front:        "old front",
		Back:         "old back",
		Tags:         []string{"old"},
		Difficulty:   models.DifficultyEasy,
		LeitnerBox:   3,
		LastReviewed: &reviewed,
		CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, database.InsertFlashcard(ctx, card))

	updated, err := svc.Edit(ctx, "edit-1", services.FlashcardEdit{
		Front:      "new front",
		Back:       "new back",
		Notes:      "a note",
		Tags:       nil,
		Difficulty: models.DifficultyHard,
	})
	require.NoError(t, err)
	assert.Equal(t, "new front", updated.Front)
	assert.Equal(t, "a note", updated.Notes)
	assert.Equal(t, []string{}, updated.Tags)

	// Review state survives edits untouched.
	stored, err := database.GetFlashcard(ctx, "edit-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.LeitnerBox)
	require.NotNil(t, stored.LastReviewed)
	assert.True(t, reviewed.Equal(*stored.LastReviewed))
}

func TestFlashcardServiceEditValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	seedCards(t, database, 1)
	svc := services.NewFlashcardService(database)
	ctx := context.Background()

	tests := []struct {
		name string
		edit services.FlashcardEdit
	}{
		{name: "empty front", edit: services.FlashcardEdit{Front: "  ", Back: "b", Difficulty: models.DifficultyEasy}},
		{name: "empty back", edit: services.FlashcardEdit{Front: "f", Back: "", Difficulty: models.DifficultyEasy}},
		{name: "bad difficulty", edit: services.FlashcardEdit{Front: "f", Back: "b", Difficulty: "extreme"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Edit(ctx, "a", tt.edit)
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
		})
	}
}

func TestFlashcardServiceDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	seedCards(t, database, 1)
	svc := services.NewFlashcardService(database)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "a"))

	err := svc.Delete(ctx, "a")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}
