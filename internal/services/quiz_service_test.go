package services_test

import (
	"context"
	"fmt"
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

func seedMCQs(t *testing.T, database *db.DB, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		mcq := models.MCQ{
			ID:            fmt.Sprintf("q%d", i),
			Topic:         "Learning",
			Question:      fmt.Sprintf("Question %d?", i),
			Options:       []string{"alpha", "beta", "gamma", "delta"},
			CorrectAnswer: 1,
			Explanation:   "beta is correct",
			Difficulty:    models.DifficultyMedium,
			CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		}
		require.NoError(t, database.InsertMCQ(ctx, mcq))
	}
}

func TestQuizSessionLifecycle(t *testing.T) {
	database := testutil.NewTestDB(t)
	seedMCQs(t, database, 3)
	svc := services.NewQuizService(database, 5)
	ctx := context.Background()

	view, err := svc.Start(ctx, db.MCQFilter{})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", view.State)
	assert.Equal(t, 3, view.Total)
	require.NotNil(t, view.Question)
	assert.Len(t, view.Question.Options, 4)

	id := view.SessionID

	// Answer every question; selected 1 is always correct, 0 never is.
	view, err = svc.Answer(ctx, id, 1)
	require.NoError(t, err)
	require.NotNil(t, view.Answer)
	assert.True(t, view.Answer.Correct)
	assert.Equal(t, 1, view.Answer.CorrectAnswer)
	assert.Equal(t, "beta is correct", view.Answer.Explanation)

	view, err = svc.Answer(ctx, id, 0)
	require.NoError(t, err)
	assert.False(t, view.Answer.Correct)

	view, err = svc.Answer(ctx, id, 1)
	require.NoError(t, err)
	assert.Equal(t, "complete", view.State)
	require.NotNil(t, view.Summary)
	assert.Equal(t, 2, view.Summary.Correct)
	assert.Equal(t, 3, view.Summary.Total)

	// Every answer was appended to the result log.
	results, err := database.ListQuizResults(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, results[0].IsCorrect)
	assert.False(t, results[1].IsCorrect)
	assert.Equal(t, 0, results[1].SelectedAnswer)

	_, err = svc.Current(ctx, id)
	require.Error(t, err)
}

func TestQuizSamplesDownToLength(t *testing.T) {
	database := testutil.NewTestDB(t)
	seedMCQs(t, database, 8)
	svc := services.NewQuizService(database, 5)

	view, err := svc.Start(context.Background(), db.MCQFilter{})
	require.NoError(t, err)
	assert.Equal(t, 5, view.Total)
}

func TestQuizStartEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := services.NewQuizService(database, 5)

	_, err := svc.Start(context.Background(), db.MCQFilter{})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeBadRequest, appErr.Code)
}

func TestQuizAnswerValidation(t *testing.T) {
	database := testutil.NewTestDB(t)
	seedMCQs(t, database, 2)
	svc := services.NewQuizService(database, 5)
	ctx := context.Background()

	view, err := svc.Start(ctx, db.MCQFilter{})
	require.NoError(t, err)

	var appErr *apperrors.AppError

	_, err = svc.Answer(ctx, view.SessionID, 4)
	require.Error(t, err)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)

	_, err = svc.Answer(ctx, view.SessionID, -1)
	require.Error(t, err)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)

	// A rejected answer does not advance the session or log a result.
	current, err := svc.Current(ctx, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 0, current.Index)

	results, err := database.ListQuizResults(ctx)
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = svc.Answer(ctx, "unknown-session", 1)
	require.Error(t, err)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestQuizExitKeepsAnsweredResults(t *testing.T) {
	database := testutil.NewTestDB(t)
	seedMCQs(t, database, 3)
	svc := services.NewQuizService(database, 5)
	ctx := context.Background()

	view, err := svc.Start(ctx, db.MCQFilter{})
	require.NoError(t, err)

	_, err = svc.Answer(ctx, view.SessionID, 1)
	require.NoError(t, err)

	view, err = svc.Exit(ctx, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "exited", view.State)
	require.NotNil(t, view.Summary)
	assert.Equal(t, 1, view.Summary.Correct)
	assert.Equal(t, 3, view.Summary.Total)

	results, err := database.ListQuizResults(ctx)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
