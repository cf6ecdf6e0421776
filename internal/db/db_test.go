package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/models"
	"github.com/flashj/flashj/internal/testutil"
)

func testCard(id, topic string) models.Flashcard {
	return models.Flashcard{
		ID:         id,
		Topic:      topic,
		Front:      "What is " + id + "?",
		Back:       "An explanation of " + id + ".",
		Tags:       []string{"memory", "learning"},
		Difficulty: models.DifficultyMedium,
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		LeitnerBox: 0,
	}
}

func testMCQ(id, topic string) models.MCQ {
	return models.MCQ{
		ID:            id,
		Question:      "What best fits in the blank?",
		Options:       []string{"one", "two", "three", "four"},
		CorrectAnswer: 2,
		Explanation:   "Because three.",
		Difficulty:    models.DifficultyEasy,
		Topic:         topic,
		CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestFlashcardRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	card := testCard("c1", "Learning")
	require.NoError(t, database.InsertFlashcard(ctx, card))

	got, err := database.GetFlashcard(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, card.Front, got.Front)
	assert.Equal(t, card.Back, got.Back)
	assert.Equal(t, card.Tags, got.Tags)
	assert.Equal(t, card.Difficulty, got.Difficulty)
	assert.True(t, card.CreatedAt.Equal(got.CreatedAt))
	assert.Nil(t, got.LastReviewed)
	assert.Equal(t, 0, got.LeitnerBox)
}

func TestGetFlashcardMissing(t *testing.T) {
	database := testutil.NewTestDB(t)

	got, err := database.GetFlashcard(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateFlashcard(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	card := testCard("c1", "Learning")
	require.NoError(t, database.InsertFlashcard(ctx, card))

	reviewed := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	card.LeitnerBox = 2
	card.LastReviewed = &reviewed
	card.Front = "Updated front"
	require.NoError(t, database.UpdateFlashcard(ctx, card))

	got, err := database.GetFlashcard(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Updated front", got.Front)
	assert.Equal(t, 2, got.LeitnerBox)
	require.NotNil(t, got.LastReviewed)
	assert.True(t, reviewed.Equal(*got.LastReviewed))
}

func TestDeleteFlashcard(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.InsertFlashcard(ctx, testCard("c1", "Learning")))

	found, err := database.DeleteFlashcard(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = database.DeleteFlashcard(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestListFlashcardsFilters(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	a := testCard("a", "Biology")
	b := testCard("b", "Biology")
	b.Difficulty = models.DifficultyHard
	c := testCard("c", "History")
	require.NoError(t, database.InsertFlashcards(ctx, []models.Flashcard{a, b, c}))

	all, err := database.ListFlashcards(ctx, db.FlashcardFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	bio, err := database.ListFlashcards(ctx, db.FlashcardFilter{Topic: "Biology"})
	require.NoError(t, err)
	assert.Len(t, bio, 2)

	hard, err := database.ListFlashcards(ctx, db.FlashcardFilter{Topic: "Biology", Difficulty: models.DifficultyHard})
	require.NoError(t, err)
	require.Len(t, hard, 1)
	assert.Equal(t, "b", hard[0].ID)

	limited, err := database.ListFlashcards(ctx, db.FlashcardFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	count, err := database.CountFlashcards(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMCQRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	mcq := testMCQ("m1", "Learning")
	require.NoError(t, database.InsertMCQ(ctx, mcq))

	got, err := database.GetMCQ(ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, mcq.Question, got.Question)
	assert.Equal(t, mcq.Options, got.Options)
	assert.Equal(t, mcq.CorrectAnswer, got.CorrectAnswer)
	assert.Equal(t, mcq.Explanation, got.Explanation)

	missing, err := database.GetMCQ(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMCQUpdateAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	mcq := testMCQ("m1", "Learning")
	require.NoError(t, database.InsertMCQ(ctx, mcq))

	mcq.Question = "Changed question?"
	mcq.CorrectAnswer = 0
	require.NoError(t, database.UpdateMCQ(ctx, mcq))

	got, err := database.GetMCQ(ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Changed question?", got.Question)
	assert.Equal(t, 0, got.CorrectAnswer)

	found, err := database.DeleteMCQ(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestListMCQsFilters(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	a := testMCQ("a", "Biology")
	b := testMCQ("b", "History")
	b.Difficulty = models.DifficultyHard
	require.NoError(t, database.InsertMCQs(ctx, []models.MCQ{a, b}))

	all, err := database.ListMCQs(ctx, db.MCQFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	hard, err := database.ListMCQs(ctx, db.MCQFilter{Difficulty: models.DifficultyHard})
	require.NoError(t, err)
	require.Len(t, hard, 1)
	assert.Equal(t, "b", hard[0].ID)

	count, err := database.CountMCQs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestQuizResultsAppendOnly(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	first := models.QuizResult{
		MCQID:          "m1",
		Question:       "First question?",
		SelectedAnswer: 1,
		IsCorrect:      true,
		Timestamp:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	second := models.QuizResult{
		MCQID:          "m2",
		Question:       "Second question?",
		SelectedAnswer: 3,
		IsCorrect:      false,
		Timestamp:      time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}

	id1, err := database.InsertQuizResult(ctx, first)
	require.NoError(t, err)
	id2, err := database.InsertQuizResult(ctx, second)
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	results, err := database.ListQuizResults(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "m1", results[0].MCQID)
	assert.True(t, results[0].IsCorrect)
	assert.Equal(t, "m2", results[1].MCQID)
	assert.Equal(t, 3, results[1].SelectedAnswer)
	assert.True(t, second.Timestamp.Equal(results[1].Timestamp))
}
