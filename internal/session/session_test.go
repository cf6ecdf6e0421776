package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashj/flashj/internal/leitner"
	"github.com/flashj/flashj/internal/models"
)

func testCards(n int) []models.Flashcard {
	cards := make([]models.Flashcard, n)
	for i := range cards {
		cards[i] = models.Flashcard{ID: string(rune('a' + i)), Front: "front", Back: "back"}
	}
	return cards
}

func testMCQs(n int) []models.MCQ {
	mcqs := make([]models.MCQ, n)
	for i := range mcqs {
		mcqs[i] = models.MCQ{
			ID:            string(rune('a' + i)),
			Question:      "q",
			Options:       []string{"w", "x", "y", "z"},
			CorrectAnswer: 1,
		}
	}
	return mcqs
}

func TestNewStudyEmpty(t *testing.T) {
	_, err := NewStudy(nil, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestStudyRunThrough(t *testing.T) {
	study, err := NewStudy(testCards(3), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, InProgress, study.State())

	seen := map[string]bool{}
	outcomes := []leitner.Outcome{leitner.Known, leitner.Unknown, leitner.Known}
	for i, outcome := range outcomes {
		card, ok := study.Current()
		require.True(t, ok)
		assert.False(t, seen[card.ID], "card %s shown twice", card.ID)
		seen[card.ID] = true

		index, total := study.Progress()
		assert.Equal(t, i, index)
		assert.Equal(t, 3, total)

		marked, err := study.Mark(outcome)
		require.NoError(t, err)
		assert.Equal(t, card.ID, marked.ID)
	}

	assert.Equal(t, Complete, study.State())
	assert.Len(t, seen, 3)

	summary := study.Summary()
	assert.Equal(t, 2, summary.Correct)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 67, summary.Accuracy)

	_, err = study.Mark(leitner.Known)
	assert.ErrorIs(t, err, ErrFinished)
	_, ok := study.Current()
	assert.False(t, ok)
}

func TestStudyExit(t *testing.T) {
	study, err := NewStudy(testCards(2), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, err = study.Mark(leitner.Known)
	require.NoError(t, err)

	study.Exit()
	assert.Equal(t, Exited, study.State())

	// Exiting a finished session does not change its state.
	study.Exit()
	assert.Equal(t, Exited, study.State())

	summary := study.Summary()
	assert.Equal(t, 1, summary.Correct)
	assert.Equal(t, 2, summary.Total)
}

func TestStudyDoesNotMutateInput(t *testing.T) {
	cards := testCards(5)
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}

	_, err := NewStudy(cards, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	for i, c := range cards {
		assert.Equal(t, ids[i], c.ID)
	}
}

func TestNewQuizEmpty(t *testing.T) {
	_, err := NewQuiz(nil, 5, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestNewQuizSamplesAtMostLimit(t *testing.T) {
	quiz, err := NewQuiz(testMCQs(8), 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, total := quiz.Progress()
	assert.Equal(t, 5, total)
}

func TestNewQuizSmallPool(t *testing.T) {
	quiz, err := NewQuiz(testMCQs(2), 5, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, total := quiz.Progress()
	assert.Equal(t, 2, total)
}

func TestQuizAnswerScoring(t *testing.T) {
	quiz, err := NewQuiz(testMCQs(2), 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	mcq, correct, err := quiz.Answer(1)
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, 1, mcq.CorrectAnswer)

	_, correct, err = quiz.Answer(0)
	require.NoError(t, err)
	assert.False(t, correct)

	assert.Equal(t, Complete, quiz.State())
	summary := quiz.Summary()
	assert.Equal(t, 1, summary.Correct)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 50, summary.Accuracy)
}

func TestQuizAnswerOutOfRange(t *testing.T) {
	quiz, err := NewQuiz(testMCQs(1), 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	_, _, err = quiz.Answer(4)
	assert.ErrorIs(t, err, ErrBadOption)
	_, _, err = quiz.Answer(-1)
	assert.ErrorIs(t, err, ErrBadOption)

	// A bad option does not advance the session.
	assert.Equal(t, InProgress, quiz.State())

	_, _, err = quiz.Answer(1)
	require.NoError(t, err)
	_, _, err = quiz.Answer(1)
	assert.ErrorIs(t, err, ErrFinished)
}
