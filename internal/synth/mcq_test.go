package synth

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashj/flashj/internal/models"
)

const mcqTestText = "The Leitner system organizes flashcards into several boxes for review. " +
	"Spaced repetition increases intervals between reviews of learned material. " +
	"Active recall strengthens memory through deliberate retrieval practice."

func testMCQSynth(seed int64) *MCQSynthesizer {
	ids := 0
	return NewMCQSynthesizer(DefaultVocabulary(),
		WithMCQRand(rand.New(rand.NewSource(seed))),
		WithMCQClock(func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }),
		WithMCQIDs(func() string { ids++; return fmt.Sprintf("mcq-%d", ids) }),
	)
}

func TestGenerateMCQs(t *testing.T) {
	s := testMCQSynth(1)

	mcqs := s.Generate(mcqTestText, models.DifficultyMedium, 10)
	require.NotEmpty(t, mcqs)
	assert.LessOrEqual(t, len(mcqs), 3)

	for _, mcq := range mcqs {
		assert.Len(t, mcq.Options, models.OptionCount)
		require.GreaterOrEqual(t, mcq.CorrectAnswer, 0)
		require.Less(t, mcq.CorrectAnswer, len(mcq.Options))
		assert.Equal(t, models.DifficultyMedium, mcq.Difficulty)
		assert.Contains(t, mcq.Question, "__________")
		assert.Equal(t, "Topic 1", mcq.Topic)

		// The question is the explanation sentence with the correct
		// option blanked out.
		answer := mcq.Options[mcq.CorrectAnswer]
		blanked := strings.Replace(mcq.Explanation, answer, "__________", 1)
		assert.Equal(t, fmt.Sprintf("What best fits in the blank: %q?", blanked), mcq.Question)

		// No duplicate options.
		seen := map[string]bool{}
		for _, opt := range mcq.Options {
			assert.False(t, seen[opt], "duplicate option %q", opt)
			seen[opt] = true
		}
	}
}

func TestGenerateMCQsEasyUsesGenericDistractors(t *testing.T) {
	s := testMCQSynth(2)
	vocab := DefaultVocabulary()

	generic := map[string]bool{}
	for _, d := range vocab.GenericEasyDistractors {
		generic[d] = true
	}

	mcqs := s.Generate(mcqTestText, models.DifficultyEasy, 5)
	require.NotEmpty(t, mcqs)

	for _, mcq := range mcqs {
		for i, opt := range mcq.Options {
			if i == mcq.CorrectAnswer {
				continue
			}
			assert.True(t, generic[opt], "option %q is not a generic distractor", opt)
		}
	}
}

func TestGenerateMCQsRespectsCount(t *testing.T) {
	s := testMCQSynth(3)

	mcqs := s.Generate(mcqTestText, models.DifficultyMedium, 1)
	assert.LessOrEqual(t, len(mcqs), 1)
}

func TestGenerateMCQsEmptyText(t *testing.T) {
	s := testMCQSynth(4)
	assert.Empty(t, s.Generate("", models.DifficultyMedium, 5))
}

func TestDeclarativeSentences(t *testing.T) {
	s := testMCQSynth(5)

	text := "How does spaced repetition actually work in practice? " +
		"Spaced repetition increases intervals between reviews of learned material. " +
		"Too short here. " +
		`"Quoted sentences are skipped even when they are long enough to qualify".`
	sentences := s.declarativeSentences(text)

	require.Len(t, sentences, 1)
	assert.Equal(t, "Spaced repetition increases intervals between reviews of learned material", sentences[0])
}

func TestExtractEntities(t *testing.T) {
	entities := extractEntities("The Leitner system organizes flashcards into several boxes for review")
	require.NotEmpty(t, entities)
	assert.LessOrEqual(t, len(entities), 8)

	// Proper-noun pairs come first.
	assert.Equal(t, "The Leitner", entities[0])

	seen := map[string]bool{}
	for _, e := range entities {
		assert.Greater(t, len(e), 3)
		assert.Less(t, len(e), 30)
		assert.False(t, seen[e], "duplicate entity %q", e)
		seen[e] = true
	}
}

func TestShuffleTracksCorrectIndex(t *testing.T) {
	s := testMCQSynth(6)

	for i := 0; i < 50; i++ {
		options := []string{"answer", "b", "c", "d"}
		correct := s.shuffle(options)
		assert.Equal(t, "answer", options[correct])
	}
}
