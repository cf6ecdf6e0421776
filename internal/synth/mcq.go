package synth

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/flashj/flashj/internal/models"
)

// MaxMCQsPerRun caps how many questions a single generation pass emits,
// regardless of the requested count.
const MaxMCQsPerRun = 15

const blankPlaceholder = "__________"

var (
	sentenceTermRe = regexp.MustCompile(`[.!?]+`)
	newlineRunRe   = regexp.MustCompile(`\n+`)

	// Entity extraction passes, run in order. Proper-noun pairs first so
	// they survive the dedup ahead of the looser phrase matches.
	entityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`),
		regexp.MustCompile(`\b[a-z]+ [a-z]+ [a-z]+\b`),
		regexp.MustCompile(`\b[a-z]+ [a-z]+\b`),
		regexp.MustCompile(`\b[A-Z][a-z]+\b`),
	}

	questionStarters = []string{"how", "what", "why", "when", "where", "who", "can you", "please"}
)

// MCQSynthesizer turns text into fill-in-the-blank multiple-choice
// questions. The random source drives entity selection and option
// shuffling and must be injected for deterministic tests.
type MCQSynthesizer struct {
	vocab Vocabulary
	rng   *rand.Rand
	now   func() time.Time
	newID func() string
}

// MCQOption configures an MCQSynthesizer.
type MCQOption func(*MCQSynthesizer)

// WithMCQRand overrides the random source.
func WithMCQRand(rng *rand.Rand) MCQOption {
	return func(s *MCQSynthesizer) { s.rng = rng }
}

// WithMCQClock overrides the timestamp source.
func WithMCQClock(now func() time.Time) MCQOption {
	return func(s *MCQSynthesizer) { s.now = now }
}

// WithMCQIDs overrides the question ID source.
func WithMCQIDs(newID func() string) MCQOption {
	return func(s *MCQSynthesizer) { s.newID = newID }
}

// NewMCQSynthesizer creates a synthesizer using the given vocabulary.
func NewMCQSynthesizer(vocab Vocabulary, opts ...MCQOption) *MCQSynthesizer {
	s := &MCQSynthesizer{
		vocab: vocab,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
		newID: func() string { return gonanoid.Must() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate derives up to min(count, 15) questions from text at the given
// difficulty. Sentences that yield fewer than two entities or fewer than
// three distractors are dropped silently; the result is never padded.
func (s *MCQSynthesizer) Generate(text, difficulty string, count int) []models.MCQ {
	normalized := strings.TrimSpace(
		newlineRunRe.ReplaceAllString(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))

	sentences := s.declarativeSentences(normalized)
	if count > len(sentences) {
		count = len(sentences)
	}

	var mcqs []models.MCQ
	for i := 0; i < count; i++ {
		if mcq, ok := s.buildMCQ(sentences[i], difficulty, i); ok {
			mcqs = append(mcqs, mcq)
		}
	}
	return mcqs
}

// declarativeSentences keeps factual statements of usable length, capped
// at the per-run maximum.
func (s *MCQSynthesizer) declarativeSentences(text string) []string {
	var out []string
	for _, fragment := range sentenceTermRe.Split(text, -1) {
		trimmed := strings.TrimSpace(fragment)
		if len(trimmed) <= 20 || len(trimmed) >= 150 {
			continue
		}
		if strings.HasPrefix(trimmed, `"`) {
			continue
		}
		if !isDeclarative(trimmed) {
			continue
		}
		out = append(out, trimmed)
		if len(out) >= MaxMCQsPerRun {
			break
		}
	}
	return out
}

// isDeclarative rejects questions and requests.
func isDeclarative(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, starter := range questionStarters {
		if strings.HasPrefix(lower, starter) {
			return false
		}
	}
	return !strings.HasSuffix(lower, "?")
}

func (s *MCQSynthesizer) buildMCQ(sentence, difficulty string, index int) (models.MCQ, bool) {
	entities := extractEntities(sentence)
	if len(entities) < 2 {
		return models.MCQ{}, false
	}

	answer := entities[s.rng.Intn(len(entities))]
	question := fmt.Sprintf("What best fits in the blank: %q?",
		strings.Replace(sentence, answer, blankPlaceholder, 1))

	distractors := s.distractors(entities, answer, difficulty)
	if len(distractors) < 3 {
		return models.MCQ{}, false
	}

	options := append([]string{answer}, distractors[:3]...)
	correct := s.shuffle(options)

	return models.MCQ{
		ID:            s.newID(),
		Question:      question,
		Options:       options,
		CorrectAnswer: correct,
		Explanation:   sentence,
		Difficulty:    difficulty,
		Topic:         fmt.Sprintf("Topic %d", index/3+1),
		CreatedAt:     s.now(),
	}, true
}

// extractEntities collects candidate answer phrases from the four regex
// passes, deduplicated in first-seen order, length-filtered, capped at 8.
func extractEntities(sentence string) []string {
	seen := make(map[string]bool)
	var entities []string
	for _, pattern := range entityPatterns {
		for _, m := range pattern.FindAllString(sentence, -1) {
			if len(m) <= 3 || len(m) >= 30 || seen[m] {
				continue
			}
			seen[m] = true
			entities = append(entities, m)
			if len(entities) >= 8 {
				return entities
			}
		}
	}
	return entities
}

// distractors produces wrong answers by a difficulty-specific strategy.
// Each strategy aims for exactly three; callers drop the question when it
// falls short.
func (s *MCQSynthesizer) distractors(entities []string, answer, difficulty string) []string {
	used := map[string]bool{answer: true}
	switch difficulty {
	case models.DifficultyEasy:
		return takeUnused(s.vocab.GenericEasyDistractors, used, 3)
	case models.DifficultyHard:
		picked := takeUnused(similarEntities(answer, entities), used, 3)
		return append(picked, takeUnused(entities, used, 3-len(picked))...)
	default:
		picked := takeUnused(entities, used, 3)
		return append(picked, takeUnused(s.vocab.GenericFillers, used, 3-len(picked))...)
	}
}

// takeUnused appends up to n candidates not already used, marking them
// used as it goes.
func takeUnused(candidates []string, used map[string]bool, n int) []string {
	var out []string
	for _, c := range candidates {
		if len(out) >= n {
			break
		}
		if used[c] {
			continue
		}
		used[c] = true
		out = append(out, c)
	}
	return out
}

// similarEntities returns entities sharing word substrings with the
// target, the basis for hard-difficulty distractors.
func similarEntities(target string, entities []string) []string {
	targetWords := strings.Fields(strings.ToLower(target))

	var similar []string
	for _, entity := range entities {
		if entity == target {
			continue
		}
		entityWords := strings.Fields(strings.ToLower(entity))
		if wordOverlap(targetWords, entityWords) > 0 {
			similar = append(similar, entity)
		}
	}
	return similar
}

func wordOverlap(a, b []string) int {
	overlap := 0
	for _, wa := range a {
		for _, wb := range b {
			if strings.Contains(wb, wa) || strings.Contains(wa, wb) {
				overlap++
				break
			}
		}
	}
	return overlap
}

// shuffle runs a Fisher-Yates shuffle over options in place and returns
// the post-shuffle index of the element that started at index 0. The
// stored CorrectAnswer always refers to the shuffled layout.
func (s *MCQSynthesizer) shuffle(options []string) int {
	correct := 0
	for i := len(options) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
		switch correct {
		case i:
			correct = j
		case j:
			correct = i
		}
	}
	return correct
}
