// Package session implements the study and quiz state machines. A session
// moves from InProgress to Complete as items are answered; an explicit
// exit abandons it without recording the unanswered current item. Sessions
// are not safe for concurrent use; callers serialize access.
package session

import (
	"errors"
	"math"
	"math/rand"

	"github.com/flashj/flashj/internal/leitner"
	"github.com/flashj/flashj/internal/models"
)

// State of a session.
type State int

const (
	InProgress State = iota
	Complete
	Exited
)

var (
	// ErrNoItems is returned when a session is started with nothing to
	// study. It is reported before the session enters InProgress.
	ErrNoItems = errors.New("no items available")
	// ErrFinished is returned when answering a session that already
	// completed or was exited.
	ErrFinished = errors.New("session already finished")
	// ErrBadOption is returned for an out-of-range quiz answer index.
	ErrBadOption = errors.New("selected option out of range")
)

// Summary is the final score of a completed session.
type Summary struct {
	Correct  int `json:"correct"`
	Total    int `json:"total"`
	Accuracy int `json:"accuracy"`
}

func summarize(correct, total int) Summary {
	accuracy := 0
	if total > 0 {
		accuracy = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return Summary{Correct: correct, Total: total, Accuracy: accuracy}
}

// Study iterates a shuffled card sequence, accumulating known-counts.
type Study struct {
	cards []models.Flashcard
	index int
	known int
	state State
}

// NewStudy shuffles the cards once and starts a study session. Returns
// ErrNoItems when cards is empty.
func NewStudy(cards []models.Flashcard, rng *rand.Rand) (*Study, error) {
	if len(cards) == 0 {
		return nil, ErrNoItems
	}
	shuffled := make([]models.Flashcard, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return &Study{cards: shuffled}, nil
}

// State returns the session state.
func (s *Study) State() State { return s.state }

// Progress returns the zero-based position and total card count.
func (s *Study) Progress() (index, total int) { return s.index, len(s.cards) }

// Current returns the card awaiting an outcome.
func (s *Study) Current() (models.Flashcard, bool) {
	if s.state != InProgress {
		return models.Flashcard{}, false
	}
	return s.cards[s.index], true
}

// Mark records the outcome for the current card, advances, and returns
// the card so the caller can apply box movement.
func (s *Study) Mark(outcome leitner.Outcome) (models.Flashcard, error) {
	if s.state != InProgress {
		return models.Flashcard{}, ErrFinished
	}
	card := s.cards[s.index]
	if outcome == leitner.Known {
		s.known++
	}
	s.index++
	if s.index >= len(s.cards) {
		s.state = Complete
	}
	return card, nil
}

// Exit abandons the session without recording the current item.
func (s *Study) Exit() {
	if s.state == InProgress {
		s.state = Exited
	}
}

// Summary returns the known/total score so far.
func (s *Study) Summary() Summary {
	return summarize(s.known, len(s.cards))
}

// Quiz iterates a random sample of questions, recording an outcome per
// answer.
type Quiz struct {
	questions []models.MCQ
	index     int
	score     int
	state     State
}

// NewQuiz samples up to limit questions uniformly without replacement.
// Returns ErrNoItems when mcqs is empty.
func NewQuiz(mcqs []models.MCQ, limit int, rng *rand.Rand) (*Quiz, error) {
	if len(mcqs) == 0 {
		return nil, ErrNoItems
	}
	sample := make([]models.MCQ, len(mcqs))
	copy(sample, mcqs)
	rng.Shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})
	if limit > 0 && len(sample) > limit {
		sample = sample[:limit]
	}
	return &Quiz{questions: sample}, nil
}

// State returns the session state.
func (q *Quiz) State() State { return q.state }

// Progress returns the zero-based position and total question count.
func (q *Quiz) Progress() (index, total int) { return q.index, len(q.questions) }

// Current returns the question awaiting an answer.
func (q *Quiz) Current() (models.MCQ, bool) {
	if q.state != InProgress {
		return models.MCQ{}, false
	}
	return q.questions[q.index], true
}

// Answer scores the selected option against the current question,
// advances, and returns the question plus whether the answer was correct.
func (q *Quiz) Answer(selected int) (models.MCQ, bool, error) {
	if q.state != InProgress {
		return models.MCQ{}, false, ErrFinished
	}
	mcq := q.questions[q.index]
	if selected < 0 || selected >= len(mcq.Options) {
		return models.MCQ{}, false, ErrBadOption
	}
	correct := selected == mcq.CorrectAnswer
	if correct {
		q.score++
	}
	q.index++
	if q.index >= len(q.questions) {
		q.state = Complete
	}
	return mcq, correct, nil
}

// Exit abandons the session without recording the current item.
func (q *Quiz) Exit() {
	if q.state == InProgress {
		q.state = Exited
	}
}

// Summary returns the score so far.
func (q *Quiz) Summary() Summary {
	return summarize(q.score, len(q.questions))
}
