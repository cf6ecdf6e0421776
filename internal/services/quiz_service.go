package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/models"
	"github.com/flashj/flashj/internal/session"
)

// QuizQuestion is a question as shown to the client mid-quiz. The correct
// answer index is withheld until the question is answered.
type QuizQuestion struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
	Topic      string   `json:"topic"`
}

// QuizAnswer is the feedback for one answered question.
type QuizAnswer struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

// QuizView is the client-facing snapshot of a quiz session.
type QuizView struct {
	SessionID string           `json:"sessionId"`
	State     string           `json:"state"`
	Question  *QuizQuestion    `json:"question,omitempty"`
	Answer    *QuizAnswer      `json:"answer,omitempty"`
	Index     int              `json:"index"`
	Total     int              `json:"total"`
	Summary   *session.Summary `json:"summary,omitempty"`
}

// QuizService runs multiple-choice quiz sessions over a random sample of
// stored questions. Every answer is appended to the quiz result log.
type QuizService interface {
	Start(ctx context.Context, filter db.MCQFilter) (*QuizView, error)
	Current(ctx context.Context, sessionID string) (*QuizView, error)
	Answer(ctx context.Context, sessionID string, selected int) (*QuizView, error)
	Exit(ctx context.Context, sessionID string) (*QuizView, error)
}

type quizService struct {
	db     *db.DB
	length int
	now    func() time.Time

	mu       sync.Mutex
	rng      *rand.Rand
	sessions map[string]*session.Quiz
}

// NewQuizService creates a new QuizService sampling up to length questions
// per quiz.
func NewQuizService(database *db.DB, length int) QuizService {
	return &quizService{
		db:       database,
		length:   length,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[string]*session.Quiz),
	}
}

func (s *quizService) Start(ctx context.Context, filter db.MCQFilter) (*QuizView, error) {
	log := logger.FromContext(ctx)

	mcqs, err := s.db.ListMCQs(ctx, filter)
	if err != nil {
		log.Error("failed to load mcqs for quiz: %v", err)
		return nil, errors.NewInternalError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	quiz, err := session.NewQuiz(mcqs, s.length, s.rng)
	if err != nil {
		return nil, errors.NewBadRequestError("no questions available for a quiz")
	}

	id := uuid.NewString()
	s.sessions[id] = quiz
	_, total := quiz.Progress()
	log.Info("started quiz session %s with %d questions", id, total)
	return s.view(id, quiz, nil), nil
}

func (s *quizService) Current(ctx context.Context, sessionID string) (*QuizView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("quiz session", sessionID)
	}
	return s.view(sessionID, quiz, nil), nil
}

// Answer scores the selected option, appends the outcome to the result
// log, and advances to the next question.
func (s *quizService) Answer(ctx context.Context, sessionID string, selected int) (*QuizView, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	quiz, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("quiz session", sessionID)
	}

	mcq, correct, err := quiz.Answer(selected)
	switch err {
	case nil:
	case session.ErrBadOption:
		return nil, errors.NewValidationError("selected", "must index one of the options")
	default:
		return nil, errors.NewBadRequestError("session already finished")
	}

	result := models.QuizResult{
		MCQID:          mcq.ID,
		Question:       mcq.Question,
		SelectedAnswer: selected,
		IsCorrect:      correct,
		Timestamp:      s.now().UTC(),
	}
	if _, err := s.db.InsertQuizResult(ctx, result); err != nil {
		log.Error("failed to record quiz result for mcq %s: %v", mcq.ID, err)
		return nil, errors.NewInternalError(err)
	}

	answer := &QuizAnswer{
		Correct:       correct,
		CorrectAnswer: mcq.CorrectAnswer,
		Explanation:   mcq.Explanation,
	}
	view := s.view(sessionID, quiz, answer)
	if quiz.State() != session.InProgress {
		delete(s.sessions, sessionID)
	}
	return view, nil
}

// Exit abandons the quiz; answered questions stay in the result log.
func (s *quizService) Exit(ctx context.Context, sessionID string) (*QuizView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quiz, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("quiz session", sessionID)
	}
	quiz.Exit()
	view := s.view(sessionID, quiz, nil)
	delete(s.sessions, sessionID)
	return view, nil
}

func (s *quizService) view(id string, quiz *session.Quiz, answer *QuizAnswer) *QuizView {
	index, total := quiz.Progress()
	view := &QuizView{
		SessionID: id,
		State:     stateString(quiz.State()),
		Answer:    answer,
		Index:     index,
		Total:     total,
	}
	if mcq, ok := quiz.Current(); ok {
		view.Question = &QuizQuestion{
			ID:         mcq.ID,
			Question:   mcq.Question,
			Options:    mcq.Options,
			Difficulty: mcq.Difficulty,
			Topic:      mcq.Topic,
		}
	} else {
		summary := quiz.Summary()
		view.Summary = &summary
	}
	return view
}
