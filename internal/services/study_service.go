package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/leitner"
	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/models"
	"github.com/flashj/flashj/internal/session"
)

// Study outcomes as sent by clients.
const (
	OutcomeKnown   = "known"
	OutcomeUnknown = "unknown"
)

// StudyView is the client-facing snapshot of a study session.
type StudyView struct {
	SessionID string            `json:"sessionId"`
	State     string            `json:"state"`
	Card      *models.Flashcard `json:"card,omitempty"`
	Index     int               `json:"index"`
	Total     int               `json:"total"`
	Summary   *session.Summary  `json:"summary,omitempty"`
}

// StudyService runs flashcard study sessions. Sessions live in memory and
// are keyed by a generated ID; box movement is persisted per answer.
type StudyService interface {
	Start(ctx context.Context, filter db.FlashcardFilter) (*StudyView, error)
	Current(ctx context.Context, sessionID string) (*StudyView, error)
	Answer(ctx context.Context, sessionID, outcome string) (*StudyView, error)
	Exit(ctx context.Context, sessionID string) (*StudyView, error)
}

type studyService struct {
	db  *db.DB
	now func() time.Time

	mu       sync.Mutex
	rng      *rand.Rand
	sessions map[string]*session.Study
}

// NewStudyService creates a new StudyService.
func NewStudyService(database *db.DB) StudyService {
	return &studyService{
		db:       database,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		sessions: make(map[string]*session.Study),
	}
}

func (s *studyService) Start(ctx context.Context, filter db.FlashcardFilter) (*StudyView, error) {
	log := logger.FromContext(ctx)

	cards, err := s.db.ListFlashcards(ctx, filter)
	if err != nil {
		log.Error("failed to load flashcards for study: %v", err)
		return nil, errors.NewInternalError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	study, err := session.NewStudy(cards, s.rng)
	if err != nil {
		return nil, errors.NewBadRequestError("no flashcards available to study")
	}

	id := uuid.NewString()
	s.sessions[id] = study
	log.Info("started study session %s with %d cards", id, len(cards))
	return s.view(id, study), nil
}

func (s *studyService) Current(ctx context.Context, sessionID string) (*StudyView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	study, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("study session", sessionID)
	}
	return s.view(sessionID, study), nil
}

// Answer records the outcome for the current card, applies box movement,
// and persists the updated card before advancing the session.
func (s *studyService) Answer(ctx context.Context, sessionID, outcome string) (*StudyView, error) {
	log := logger.FromContext(ctx)

	var result leitner.Outcome
	switch outcome {
	case OutcomeKnown:
		result = leitner.Known
	case OutcomeUnknown:
		result = leitner.Unknown
	default:
		return nil, errors.NewValidationError("outcome", "must be known or unknown")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	study, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("study session", sessionID)
	}

	card, err := study.Mark(result)
	if err != nil {
		return nil, errors.NewBadRequestError("session already finished")
	}

	updated := leitner.ApplyReview(card, result, s.now().UTC())
	if err := s.db.UpdateFlashcard(ctx, updated); err != nil {
		log.Error("failed to persist review of card %s: %v", card.ID, err)
		return nil, errors.NewInternalError(err)
	}
	log.Debug("card %s reviewed: outcome=%s box=%d", card.ID, outcome, updated.LeitnerBox)

	view := s.view(sessionID, study)
	if study.State() != session.InProgress {
		delete(s.sessions, sessionID)
	}
	return view, nil
}

// Exit abandons the session; the current card keeps its box.
func (s *studyService) Exit(ctx context.Context, sessionID string) (*StudyView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	study, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.NewNotFoundError("study session", sessionID)
	}
	study.Exit()
	view := s.view(sessionID, study)
	delete(s.sessions, sessionID)
	return view, nil
}

func (s *studyService) view(id string, study *session.Study) *StudyView {
	index, total := study.Progress()
	view := &StudyView{
		SessionID: id,
		State:     stateString(study.State()),
		Index:     index,
		Total:     total,
	}
	if card, ok := study.Current(); ok {
		view.Card = &card
	} else {
		summary := study.Summary()
		view.Summary = &summary
	}
	return view
}

func stateString(state session.State) string {
	switch state {
	case session.Complete:
		return "complete"
	case session.Exited:
		return "exited"
	default:
		return "in_progress"
	}
}
