package services

import (
	"context"
	"strings"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/models"
)

// MCQEdit is the set of fields a user may change on a stored question.
type MCQEdit struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
}

// MCQService handles multiple-choice question CRUD business logic.
type MCQService interface {
	List(ctx context.Context, filter db.MCQFilter) ([]models.MCQ, error)
	Get(ctx context.Context, id string) (*models.MCQ, error)
	Edit(ctx context.Context, id string, edit MCQEdit) (*models.MCQ, error)
	Delete(ctx context.Context, id string) error
}

type mcqService struct {
	db *db.DB
}

// NewMCQService creates a new MCQService.
func NewMCQService(db *db.DB) MCQService {
	return &mcqService{db: db}
}

func (s *mcqService) List(ctx context.Context, filter db.MCQFilter) ([]models.MCQ, error) {
	mcqs, err := s.db.ListMCQs(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if mcqs == nil {
		mcqs = []models.MCQ{}
	}
	return mcqs, nil
}

func (s *mcqService) Get(ctx context.Context, id string) (*models.MCQ, error) {
	mcq, err := s.db.GetMCQ(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if mcq == nil {
		return nil, errors.NewNotFoundError("mcq", id)
	}
	return mcq, nil
}

func (s *mcqService) Edit(ctx context.Context, id string, edit MCQEdit) (*models.MCQ, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(edit.Question) == "" {
		return nil, errors.NewValidationError("question", "must not be empty")
	}
	if len(edit.Options) != models.OptionCount {
		return nil, errors.NewValidationError("options", "must contain exactly 4 options")
	}
	for _, opt := range edit.Options {
		if strings.TrimSpace(opt) == "" {
			return nil, errors.NewValidationError("options", "options must not be empty")
		}
	}
	if edit.CorrectAnswer < 0 || edit.CorrectAnswer >= len(edit.Options) {
		return nil, errors.NewValidationError("correctAnswer", "must index one of the options")
	}
	switch edit.Difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	default:
		return nil, errors.NewValidationError("difficulty", "must be easy, medium or hard")
	}

	mcq, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	mcq.Question = edit.Question
	mcq.Options = edit.Options
	mcq.CorrectAnswer = edit.CorrectAnswer
	mcq.Explanation = edit.Explanation
	mcq.Difficulty = edit.Difficulty

	if err := s.db.UpdateMCQ(ctx, *mcq); err != nil {
		log.Error("failed to update mcq %s: %v", id, err)
		return nil, errors.NewInternalError(err)
	}
	return mcq, nil
}

func (s *mcqService) Delete(ctx context.Context, id string) error {
	found, err := s.db.DeleteMCQ(ctx, id)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if !found {
		return errors.NewNotFoundError("mcq", id)
	}
	return nil
}
