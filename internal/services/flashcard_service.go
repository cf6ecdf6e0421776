package services

import (
	"context"
	"strings"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/models"
)

// FlashcardEdit is the set of fields a user may change on a stored card.
type FlashcardEdit struct {
	Front      string   `json:"front"`
	Back       string   `json:"back"`
	Notes      string   `json:"notes"`
	Tags       []string `json:"tags"`
	Difficulty string   `json:"difficulty"`
}

// FlashcardService handles flashcard CRUD business logic.
type FlashcardService interface {
	List(ctx context.Context, filter db.FlashcardFilter) ([]models.Flashcard, error)
	Get(ctx context.Context, id string) (*models.Flashcard, error)
	Edit(ctx context.Context, id string, edit FlashcardEdit) (*models.Flashcard, error)
	Delete(ctx context.Context, id string) error
}

type flashcardService struct {
	db *db.DB
}

// NewFlashcardService creates a new FlashcardService.
func NewFlashcardService(db *db.DB) FlashcardService {
	return &flashcardService{db: db}
}

func (s *flashcardService) List(ctx context.Context, filter db.FlashcardFilter) ([]models.Flashcard, error) {
	cards, err := s.db.ListFlashcards(ctx, filter)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if cards == nil {
		cards = []models.Flashcard{}
	}
	return cards, nil
}

func (s *flashcardService) Get(ctx context.Context, id string) (*models.Flashcard, error) {
	card, err := s.db.GetFlashcard(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	if card == nil {
		return nil, errors.NewNotFoundError("flashcard", id)
	}
	return card, nil
}

// Edit replaces the user-editable fields of a card. Review state (box,
// last reviewed) is never touched by edits.
func (s *flashcardService) Edit(ctx context.Context, id string, edit FlashcardEdit) (*models.Flashcard, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(edit.Front) == "" {
		return nil, errors.NewValidationError("front", "must not be empty")
	}
	if strings.TrimSpace(edit.Back) == "" {
		return nil, errors.NewValidationError("back", "must not be empty")
	}
	switch edit.Difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	default:
		return nil, errors.NewValidationError("difficulty", "must be easy, medium or hard")
	}

	card, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	card.Front = edit.Front
	card.Back = edit.Back
	card.Notes = edit.Notes
	card.Tags = edit.Tags
	card.Difficulty = edit.Difficulty
	if card.Tags == nil {
		card.Tags = []string{}
	}

	if err := s.db.UpdateFlashcard(ctx, *card); err != nil {
		log.Error("failed to update flashcard %s: %v", id, err)
		return nil, errors.NewInternalError(err)
	}
	return card, nil
}

func (s *flashcardService) Delete(ctx context.Context, id string) error {
	found, err := s.db.DeleteFlashcard(ctx, id)
	if err != nil {
		return errors.NewInternalError(err)
	}
	if !found {
		return errors.NewNotFoundError("flashcard", id)
	}
	return nil
}
