package services

import (
	"context"
	"strings"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/models"
	"github.com/flashj/flashj/internal/synth"
)

// GenerationService turns raw text into stored study material.
type GenerationService interface {
	GenerateFlashcards(ctx context.Context, text string) ([]models.Flashcard, error)
	GenerateMCQs(ctx context.Context, text, difficulty string, count int) ([]models.MCQ, error)
}

type generationService struct {
	db    *db.DB
	cards *synth.FlashcardSynthesizer
	mcqs  *synth.MCQSynthesizer
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(db *db.DB, cards *synth.FlashcardSynthesizer, mcqs *synth.MCQSynthesizer) GenerationService {
	return &generationService{db: db, cards: cards, mcqs: mcqs}
}

// GenerateFlashcards synthesizes cards from text, drops duplicates of
// already stored cards, and persists the remainder in one batch. An empty
// result is not an error; generation is best effort.
func (s *generationService) GenerateFlashcards(ctx context.Context, text string) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(text) == "" {
		return nil, errors.NewEmptyInputError()
	}

	existing, err := s.db.ListFlashcards(ctx, db.FlashcardFilter{})
	if err != nil {
		log.Error("failed to load existing flashcards: %v", err)
		return nil, errors.NewInternalError(err)
	}

	cards := s.cards.Generate(text, existing)
	if len(cards) == 0 {
		log.Info("no flashcards generated from input")
		return []models.Flashcard{}, nil
	}

	if err := s.db.InsertFlashcards(ctx, cards); err != nil {
		log.Error("failed to store generated flashcards: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("stored %d generated flashcards", len(cards))
	return cards, nil
}

// GenerateMCQs synthesizes questions from text at the given difficulty and
// persists them. Difficulty defaults to medium; count is clamped by the
// synthesizer's per-run maximum.
func (s *generationService) GenerateMCQs(ctx context.Context, text, difficulty string, count int) ([]models.MCQ, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(text) == "" {
		return nil, errors.NewEmptyInputError()
	}

	switch difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	case "":
		difficulty = models.DifficultyMedium
	default:
		return nil, errors.NewValidationError("difficulty", "must be easy, medium or hard")
	}

	if count <= 0 {
		count = synth.MaxMCQsPerRun
	}

	mcqs := s.mcqs.Generate(text, difficulty, count)
	if len(mcqs) == 0 {
		log.Info("no mcqs generated from input")
		return []models.MCQ{}, nil
	}

	if err := s.db.InsertMCQs(ctx, mcqs); err != nil {
		log.Error("failed to store generated mcqs: %v", err)
		return nil, errors.NewInternalError(err)
	}

	log.Info("stored %d generated mcqs", len(mcqs))
	return mcqs, nil
}
