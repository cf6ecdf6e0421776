package worker

import (
	"context"

	"github.com/flashj/flashj/internal/models"
)

// GenerationServiceInterface is the slice of the generation service that
// background jobs need. Defined here to keep the jobs package free of a
// dependency on the services package.
type GenerationServiceInterface interface {
	GenerateFlashcards(ctx context.Context, text string) ([]models.Flashcard, error)
	GenerateMCQs(ctx context.Context, text, difficulty string, count int) ([]models.MCQ, error)
}
