package services

import (
	"context"
	"time"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/demo"
	"github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/models"
)

// DemoService seeds the database with the bundled sample content.
type DemoService interface {
	Seed(ctx context.Context) (cards, mcqs int, err error)
}

type demoService struct {
	db  *db.DB
	now func() time.Time
}

// NewDemoService creates a new DemoService.
func NewDemoService(database *db.DB) DemoService {
	return &demoService{db: database, now: time.Now}
}

// Seed inserts the demo payload, skipping entries whose ID is already
// stored so repeated seeding is harmless. Cards start in box 0 with a
// fresh creation time.
func (s *demoService) Seed(ctx context.Context) (int, int, error) {
	log := logger.FromContext(ctx)
	payload := demo.Load()
	now := s.now().UTC()

	var cards []models.Flashcard
	for _, card := range payload.Flashcards {
		existing, err := s.db.GetFlashcard(ctx, card.ID)
		if err != nil {
			return 0, 0, errors.NewInternalError(err)
		}
		if existing != nil {
			continue
		}
		card.CreatedAt = now
		card.LeitnerBox = models.LeitnerBoxMin
		card.LastReviewed = nil
		if card.Tags == nil {
			card.Tags = []string{}
		}
		cards = append(cards, card)
	}
	if len(cards) > 0 {
		if err := s.db.InsertFlashcards(ctx, cards); err != nil {
			log.Error("failed to seed demo flashcards: %v", err)
			return 0, 0, errors.NewInternalError(err)
		}
	}

	var mcqs []models.MCQ
	for _, mcq := range payload.MCQs {
		existing, err := s.db.GetMCQ(ctx, mcq.ID)
		if err != nil {
			return len(cards), 0, errors.NewInternalError(err)
		}
		if existing != nil {
			continue
		}
		mcq.CreatedAt = now
		mcqs = append(mcqs, mcq)
	}
	if len(mcqs) > 0 {
		if err := s.db.InsertMCQs(ctx, mcqs); err != nil {
			log.Error("failed to seed demo mcqs: %v", err)
			return len(cards), 0, errors.NewInternalError(err)
		}
	}

	log.Info("seeded demo content: %d flashcards, %d mcqs", len(cards), len(mcqs))
	return len(cards), len(mcqs), nil
}
