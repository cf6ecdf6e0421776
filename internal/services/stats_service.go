package services

import (
	"context"
	"time"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/models"
	"github.com/flashj/flashj/internal/stats"
)

// StatsService computes the dashboard snapshot from stored collections.
type StatsService interface {
	Snapshot(ctx context.Context) (*models.StatsSnapshot, error)
}

type statsService struct {
	db         *db.DB
	aggregator *stats.Aggregator
	now        func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(database *db.DB, aggregator *stats.Aggregator) StatsService {
	return &statsService{db: database, aggregator: aggregator, now: time.Now}
}

func (s *statsService) Snapshot(ctx context.Context) (*models.StatsSnapshot, error) {
	log := logger.FromContext(ctx)

	cards, err := s.db.ListFlashcards(ctx, db.FlashcardFilter{})
	if err != nil {
		log.Error("failed to load flashcards for stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	mcqs, err := s.db.ListMCQs(ctx, db.MCQFilter{})
	if err != nil {
		log.Error("failed to load mcqs for stats: %v", err)
		return nil, errors.NewInternalError(err)
	}
	results, err := s.db.ListQuizResults(ctx)
	if err != nil {
		log.Error("failed to load quiz results for stats: %v", err)
		return nil, errors.NewInternalError(err)
	}

	snapshot := s.aggregator.Compute(cards, mcqs, results, s.now())
	return &snapshot, nil
}
