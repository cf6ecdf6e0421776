package worker

import (
	"context"

	"github.com/flashj/flashj/internal/logger"
)

// GenerateFlashcardsJob synthesizes and stores flashcards from raw text.
type GenerateFlashcardsJob struct {
	Service GenerationServiceInterface
	Text    string
	Source  string
}

func (j *GenerateFlashcardsJob) Name() string { return "generate_flashcards" }

func (j *GenerateFlashcardsJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("source", j.Source)
	cards, err := j.Service.GenerateFlashcards(ctx, j.Text)
	if err != nil {
		return err
	}
	log.Info("generated %d flashcards", len(cards))
	return nil
}

// GenerateMCQsJob synthesizes and stores multiple-choice questions from
// raw text.
type GenerateMCQsJob struct {
	Service    GenerationServiceInterface
	Text       string
	Source     string
	Difficulty string
	Count      int
}

func (j *GenerateMCQsJob) Name() string { return "generate_mcqs" }

func (j *GenerateMCQsJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("source", j.Source)
	mcqs, err := j.Service.GenerateMCQs(ctx, j.Text, j.Difficulty, j.Count)
	if err != nil {
		return err
	}
	log.Info("generated %d mcqs", len(mcqs))
	return nil
}
