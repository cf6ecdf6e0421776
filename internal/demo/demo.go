// Package demo holds the sample study content shipped with the server.
package demo

import (
	_ "embed"
	"encoding/json"

	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/models"
)

//go:embed data/demo-data.json
var demoJSON []byte

// Payload is the sample content used to seed an empty database.
type Payload struct {
	Flashcards []models.Flashcard `json:"flashcards"`
	MCQs       []models.MCQ       `json:"mcqs"`
}

// Load parses the embedded demo asset. If the asset is malformed the
// hard-coded fallback payload is returned instead; the failure is logged
// and never surfaced to callers.
func Load() Payload {
	var p Payload
	if err := json.Unmarshal(demoJSON, &p); err != nil {
		logger.Default().WithPrefix("demo").Error("failed to parse embedded demo data, using fallback: %v", err)
		return fallback()
	}
	return p
}

func fallback() Payload {
	return Payload{
		Flashcards: []models.Flashcard{
			{
				ID:         "demo-card-1",
				Topic:      "Learning Systems",
				Front:      "What is the Leitner system?",
				Back:       "A spaced repetition technique that sorts flashcards into boxes by mastery; difficult cards are reviewed more frequently to improve retention.",
				Notes:      "Based on the spacing effect in cognitive psychology",
				Tags:       []string{"spaced-repetition", "memory"},
				Difficulty: models.DifficultyMedium,
			},
			{
				ID:         "demo-card-2",
				Topic:      "Learning Systems",
				Front:      "How does spaced repetition work?",
				Back:       "Spaced repetition increases intervals between reviews of learned material to take advantage of the psychological spacing effect for better long-term retention.",
				Notes:      "First proposed by Hermann Ebbinghaus",
				Tags:       []string{"memory", "learning"},
				Difficulty: models.DifficultyEasy,
			},
		},
		MCQs: []models.MCQ{
			{
				ID:            "demo-mcq-1",
				Question:      "What does the Leitner system help improve?",
				Options:       []string{"Memory retention", "Battery life", "File compression", "Screen resolution"},
				CorrectAnswer: 0,
				Explanation:   "The Leitner system is specifically designed to improve memory retention through spaced repetition.",
				Difficulty:    models.DifficultyEasy,
				Topic:         "Learning Systems",
			},
		},
	}
}
