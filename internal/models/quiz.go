package models

import "time"

// QuizResult records a single answered quiz question. Results are
// append-only: once written they are never mutated.
type QuizResult struct {
	ID             int64     `json:"id"`
	MCQID          string    `json:"mcqId"`
	Question       string    `json:"question"`
	SelectedAnswer int       `json:"selectedAnswer"`
	IsCorrect      bool      `json:"isCorrect"`
	Timestamp      time.Time `json:"timestamp"`
}
