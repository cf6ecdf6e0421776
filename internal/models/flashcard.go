package models

import "time"

// Difficulty buckets assigned by the synthesizers.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Leitner box bounds. Box 0 holds new/forgotten cards, box 4 mastered ones.
const (
	LeitnerBoxMin = 0
	LeitnerBoxMax = 4
	LeitnerBoxes  = 5
)

// MasteryBox is the lowest box index counted as mastered.
const MasteryBox = 3

type Flashcard struct {
	ID           string     `json:"id"`
	Topic        string     `json:"topic"`
	Front        string     `json:"front"`
	Back         string     `json:"back"`
	Notes        string     `json:"notes"`
	Tags         []string   `json:"tags"`
	Difficulty   string     `json:"difficulty"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastReviewed *time.Time `json:"lastReviewed"`
	LeitnerBox   int        `json:"leitnerBox"`
}

// Mastered reports whether the card sits in a mastery-level Leitner box.
func (f Flashcard) Mastered() bool {
	return f.LeitnerBox >= MasteryBox
}
