package models

import "time"

// OptionCount is the fixed number of options per question: one correct
// answer plus three distractors.
const OptionCount = 4

type MCQ struct {
	ID            string    `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
	Difficulty    string    `json:"difficulty"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Answer returns the correct option text.
func (m MCQ) Answer() string {
	if m.CorrectAnswer < 0 || m.CorrectAnswer >= len(m.Options) {
		return ""
	}
	return m.Options[m.CorrectAnswer]
}
