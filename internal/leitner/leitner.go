// Package leitner implements the five-box spaced repetition scheme. The
// per-card LeitnerBox field is the single owner of box membership; the box
// partition is derived from it on demand and never stored separately.
package leitner

import (
	"time"

	"github.com/flashj/flashj/internal/models"
)

// Outcome is the result of reviewing one card in a study session.
type Outcome int

const (
	// Unknown sends the card back to box 0 for frequent review.
	Unknown Outcome = iota
	// Known advances the card one box toward mastery.
	Known
)

// ApplyReview moves a card between boxes based on a study outcome and
// stamps the review time. Known advances one box (capped at the top box);
// Unknown resets to box 0.
func ApplyReview(card models.Flashcard, outcome Outcome, reviewedAt time.Time) models.Flashcard {
	switch outcome {
	case Known:
		if card.LeitnerBox < models.LeitnerBoxMax {
			card.LeitnerBox++
		}
	default:
		card.LeitnerBox = models.LeitnerBoxMin
	}
	card.LastReviewed = &reviewedAt
	return card
}

// Partition derives the box membership sets (card IDs per box index) from
// the cards' LeitnerBox fields. Cards with an out-of-range box are clamped
// rather than dropped.
func Partition(cards []models.Flashcard) [models.LeitnerBoxes][]string {
	var boxes [models.LeitnerBoxes][]string
	for _, card := range cards {
		box := card.LeitnerBox
		if box < models.LeitnerBoxMin {
			box = models.LeitnerBoxMin
		}
		if box > models.LeitnerBoxMax {
			box = models.LeitnerBoxMax
		}
		boxes[box] = append(boxes[box], card.ID)
	}
	return boxes
}

// Distribution returns the number of cards in each box.
func Distribution(cards []models.Flashcard) [models.LeitnerBoxes]int {
	var counts [models.LeitnerBoxes]int
	for box, ids := range Partition(cards) {
		counts[box] = len(ids)
	}
	return counts
}
