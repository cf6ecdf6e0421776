// Package stats recomputes display aggregates from the persisted
// collections. A snapshot is a pure function of its inputs and the
// reference time; nothing here is stored.
package stats

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/flashj/flashj/internal/leitner"
	"github.com/flashj/flashj/internal/models"
)

// Recommendation thresholds.
const (
	lowAccuracy        = 60
	lowMastery         = 30
	partialMastery     = 60
	lowMasteryCards    = 5
	partialCards       = 3
	minStreak          = 3
	maxRecommendations = 3
)

const historyDays = 7

// Aggregator computes stats snapshots. The accuracy window is
// configurable; everything else uses fixed thresholds.
type Aggregator struct {
	windowDays int
}

// New creates an Aggregator with the given accuracy window in days.
func New(windowDays int) *Aggregator {
	if windowDays <= 0 {
		windowDays = 7
	}
	return &Aggregator{windowDays: windowDays}
}

// Compute builds a snapshot from the collections as of now. All calendar
// arithmetic is done in UTC.
func (a *Aggregator) Compute(cards []models.Flashcard, mcqs []models.MCQ, results []models.QuizResult, now time.Time) models.StatsSnapshot {
	now = now.UTC()

	snapshot := models.StatsSnapshot{
		TotalCards:          len(cards),
		TotalMCQs:           len(mcqs),
		Accuracy:            a.recentAccuracy(results, now),
		Streak:              streak(results, now),
		AverageDifficulty:   averageDifficulty(cards),
		LeitnerDistribution: leitner.Distribution(cards),
		Topics:              topicStats(cards),
		ProgressHistory:     progressHistory(results, now),
		RecentActivity:      recentActivity(cards, mcqs, results),
	}
	snapshot.Recommendations = recommendations(snapshot)
	return snapshot
}

// recentAccuracy is the percentage of correct results within the window,
// or 0 when there are none.
func (a *Aggregator) recentAccuracy(results []models.QuizResult, now time.Time) int {
	cutoff := now.AddDate(0, 0, -a.windowDays)
	total, correct := 0, 0
	for _, r := range results {
		if r.Timestamp.Before(cutoff) {
			continue
		}
		total++
		if r.IsCorrect {
			correct++
		}
	}
	return percent(correct, total)
}

// streak counts consecutive calendar days with at least one result,
// walking backward from today and stopping at the first gap.
func streak(results []models.QuizResult, now time.Time) int {
	days := make(map[string]bool)
	for _, r := range results {
		days[r.Timestamp.UTC().Format("2006-01-02")] = true
	}
	if len(days) == 0 {
		return 0
	}

	dates := make([]string, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	count := 0
	for i, date := range dates {
		expected := now.AddDate(0, 0, -i).Format("2006-01-02")
		if date != expected {
			break
		}
		count++
	}
	return count
}

func topicStats(cards []models.Flashcard) map[string]models.TopicStats {
	topics := make(map[string]models.TopicStats)
	for _, card := range cards {
		t := topics[card.Topic]
		t.Total++
		switch card.Difficulty {
		case models.DifficultyHard:
			t.Hard++
		case models.DifficultyMedium:
			t.Medium++
		default:
			t.Easy++
		}
		if card.Mastered() {
			t.Mastered++
		}
		topics[card.Topic] = t
	}
	for name, t := range topics {
		t.Mastery = percent(t.Mastered, t.Total)
		topics[name] = t
	}
	return topics
}

// progressHistory covers the last 7 calendar days, oldest first.
func progressHistory(results []models.QuizResult, now time.Time) []models.DayProgress {
	history := make([]models.DayProgress, 0, historyDays)
	for i := historyDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")

		total, correct := 0, 0
		for _, r := range results {
			if r.Timestamp.UTC().Format("2006-01-02") != date {
				continue
			}
			total++
			if r.IsCorrect {
				correct++
			}
		}

		history = append(history, models.DayProgress{
			Date:         date,
			Day:          day.Format("Mon"),
			Accuracy:     percent(correct, total),
			CardsStudied: total,
		})
	}
	return history
}

// recommendations applies the fixed thresholds in a fixed order: overall
// accuracy, then topics sorted by name, then streak. Capped at three.
func recommendations(s models.StatsSnapshot) []models.Recommendation {
	var recs []models.Recommendation

	if s.Accuracy < lowAccuracy {
		recs = append(recs, models.Recommendation{
			Title:       "Improve Accuracy",
			Description: "Your recent quiz accuracy is below 60%. Focus on reviewing difficult cards and retaking quizzes.",
			Priority:    models.PriorityUrgent,
		})
	}

	names := make([]string, 0, len(s.Topics))
	for name := range s.Topics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := s.Topics[name]
		switch {
		case t.Mastery < lowMastery && t.Total >= lowMasteryCards:
			recs = append(recs, models.Recommendation{
				Title:       fmt.Sprintf("Review %s", name),
				Description: fmt.Sprintf("Only %d%% of cards in %q are mastered. Schedule a focused review session.", t.Mastery, name),
				Priority:    models.PriorityUrgent,
			})
		case t.Mastery < partialMastery && t.Total >= partialCards:
			recs = append(recs, models.Recommendation{
				Title:       fmt.Sprintf("Practice %s", name),
				Description: fmt.Sprintf("Continue practicing %q to improve from %d%% mastery.", name, t.Mastery),
				Priority:    models.PriorityMedium,
			})
		}
	}

	if s.Streak < minStreak {
		recs = append(recs, models.Recommendation{
			Title:       "Build Study Habit",
			Description: "Try to study for at least 3 consecutive days to build a consistent learning habit.",
			Priority:    models.PriorityMedium,
		})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// recentActivity merges the latest quiz results, card creations and MCQ
// creations into a single feed, newest first, capped at ten entries.
func recentActivity(cards []models.Flashcard, mcqs []models.MCQ, results []models.QuizResult) []models.Activity {
	var activities []models.Activity

	for _, r := range tailResults(results, 5) {
		title := "Incorrect Answer"
		if r.IsCorrect {
			title = "Correct Answer"
		}
		activities = append(activities, models.Activity{
			Type:        "quiz",
			Title:       title,
			Description: truncate(r.Question, 60),
			Time:        r.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	for _, c := range tailCards(cards, 3) {
		activities = append(activities, models.Activity{
			Type:        "flashcard",
			Title:       "New Flashcard Created",
			Description: truncate(c.Front, 60),
			Time:        c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	for _, m := range tailMCQs(mcqs, 2) {
		activities = append(activities, models.Activity{
			Type:        "mcq",
			Title:       "New MCQ Created",
			Description: truncate(m.Question, 60),
			Time:        m.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time > activities[j].Time
	})
	if len(activities) > 10 {
		activities = activities[:10]
	}
	return activities
}

func tailResults(results []models.QuizResult, n int) []models.QuizResult {
	if len(results) > n {
		return results[len(results)-n:]
	}
	return results
}

func tailCards(cards []models.Flashcard, n int) []models.Flashcard {
	if len(cards) > n {
		return cards[len(cards)-n:]
	}
	return cards
}

func tailMCQs(mcqs []models.MCQ, n int) []models.MCQ {
	if len(mcqs) > n {
		return mcqs[len(mcqs)-n:]
	}
	return mcqs
}

func averageDifficulty(cards []models.Flashcard) string {
	if len(cards) == 0 {
		return "N/A"
	}
	total := 0
	for _, card := range cards {
		switch card.Difficulty {
		case models.DifficultyEasy:
			total += 1
		case models.DifficultyHard:
			total += 3
		default:
			total += 2
		}
	}
	avg := float64(total) / float64(len(cards))
	switch {
	case avg < 1.5:
		return "Easy"
	case avg < 2.5:
		return "Medium"
	default:
		return "Hard"
	}
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(part)/float64(total)*100 + 0.5)
}

// truncate shortens s to at most n bytes, stepping back so a multi-byte
// rune is never split.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
