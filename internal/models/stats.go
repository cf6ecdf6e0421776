package models

// StatsSnapshot is a display aggregate recomputed on demand from the
// persisted collections. It is never stored.
type StatsSnapshot struct {
	TotalCards          int                   `json:"totalCards"`
	TotalMCQs           int                   `json:"totalMcqs"`
	Accuracy            int                   `json:"accuracy"`
	Streak              int                   `json:"streak"`
	AverageDifficulty   string                `json:"averageDifficulty"`
	LeitnerDistribution [LeitnerBoxes]int     `json:"leitnerDistribution"`
	Topics              map[string]TopicStats `json:"topics"`
	ProgressHistory     []DayProgress         `json:"progressHistory"`
	Recommendations     []Recommendation      `json:"recommendations"`
	RecentActivity      []Activity            `json:"recentActivity"`
}

type TopicStats struct {
	Total    int `json:"total"`
	Mastered int `json:"mastered"`
	Mastery  int `json:"mastery"` // percentage
	Easy     int `json:"easy"`
	Medium   int `json:"medium"`
	Hard     int `json:"hard"`
}

// DayProgress is one calendar day in the 7-day progress history.
type DayProgress struct {
	Date         string `json:"date"` // UTC date, YYYY-MM-DD
	Day          string `json:"day"`  // short weekday name
	Accuracy     int    `json:"accuracy"`
	CardsStudied int    `json:"cardsStudied"`
}

// Recommendation priorities.
const (
	PriorityUrgent = "urgent"
	PriorityMedium = "medium"
)

type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Activity is one entry in the recent-activity feed.
type Activity struct {
	Type        string `json:"type"` // quiz, flashcard, mcq
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"` // RFC 3339
}
