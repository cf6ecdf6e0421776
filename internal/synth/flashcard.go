// Package synth derives flashcards and multiple-choice questions from raw
// text using rule-based heuristics. There is no real NLP here: sentence
// scoring, concept extraction and distractor generation are all regex and
// word-table driven, tuned for short study documents.
package synth

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/flashj/flashj/internal/models"
	"github.com/flashj/flashj/internal/textnorm"
)

// MaxFlashcardsPerRun caps how many cards a single generation pass emits.
const MaxFlashcardsPerRun = 10

// similarityThreshold is the word-set Jaccard similarity above which two
// card fronts are considered duplicates.
const similarityThreshold = 0.7

var (
	properNounPairRe = regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`)
	digitRe          = regexp.MustCompile(`\d`)
	nonWordRe        = regexp.MustCompile(`[^\w\s]`)
	trailingPunctRe  = regexp.MustCompile(`[.,!?;:]$`)

	// Ordered concept extraction patterns; the first match wins.
	conceptPatterns = []*regexp.Regexp{
		regexp.MustCompile(`([A-Z][^,.!?]{10,50}?)\s+(?:is|are|was|were|refers to|means|defined as)`),
		regexp.MustCompile(`(?:The|A|An)\s+([^,.!?]{10,40}?)\s+(?:is|are|was|were)`),
		regexp.MustCompile(`([A-Z][^,.!?]{10,50}?)\s+(?:can|may|might|should|must)`),
	}

	clauseSplitRe = regexp.MustCompile(`[,;:]|\band\b|\bor\b`)
)

// FlashcardSynthesizer turns text into flashcard records.
type FlashcardSynthesizer struct {
	vocab Vocabulary
	now   func() time.Time
	newID func() string
	max   int
}

// FlashcardOption configures a FlashcardSynthesizer.
type FlashcardOption func(*FlashcardSynthesizer)

// WithFlashcardClock overrides the timestamp source.
func WithFlashcardClock(now func() time.Time) FlashcardOption {
	return func(s *FlashcardSynthesizer) { s.now = now }
}

// WithFlashcardIDs overrides the card ID source.
func WithFlashcardIDs(newID func() string) FlashcardOption {
	return func(s *FlashcardSynthesizer) { s.newID = newID }
}

// WithFlashcardLimit overrides the per-run card cap.
func WithFlashcardLimit(max int) FlashcardOption {
	return func(s *FlashcardSynthesizer) {
		if max > 0 {
			s.max = max
		}
	}
}

// NewFlashcardSynthesizer creates a synthesizer using the given vocabulary.
func NewFlashcardSynthesizer(vocab Vocabulary, opts ...FlashcardOption) *FlashcardSynthesizer {
	s := &FlashcardSynthesizer{
		vocab: vocab,
		now:   time.Now,
		newID: func() string { return gonanoid.Must() },
		max:   MaxFlashcardsPerRun,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate derives up to the configured maximum of new flashcards from
// text. Candidates duplicating a card in existing (or an earlier candidate
// from the same run) are dropped silently, as are sentences that yield no
// extractable concept.
func (s *FlashcardSynthesizer) Generate(text string, existing []models.Flashcard) []models.Flashcard {
	sentences := textnorm.Sentences(text)

	var cards []models.Flashcard
	for i, sentence := range sentences {
		if len(cards) >= s.max {
			break
		}
		if !s.validSentence(sentence) {
			continue
		}
		card, ok := s.cardFromSentence(sentence, i)
		if !ok {
			continue
		}
		if isDuplicate(card, existing) || isDuplicate(card, cards) {
			continue
		}
		cards = append(cards, card)
	}
	return cards
}

// validSentence keeps sentences of 5-35 words that carry substantive
// content and no URLs.
func (s *FlashcardSynthesizer) validSentence(sentence string) bool {
	words := strings.Fields(sentence)
	if len(words) < 5 || len(words) > 35 {
		return false
	}
	if strings.Contains(sentence, "http") {
		return false
	}
	return s.substantive(sentence)
}

// substantive checks for a vocabulary keyword, a proper-noun pair, a
// digit, or plain length as evidence the sentence is worth a card.
func (s *FlashcardSynthesizer) substantive(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, kw := range s.vocab.SubstantiveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return properNounPairRe.MatchString(sentence) ||
		digitRe.MatchString(sentence) ||
		len(sentence) > 50
}

func (s *FlashcardSynthesizer) cardFromSentence(sentence string, index int) (models.Flashcard, bool) {
	concept := extractConcept(sentence)
	if concept == "" {
		return models.Flashcard{}, false
	}

	keywords := s.extractKeywords(sentence)
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}

	return models.Flashcard{
		ID:         s.newID(),
		Topic:      fmt.Sprintf("Concept %d", index+1),
		Front:      frontContent(sentence, concept),
		Back:       s.backContent(sentence),
		Tags:       keywords,
		Difficulty: assessDifficulty(sentence),
		CreatedAt:  s.now(),
		LeitnerBox: models.LeitnerBoxMin,
	}, true
}

// extractConcept pulls the main subject out of a sentence using the
// ordered patterns, falling back to the sentence's first four words.
func extractConcept(sentence string) string {
	for _, pattern := range conceptPatterns {
		if m := pattern.FindStringSubmatch(sentence); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	words := strings.Split(sentence, " ")
	if len(words) > 5 {
		phrase := strings.Join(words[:4], " ")
		return trailingPunctRe.ReplaceAllString(phrase, "")
	}
	return ""
}

// frontContent prefers the extracted concept when short enough, otherwise
// a leading key phrase of the sentence.
func frontContent(sentence, concept string) string {
	if concept != "" && len(concept) <= 40 {
		return concept
	}

	words := strings.Split(sentence, " ")
	if len(words) <= 8 {
		return sentence
	}
	return strings.Join(words[:6], " ") + "..."
}

// backContent returns the full sentence when short, otherwise condenses it
// to the leading clause plus the most important remaining clause.
func (s *FlashcardSynthesizer) backContent(sentence string) string {
	if len(sentence) <= 120 {
		return sentence
	}

	clauses := splitClauses(sentence)
	if len(clauses) > 1 {
		return strings.TrimSpace(clauses[0]) + ". " + s.importantClause(clauses[1:])
	}
	return clampBytes(sentence, 150) + "..."
}

func splitClauses(sentence string) []string {
	return clauseSplitRe.Split(sentence, -1)
}

// clampBytes cuts s to at most n bytes, stepping back so a multi-byte
// rune is never split.
func clampBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// importantClause picks the first clause carrying a connective word, a
// proper-noun pair, or a digit; failing that, the first clause.
func (s *FlashcardSynthesizer) importantClause(clauses []string) string {
	for _, clause := range clauses {
		lower := strings.ToLower(clause)
		for _, w := range s.vocab.ConnectiveWords {
			if strings.Contains(lower, w) {
				return strings.TrimSpace(clause)
			}
		}
		if properNounPairRe.MatchString(clause) || digitRe.MatchString(clause) {
			return strings.TrimSpace(clause)
		}
	}
	return strings.TrimSpace(clauses[0])
}

// extractKeywords returns up to five keywords ranked by frequency times
// word length, excluding stop words and common verbs.
func (s *FlashcardSynthesizer) extractKeywords(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")

	frequency := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 || s.vocab.StopWords[word] || s.vocab.CommonVerbs[word] {
			continue
		}
		if frequency[word] == 0 {
			order = append(order, word)
		}
		frequency[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return frequency[order[i]]*len(order[i]) > frequency[order[j]]*len(order[j])
	})

	if len(order) > 5 {
		order = order[:5]
	}
	return order
}

// assessDifficulty rates a sentence by its share of long words.
func assessDifficulty(sentence string) string {
	words := strings.Split(sentence, " ")
	long := 0
	for _, w := range words {
		if len(w) > 8 {
			long++
		}
	}
	ratio := float64(long) / float64(len(words))
	switch {
	case ratio > 0.3:
		return models.DifficultyHard
	case ratio > 0.15:
		return models.DifficultyMedium
	default:
		return models.DifficultyEasy
	}
}

// isDuplicate reports whether candidate matches any card in cards by exact
// front or back, or by front word-set similarity above the threshold.
func isDuplicate(candidate models.Flashcard, cards []models.Flashcard) bool {
	for _, card := range cards {
		if card.Front == candidate.Front || card.Back == candidate.Back {
			return true
		}
		if jaccard(card.Front, candidate.Front) > similarityThreshold {
			return true
		}
	}
	return false
}

// jaccard computes word-set Jaccard similarity between two strings,
// case-insensitively.
func jaccard(a, b string) float64 {
	setA := fieldSet(a)
	setB := fieldSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if setB[w] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func fieldSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}
