package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/models"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// FlashcardFilter narrows ListFlashcards results.
type FlashcardFilter struct {
	Topic      string
	Difficulty string
	Limit      int
}

func (db *DB) InsertFlashcard(ctx context.Context, c models.Flashcard) error {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("inserting flashcard: id=%s topic=%s", c.ID, c.Topic)

	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO flashcards (id, topic, front, back, notes, tags, difficulty, created_at, last_reviewed, leitner_box)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, c.ID, c.Topic, c.Front, c.Back, c.Notes, string(tags), c.Difficulty, c.CreatedAt, c.LastReviewed, c.LeitnerBox)
	if err != nil {
		log.Error("failed to insert flashcard: %v", err)
	}
	return err
}

// InsertFlashcards stores a batch of cards in one transaction.
func (db *DB) InsertFlashcards(ctx context.Context, cards []models.Flashcard) error {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("inserting %d flashcards", len(cards))

	return tx(ctx, db, func(t *sql.Tx) error {
		for _, c := range cards {
			tags, err := json.Marshal(c.Tags)
			if err != nil {
				return err
			}
			if _, err := t.ExecContext(ctx, `
INSERT INTO flashcards (id, topic, front, back, notes, tags, difficulty, created_at, last_reviewed, leitner_box)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, c.ID, c.Topic, c.Front, c.Back, c.Notes, string(tags), c.Difficulty, c.CreatedAt, c.LastReviewed, c.LeitnerBox); err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *DB) UpdateFlashcard(ctx context.Context, c models.Flashcard) error {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("updating flashcard: id=%s box=%d", c.ID, c.LeitnerBox)

	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
UPDATE flashcards
SET topic = ?, front = ?, back = ?, notes = ?, tags = ?, difficulty = ?, last_reviewed = ?, leitner_box = ?
WHERE id = ?
`, c.Topic, c.Front, c.Back, c.Notes, string(tags), c.Difficulty, c.LastReviewed, c.LeitnerBox, c.ID)
	if err != nil {
		log.Error("failed to update flashcard: %v", err)
	}
	return err
}

func (db *DB) DeleteFlashcard(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("deleting flashcard: id=%s", id)

	res, err := db.ExecContext(ctx, `DELETE FROM flashcards WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete flashcard: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (db *DB) GetFlashcard(ctx context.Context, id string) (*models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("fetching flashcard: id=%s", id)

	row := db.QueryRowContext(ctx, `
SELECT id, topic, front, back, notes, tags, difficulty, created_at, last_reviewed, leitner_box
FROM flashcards
WHERE id = ?
`, id)
	card, err := scanFlashcard(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("flashcard not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get flashcard: %v", err)
		return nil, err
	}
	return &card, nil
}

func (db *DB) ListFlashcards(ctx context.Context, filter FlashcardFilter) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("listing flashcards: topic=%q difficulty=%q limit=%d", filter.Topic, filter.Difficulty, filter.Limit)

	query := sqlBuilder.
		Select("id", "topic", "front", "back", "notes", "tags", "difficulty", "created_at", "last_reviewed", "leitner_box").
		From("flashcards").
		OrderBy("created_at ASC", "id ASC")
	if filter.Topic != "" {
		query = query.Where(squirrel.Eq{"topic": filter.Topic})
	}
	if filter.Difficulty != "" {
		query = query.Where(squirrel.Eq{"difficulty": filter.Difficulty})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to query flashcards: %v", err)
		return nil, err
	}
	defer rows.Close()

	var cards []models.Flashcard
	for rows.Next() {
		card, err := scanFlashcard(rows.Scan)
		if err != nil {
			log.Error("failed to scan flashcard row: %v", err)
			return nil, err
		}
		cards = append(cards, card)
	}
	log.Debug("found %d flashcards", len(cards))
	return cards, rows.Err()
}

func (db *DB) CountFlashcards(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM flashcards`).Scan(&count)
	return count, err
}

func scanFlashcard(scan func(dest ...any) error) (models.Flashcard, error) {
	var c models.Flashcard
	var tags string
	var lastReviewed sql.NullTime
	if err := scan(&c.ID, &c.Topic, &c.Front, &c.Back, &c.Notes, &tags, &c.Difficulty, &c.CreatedAt, &lastReviewed, &c.LeitnerBox); err != nil {
		return models.Flashcard{}, err
	}
	if err := json.Unmarshal([]byte(tags), &c.Tags); err != nil {
		return models.Flashcard{}, err
	}
	if lastReviewed.Valid {
		t := lastReviewed.Time.UTC()
		c.LastReviewed = &t
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}
