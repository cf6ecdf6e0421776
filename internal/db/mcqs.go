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

// MCQFilter narrows ListMCQs results.
type MCQFilter struct {
	Topic      string
	Difficulty string
	Limit      int
}

func (db *DB) InsertMCQ(ctx context.Context, m models.MCQ) error {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("inserting mcq: id=%s topic=%s", m.ID, m.Topic)

	options, err := json.Marshal(m.Options)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO mcqs (id, question, options, correct_answer, explanation, difficulty, topic, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, m.ID, m.Question, string(options), m.CorrectAnswer, m.Explanation, m.Difficulty, m.Topic, m.CreatedAt)
	if err != nil {
		log.Error("failed to insert mcq: %v", err)
	}
	return err
}

// InsertMCQs stores a batch of questions in one transaction.
func (db *DB) InsertMCQs(ctx context.Context, mcqs []models.MCQ) error {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("inserting %d mcqs", len(mcqs))

	return tx(ctx, db, func(t *sql.Tx) error {
		for _, m := range mcqs {
			options, err := json.Marshal(m.Options)
			if err != nil {
				return err
			}
			if _, err := t.ExecContext(ctx, `
INSERT INTO mcqs (id, question, options, correct_answer, explanation, difficulty, topic, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`, m.ID, m.Question, string(options), m.CorrectAnswer, m.Explanation, m.Difficulty, m.Topic, m.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *DB) UpdateMCQ(ctx context.Context, m models.MCQ) error {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("updating mcq: id=%s", m.ID)

	options, err := json.Marshal(m.Options)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
UPDATE mcqs
SET question = ?, options = ?, correct_answer = ?, explanation = ?, difficulty = ?, topic = ?
WHERE id = ?
`, m.Question, string(options), m.CorrectAnswer, m.Explanation, m.Difficulty, m.Topic, m.ID)
	if err != nil {
		log.Error("failed to update mcq: %v", err)
	}
	return err
}

func (db *DB) DeleteMCQ(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("deleting mcq: id=%s", id)

	res, err := db.ExecContext(ctx, `DELETE FROM mcqs WHERE id = ?`, id)
	if err != nil {
		log.Error("failed to delete mcq: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (db *DB) GetMCQ(ctx context.Context, id string) (*models.MCQ, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("fetching mcq: id=%s", id)

	row := db.QueryRowContext(ctx, `
SELECT id, question, options, correct_answer, explanation, difficulty, topic, created_at
FROM mcqs
WHERE id = ?
`, id)
	mcq, err := scanMCQ(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("mcq not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get mcq: %v", err)
		return nil, err
	}
	return &mcq, nil
}

func (db *DB) ListMCQs(ctx context.Context, filter MCQFilter) ([]models.MCQ, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("listing mcqs: topic=%q difficulty=%q limit=%d", filter.Topic, filter.Difficulty, filter.Limit)

	query := sqlBuilder.
		Select("id", "question", "options", "correct_answer", "explanation", "difficulty", "topic", "created_at").
		From("mcqs").
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
		log.Error("failed to query mcqs: %v", err)
		return nil, err
	}
	defer rows.Close()

	var mcqs []models.MCQ
	for rows.Next() {
		mcq, err := scanMCQ(rows.Scan)
		if err != nil {
			log.Error("failed to scan mcq row: %v", err)
			return nil, err
		}
		mcqs = append(mcqs, mcq)
	}
	log.Debug("found %d mcqs", len(mcqs))
	return mcqs, rows.Err()
}

func (db *DB) CountMCQs(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mcqs`).Scan(&count)
	return count, err
}

func scanMCQ(scan func(dest ...any) error) (models.MCQ, error) {
	var m models.MCQ
	var options string
	if err := scan(&m.ID, &m.Question, &options, &m.CorrectAnswer, &m.Explanation, &m.Difficulty, &m.Topic, &m.CreatedAt); err != nil {
		return models.MCQ{}, err
	}
	if err := json.Unmarshal([]byte(options), &m.Options); err != nil {
		return models.MCQ{}, err
	}
	m.CreatedAt = m.CreatedAt.UTC()
	return m, nil
}
