package db

import (
	"context"

	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/models"
)

// InsertQuizResult appends a result to the log. Results are never updated
// or deleted.
func (db *DB) InsertQuizResult(ctx context.Context, r models.QuizResult) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("inserting quiz result: mcq_id=%s correct=%v", r.MCQID, r.IsCorrect)

	res, err := db.ExecContext(ctx, `
INSERT INTO quiz_results (mcq_id, question, selected_answer, is_correct, timestamp)
VALUES (?, ?, ?, ?, ?)
`, r.MCQID, r.Question, r.SelectedAnswer, r.IsCorrect, r.Timestamp)
	if err != nil {
		log.Error("failed to insert quiz result: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

// ListQuizResults returns the full result log ordered oldest first.
func (db *DB) ListQuizResults(ctx context.Context) ([]models.QuizResult, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("listing quiz results")

	rows, err := db.QueryContext(ctx, `
SELECT id, mcq_id, question, selected_answer, is_correct, timestamp
FROM quiz_results
ORDER BY timestamp ASC, id ASC
`)
	if err != nil {
		log.Error("failed to query quiz results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []models.QuizResult
	for rows.Next() {
		var r models.QuizResult
		if err := rows.Scan(&r.ID, &r.MCQID, &r.Question, &r.SelectedAnswer, &r.IsCorrect, &r.Timestamp); err != nil {
			log.Error("failed to scan quiz result row: %v", err)
			return nil, err
		}
		r.Timestamp = r.Timestamp.UTC()
		results = append(results, r)
	}
	log.Debug("found %d quiz results", len(results))
	return results, rows.Err()
}
