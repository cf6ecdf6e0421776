package jobs

import (
	"github.com/flashj/flashj/internal/worker"
)

// WorkerQueue implements Queue on top of a worker pool.
type WorkerQueue struct {
	pool    *worker.Pool
	service worker.GenerationServiceInterface
}

func NewWorkerQueue(pool *worker.Pool, service worker.GenerationServiceInterface) *WorkerQueue {
	return &WorkerQueue{pool: pool, service: service}
}

func (q *WorkerQueue) EnqueueFlashcards(text, source string) error {
	return q.pool.Submit(&worker.GenerateFlashcardsJob{
		Service: q.service,
		Text:    text,
		Source:  source,
	})
}

func (q *WorkerQueue) EnqueueMCQs(text, source, difficulty string, count int) error {
	return q.pool.Submit(&worker.GenerateMCQsJob{
		Service:    q.service,
		Text:       text,
		Source:     source,
		Difficulty: difficulty,
		Count:      count,
	})
}
