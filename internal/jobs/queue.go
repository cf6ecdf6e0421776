package jobs

// Queue provides an abstraction for enqueueing background generation work.
type Queue interface {
	EnqueueFlashcards(text, source string) error
	EnqueueMCQs(text, source, difficulty string, count int) error
}
