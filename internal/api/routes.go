package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/ready", s.handleReady)

		r.Post("/generate/flashcards", s.handleGenerateFlashcards)
		r.Post("/generate/mcqs", s.handleGenerateMCQs)
		r.Post("/upload", s.handleUpload)

		r.Route("/flashcards", func(r chi.Router) {
			r.Get("/", s.handleListFlashcards)
			r.Get("/print", s.handlePrintFlashcards)
			r.Get("/{id}", s.handleGetFlashcard)
			r.Put("/{id}", s.handleEditFlashcard)
			r.Delete("/{id}", s.handleDeleteFlashcard)
		})

		r.Route("/mcqs", func(r chi.Router) {
			r.Get("/", s.handleListMCQs)
			r.Get("/{id}", s.handleGetMCQ)
			r.Put("/{id}", s.handleEditMCQ)
			r.Delete("/{id}", s.handleDeleteMCQ)
		})

		r.Route("/study", func(r chi.Router) {
			r.Post("/start", s.handleStartStudy)
			r.Get("/{id}", s.handleCurrentStudy)
			r.Post("/{id}/answer", s.handleAnswerStudy)
			r.Post("/{id}/exit", s.handleExitStudy)
		})

		r.Route("/quiz", func(r chi.Router) {
			r.Post("/start", s.handleStartQuiz)
			r.Get("/{id}", s.handleCurrentQuiz)
			r.Post("/{id}/answer", s.handleAnswerQuiz)
			r.Post("/{id}/exit", s.handleExitQuiz)
		})

		r.Get("/stats", s.handleStats)
		r.Get("/export/flashcards", s.handleExportFlashcards)
		r.Get("/export/mcqs", s.handleExportMCQs)
		r.Post("/import/flashcards", s.handleImportFlashcards)
		r.Post("/demo/seed", s.handleSeedDemo)
	})

	return r
}
