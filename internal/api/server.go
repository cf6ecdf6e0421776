// Package api exposes the study application over HTTP as a JSON API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/extract"
	"github.com/flashj/flashj/internal/jobs"
	"github.com/flashj/flashj/internal/logger"
	"github.com/flashj/flashj/internal/services"
	"github.com/flashj/flashj/internal/worker"
)

type Server struct {
	DB          *db.DB
	Generation  services.GenerationService
	Flashcards  services.FlashcardService
	MCQs        services.MCQService
	Study       services.StudyService
	Quiz        services.QuizService
	Stats       services.StatsService
	Export      services.ExportService
	Demo        services.DemoService
	Extract     *extract.Service
	Queue       jobs.Queue
	Pool        *worker.Pool
	CORSOrigins []string
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON reads the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.NewBadRequestError("invalid JSON body: " + err.Error())
	}
	return nil
}
