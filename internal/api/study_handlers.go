package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flashj/flashj/internal/db"
)

func (s *Server) handleStartStudy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic      string `json:"topic"`
		Difficulty string `json:"difficulty"`
	}
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, err)
			return
		}
	}

	view, err := s.Study.Start(r.Context(), db.FlashcardFilter{
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, view)
}

func (s *Server) handleCurrentStudy(w http.ResponseWriter, r *http.Request) {
	view, err := s.Study.Current(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleAnswerStudy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Outcome string `json:"outcome"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Study.Answer(r.Context(), chi.URLParam(r, "id"), req.Outcome)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleExitStudy(w http.ResponseWriter, r *http.Request) {
	view, err := s.Study.Exit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}
