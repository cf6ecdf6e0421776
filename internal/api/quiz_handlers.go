package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flashj/flashj/internal/db"
)

func (s *Server) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
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

	view, err := s.Quiz.Start(r.Context(), db.MCQFilter{
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, view)
}

func (s *Server) handleCurrentQuiz(w http.ResponseWriter, r *http.Request) {
	view, err := s.Quiz.Current(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleAnswerQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Selected int `json:"selected"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	view, err := s.Quiz.Answer(r.Context(), chi.URLParam(r, "id"), req.Selected)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleExitQuiz(w http.ResponseWriter, r *http.Request) {
	view, err := s.Quiz.Exit(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, view)
}
