package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/services"
)

func (s *Server) handleListMCQs(w http.ResponseWriter, r *http.Request) {
	topic, difficulty, limit := listFilter(r)
	mcqs, err := s.MCQs.List(r.Context(), db.MCQFilter{
		Topic:      topic,
		Difficulty: difficulty,
		Limit:      limit,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"mcqs": mcqs})
}

func (s *Server) handleGetMCQ(w http.ResponseWriter, r *http.Request) {
	mcq, err := s.MCQs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, mcq)
}

func (s *Server) handleEditMCQ(w http.ResponseWriter, r *http.Request) {
	var edit services.MCQEdit
	if err := decodeJSON(r, &edit); err != nil {
		handleError(w, r, err)
		return
	}
	mcq, err := s.MCQs.Edit(r.Context(), chi.URLParam(r, "id"), edit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, mcq)
}

func (s *Server) handleDeleteMCQ(w http.ResponseWriter, r *http.Request) {
	if err := s.MCQs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
