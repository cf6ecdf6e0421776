package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/flashj/flashj/internal/db"
	"github.com/flashj/flashj/internal/services"
)

// listFilter parses the shared topic/difficulty/limit query parameters.
func listFilter(r *http.Request) (topic, difficulty string, limit int) {
	topic = r.URL.Query().Get("topic")
	difficulty = r.URL.Query().Get("difficulty")
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 {
		limit = n
	}
	return topic, difficulty, limit
}

func (s *Server) handleListFlashcards(w http.ResponseWriter, r *http.Request) {
	topic, difficulty, limit := listFilter(r)
	cards, err := s.Flashcards.List(r.Context(), db.FlashcardFilter{
		Topic:      topic,
		Difficulty: difficulty,
		Limit:      limit,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"flashcards": cards})
}

func (s *Server) handleGetFlashcard(w http.ResponseWriter, r *http.Request) {
	card, err := s.Flashcards.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, card)
}

func (s *Server) handleEditFlashcard(w http.ResponseWriter, r *http.Request) {
	var edit services.FlashcardEdit
	if err := decodeJSON(r, &edit); err != nil {
		handleError(w, r, err)
		return
	}
	card, err := s.Flashcards.Edit(r.Context(), chi.URLParam(r, "id"), edit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, card)
}

func (s *Server) handleDeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	if err := s.Flashcards.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePrintFlashcards(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Export.PrintableFlashcards(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
