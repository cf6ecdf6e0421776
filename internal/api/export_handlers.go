package api

import (
	"io"
	"net/http"

	"github.com/flashj/flashj/internal/errors"
)

func (s *Server) handleExportFlashcards(w http.ResponseWriter, r *http.Request) {
	export, err := s.Export.ExportFlashcards(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="flashcards-export.json"`)
	respondJSON(w, r, http.StatusOK, export)
}

func (s *Server) handleExportMCQs(w http.ResponseWriter, r *http.Request) {
	export, err := s.Export.ExportMCQs(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="mcqs-export.json"`)
	respondJSON(w, r, http.StatusOK, export)
}

func (s *Server) handleImportFlashcards(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("failed to read request body"))
		return
	}

	imported, err := s.Export.ImportFlashcards(r.Context(), body)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"imported": imported})
}

func (s *Server) handleSeedDemo(w http.ResponseWriter, r *http.Request) {
	cards, mcqs, err := s.Demo.Seed(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, map[string]any{
		"flashcards": cards,
		"mcqs":       mcqs,
	})
}
