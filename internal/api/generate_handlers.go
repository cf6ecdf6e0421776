package api

import (
	"net/http"

	"github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/logger"
)

// maxUploadBytes caps the size of uploaded study documents.
const maxUploadBytes = 10 << 20

func (s *Server) handleGenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	cards, err := s.Generation.GenerateFlashcards(r.Context(), req.Text)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, map[string]any{
		"flashcards": cards,
		"created":    len(cards),
	})
}

func (s *Server) handleGenerateMCQs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text       string `json:"text"`
		Difficulty string `json:"difficulty"`
		Count      int    `json:"count"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	mcqs, err := s.Generation.GenerateMCQs(r.Context(), req.Text, req.Difficulty, req.Count)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, map[string]any{
		"mcqs":    mcqs,
		"created": len(mcqs),
	})
}

// handleUpload extracts text from an uploaded file and queues generation
// of both flashcards and questions in the background. The response is a
// 202 with the queue depth; results show up in the collections once the
// jobs finish.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid multipart upload"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("missing file field"))
		return
	}
	defer file.Close()

	text, err := s.Extract.Extract(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		handleError(w, r, err)
		return
	}

	difficulty := r.FormValue("difficulty")
	if err := s.Queue.EnqueueFlashcards(text, header.Filename); err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}
	if err := s.Queue.EnqueueMCQs(text, header.Filename, difficulty, 0); err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	log.Info("queued generation for upload %s (%d bytes of text)", header.Filename, len(text))
	respondJSON(w, r, http.StatusAccepted, map[string]any{
		"queued":    true,
		"queueSize": s.Pool.QueueSize(),
	})
}
