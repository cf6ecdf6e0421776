package api

import (
	"net/http"

	"github.com/flashj/flashj/internal/logger"
)

// handleHealth is a liveness probe; it answers as long as the process runs.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady is a readiness probe; it fails when the database is
// unreachable.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.DB.PingContext(r.Context()); err != nil {
		logger.FromContext(r.Context()).Warn("readiness check failed: %v", err)
		respondJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "database unavailable"})
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
