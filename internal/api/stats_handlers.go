package api

import "net/http"

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.Stats.Snapshot(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, snapshot)
}
