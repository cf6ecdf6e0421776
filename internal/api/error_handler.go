package api

import (
	"encoding/json"
	"net/http"

	"github.com/flashj/flashj/internal/errors"
	"github.com/flashj/flashj/internal/logger"
)

// handleError centralizes error handling for HTTP responses. Every error
// becomes a JSON body carrying a stable code and a human-readable message.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.NewInternalError(err)
	}

	if appErr.Status >= 500 {
		log.Error("server error: %v", appErr)
	} else {
		log.Warn("client error: %v", appErr)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
