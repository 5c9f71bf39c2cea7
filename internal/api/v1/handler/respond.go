package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Charugundlavipul/medilink/internal/api/v1/dto"

	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, status int, v any, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	writeJSON(w, status, dto.ErrorResponseDTO{Error: message}, logger)
}

func methodNotAllowed(w http.ResponseWriter, allow string, logger zerolog.Logger) {
	w.Header().Set("Allow", allow)
	writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed", logger)
}
