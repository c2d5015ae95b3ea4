package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	apiErrors "github.com/dtroode/noticeboard-server/internal/api/errors"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// handleError converts a service error into an HTTP response. Known API
// errors keep their status code and message; anything else is a 500.
func handleError(w http.ResponseWriter, err error) {
	var apiErr *apiErrors.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.HTTPCode, map[string]string{"msg": apiErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
