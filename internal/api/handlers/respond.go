package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sredemo/internal/core/domain"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// HandleError translates domain errors into the wire contract: validation
// failures become 400s, missing rows 404s, and everything else surfaces as a
// 500 carrying the underlying store error text. Store errors are never
// retried; the first failure goes straight back to the caller.
func HandleError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, map[string]string{"error": domain.ErrNotFound.Error()})
	default:
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
