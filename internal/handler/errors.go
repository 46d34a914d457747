package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chang085/Recommendation-system/internal/apperr"
)

// writeError mapea los errores tipados del dominio a códigos HTTP.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrSessionRequired):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, apperr.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperr.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case apperr.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
