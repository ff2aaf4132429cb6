package utils

import (
	"encoding/json"
	"net/http"

	"rms-backend/internal/errs"
)

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error maps service error kinds to HTTP statuses. Missing or invalid
// credentials are handled by the auth middleware with 401; an Unauthorized
// kind reaching a handler means a permission gate failed.
func Error(w http.ResponseWriter, err error) {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errs.KindNotFound:
		http.Error(w, err.Error(), http.StatusNotFound)
	case errs.KindUnauthorized:
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
