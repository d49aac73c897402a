package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"trackfitnessgoals/backend/app/services"
	"trackfitnessgoals/backend/global"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// renderServiceError maps service errors onto the response taxonomy. Anything
// unrecognized is logged and reported as a generic 500.
func renderServiceError(w http.ResponseWriter, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSONError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeJSONError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrDuplicateUser):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrGoalNotFound),
		errors.Is(err, services.ErrProgressNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	default:
		global.Logger.Error().Err(err).Msg("unhandled service error")
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}
