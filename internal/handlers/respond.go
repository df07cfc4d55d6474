package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"linguaquest/internal/apperr"
)

// errUnauthenticated covers the should-not-happen case of an authorized
// route running without a user in context.
var errUnauthenticated = &apperr.AuthorizationError{Message: "not authenticated"}

// envelope is the uniform JSON response shape: success with data, or
// failure with an error message.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

// respondFailure writes the error envelope. Every failure response in the
// package goes through here so the shape cannot drift.
func respondFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: false, Error: message})
}

// respondError maps a service error onto a status code and the error
// envelope. Internal failures are logged in full but surface as a generic
// message; client mistakes surface verbatim.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case apperr.IsValidation(err):
		status = http.StatusBadRequest
		message = err.Error()
	case apperr.IsAuthorization(err):
		status = http.StatusForbidden
		message = err.Error()
	case apperr.IsNotFound(err):
		status = http.StatusNotFound
		message = err.Error()
	case apperr.IsInsufficientWords(err):
		status = http.StatusUnprocessableEntity
		message = err.Error()
	case apperr.IsGenerationFailed(err):
		status = http.StatusBadGateway
		message = "word generation is temporarily unavailable"
		logger.Error("content generation failed", zap.Error(err))
	default:
		logger.Error("request failed", zap.Error(err))
	}

	respondFailure(w, status, message)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("body", "invalid JSON body")
	}
	return nil
}
