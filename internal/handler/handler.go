package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"agua-gas/internal/model"

	"github.com/rs/zerolog"
)

// SessionHeader carries the storefront cart session token.
const SessionHeader = "X-Session-Token"

// AdminHeader carries the admin session token.
const AdminHeader = "X-Admin-Token"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already out; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps service errors onto HTTP responses. Validation
// failures keep their per-field granularity so the form can surface each
// message inline.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var fieldErrs model.ValidationErrors
	if errors.As(err, &fieldErrs) {
		logger.Warn().Int("field_count", len(fieldErrs)).Msg("validation failed")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error:  "validation failed",
			Fields: fieldErrs,
		})
		return
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeEmptyCart:
			status = http.StatusConflict
		case model.ErrCodeProductNotFound, model.ErrCodeSizeNotFound,
			model.ErrCodeLineNotFound, model.ErrCodeCustomerNotFound:
			status = http.StatusNotFound
		case model.ErrCodeHandoffFailed:
			status = http.StatusBadGateway
		case model.ErrCodeInvalidCredential:
			status = http.StatusUnauthorized
		}
		writeError(w, status, domainErr.Message, logger)
		return
	}

	writeError(w, http.StatusInternalServerError, "internal error", logger)
}
