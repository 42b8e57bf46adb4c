package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kiwiorbit/speechive-7.1/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidRequest     = "Invalid request. Please check your inputs."

	ErrMsgTimerRunningError    = "A practice timer is already running"
	ErrMsgTimerNotRunningError = "No practice timer is running"
	ErrMsgSessionTooShortError = "Keep going! This session is too short to count yet"
	ErrMsgQuotaReachedError    = "Daily limit reached. Come back tomorrow for more activities"
	ErrMsgActivityNotFound     = "Activity not found"
	ErrMsgCategoryNotFound     = "Unknown strategy category"
	ErrMsgBadgeNotReadyError   = "Finish every activity on that day to claim its badge"
	ErrMsgNotEnoughDropsError  = "Not enough Honey Drops to redeem"
	ErrMsgProfileNeededError   = "Save your caregiver profile before redeeming"
)

// mapServiceErrorToUserMessage maps domain errors to user-facing HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrTimerAlreadyRunning):
		return http.StatusConflict, ErrMsgTimerRunningError
	case errors.Is(err, domain.ErrTimerNotRunning):
		return http.StatusConflict, ErrMsgTimerNotRunningError
	case errors.Is(err, domain.ErrSessionTooShort):
		return http.StatusBadRequest, ErrMsgSessionTooShortError
	case errors.Is(err, domain.ErrQuotaExceeded):
		return http.StatusBadRequest, ErrMsgQuotaReachedError
	case errors.Is(err, domain.ErrUnknownActivity):
		return http.StatusNotFound, ErrMsgActivityNotFound
	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusNotFound, ErrMsgCategoryNotFound
	case errors.Is(err, domain.ErrBadgeNotEligible):
		return http.StatusBadRequest, ErrMsgBadgeNotReadyError
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest, ErrMsgNotEnoughDropsError
	case errors.Is(err, domain.ErrProfileRequired):
		return http.StatusBadRequest, ErrMsgProfileNeededError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs and writes a mapped service error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		slog.Error(opName+" failed", "error", err)
	}
	respondError(w, status, message)
}
