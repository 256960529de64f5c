package handlers

import (
	"career-advisor/internal/apperr"
	"career-advisor/internal/logger"
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON error envelope for every endpoint
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// sendError sends a standardized JSON error response
func sendError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := ErrorResponse{
		Code:    status,
		Message: message,
	}
	// Upstream causes are logged, never sent to the client
	if err != nil && apperr.KindOf(err) != apperr.KindUpstream {
		errResp.Error = err.Error()
	}
	json.NewEncoder(w).Encode(errResp)
}

// sendAppError maps a classified error to its HTTP status. Unclassified
// errors become 500s with a generic message.
func sendAppError(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		sendError(w, http.StatusBadRequest, apperr.UserMessage(err), err)
	case apperr.KindConflict:
		sendError(w, http.StatusConflict, apperr.UserMessage(err), err)
	case apperr.KindAuth:
		sendError(w, http.StatusUnauthorized, apperr.UserMessage(err), err)
	case apperr.KindUpstream:
		logger.Log.WithError(err).Error("Upstream service failure")
		sendError(w, http.StatusBadGateway, apperr.UserMessage(err), err)
	default:
		logger.Log.WithError(err).Error("Unhandled error")
		sendError(w, http.StatusInternalServerError, "Something went wrong", nil)
	}
}
