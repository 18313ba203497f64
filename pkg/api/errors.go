package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/stagehand-project/stagehand/pkg/orchestrator"
	"github.com/stagehand-project/stagehand/pkg/services"
)

// errorBody is the structured error response shape. Error carries the
// stable boundary error token; message is human-readable detail.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// mapProcessError maps orchestrator boundary errors to an HTTP status and
// response body. Codes are stable; workers branch on them.
func mapProcessError(err error) (int, errorBody) {
	for _, sentinel := range []struct {
		target error
		status int
	}{
		{orchestrator.ErrInvalidSessionID, http.StatusBadRequest},
		{orchestrator.ErrMissingObjective, http.StatusBadRequest},
		{orchestrator.ErrInvalidPhaseToken, http.StatusBadRequest},
		{orchestrator.ErrObjectiveForbidden, http.StatusConflict},
		{orchestrator.ErrStaleRevision, http.StatusConflict},
	} {
		if errors.Is(err, sentinel.target) {
			return sentinel.status, errorBody{
				Error:   sentinel.target.Error(),
				Message: err.Error(),
			}
		}
	}
	if errors.Is(err, orchestrator.ErrStore) {
		slog.Error("Store error during ProcessState", "error", err)
		return http.StatusInternalServerError, errorBody{
			Error:   orchestrator.ErrStore.Error(),
			Message: "persistence failure",
		}
	}
	return mapServiceError(err)
}

// mapServiceError maps service-layer errors to an HTTP status and body.
func mapServiceError(err error) (int, errorBody) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, errorBody{
			Error:   "validation_error",
			Message: validErr.Error(),
		}
	}
	if errors.Is(err, services.ErrNotFound) {
		return http.StatusNotFound, errorBody{
			Error:   "not_found",
			Message: "resource not found",
		}
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, errorBody{
			Error:   "already_exists",
			Message: "resource already exists",
		}
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, errorBody{
		Error:   "internal_error",
		Message: "internal server error",
	}
}
