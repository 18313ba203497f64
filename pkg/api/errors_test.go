package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stagehand-project/stagehand/pkg/orchestrator"
	"github.com/stagehand-project/stagehand/pkg/services"
)

func TestMapProcessError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid session id", orchestrator.ErrInvalidSessionID, http.StatusBadRequest},
		{"missing objective", orchestrator.ErrMissingObjective, http.StatusBadRequest},
		{"invalid phase token", orchestrator.ErrInvalidPhaseToken, http.StatusBadRequest},
		{"objective forbidden", orchestrator.ErrObjectiveForbidden, http.StatusConflict},
		{"stale revision", orchestrator.ErrStaleRevision, http.StatusConflict},
		{"store failure", orchestrator.ErrStore, http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("session x: %w", orchestrator.ErrInvalidPhaseToken), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapProcessError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestMapProcessErrorCarriesStableCode(t *testing.T) {
	status, body := mapProcessError(fmt.Errorf("ctx: %w", orchestrator.ErrStaleRevision))
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, orchestrator.ErrStaleRevision.Error(), body.Error)
	assert.Contains(t, body.Message, "ctx")
}

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation error", services.NewValidationError("field", "bad value"), http.StatusBadRequest, "validation_error"},
		{"not found", services.ErrNotFound, http.StatusNotFound, "not_found"},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict, "already_exists"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapServiceError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.Error)
		})
	}
}
