package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/stagehand-project/stagehand/pkg/models"
)

// processStateHandler handles POST /api/v1/process — the single workflow
// boundary operation.
func (s *Server) processStateHandler(c *echo.Context) error {
	var req models.ProcessStateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{
			Error:   "malformed_request",
			Message: "request body must be a ProcessState message",
		})
	}

	resp, err := s.orch.ProcessState(c.Request().Context(), req)
	if err != nil {
		status, body := mapProcessError(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, resp)
}
