package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/stagehand-project/stagehand/pkg/models"
	"github.com/stagehand-project/stagehand/pkg/services"
)

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	session, err := s.sessionService.Get(c.Request().Context(), sessionID)
	if err != nil {
		status, body := mapServiceError(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, services.ToDetail(session))
}

// listSessionsHandler handles GET /api/v1/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	params := models.SessionListParams{
		Page:     1,
		PageSize: 20,
	}

	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			params.Page = p
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			params.PageSize = ps
		}
	}
	params.Phase = c.QueryParam("phase")

	result, err := s.sessionService.List(c.Request().Context(), params)
	if err != nil {
		status, body := mapServiceError(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, result)
}

// listSessionEventsHandler handles GET /api/v1/sessions/:id/events.
// Supports incremental polling via after_id.
func (s *Server) listSessionEventsHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var afterID int64
	if v := c.QueryParam("after_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid after_id: must be a non-negative integer")
		}
		afterID = id
	}

	limit := 100
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	items, err := s.eventService.ListForSession(c.Request().Context(), sessionID, afterID, limit)
	if err != nil {
		status, body := mapServiceError(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"session_id": sessionID,
		"events":     items,
	})
}
