package api

import (
	"log/slog"
	"time"

	echo "github.com/labstack/echo/v5"
)

// controlHeaders sets the headers every control-plane response carries.
// Responses embed live session state, so they must never be cached.
func controlHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("Cache-Control", "no-store")
			h.Set("X-Content-Type-Options", "nosniff")
			return next(c)
		}
	}
}

// requestLogger logs one line per request with method, path, status, and
// latency. Worker retry storms show up here before they show up anywhere
// else.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)
			status := 0
			if resp, respErr := echo.UnwrapResponse(c.Response()); respErr == nil {
				status = resp.Status
			}
			slog.Info("HTTP request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds())
			return err
		}
	}
}
