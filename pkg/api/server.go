// Package api exposes the HTTP surface: the ProcessState boundary
// operation plus the session read API and health endpoint.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/stagehand-project/stagehand/pkg/database"
	"github.com/stagehand-project/stagehand/pkg/orchestrator"
	"github.com/stagehand-project/stagehand/pkg/services"
)

// Server is the HTTP server over the orchestrator and read services.
type Server struct {
	db             *database.Client
	orch           *orchestrator.Orchestrator
	sessionService *services.SessionService
	eventService   *services.EventService

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(db *database.Client, orch *orchestrator.Orchestrator, sessionService *services.SessionService, eventService *services.EventService) *Server {
	s := &Server{
		db:             db,
		orch:           orch,
		sessionService: sessionService,
		eventService:   eventService,
		echo:           echo.New(),
	}

	s.echo.Use(requestLogger())
	s.echo.Use(controlHeaders())

	s.echo.GET("/healthz", s.healthHandler)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/process", s.processStateHandler)
	v1.GET("/sessions", s.listSessionsHandler)
	v1.GET("/sessions/:id", s.getSessionHandler)
	v1.GET("/sessions/:id/events", s.listSessionEventsHandler)

	// echo.Echo is the handler; the outer http.Server owns the listener
	// lifecycle so Shutdown can drain in-flight requests.
	s.http = &http.Server{
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.http.Addr = addr
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server, draining in-flight requests until
// ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
