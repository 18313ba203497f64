// Package cleanup provides the retention sweep.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/stagehand-project/stagehand/pkg/config"
	"github.com/stagehand-project/stagehand/pkg/services"
)

// archiveBatchSize caps how many sessions one sweep pass moves; anything
// left over is picked up next tick.
const archiveBatchSize = 100

// Service periodically enforces retention policies:
//   - Archives sessions inactive past the configured window, whatever
//     phase they were abandoned in
//   - Prunes event rows older than the archive window
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config         *config.RetentionConfig
	sessionService *services.SessionService
	eventService   *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	sessionService *services.SessionService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:         cfg,
		sessionService: sessionService,
		eventService:   eventService,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"archive_after", s.config.ArchiveAfter,
		"interval", s.config.CleanupInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.archiveInactiveSessions(ctx)
	s.pruneOldEvents(ctx)
}

func (s *Service) archiveInactiveSessions(_ context.Context) {
	cutoff := time.Now().Add(-s.config.ArchiveAfter)
	count, err := s.sessionService.ArchiveInactive(context.Background(), cutoff, archiveBatchSize)
	if err != nil {
		slog.Error("Retention: session archival failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: archived inactive sessions", "count", count)
	}
}

func (s *Service) pruneOldEvents(_ context.Context) {
	cutoff := time.Now().Add(-s.config.ArchiveAfter)
	count, err := s.eventService.PruneBefore(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: event pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned old events", "count", count)
	}
}
