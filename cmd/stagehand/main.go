// Stagehand control-plane server — drives external LLM workers through
// the eight-phase workflow over a single ProcessState HTTP operation.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stagehand-project/stagehand/pkg/api"
	"github.com/stagehand-project/stagehand/pkg/cleanup"
	"github.com/stagehand-project/stagehand/pkg/config"
	"github.com/stagehand-project/stagehand/pkg/database"
	"github.com/stagehand-project/stagehand/pkg/events"
	"github.com/stagehand-project/stagehand/pkg/knowledge"
	"github.com/stagehand-project/stagehand/pkg/orchestrator"
	"github.com/stagehand-project/stagehand/pkg/prompt"
	"github.com/stagehand-project/stagehand/pkg/services"
	"github.com/stagehand-project/stagehand/pkg/verification"
	"github.com/stagehand-project/stagehand/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting stagehand",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	eventService := services.NewEventService(dbClient.DB())
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	slog.Info("Services initialized")

	// 4. Knowledge subsystem
	guard := knowledge.NewGuard(cfg.SSRF)
	limiter := knowledge.NewRateLimiter(cfg.RateLimit)
	fetcher := knowledge.NewFetcher(cfg.Knowledge, guard, limiter, nil)
	synthesizer := knowledge.NewSynthesizer(cfg.Knowledge)

	// 5. Orchestrator
	gate := verification.NewGate(cfg.Verification)
	tracker := orchestrator.NewTracker(cfg.Effectiveness)
	machine := orchestrator.NewMachine(gate, tracker)
	builder := prompt.NewBuilder()
	orch := orchestrator.New(cfg, sessionService, machine, tracker, builder, fetcher, synthesizer, eventPublisher)
	slog.Info("Orchestrator initialized", "catalog_endpoints", len(cfg.Catalog))

	// 6. Retention sweep
	cleanupService := cleanup.NewService(&cfg.Retention, sessionService, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 7. HTTP server (non-blocking start)
	httpServer := api.NewServer(dbClient, orch, sessionService, eventService)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Stagehand started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Received shutdown signal", "signal", sig)
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Stagehand stopped")
}
