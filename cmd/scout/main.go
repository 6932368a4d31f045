// Scout server — runs browser tests concurrently against customer apps,
// streams execution events, and generates test drafts with AI exploration.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/scoutqa/scout/pkg/api"
	"github.com/scoutqa/scout/pkg/config"
	"github.com/scoutqa/scout/pkg/database"
	"github.com/scoutqa/scout/pkg/events"
	"github.com/scoutqa/scout/pkg/genjobs"
	"github.com/scoutqa/scout/pkg/llm"
	"github.com/scoutqa/scout/pkg/locks"
	"github.com/scoutqa/scout/pkg/provider"
	"github.com/scoutqa/scout/pkg/scheduler"
	"github.com/scoutqa/scout/pkg/state"
	"github.com/scoutqa/scout/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envPath := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	slog.Info("Starting scout", "version", version.Full())

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
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

	// 3. Team state store. The credentials cipher is mandatory: provider API
	// keys are encrypted at rest.
	cipher, err := state.NewCipher(os.Getenv("CREDENTIALS_KEY"))
	if err != nil {
		slog.Error("Invalid CREDENTIALS_KEY (expect 64 hex chars)", "error", err)
		os.Exit(1)
	}
	store := state.NewStore(dbClient.Client, cipher)
	slog.Info("Team state store initialized")

	// 4. LLM client for result summaries and test synthesis
	llmClient := llm.NewOpenAIClient(os.Getenv("LLM_API_KEY"), os.Getenv("LLM_BASE_URL"))
	slog.Info("LLM client initialized")

	// 5. Execution core: lock registries, scheduler, generation queue
	accountLocks := locks.NewAccountLocks()
	activeRuns := locks.NewActiveRuns()
	providers := provider.Factory(provider.New)

	sched := scheduler.New(accountLocks, providers, llmClient, cfg.Scheduler)
	gen := genjobs.NewService(store, accountLocks, providers, llmClient, cfg.Gen)
	slog.Info("Execution core initialized")

	// 6. Dashboard WebSocket hub
	hub := events.NewHub(10 * time.Second)

	// 7. HTTP server
	healthCheck := func(ctx context.Context) error {
		_, err := database.Health(ctx, dbClient.DB())
		return err
	}
	httpServer := api.NewServer(cfg.API, store, activeRuns, sched, gen, providers, hub, healthCheck)

	// 8. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.API.Port
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Scout started successfully", "port", cfg.API.Port)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown. Stopping the HTTP server cancels in-flight run
	// contexts; the scheduler finalizes each run and flushes its summary
	// before the handlers return.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.API.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
