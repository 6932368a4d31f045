// Package api exposes the HTTP surface: test execution streaming, run stop,
// AI generation, shared team state, account profile management, and the
// dashboard WebSocket feed.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/scoutqa/scout/pkg/config"
	"github.com/scoutqa/scout/pkg/events"
	"github.com/scoutqa/scout/pkg/genjobs"
	"github.com/scoutqa/scout/pkg/locks"
	"github.com/scoutqa/scout/pkg/models"
	"github.com/scoutqa/scout/pkg/provider"
	"github.com/scoutqa/scout/pkg/scheduler"
)

// StateStore is the slice of the team state store the API uses.
type StateStore interface {
	GetOrCreate(ctx context.Context, teamID string) (*models.TeamState, error)
	Save(ctx context.Context, teamID, updatedBy string, st *models.TeamState) error
	Mutate(ctx context.Context, teamID, updatedBy string, fn func(*models.TeamState) error) (*models.TeamState, error)
	GetProviderKeys(ctx context.Context, teamID string) (models.ProviderKeys, error)
	SetProviderKeys(ctx context.Context, teamID string, keys models.ProviderKeys) error
}

// HealthChecker reports backing store health for the health endpoint.
type HealthChecker func(ctx context.Context) error

// Server wires handlers to the execution core.
type Server struct {
	cfg *config.APIConfig

	store     StateStore
	runs      *locks.ActiveRuns
	sched     *scheduler.Scheduler
	gen       *genjobs.Service
	providers provider.Factory
	hub       *events.Hub
	health    HealthChecker

	echo *echo.Echo
	http *http.Server

	limits *rateLimiters
}

// NewServer creates the API server. hub and health may be nil.
func NewServer(cfg *config.APIConfig, store StateStore, runs *locks.ActiveRuns, sched *scheduler.Scheduler, gen *genjobs.Service, providers provider.Factory, hub *events.Hub, health HealthChecker) *Server {
	if cfg == nil {
		cfg = config.DefaultAPIConfig()
	}
	s := &Server{
		cfg:       cfg,
		store:     store,
		runs:      runs,
		sched:     sched,
		gen:       gen,
		providers: providers,
		hub:       hub,
		health:    health,
		limits:    newRateLimiters(),
	}

	e := echo.New()
	e.Use(securityHeaders())
	s.registerRoutes(e)
	s.echo = e
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", s.healthHandler)
	e.GET("/ws", s.wsHandler)

	api := e.Group("/api/v1")

	api.POST("/tests/execute", s.executeHandler, s.rateLimit("execute", s.cfg.ExecuteRateLimit))
	api.POST("/tests/stop", s.stopHandler, s.rateLimit("stop", s.cfg.StopRateLimit))

	api.POST("/ai/generate", s.generateHandler, s.rateLimit("generate", s.cfg.GenerateRateLimit))
	api.GET("/ai/generate/status", s.generateStatusHandler, s.rateLimit("status", s.cfg.GenStatusRateLimit))
	api.POST("/ai/drafts/seen", s.draftsSeenHandler)
	api.POST("/ai/drafts/:id/publish", s.publishDraftHandler)
	api.POST("/ai/drafts/:id/discard", s.discardDraftHandler)

	api.GET("/state", s.getStateHandler)
	api.PUT("/state", s.putStateHandler)
	api.PUT("/settings/keys", s.putProviderKeysHandler)

	api.POST("/accounts/login", s.accountLoginHandler)
	api.DELETE("/accounts/:id", s.deleteAccountHandler)
}

// Start begins serving on addr. Blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.echo}
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
