package main

import (
	"log/slog"

	"iss-tracker/internal/config"
	"iss-tracker/internal/observability"
	"iss-tracker/internal/tracker"

	"github.com/gin-gonic/gin"

	_ "iss-tracker/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	trackerService tracker.Service
	metrics        *observability.Collector
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Register Prometheus collectors
	metrics, err := observability.NewCollector(nil)
	if err != nil {
		return nil, err
	}
	router.Use(metrics.GinMiddleware())

	// Initialize tracker service
	trackerSvc, err := tracker.NewService(cfg, metrics, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:         router,
		logger:         logger,
		trackerService: trackerSvc,
		metrics:        metrics,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
