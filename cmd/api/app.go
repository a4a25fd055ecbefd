package main

import (
	"log/slog"

	"attractions-gpx/internal/attractions"
	"attractions-gpx/internal/config"
	"attractions-gpx/internal/geocode"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	cfg            *config.Config
	aggregator     attractions.Service
	geocodeService geocode.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:         router,
		logger:         logger,
		cfg:            cfg,
		aggregator:     attractions.NewAggregatorService(cfg.App.Language, logger),
		geocodeService: geocode.NewGeocodeService(logger),
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
