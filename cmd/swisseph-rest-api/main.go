// cmd/swisseph-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/ahwethan/swiss-ephemeris-api/internal/api/rest/v1"
	"github.com/ahwethan/swiss-ephemeris-api/internal/app"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/geo"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/astrometry"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/geocoding"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/persistence"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/persistence/models"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/config"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/metrics"
	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load an optional .env for local development
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	// Parse configuration
	configPath := os.Getenv(config.EnvConfigPath)
	if configPath == "" {
		configPath = "./configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services  *appServices
	collector *metrics.Collector
}

type appServices struct {
	compute horoscope.ComputeService
	archive charts.ChartArchiveService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.ChartModel{}, &models.GeocodeEntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	chartRepo, err := persistence.NewGormChartRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart repository: %w", err)
	}

	var geocodeCache geo.GeocodeCacheRepository
	if cfg.Geocoder.CacheEnabled {
		geocodeCache, err = persistence.NewGormGeocodeCacheRepository(db, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create geocode cache repository: %w", err)
		}

		if err := pruneGeocodeCache(geocodeCache, cfg.Geocoder.CacheMaxAgeDays, log); err != nil {
			return nil, fmt.Errorf("failed to prune geocode cache: %w", err)
		}
	}

	// Initialize computation engines
	positionProvider, houseEngine, riseSetEngine, err := initializeAstrometryEngines(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize astrometry engines: %w", err)
	}

	geocoder, err := geocoding.NewNominatimGeocoder(&cfg.Geocoder, geocodeCache, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoder: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(positionProvider, houseEngine, riseSetEngine, geocoder, chartRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	collector := metrics.NewCollector()
	collector.SetFullPrecision(positionProvider.FullPrecision())

	return &appDependencies{
		services:  services,
		collector: collector,
	}, nil
}

// pruneGeocodeCache removes cached lookups older than the configured age.
// A zero age keeps the cache forever.
func pruneGeocodeCache(cache geo.GeocodeCacheRepository, maxAgeDays int, log logger.Logger) error {
	if maxAgeDays <= 0 {
		return nil
	}

	cutoff := time.Now().AddDate(0, 0, -maxAgeDays)
	deleted, err := cache.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		return err
	}

	log.Info("Pruned ", deleted, " geocode cache entries older than ", maxAgeDays, " days")
	return nil
}

// initializeAstrometryEngines sets up the position provider and the house and
// rise/set engines
func initializeAstrometryEngines(cfg *config.RestConfig, log logger.Logger) (ephemeris.PositionProvider, horoscope.HouseEngine, horoscope.RiseSetEngine, error) {
	positionProvider, err := astrometry.NewPositionProvider(&cfg.Ephemeris, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create position provider: %w", err)
	}

	houseEngine, err := astrometry.NewHouseEngine(log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create house engine: %w", err)
	}

	riseSetEngine, err := astrometry.NewRiseSetEngine(log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create rise/set engine: %w", err)
	}

	log.Info("Astrometry engines initialized successfully")
	return positionProvider, houseEngine, riseSetEngine, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	positionProvider ephemeris.PositionProvider,
	houseEngine horoscope.HouseEngine,
	riseSetEngine horoscope.RiseSetEngine,
	geocoder geo.Geocoder,
	chartRepo charts.ChartRepository,
	log logger.Logger,
) (*appServices, error) {
	computeService, err := app.NewHoroscopeComputeService(positionProvider, houseEngine, riseSetEngine, geocoder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute service: %w", err)
	}

	archiveService, err := app.NewChartArchiveService(chartRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart archive service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		compute: computeService,
		archive: archiveService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Record request metrics
	r.Use(deps.collector.Middleware())

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.compute,
		deps.services.archive,
		deps.collector,
	)

	// Serve OpenAPI spec (replaces Swagger)
	r.GET("/api/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/swisseph.yaml")
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
