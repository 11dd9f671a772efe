package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"lastmile/internal/app"
	"lastmile/internal/config"
	"lastmile/internal/handler"
	internalRedis "lastmile/internal/redis"
	"lastmile/internal/repository/postgres"
	"lastmile/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.LoadTimeout)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies and load the trip ledger.
	server, ledgerService := wireServer(db, redisClient, nrApp, cfg)
	if err := ledgerService.Load(ctx); err != nil {
		log.Fatalf("failed to load trip ledger: %v", err)
	}

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server together
// with the ledger service so the caller can run the initial load.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, *service.LedgerService) {
	// Initialize the Redis rollup cache.
	rollupCache := internalRedis.NewRollupCache(redisClient)

	// Initialize repositories.
	tripSource := postgres.NewTripSourceRepository(db)
	manualRepo := postgres.NewManualTripRepository(db)

	// Initialize services.
	ledgerService := service.NewLedgerService(tripSource, manualRepo)
	statsService := service.NewStatsService(ledgerService, rollupCache)
	searchService := service.NewSearchService(ledgerService)

	// Initialize handlers.
	statsHandler := handler.NewStatsHandler(statsService)
	dayHandler := handler.NewDayHandler(ledgerService, statsService)
	searchHandler := handler.NewSearchHandler(searchService)
	tripHandler := handler.NewTripHandler(ledgerService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		StatsHandler:  statsHandler,
		DayHandler:    dayHandler,
		SearchHandler: searchHandler,
		TripHandler:   tripHandler,
		RedisClient:   redisClient,
		NewRelicApp:   nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, ledgerService
}
