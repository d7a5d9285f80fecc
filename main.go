package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pawnstorm/guess-the-gm/internal/catalog"
	"github.com/pawnstorm/guess-the-gm/internal/config"
	"github.com/pawnstorm/guess-the-gm/internal/database"
	"github.com/pawnstorm/guess-the-gm/internal/game"
	server "github.com/pawnstorm/guess-the-gm/internal/http"
	"github.com/pawnstorm/guess-the-gm/internal/metrics"
	"github.com/pawnstorm/guess-the-gm/internal/session"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer dbTeardown()

	cat, err := loadCatalog(cfg, db)
	if err != nil {
		log.Fatalf("Failed to load player catalog: %s", err)
	}
	if cat.Size() == 0 {
		log.Fatalf("Player catalog is empty; run the pipeline first")
	}
	log.Info("Player catalog loaded", "players", cat.Size())

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	tallies := metrics.New(db)

	sessions := session.NewStore(cfg.SessionTTL)
	defer sessions.Stop()

	engine := game.New(cat, sessions, metricsSvc, tallies, cfg.MaxHint)
	s := server.NewServer(engine, metricsSvc, metricsHandler, tallies, cfg)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}

// loadCatalog materializes the player catalog once, from the pipeline
// artifact when configured, otherwise from the database.
func loadCatalog(cfg config.Config, db *sql.DB) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		artifact, err := catalog.LoadArtifact(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		log.Info("Loaded catalog artifact", "path", cfg.CatalogPath, "run_id", artifact.RunID, "generated_at", artifact.GeneratedAt)
		return catalog.FromRecords(artifact.Players), nil
	}

	records, err := catalog.NewStore(db).GetAllPlayers()
	if err != nil {
		return nil, err
	}
	return catalog.FromRecords(records), nil
}
