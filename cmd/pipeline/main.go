package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/pawnstorm/guess-the-gm/internal/catalog"
	"github.com/pawnstorm/guess-the-gm/internal/config"
	"github.com/pawnstorm/guess-the-gm/internal/database"
	"github.com/pawnstorm/guess-the-gm/internal/wikidata"
)

// The pipeline is a batch, run-once-per-refresh job: dump in, catalog
// artifact and seeded database out. Every failure is fatal so a broken dump
// can never produce a partial catalog.
func main() {
	runID := uuid.NewString()
	logger := log.With("run_id", runID)
	logger.Info("Starting catalog pipeline...")
	startTime := time.Now()

	cfg := config.Load()

	statements, source, err := loadStatements(cfg)
	if err != nil {
		logger.Fatalf("Failed to load statement dump: %s", err)
	}
	logger.Info("Statement dump loaded", "source", source, "statements", len(statements))

	players, err := wikidata.BuildCatalog(statements)
	if err != nil {
		logger.Fatalf("Failed to build catalog: %s", err)
	}
	logger.Info("Catalog built", "players", len(players))

	artifact := catalog.NewArtifact(runID, source, players)

	if cfg.CatalogPath != "" {
		if err := catalog.WriteArtifact(cfg.CatalogPath, artifact); err != nil {
			logger.Fatalf("Failed to write catalog artifact: %s", err)
		}
		logger.Info("Catalog artifact written", "path", cfg.CatalogPath)

		// A compact msgpack twin next to the JSON contract document.
		if strings.HasSuffix(cfg.CatalogPath, ".json") {
			twin := strings.TrimSuffix(cfg.CatalogPath, ".json") + ".msgpack"
			if err := catalog.WriteArtifact(twin, artifact); err != nil {
				logger.Fatalf("Failed to write msgpack artifact: %s", err)
			}
			logger.Info("Compact artifact written", "path", twin)
		}
	}

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %s", err)
	}
	defer dbTeardown()

	if err := catalog.NewStore(db).UpsertPlayers(artifact.Players); err != nil {
		logger.Fatalf("Failed to seed player catalog: %s", err)
	}

	logger.Info("Pipeline finished", "players", len(artifact.Players), "duration_ms", time.Since(startTime).Milliseconds())
}

// loadStatements reads the dump from the configured file, or falls back to a
// live SPARQL fetch.
func loadStatements(cfg config.Config) ([]wikidata.Statement, string, error) {
	if cfg.Wikidata.DumpPath != "" {
		data, err := os.ReadFile(cfg.Wikidata.DumpPath)
		if err != nil {
			return nil, "", err
		}
		statements, err := wikidata.ParseDump(data)
		return statements, cfg.Wikidata.DumpPath, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := wikidata.NewClient(cfg.Wikidata.SparqlEndpoint)
	statements, err := client.FetchDump(ctx)
	return statements, "sparql", err
}
