package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	getEnvDefault := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	maxHint, err := strconv.ParseUint(getEnvDefault("MAX_HINT", "7"), 10, 32)
	if err != nil {
		log.Fatalf("Error: MAX_HINT must be a positive integer: %s", err)
	}

	sessionTTL := time.Duration(0)
	if raw := getEnvDefault("SESSION_TTL", ""); raw != "" {
		sessionTTL, err = time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Error: SESSION_TTL must be a duration like 30m: %s", err)
		}
	}

	cfg := Config{
		Port:          getEnvDefault("PORT", "8080"),
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: getEnvDefault("MIGRATIONS_DIR", "./migrations"),
		CatalogPath:   getEnvDefault("CATALOG_PATH", ""),
		MaxHint:       uint32(maxHint),
		SessionTTL:    sessionTTL,
		Turso: TursoConfig{
			PrimaryURL: getEnvDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvDefault("TURSO_AUTH_TOKEN", ""),
		},
		Wikidata: WikidataConfig{
			SparqlEndpoint: getEnvDefault("SPARQL_ENDPOINT", ""),
			DumpPath:       getEnvDefault("DUMP_PATH", ""),
		},
	}
	return cfg
}
