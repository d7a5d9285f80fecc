package config

import "time"

// Config holds all configuration for the application.
type Config struct {
	Port          string
	DBName        string
	MigrationsDir string
	// CatalogPath points at the pipeline's artifact. When empty, the catalog
	// is loaded from the database instead.
	CatalogPath string
	// MaxHint is the hint counter bound: category count plus the image step.
	MaxHint uint32
	// SessionTTL controls eviction of idle sessions. Zero disables eviction.
	SessionTTL time.Duration
	Turso      TursoConfig
	Wikidata   WikidataConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type WikidataConfig struct {
	// SparqlEndpoint overrides the public Wikidata query service.
	SparqlEndpoint string
	// DumpPath is a pre-exported statement dump for offline pipeline runs.
	DumpPath string
}
